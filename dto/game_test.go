package dto

import (
	"testing"
	"time"
)

func validCreateRequest() CreateGameRequest {
	start := time.Date(2026, 9, 1, 18, 0, 0, 0, time.UTC)
	return CreateGameRequest{
		SongName:   "Bohemian Rhapsody",
		SingerName: "Queen",
		StartTime:  start,
		EndTime:    start.Add(2 * time.Hour),
		Language:   "en",
	}
}

func TestCreateGameRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CreateGameRequest)
		wantErr bool
	}{
		{"valid", func(r *CreateGameRequest) {}, false},
		{"language optional", func(r *CreateGameRequest) { r.Language = "" }, false},
		{"missing song name", func(r *CreateGameRequest) { r.SongName = "" }, true},
		{"missing singer name", func(r *CreateGameRequest) { r.SingerName = "" }, true},
		{"end before start", func(r *CreateGameRequest) { r.EndTime = r.StartTime.Add(-time.Hour) }, true},
		{"end equals start", func(r *CreateGameRequest) { r.EndTime = r.StartTime }, true},
		{"unknown language", func(r *CreateGameRequest) { r.Language = "de" }, true},
		{"bad image url", func(r *CreateGameRequest) { r.ImageURL = "not-a-url" }, true},
		{"valid image url", func(r *CreateGameRequest) { r.ImageURL = "https://cdn.example.com/a.jpg" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			tt.mutate(&req)
			err := req.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSessionActionRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     SessionActionRequest
		wantErr bool
	}{
		{"guess letter", SessionActionRequest{Action: ActionGuessLetter, Letter: "a"}, false},
		{"text hint", SessionActionRequest{Action: ActionUseTextHint}, false},
		{"image hint", SessionActionRequest{Action: ActionUseImageHint}, false},
		{"unknown action", SessionActionRequest{Action: "reveal_all"}, true},
		{"missing action", SessionActionRequest{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestTelegramUserDisplayName(t *testing.T) {
	long := ""
	for i := 0; i < 40; i++ {
		long += "x"
	}

	tests := []struct {
		name string
		user TelegramUser
		want string
	}{
		{"first only", TelegramUser{FirstName: "Sara"}, "Sara"},
		{"first and last", TelegramUser{FirstName: "Sara", LastName: "M"}, "Sara M"},
		{"truncated", TelegramUser{FirstName: long}, long[:27] + "..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.user.DisplayName(); got != tt.want {
				t.Errorf("DisplayName() = %q, want %q", got, tt.want)
			}
		})
	}
}
