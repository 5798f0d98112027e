package model

import "time"

const (
	LanguagePersian = "fa"
	LanguageEnglish = "en"
)

// Game is one authored round of the guessing game: two target strings and a
// play window. Immutable during play except through the admin endpoints.
type Game struct {
	ID         string    `json:"id"`
	SongName   string    `json:"songName"`
	SingerName string    `json:"singerName"`
	StartTime  time.Time `json:"startTime"`
	EndTime    time.Time `json:"endTime"`
	Language   string    `json:"language"`
	TextHint   string    `json:"textHint,omitempty"`
	ImageURL   string    `json:"imageUrl,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Sanitized returns a copy safe to show before the round starts: the targets
// and hints are blanked so upcoming rounds leak nothing. Finished and active
// rounds are returned as-is by the callers that need them.
func (g Game) Sanitized() Game {
	return Game{
		ID:        g.ID,
		StartTime: g.StartTime,
		EndTime:   g.EndTime,
		Language:  g.Language,
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	}
}
