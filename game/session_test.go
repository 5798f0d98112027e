package game

import (
	"errors"
	"testing"
	"time"

	"github.com/guess-tone/tone_api/model"
)

var sessionStart = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

func newTestGame(song, singer, language string) *model.Game {
	return &model.Game{
		ID:         "round-1",
		SongName:   song,
		SingerName: singer,
		Language:   language,
		StartTime:  sessionStart.Add(-time.Hour),
		EndTime:    sessionStart.Add(time.Hour),
	}
}

func TestNewSessionSeedsReveals(t *testing.T) {
	tests := []struct {
		name       string
		song       string
		language   string
		wantReveal []bool
	}{
		{
			name:       "spaces pre-revealed",
			song:       "ab cd",
			language:   "en",
			wantReveal: []bool{false, false, true, false, false},
		},
		{
			name:       "out of alphabet runes pre-revealed",
			song:       "AC/DC",
			language:   "en",
			wantReveal: []bool{false, false, true, false, false},
		},
		{
			name:       "digits pre-revealed",
			song:       "24",
			language:   "en",
			wantReveal: []bool{true, true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(tt.song, "x", tt.language)
			s := NewSession(g, 42, "player", sessionStart)

			if len(s.GuessedSongLetters) != len(tt.wantReveal) {
				t.Fatalf("reveal length = %d, want %d", len(s.GuessedSongLetters), len(tt.wantReveal))
			}
			for i, want := range tt.wantReveal {
				if s.GuessedSongLetters[i] != want {
					t.Errorf("position %d = %v, want %v", i, s.GuessedSongLetters[i], want)
				}
			}
			if s.Score != InitialScore {
				t.Errorf("initial score = %d, want %d", s.Score, InitialScore)
			}
			if s.IsCompleted {
				t.Error("fresh session must not be completed")
			}
		})
	}
}

func TestGuessFullRound(t *testing.T) {
	g := newTestGame("AB", "C", "en")
	s := NewSession(g, 42, "player", sessionStart)

	correct, err := Guess(g, s, "z", sessionStart)
	if err != nil {
		t.Fatalf("wrong guess errored: %v", err)
	}
	if correct {
		t.Error("Z should not be a correct guess")
	}
	if s.Score != 980 {
		t.Errorf("score after wrong guess = %d, want 980", s.Score)
	}

	// Repeating a wrong letter must not charge again.
	if _, err = Guess(g, s, "z", sessionStart); err != nil {
		t.Fatalf("repeated wrong guess errored: %v", err)
	}
	if s.Score != 980 {
		t.Errorf("score after repeated wrong guess = %d, want 980", s.Score)
	}
	if len(s.WrongLetters) != 1 {
		t.Errorf("wrong letters = %v, want exactly one entry", s.WrongLetters)
	}

	correct, err = Guess(g, s, "a", sessionStart)
	if err != nil || !correct {
		t.Fatalf("guess A: correct=%v err=%v", correct, err)
	}
	if s.Score != 980 {
		t.Errorf("score after correct guess = %d, want 980", s.Score)
	}
	if s.IsSongGuessed {
		t.Error("song must not be flagged guessed with B still hidden")
	}

	if _, err = Guess(g, s, "b", sessionStart); err != nil {
		t.Fatalf("guess B errored: %v", err)
	}
	if !s.IsSongGuessed {
		t.Error("song should be fully revealed after B")
	}
	if s.Score != 1080 {
		t.Errorf("score after song reveal = %d, want 1080", s.Score)
	}
	if s.IsCompleted {
		t.Error("round must not complete before the singer is revealed")
	}

	completedAt := sessionStart.Add(100 * time.Second)
	if _, err = Guess(g, s, "c", completedAt); err != nil {
		t.Fatalf("guess C errored: %v", err)
	}
	if !s.IsCompleted || !s.IsSingerGuessed {
		t.Error("round should be completed after the singer is revealed")
	}
	if s.CompletedAt == nil || !s.CompletedAt.Equal(completedAt) {
		t.Errorf("completedAt = %v, want %v", s.CompletedAt, completedAt)
	}
	// 1080 + 100 reveal bonus + (600 - 100) time bonus.
	if s.Score != 1680 {
		t.Errorf("final score = %d, want 1680", s.Score)
	}
}

func TestGuessOrderIndependence(t *testing.T) {
	guessAll := func(letters []string) *model.GameSession {
		g := newTestGame("AB", "C", "en")
		s := NewSession(g, 1, "p", sessionStart)
		for _, l := range letters {
			if _, err := Guess(g, s, l, sessionStart); err != nil {
				t.Fatalf("guess %q errored: %v", l, err)
			}
		}
		return s
	}

	forward := guessAll([]string{"a", "b", "c"})
	backward := guessAll([]string{"c", "b", "a"})

	if forward.Score != backward.Score {
		t.Errorf("scores diverge by guess order: %d vs %d", forward.Score, backward.Score)
	}
	if forward.IsCompleted != backward.IsCompleted {
		t.Error("completion diverges by guess order")
	}
}

// Session writes are read-modify-write without locking, so two handlers
// acting on the same session at once overwrite each other: the later write
// wins whole. This pins down what a lost update costs.
func TestSimultaneousGuessesLoseOneUpdate(t *testing.T) {
	g := newTestGame("AB", "C", "en")
	stored := NewSession(g, 1, "p", sessionStart)

	// Two handlers load the same stored snapshot.
	correctSide := cloneSession(stored)
	wrongSide := cloneSession(stored)

	if _, err := Guess(g, correctSide, "a", sessionStart); err != nil {
		t.Fatalf("correct guess errored: %v", err)
	}
	if _, err := Guess(g, wrongSide, "z", sessionStart); err != nil {
		t.Fatalf("wrong guess errored: %v", err)
	}

	t.Run("wrong guess persists last", func(t *testing.T) {
		final := cloneSession(wrongSide)

		if final.GuessedSongLetters[0] {
			t.Error("the overwritten reveal must be lost, not merged")
		}
		if final.Score != InitialScore-WrongLetterPenalty {
			t.Errorf("score = %d, want %d", final.Score, InitialScore-WrongLetterPenalty)
		}

		// Replaying the lost correct guess restores the reveal for free.
		correct, err := Guess(g, final, "a", sessionStart)
		if err != nil || !correct {
			t.Fatalf("replay: correct=%v err=%v", correct, err)
		}
		if final.Score != InitialScore-WrongLetterPenalty {
			t.Errorf("replayed reveal changed score to %d", final.Score)
		}
	})

	t.Run("correct guess persists last", func(t *testing.T) {
		final := cloneSession(correctSide)

		if final.Score != InitialScore {
			t.Errorf("score = %d, want %d (the penalty was overwritten)", final.Score, InitialScore)
		}
		if len(final.WrongLetters) != 0 {
			t.Errorf("wrong letters = %v, want none", final.WrongLetters)
		}

		// Replaying the lost wrong guess re-charges it, so the worst case
		// for any interleave is a single penalty.
		if _, err := Guess(g, final, "z", sessionStart); err != nil {
			t.Fatalf("replay errored: %v", err)
		}
		if final.Score != InitialScore-WrongLetterPenalty {
			t.Errorf("score after replay = %d, want %d", final.Score, InitialScore-WrongLetterPenalty)
		}
	})
}

func cloneSession(s *model.GameSession) *model.GameSession {
	c := *s
	c.WrongLetters = append([]string(nil), s.WrongLetters...)
	c.GuessedSongLetters = append([]bool(nil), s.GuessedSongLetters...)
	c.GuessedSingerLetters = append([]bool(nil), s.GuessedSingerLetters...)
	return &c
}

func TestGuessAfterCompletion(t *testing.T) {
	g := newTestGame("A", "B", "en")
	s := NewSession(g, 1, "p", sessionStart)

	mustGuess(t, g, s, "a")
	mustGuess(t, g, s, "b")
	if !s.IsCompleted {
		t.Fatal("session should be completed")
	}

	finalScore := s.Score
	if _, err := Guess(g, s, "c", sessionStart); !errors.Is(err, ErrSessionCompleted) {
		t.Errorf("guess on completed session = %v, want ErrSessionCompleted", err)
	}
	if _, err := UseTextHint(g, s); !errors.Is(err, ErrSessionCompleted) {
		t.Errorf("text hint on completed session = %v, want ErrSessionCompleted", err)
	}
	if _, err := UseImageHint(g, s); !errors.Is(err, ErrSessionCompleted) {
		t.Errorf("image hint on completed session = %v, want ErrSessionCompleted", err)
	}
	if s.Score != finalScore {
		t.Errorf("terminal score moved from %d to %d", finalScore, s.Score)
	}
}

func TestGuessInvalidLetter(t *testing.T) {
	g := newTestGame("AB", "C", "en")
	s := NewSession(g, 1, "p", sessionStart)

	for _, letter := range []string{"5", "-", "ab", "", "م"} {
		if _, err := Guess(g, s, letter, sessionStart); !errors.Is(err, ErrInvalidLetter) {
			t.Errorf("Guess(%q) = %v, want ErrInvalidLetter", letter, err)
		}
	}
	if s.Score != InitialScore {
		t.Errorf("invalid guesses changed score to %d", s.Score)
	}
}

func TestGuessPersianVariantFolding(t *testing.T) {
	g := newTestGame("علی", "كریمی", "fa")
	s := NewSession(g, 1, "p", sessionStart)

	correct, err := Guess(g, s, "ي", sessionStart)
	if err != nil {
		t.Fatalf("arabic yeh guess errored: %v", err)
	}
	if !correct {
		t.Error("arabic yeh should reveal the persian yeh")
	}

	correct, err = Guess(g, s, "ک", sessionStart)
	if err != nil {
		t.Fatalf("kaf guess errored: %v", err)
	}
	if !correct {
		t.Error("persian kaf should reveal the folded arabic kaf in the target")
	}
}

func TestScoreFloor(t *testing.T) {
	g := newTestGame("AB", "C", "en")
	s := NewSession(g, 1, "p", sessionStart)
	s.Score = 10

	if _, err := Guess(g, s, "z", sessionStart); err != nil {
		t.Fatalf("wrong guess errored: %v", err)
	}
	if s.Score != 0 {
		t.Errorf("score = %d, want floor at 0", s.Score)
	}
}

func TestCompletionTimeBonus(t *testing.T) {
	tests := []struct {
		name      string
		elapsed   time.Duration
		wantScore int
	}{
		{"instant finish", 0, 1800},
		{"mid window", 250 * time.Second, 1550},
		{"window expired", 700 * time.Second, 1200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame("A", "B", "en")
			s := NewSession(g, 1, "p", sessionStart)

			mustGuess(t, g, s, "a")
			if _, err := Guess(g, s, "b", sessionStart.Add(tt.elapsed)); err != nil {
				t.Fatalf("completing guess errored: %v", err)
			}
			if s.Score != tt.wantScore {
				t.Errorf("score = %d, want %d", s.Score, tt.wantScore)
			}
		})
	}
}

func TestHints(t *testing.T) {
	g := newTestGame("AB", "C", "en")
	g.TextHint = "a duet"
	g.ImageURL = "https://cdn.example.com/hints/round-1.jpg"
	s := NewSession(g, 1, "p", sessionStart)

	hint, err := UseTextHint(g, s)
	if err != nil {
		t.Fatalf("text hint errored: %v", err)
	}
	if hint != g.TextHint {
		t.Errorf("text hint = %q, want %q", hint, g.TextHint)
	}
	if s.Score != InitialScore-TextHintPenalty {
		t.Errorf("score after text hint = %d, want %d", s.Score, InitialScore-TextHintPenalty)
	}

	if _, err = UseTextHint(g, s); !errors.Is(err, ErrHintUsed) {
		t.Errorf("second text hint = %v, want ErrHintUsed", err)
	}
	if s.Score != InitialScore-TextHintPenalty {
		t.Errorf("rejected hint changed score to %d", s.Score)
	}

	url, err := UseImageHint(g, s)
	if err != nil {
		t.Fatalf("image hint errored: %v", err)
	}
	if url != g.ImageURL {
		t.Errorf("image hint = %q, want %q", url, g.ImageURL)
	}
	if s.Score != InitialScore-TextHintPenalty-ImageHintPenalty {
		t.Errorf("score after both hints = %d", s.Score)
	}

	if _, err = UseImageHint(g, s); !errors.Is(err, ErrHintUsed) {
		t.Errorf("second image hint = %v, want ErrHintUsed", err)
	}
}

func TestHintsUnconfigured(t *testing.T) {
	g := newTestGame("AB", "C", "en")
	s := NewSession(g, 1, "p", sessionStart)

	if _, err := UseTextHint(g, s); !errors.Is(err, ErrHintUnavailable) {
		t.Errorf("text hint = %v, want ErrHintUnavailable", err)
	}
	if _, err := UseImageHint(g, s); !errors.Is(err, ErrHintUnavailable) {
		t.Errorf("image hint = %v, want ErrHintUnavailable", err)
	}
	if s.Score != InitialScore {
		t.Errorf("unavailable hints changed score to %d", s.Score)
	}
}

func TestGuessSharedLetterRevealsBoth(t *testing.T) {
	g := newTestGame("ABBA", "BAR", "en")
	s := NewSession(g, 1, "p", sessionStart)

	mustGuess(t, g, s, "b")

	wantSong := []bool{false, true, true, false}
	for i, want := range wantSong {
		if s.GuessedSongLetters[i] != want {
			t.Errorf("song position %d = %v, want %v", i, s.GuessedSongLetters[i], want)
		}
	}
	if !s.GuessedSingerLetters[0] {
		t.Error("singer position 0 should be revealed by the same guess")
	}
}

func mustGuess(t *testing.T, g *model.Game, s *model.GameSession, letter string) {
	t.Helper()
	if _, err := Guess(g, s, letter, sessionStart); err != nil {
		t.Fatalf("guess %q errored: %v", letter, err)
	}
}
