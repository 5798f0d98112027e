package game

import (
	"fmt"
	"time"

	"github.com/guess-tone/tone_api/model"
)

// Scoring rules. Every deduction floors at 0; the upside is uncapped.
const (
	InitialScore       = 1000
	WrongLetterPenalty = 20
	TextHintPenalty    = 30
	ImageHintPenalty   = 100
	FullRevealBonus    = 100

	// TimeBonusWindow is the completion bonus budget in seconds: finishing
	// after elapsed seconds e awards max(0, TimeBonusWindow-e).
	TimeBonusWindow = 600
)

// NewSession builds a fresh session for one (round, player) pair. Reveal
// arrays are sized to the normalized targets; spaces and any rune outside the
// round's alphabet are pre-seeded revealed so they are never guessable and
// never block completion.
func NewSession(g *model.Game, userID int64, userName string, now time.Time) *model.GameSession {
	return &model.GameSession{
		ID:                   fmt.Sprintf("%s_%d_%d", g.ID, userID, now.UnixMilli()),
		GameID:               g.ID,
		UserID:               userID,
		UserName:             userName,
		StartedAt:            now,
		Score:                InitialScore,
		WrongLetters:         []string{},
		GuessedSongLetters:   seedReveal(Normalize(g.SongName, g.Language), g.Language),
		GuessedSingerLetters: seedReveal(Normalize(g.SingerName, g.Language), g.Language),
	}
}

func seedReveal(normalized, language string) []bool {
	runes := []rune(normalized)
	revealed := make([]bool, len(runes))
	for i, r := range runes {
		if r == ' ' || !ValidRune(language, r) {
			revealed[i] = true
		}
	}
	return revealed
}

// Guess applies a letter guess to the session. It reports whether the guess
// revealed at least one new position, for client feedback, independent of
// whether the guess completed the round.
//
// The order here is load-bearing: reveal arrays are mutated first, then the
// full-reveal flags are recomputed, then completion and the time bonus.
func Guess(g *model.Game, s *model.GameSession, letter string, now time.Time) (bool, error) {
	if s.IsCompleted {
		return false, ErrSessionCompleted
	}
	if !ValidLetter(g.Language, letter) {
		return false, ErrInvalidLetter
	}

	normalized := NormalizeLetter(letter, g.Language)
	r := []rune(normalized)[0]

	songName := Normalize(g.SongName, g.Language)
	singerName := Normalize(g.SingerName, g.Language)

	songIdx := LetterPositions(songName, r)
	singerIdx := LetterPositions(singerName, r)

	correct := false
	for _, i := range songIdx {
		if !s.GuessedSongLetters[i] {
			s.GuessedSongLetters[i] = true
			correct = true
		}
	}
	for _, i := range singerIdx {
		if !s.GuessedSingerLetters[i] {
			s.GuessedSingerLetters[i] = true
			correct = true
		}
	}

	if len(songIdx) == 0 && len(singerIdx) == 0 {
		// Repeating a known wrong letter costs nothing.
		if !containsLetter(s.WrongLetters, normalized) {
			s.WrongLetters = append(s.WrongLetters, normalized)
			s.Score = floorScore(s.Score - WrongLetterPenalty)
		}
	}

	if !s.IsSongGuessed && allRevealed(s.GuessedSongLetters) {
		s.IsSongGuessed = true
		s.Score += FullRevealBonus
	}
	if !s.IsSingerGuessed && allRevealed(s.GuessedSingerLetters) {
		s.IsSingerGuessed = true
		s.Score += FullRevealBonus
	}

	if s.IsSongGuessed && s.IsSingerGuessed && !s.IsCompleted {
		s.IsCompleted = true
		completedAt := now
		s.CompletedAt = &completedAt

		elapsed := int(now.Sub(s.StartedAt) / time.Second)
		if bonus := TimeBonusWindow - elapsed; bonus > 0 {
			s.Score += bonus
		}
	}

	return correct, nil
}

// UseTextHint consumes the round's text hint, at most once per session.
func UseTextHint(g *model.Game, s *model.GameSession) (string, error) {
	if s.IsCompleted {
		return "", ErrSessionCompleted
	}
	if g.TextHint == "" {
		return "", ErrHintUnavailable
	}
	if s.UsedTextHint {
		return "", ErrHintUsed
	}
	s.UsedTextHint = true
	s.Score = floorScore(s.Score - TextHintPenalty)
	return g.TextHint, nil
}

// UseImageHint consumes the round's image hint, at most once per session.
func UseImageHint(g *model.Game, s *model.GameSession) (string, error) {
	if s.IsCompleted {
		return "", ErrSessionCompleted
	}
	if g.ImageURL == "" {
		return "", ErrHintUnavailable
	}
	if s.UsedImageHint {
		return "", ErrHintUsed
	}
	s.UsedImageHint = true
	s.Score = floorScore(s.Score - ImageHintPenalty)
	return g.ImageURL, nil
}

func allRevealed(revealed []bool) bool {
	for _, v := range revealed {
		if !v {
			return false
		}
	}
	return true
}

func containsLetter(letters []string, letter string) bool {
	for _, l := range letters {
		if l == letter {
			return true
		}
	}
	return false
}

func floorScore(score int) int {
	if score < 0 {
		return 0
	}
	return score
}
