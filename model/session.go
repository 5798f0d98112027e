package model

import "time"

// GameSession is one player's attempt at one round. The storage key is
// (gameID, userID); the ID field only disambiguates duplicates for clients.
//
// GuessedSongLetters / GuessedSingerLetters are sized to the normalized
// target strings at creation and never resized. Positions holding spaces or
// characters outside the round's alphabet are pre-seeded true so they never
// block completion.
type GameSession struct {
	ID     string `json:"id"`
	GameID string `json:"gameId"`
	UserID int64  `json:"userId"`

	UserName    string     `json:"userName"`
	StartedAt   time.Time  `json:"startedAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`

	Score        int      `json:"score"`
	WrongLetters []string `json:"wrongLetters"`

	UsedTextHint  bool `json:"usedTextHint"`
	UsedImageHint bool `json:"usedImageHint"`

	GuessedSongLetters   []bool `json:"guessedSongLetters"`
	GuessedSingerLetters []bool `json:"guessedSingerLetters"`

	IsSongGuessed   bool `json:"isSongGuessed"`
	IsSingerGuessed bool `json:"isSingerGuessed"`
	IsCompleted     bool `json:"isCompleted"`
}
