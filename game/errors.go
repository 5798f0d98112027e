package game

import "errors"

// Domain errors of the session state machine. Every one is a recoverable
// precondition failure returned to the caller; none is retried.
var (
	ErrRoundNotStarted  = errors.New("round has not started yet")
	ErrRoundEnded       = errors.New("round has ended")
	ErrSessionCompleted = errors.New("session is already completed")
	ErrInvalidLetter    = errors.New("letter is not part of the round's alphabet")
	ErrHintUnavailable  = errors.New("hint is not configured for this round")
	ErrHintUsed         = errors.New("hint was already used")
)
