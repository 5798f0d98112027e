package shared

import "strconv"

const (
	// Redis key layout. Rounds are single JSON records, sessions are keyed by
	// (round, player), and games:ids is the round index set.
	GameKeyPrefix    = "game:"
	SessionKeyPrefix = "session:"
	GameIndexKey     = "games:ids"
)

func GameKey(gameID string) string {
	return GameKeyPrefix + gameID
}

func SessionKey(gameID string, userID int64) string {
	return SessionKeyPrefix + gameID + ":" + strconv.FormatInt(userID, 10)
}

func SessionPattern(gameID string) string {
	return SessionKeyPrefix + gameID + ":*"
}
