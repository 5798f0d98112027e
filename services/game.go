package services

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strings"
	"time"

	appContext "github.com/alphabatem/common/context"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/guess-tone/tone_api/dto"
	"github.com/guess-tone/tone_api/game"
	"github.com/guess-tone/tone_api/model"
	"github.com/guess-tone/tone_api/shared"
)

// GameService owns the round records and drives the per-player session state
// machine. All state lives in Redis; every request is handled statelessly.
// Concurrent actions for the same (round, player) key are a read-modify-write
// race we deliberately accept: a single human player acts serially from one
// client.
type GameService struct {
	appContext.DefaultService

	redisSvc      *RedisService
	monitoringSvc *MonitoringService
}

const GAME_SVC = "game_svc"

// orphanSessionTTL keeps sessions of a deleted round around long enough for
// players mid-game to see their final state.
const orphanSessionTTL = 7 * 24 * time.Hour

func (svc GameService) Id() string {
	return GAME_SVC
}

func (svc *GameService) Configure(ctx *appContext.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *GameService) Start() error {
	svc.redisSvc = svc.Service(REDIS_SVC).(*RedisService)
	svc.monitoringSvc = svc.Service(MONITORING_SVC).(*MonitoringService)
	return nil
}

// ==================== ROUND CRUD ====================

func (svc *GameService) CreateGame(ctx context.Context, req dto.CreateGameRequest) (*model.Game, error) {
	language := req.Language
	if language == "" {
		language = model.LanguagePersian
	}

	now := time.Now()
	g := &model.Game{
		ID:         uuid.NewString(),
		SongName:   sanitizeText(req.SongName),
		SingerName: sanitizeText(req.SingerName),
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Language:   language,
		TextHint:   sanitizeText(req.TextHint),
		ImageURL:   strings.TrimSpace(req.ImageURL),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := svc.redisSvc.Set(ctx, shared.GameKey(g.ID), g); err != nil {
		return nil, err
	}
	if err := svc.redisSvc.SAdd(ctx, shared.GameIndexKey, g.ID); err != nil {
		return nil, err
	}

	log.WithField("gameId", g.ID).Info("Game created")
	return g, nil
}

// UpdateGame replaces every mutable field of an existing round. Language is
// fixed at creation since the reveal arrays of live sessions depend on it.
func (svc *GameService) UpdateGame(ctx context.Context, gameID string, req dto.UpdateGameRequest) (*model.Game, error) {
	g, err := svc.loadGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	g.SongName = sanitizeText(req.SongName)
	g.SingerName = sanitizeText(req.SingerName)
	g.StartTime = req.StartTime
	g.EndTime = req.EndTime
	g.TextHint = sanitizeText(req.TextHint)
	g.ImageURL = strings.TrimSpace(req.ImageURL)
	g.UpdatedAt = time.Now()

	if err := svc.redisSvc.Set(ctx, shared.GameKey(g.ID), g); err != nil {
		return nil, err
	}

	log.WithField("gameId", g.ID).Info("Game updated")
	return g, nil
}

// DeleteGame removes the round and unindexes it. The round's sessions are not
// purged eagerly; they get a TTL and age out.
func (svc *GameService) DeleteGame(ctx context.Context, gameID string) error {
	if _, err := svc.loadGame(ctx, gameID); err != nil {
		return err
	}

	if err := svc.redisSvc.SRem(ctx, shared.GameIndexKey, gameID); err != nil {
		return err
	}
	if err := svc.redisSvc.Delete(ctx, shared.GameKey(gameID)); err != nil {
		return err
	}

	if keys, err := svc.redisSvc.Keys(ctx, shared.SessionPattern(gameID)); err == nil {
		for _, key := range keys {
			if err := svc.redisSvc.Expire(ctx, key, orphanSessionTTL); err != nil {
				log.WithError(err).WithField("key", key).Warn("Failed to expire orphaned session")
			}
		}
	}

	log.WithField("gameId", gameID).Info("Game deleted")
	return nil
}

func (svc *GameService) GetGame(ctx context.Context, gameID string) (*model.Game, error) {
	return svc.loadGame(ctx, gameID)
}

// ListGames returns every round for the public list. Rounds that have not
// started are sanitized so targets and hints leak nothing; finished rounds
// are returned whole for the results screen. Sorted newest start first.
func (svc *GameService) ListGames(ctx context.Context) ([]model.Game, error) {
	games, err := svc.loadAllGames(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	for i := range games {
		if game.CheckWindow(&games[i], now) == game.WindowNotStarted {
			games[i] = games[i].Sanitized()
		}
	}

	sort.SliceStable(games, func(i, j int) bool {
		return games[i].StartTime.After(games[j].StartTime)
	})
	return games, nil
}

// AdminListGames returns every round unsanitized, newest authored first.
func (svc *GameService) AdminListGames(ctx context.Context) ([]model.Game, error) {
	games, err := svc.loadAllGames(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(games, func(i, j int) bool {
		return games[i].CreatedAt.After(games[j].CreatedAt)
	})
	return games, nil
}

// ==================== SESSIONS ====================

// StartSession creates the player's session for an active round, or returns
// the existing one unchanged. Duplicate play-start requests are idempotent.
func (svc *GameService) StartSession(ctx context.Context, req dto.StartSessionRequest) (*dto.StartSessionResponse, error) {
	g, err := svc.loadGame(ctx, req.GameID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if err := windowError(g, now); err != nil {
		return nil, err
	}

	sessionKey := shared.SessionKey(g.ID, req.UserID)

	var existing model.GameSession
	found, err := svc.redisSvc.GetJSON(ctx, sessionKey, &existing)
	if err != nil {
		return nil, err
	}
	if found {
		return &dto.StartSessionResponse{Game: *g, Session: existing}, nil
	}

	session := game.NewSession(g, req.UserID, req.UserName, now)
	if err := svc.redisSvc.Set(ctx, sessionKey, session); err != nil {
		return nil, err
	}

	svc.monitoringSvc.RecordSessionStarted(g.ID)
	log.WithField("gameId", g.ID).
		WithField("userId", req.UserID).
		Info("Game session created")

	return &dto.StartSessionResponse{Game: *g, Session: *session}, nil
}

func (svc *GameService) GetSession(ctx context.Context, gameID string, userID int64) (*model.GameSession, error) {
	var session model.GameSession
	found, err := svc.redisSvc.GetJSON(ctx, shared.SessionKey(gameID, userID), &session)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, shared.NewNotFoundError("Session not found", nil)
	}
	return &session, nil
}

// ApplyAction runs one session mutation: a letter guess or a hint reveal.
// The window gate runs first, then the state machine; a rejected action
// leaves the stored session untouched.
func (svc *GameService) ApplyAction(ctx context.Context, gameID string, userID int64, req dto.SessionActionRequest) (*dto.SessionActionResponse, error) {
	g, err := svc.loadGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if err := windowError(g, now); err != nil {
		return nil, err
	}

	session, err := svc.GetSession(ctx, gameID, userID)
	if err != nil {
		return nil, err
	}

	resp := &dto.SessionActionResponse{}

	switch req.Action {
	case dto.ActionGuessLetter:
		correct, err := game.Guess(g, session, req.Letter, now)
		if err != nil {
			return nil, domainError(err)
		}
		resp.IsCorrect = &correct
		svc.monitoringSvc.RecordGuess(correct)
		if session.IsCompleted {
			svc.monitoringSvc.RecordCompletion(g.ID)
		}

	case dto.ActionUseTextHint:
		hint, err := game.UseTextHint(g, session)
		if err != nil {
			return nil, domainError(err)
		}
		resp.TextHint = hint
		svc.monitoringSvc.RecordHint("text")

	case dto.ActionUseImageHint:
		url, err := game.UseImageHint(g, session)
		if err != nil {
			return nil, domainError(err)
		}
		resp.ImageURL = url
		svc.monitoringSvc.RecordHint("image")

	default:
		return nil, shared.NewBadRequestError("Invalid action", nil)
	}

	if err := svc.redisSvc.Set(ctx, shared.SessionKey(gameID, userID), session); err != nil {
		return nil, err
	}

	log.WithField("gameId", gameID).
		WithField("userId", userID).
		WithField("action", req.Action).
		WithField("score", session.Score).
		Info("Session updated")

	resp.Session = *session
	return resp, nil
}

// ApplyActionBySession is the variant addressed by session id instead of
// player id: the session is resolved by scanning the round's session keys.
func (svc *GameService) ApplyActionBySession(ctx context.Context, gameID, sessionID string, req dto.SessionActionRequest) (*dto.SessionActionResponse, error) {
	keys, err := svc.redisSvc.Keys(ctx, shared.SessionPattern(gameID))
	if err != nil {
		return nil, err
	}

	for _, key := range keys {
		var session model.GameSession
		found, err := svc.redisSvc.GetJSON(ctx, key, &session)
		if err != nil || !found {
			continue
		}
		if session.ID == sessionID {
			return svc.ApplyAction(ctx, gameID, session.UserID, req)
		}
	}

	return nil, shared.NewNotFoundError("Session not found", nil)
}

// GameSessions loads every session of one round.
func (svc *GameService) GameSessions(ctx context.Context, gameID string) ([]model.GameSession, error) {
	keys, err := svc.redisSvc.Keys(ctx, shared.SessionPattern(gameID))
	if err != nil {
		return nil, err
	}
	return svc.loadSessions(ctx, keys)
}

// AllSessions loads every session across every round.
func (svc *GameService) AllSessions(ctx context.Context) ([]model.GameSession, error) {
	keys, err := svc.redisSvc.Keys(ctx, shared.SessionKeyPrefix+"*")
	if err != nil {
		return nil, err
	}
	return svc.loadSessions(ctx, keys)
}

// ==================== INTERNAL ====================

func (svc *GameService) loadGame(ctx context.Context, gameID string) (*model.Game, error) {
	var g model.Game
	found, err := svc.redisSvc.GetJSON(ctx, shared.GameKey(gameID), &g)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, shared.NewNotFoundError("Game not found", nil)
	}
	return &g, nil
}

func (svc *GameService) loadAllGames(ctx context.Context) ([]model.Game, error) {
	ids, err := svc.redisSvc.SMembers(ctx, shared.GameIndexKey)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []model.Game{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = shared.GameKey(id)
	}

	values, err := svc.redisSvc.MGet(ctx, keys...)
	if err != nil {
		return nil, err
	}

	games := make([]model.Game, 0, len(values))
	for _, v := range values {
		raw, ok := v.(string)
		if !ok {
			continue
		}
		var g model.Game
		if err := json.Unmarshal([]byte(raw), &g); err != nil {
			log.WithError(err).Warn("Skipping unreadable game record")
			continue
		}
		games = append(games, g)
	}
	return games, nil
}

func (svc *GameService) loadSessions(ctx context.Context, keys []string) ([]model.GameSession, error) {
	if len(keys) == 0 {
		return []model.GameSession{}, nil
	}

	values, err := svc.redisSvc.MGet(ctx, keys...)
	if err != nil {
		return nil, err
	}

	sessions := make([]model.GameSession, 0, len(values))
	for _, v := range values {
		raw, ok := v.(string)
		if !ok {
			continue
		}
		var s model.GameSession
		if err := json.Unmarshal([]byte(raw), &s); err != nil {
			log.WithError(err).Warn("Skipping unreadable session record")
			continue
		}
		sessions = append(sessions, s)
	}
	return sessions, nil
}

// windowError maps the window gate onto the error taxonomy.
func windowError(g *model.Game, now time.Time) error {
	switch game.CheckWindow(g, now) {
	case game.WindowNotStarted:
		return shared.NewBadRequestError("Game has not started yet", game.ErrRoundNotStarted)
	case game.WindowEnded:
		return shared.NewBadRequestError("Game has ended", game.ErrRoundEnded)
	}
	return nil
}

// domainError maps state-machine errors onto HTTP-facing AppErrors.
func domainError(err error) error {
	switch {
	case errors.Is(err, game.ErrSessionCompleted):
		return shared.NewBadRequestError("Session is already completed", err)
	case errors.Is(err, game.ErrInvalidLetter):
		return shared.NewBadRequestError("Invalid letter", err)
	case errors.Is(err, game.ErrHintUnavailable):
		return shared.NewBadRequestError("Hint is not available", err)
	case errors.Is(err, game.ErrHintUsed):
		return shared.NewBadRequestError("Hint was already used", err)
	}
	return err
}

// sanitizeText trims and collapses internal whitespace of admin-authored
// strings without touching script or case.
func sanitizeText(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
