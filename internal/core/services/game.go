package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"asteroid-arena-service/internal/core/domain"
	ports "asteroid-arena-service/internal/core/ports/output"
	"asteroid-arena-service/internal/core/sim"
)

const (
	// DefaultMaxSessions caps concurrently running engines.
	DefaultMaxSessions = 100

	// MaxAdvanceTicks bounds one advance call (5 seconds of simulation
	// at the default timestep).
	MaxAdvanceTicks = 600

	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// gameSession pairs a live engine with its persisted record. The mutex
// serializes stepping, input and finalization per session.
type gameSession struct {
	mu     sync.Mutex
	engine *sim.Engine
	game   *domain.Game
}

// GameService manages live simulation sessions. Engines live in
// memory; the session row and final score are persisted.
type GameService struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*gameSession

	games  ports.GameRepository
	scores ports.ScoreRepository

	seedFunc    func() (int64, error)
	clock       func() time.Time
	maxSessions int
}

func NewGameService(games ports.GameRepository, scores ports.ScoreRepository) *GameService {
	return &GameService{
		sessions:    make(map[uuid.UUID]*gameSession),
		games:       games,
		scores:      scores,
		seedFunc:    sim.NewSeed,
		clock:       time.Now,
		maxSessions: DefaultMaxSessions,
	}
}

// Create starts a new simulation session. A nil seed gets a
// crypto-random one; the seed used is recorded on the game row so the
// run can be replayed.
func (s *GameService) Create(ctx context.Context, player string, seed *int64, width, height float64) (*domain.Game, *sim.Snapshot, error) {
	if err := domain.ValidatePlayer(player); err != nil {
		return nil, nil, err
	}
	if width < 0 || height < 0 {
		return nil, nil, domain.ErrInvalidFieldSize
	}

	var engineSeed int64
	if seed != nil {
		engineSeed = *seed
	} else {
		generated, err := s.seedFunc()
		if err != nil {
			return nil, nil, err
		}
		engineSeed = generated
	}

	engine := sim.NewEngine(sim.Config{
		Seed:   engineSeed,
		Width:  width,
		Height: height,
	})

	game := &domain.Game{
		ID:        uuid.New(),
		Player:    player,
		Seed:      engineSeed,
		Width:     engine.Config().Width,
		Height:    engine.Config().Height,
		Status:    domain.GameStatusRunning,
		Lives:     engine.Lives(),
		StartedAt: s.clock(),
	}

	// Reserve the slot before persisting so the capacity check and the
	// insert are atomic under the write lock.
	s.mu.Lock()
	if len(s.sessions) >= s.maxSessions {
		s.mu.Unlock()
		return nil, nil, domain.ErrTooManySessions
	}
	s.sessions[game.ID] = &gameSession{engine: engine, game: game}
	s.mu.Unlock()

	if err := s.games.Create(ctx, game); err != nil {
		s.mu.Lock()
		delete(s.sessions, game.ID)
		s.mu.Unlock()
		return nil, nil, err
	}

	snapshot := engine.Snapshot()
	return game, &snapshot, nil
}

// Get returns the session and a snapshot. Finished sessions fall back
// to the persisted record with no snapshot.
func (s *GameService) Get(ctx context.Context, id uuid.UUID) (*domain.Game, *sim.Snapshot, error) {
	if sess := s.session(id); sess != nil {
		sess.mu.Lock()
		defer sess.mu.Unlock()
		snapshot := sess.engine.Snapshot()
		game := *sess.game
		return &game, &snapshot, nil
	}

	game, err := s.games.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return game, nil, nil
}

// SetInput replaces the held control state of a running session.
func (s *GameService) SetInput(ctx context.Context, id uuid.UUID, input sim.Input) error {
	if input.Turn < -1 || input.Turn > 1 {
		return domain.ErrInvalidTurn
	}
	sess := s.session(id)
	if sess == nil {
		return domain.ErrGameNotFound
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.game.Finished() {
		return domain.ErrGameFinished
	}
	sess.engine.SetInput(input)
	return nil
}

// Advance steps a session by n ticks under the session lock. A run
// that hits game over during the window is finalized exactly once.
func (s *GameService) Advance(ctx context.Context, id uuid.UUID, ticks int) (*domain.Game, *sim.Snapshot, error) {
	if ticks < 1 || ticks > MaxAdvanceTicks {
		return nil, nil, domain.ErrInvalidTickCount
	}
	sess := s.session(id)
	if sess == nil {
		return nil, nil, domain.ErrGameNotFound
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.game.Finished() {
		return nil, nil, domain.ErrGameFinished
	}

	sess.engine.Advance(ticks)
	sess.game.Score = sess.engine.Score()
	sess.game.Lives = sess.engine.Lives()

	if sess.engine.Status() == sim.StatusGameOver {
		if err := s.finalize(ctx, sess, domain.GameStatusGameOver); err != nil {
			return nil, nil, err
		}
	}

	snapshot := sess.engine.Snapshot()
	game := *sess.game
	return &game, &snapshot, nil
}

// End abandons a running session. Abandoned runs keep their score on
// the game row but do not enter the leaderboard.
func (s *GameService) End(ctx context.Context, id uuid.UUID) (*domain.Game, error) {
	sess := s.session(id)
	if sess == nil {
		return nil, domain.ErrGameNotFound
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.game.Finished() {
		return nil, domain.ErrGameFinished
	}

	sess.game.Score = sess.engine.Score()
	sess.game.Lives = sess.engine.Lives()
	if err := s.finalize(ctx, sess, domain.GameStatusAbandoned); err != nil {
		return nil, err
	}
	game := *sess.game
	return &game, nil
}

// List returns active sessions ordered by start time.
func (s *GameService) List(ctx context.Context) []*domain.Game {
	s.mu.RLock()
	sessions := make([]*gameSession, 0, len(s.sessions))
	for _, sess := range s.sessions {
		sessions = append(sessions, sess)
	}
	s.mu.RUnlock()

	games := make([]*domain.Game, 0, len(sessions))
	for _, sess := range sessions {
		sess.mu.Lock()
		game := *sess.game
		sess.mu.Unlock()
		games = append(games, &game)
	}
	sort.Slice(games, func(i, j int) bool {
		if games[i].StartedAt.Equal(games[j].StartedAt) {
			return games[i].ID.String() < games[j].ID.String()
		}
		return games[i].StartedAt.Before(games[j].StartedAt)
	})
	return games
}

// ListFinished returns persisted sessions with the given terminal
// status, newest first. Limit zero means the default page size.
func (s *GameService) ListFinished(ctx context.Context, status domain.GameStatus, limit int) ([]*domain.Game, error) {
	if status != domain.GameStatusGameOver && status != domain.GameStatusAbandoned {
		return nil, domain.ErrInvalidStatus
	}
	if limit == 0 {
		limit = defaultHistoryLimit
	}
	if limit < 1 || limit > maxHistoryLimit {
		return nil, domain.ErrInvalidLimit
	}
	return s.games.ListByStatus(ctx, status, limit)
}

// ActiveSessions reports the number of live engines, for metrics.
func (s *GameService) ActiveSessions() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *GameService) session(id uuid.UUID) *gameSession {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[id]
}

// finalize persists the terminal state, writes the leaderboard entry
// for completed runs and drops the engine. Caller holds the session
// lock.
func (s *GameService) finalize(ctx context.Context, sess *gameSession, status domain.GameStatus) error {
	now := s.clock()
	sess.game.Status = status
	sess.game.EndedAt = &now

	if err := s.games.Finish(ctx, sess.game); err != nil {
		return err
	}

	if status == domain.GameStatusGameOver {
		entry := &domain.ScoreEntry{
			ID:         uuid.New(),
			GameID:     sess.game.ID,
			Player:     sess.game.Player,
			Score:      sess.game.Score,
			AchievedAt: now,
		}
		if err := s.scores.Create(ctx, entry); err != nil {
			// Game row is already final; log and continue.
			log.WithError(err).WithField("game_id", sess.game.ID).Error("record score failed")
		}
	}

	s.mu.Lock()
	delete(s.sessions, sess.game.ID)
	s.mu.Unlock()
	return nil
}
