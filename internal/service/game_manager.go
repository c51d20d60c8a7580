package service

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrGameNotFound = errors.New("game not found")
	ErrGameExists   = errors.New("game already exists")
)

type GameManager struct {
	games  map[string]*Session
	mu     sync.RWMutex
	logger *zap.Logger
}

func NewGameManager(logger *zap.Logger) *GameManager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GameManager{
		games:  make(map[string]*Session),
		logger: logger,
	}
}

// CreateGame registers a fresh session under gameID.
func (gm *GameManager) CreateGame(gameID string) (*Session, error) {
	if _, err := uuid.Parse(gameID); err != nil {
		return nil, fmt.Errorf("invalid game id %q: %w", gameID, err)
	}

	gm.mu.Lock()
	defer gm.mu.Unlock()

	if _, exists := gm.games[gameID]; exists {
		return nil, ErrGameExists
	}

	session := newSession(gameID, gm.logger)
	gm.games[gameID] = session
	gm.logger.Info("game created", zap.String("game_id", gameID))
	return session, nil
}

func (gm *GameManager) GetGame(gameID string) (*Session, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	session, exists := gm.games[gameID]
	if !exists {
		return nil, ErrGameNotFound
	}
	return session, nil
}

func (gm *GameManager) DeleteGame(gameID string) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if _, exists := gm.games[gameID]; !exists {
		return ErrGameNotFound
	}
	delete(gm.games, gameID)
	gm.logger.Info("game deleted", zap.String("game_id", gameID))
	return nil
}

func (gm *GameManager) Count() int {
	gm.mu.RLock()
	defer gm.mu.RUnlock()
	return len(gm.games)
}
