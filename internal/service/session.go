package service

import (
	"errors"
	"sync"

	"github.com/benbeisheim/hotseat-chess/internal/model"
	"github.com/benbeisheim/hotseat-chess/internal/ws"
	"go.uber.org/zap"
)

var ErrDuplicateConnection = errors.New("player already connected")

// Observer receives pushed messages. *websocket.Conn satisfies it.
type Observer interface {
	WriteJSON(v interface{}) error
	Close() error
}

// The connections for a specific game
type sessionConnections struct {
	observers map[string]Observer // playerID -> connection
	mu        sync.Mutex
}

// Session wraps one engine instance. The engine itself is not safe for
// concurrent use, so every access goes through mu.
type Session struct {
	ID string

	mu               sync.Mutex
	game             *model.Game
	pendingPromotion model.PieceKind
	pendingWinner    *model.Color

	connections *sessionConnections
	logger      *zap.Logger
}

func newSession(id string, logger *zap.Logger) *Session {
	s := &Session{
		ID:          id,
		connections: &sessionConnections{observers: make(map[string]Observer)},
		logger:      logger.With(zap.String("game_id", id)),
	}
	s.game = model.NewGame(s, s)
	return s
}

// ChoosePromotion answers the engine with the piece carried on the click
// currently being applied.
func (s *Session) ChoosePromotion(color model.Color) model.PieceKind {
	kind := s.pendingPromotion
	if !kind.IsPromotionChoice() {
		kind = model.Queen
	}
	s.logger.Info("pawn promoted", zap.Stringer("color", color), zap.String("kind", string(kind)))
	return kind
}

// AnnounceGameOver queues the result so it goes out after the state that
// shows the mating move.
func (s *Session) AnnounceGameOver(winner model.Color) {
	s.logger.Info("checkmate", zap.Stringer("winner", winner))
	s.pendingWinner = &winner
}

// Click applies one square click and returns the resulting state. Broadcasts
// happen under mu so observers see states in the order they were produced.
func (s *Session) Click(playerID string, sq model.Square, promotion model.PieceKind) (model.GameState, model.ClickResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pendingPromotion = promotion
	result := s.game.OnSquareClicked(sq)
	s.pendingPromotion = ""
	state := s.game.Snapshot()

	s.logger.Debug("square clicked",
		zap.String("player_id", playerID),
		zap.Stringer("square", sq),
		zap.Stringer("result", result),
	)
	if result != model.ClickIgnored {
		s.broadcastState(state)
	}
	if s.pendingWinner != nil {
		s.broadcastGameOver(*s.pendingWinner)
		s.pendingWinner = nil
	}
	return state, result
}

// Reset restarts the game from the standard position.
func (s *Session) Reset(playerID string) model.GameState {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.game.Reset()
	state := s.game.Snapshot()
	s.logger.Info("game reset", zap.String("player_id", playerID))
	s.broadcastState(state)
	return state
}

func (s *Session) State() model.GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Snapshot()
}

// RegisterObserver adds a connection and sends it the current state. A
// second connection for the same player is closed and ErrDuplicateConnection
// is returned; the existing connection stays registered.
func (s *Session) RegisterObserver(playerID string, obs Observer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.connections.mu.Lock()
	defer s.connections.mu.Unlock()
	if _, exists := s.connections.observers[playerID]; exists {
		s.logger.Warn("duplicate connection rejected", zap.String("player_id", playerID))
		obs.Close()
		return ErrDuplicateConnection
	}

	msg, err := ws.NewMessage(ws.MessageTypeGameState, s.game.Snapshot())
	if err != nil {
		return err
	}
	if err := obs.WriteJSON(msg); err != nil {
		return err
	}
	s.connections.observers[playerID] = obs
	s.logger.Info("observer registered", zap.String("player_id", playerID))
	return nil
}

// UnregisterObserver removes obs if it is still the player's registered
// connection.
func (s *Session) UnregisterObserver(playerID string, obs Observer) {
	s.connections.mu.Lock()
	defer s.connections.mu.Unlock()
	if current, exists := s.connections.observers[playerID]; exists && current == obs {
		delete(s.connections.observers, playerID)
		s.logger.Info("observer unregistered", zap.String("player_id", playerID))
	}
}

func (s *Session) broadcastState(state model.GameState) {
	msg, err := ws.NewMessage(ws.MessageTypeGameState, state)
	if err != nil {
		s.logger.Error("failed to marshal state", zap.Error(err))
		return
	}
	s.broadcast(msg)
}

func (s *Session) broadcastGameOver(winner model.Color) {
	msg, err := ws.NewMessage(ws.MessageTypeGameOver, ws.GameOverPayload{Winner: winner})
	if err != nil {
		s.logger.Error("failed to marshal game over", zap.Error(err))
		return
	}
	s.broadcast(msg)
}

// broadcast writes msg to every observer, dropping the ones that fail.
// Writes are serialised under the write lock since connections do not
// support concurrent writers.
func (s *Session) broadcast(msg ws.Message) {
	s.connections.mu.Lock()
	defer s.connections.mu.Unlock()
	for playerID, obs := range s.connections.observers {
		if err := obs.WriteJSON(msg); err != nil {
			s.logger.Warn("failed to send message, dropping observer",
				zap.String("player_id", playerID),
				zap.String("type", string(msg.Type)),
				zap.Error(err),
			)
			delete(s.connections.observers, playerID)
		}
	}
}

// Notify writes msg to a single observer under the same lock as broadcasts.
func (s *Session) Notify(playerID string, msg ws.Message) error {
	s.connections.mu.Lock()
	defer s.connections.mu.Unlock()
	obs, ok := s.connections.observers[playerID]
	if !ok {
		return nil
	}
	return obs.WriteJSON(msg)
}
