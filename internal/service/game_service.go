package service

import (
	"fmt"

	"github.com/benbeisheim/hotseat-chess/internal/model"
	"github.com/benbeisheim/hotseat-chess/internal/ws"
	"github.com/google/uuid"
)

type GameService struct {
	gameManager *GameManager
}

func NewGameService(gameManager *GameManager) *GameService {
	return &GameService{
		gameManager: gameManager,
	}
}

func (gs *GameService) CreateGame() (string, error) {
	gameID := uuid.New().String()

	if _, err := gs.gameManager.CreateGame(gameID); err != nil {
		return "", fmt.Errorf("failed to create game: %w", err)
	}

	return gameID, nil
}

func (gs *GameService) GetGameState(gameID string) (model.GameState, error) {
	session, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return model.GameState{}, err
	}
	return session.State(), nil
}

// HandleClick forwards a square click to the game's state machine.
func (gs *GameService) HandleClick(gameID, playerID string, sq model.Square, promotion model.PieceKind) (model.GameState, model.ClickResult, error) {
	session, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return model.GameState{}, model.ClickIgnored, err
	}
	state, result := session.Click(playerID, sq, promotion)
	return state, result, nil
}

func (gs *GameService) ResetGame(gameID, playerID string) (model.GameState, error) {
	session, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return model.GameState{}, err
	}
	return session.Reset(playerID), nil
}

func (gs *GameService) DeleteGame(gameID string) error {
	return gs.gameManager.DeleteGame(gameID)
}

func (gs *GameService) RegisterConnection(gameID, playerID string, obs Observer) error {
	session, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return err
	}
	return session.RegisterObserver(playerID, obs)
}

// UnregisterConnection removes obs from the game. Another connection since
// registered for the same player is left alone.
func (gs *GameService) UnregisterConnection(gameID, playerID string, obs Observer) {
	session, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return
	}
	session.UnregisterObserver(playerID, obs)
}

// SendError reports a failed request to one player's connection.
func (gs *GameService) SendError(gameID, playerID string, cause error) error {
	session, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return err
	}
	msg, err := ws.NewMessage(ws.MessageTypeError, ws.ErrorPayload{Error: cause.Error()})
	if err != nil {
		return err
	}
	return session.Notify(playerID, msg)
}
