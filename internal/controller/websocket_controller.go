package controller

import (
	"encoding/json"
	"fmt"

	"github.com/benbeisheim/hotseat-chess/internal/middleware"
	"github.com/benbeisheim/hotseat-chess/internal/service"
	"github.com/benbeisheim/hotseat-chess/internal/ws"
	"github.com/gofiber/websocket/v2"
	"go.uber.org/zap"
)

type WebSocketController struct {
	gameService *service.GameService
	logger      *zap.Logger
}

func NewWebSocketController(gameService *service.GameService, logger *zap.Logger) *WebSocketController {
	return &WebSocketController{
		gameService: gameService,
		logger:      logger,
	}
}

// HandleConnection is called when a new WebSocket connection is established
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	gameID := c.Params("gameId")
	playerID, _ := c.Locals(middleware.PlayerIDKey).(string)
	logger := wsc.logger.With(zap.String("game_id", gameID), zap.String("player_id", playerID))

	// Register this connection with the game
	if err := wsc.gameService.RegisterConnection(gameID, playerID, c); err != nil {
		logger.Warn("failed to register connection", zap.Error(err))
		c.Close()
		return
	}
	defer wsc.gameService.UnregisterConnection(gameID, playerID, c)

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			logger.Debug("connection closed", zap.Error(err))
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg ws.Message
		if err := json.Unmarshal(message, &msg); err != nil {
			logger.Debug("unparseable message", zap.Error(err))
			continue
		}

		if err := wsc.handleMessage(gameID, playerID, msg); err != nil {
			logger.Info("message rejected", zap.String("type", string(msg.Type)), zap.Error(err))
			if sendErr := wsc.gameService.SendError(gameID, playerID, err); sendErr != nil {
				logger.Warn("failed to send error", zap.Error(sendErr))
			}
		}
	}
}

// Handle different types of incoming messages. State changes reach the
// client through the session broadcast, not as a direct reply.
func (wsc *WebSocketController) handleMessage(gameID, playerID string, msg ws.Message) error {
	switch msg.Type {
	case ws.MessageTypeClick:
		var click ws.ClickPayload
		if err := json.Unmarshal(msg.Payload, &click); err != nil {
			return fmt.Errorf("invalid click payload: %w", err)
		}
		_, _, err := wsc.gameService.HandleClick(gameID, playerID, click.Square(), click.Promotion)
		return err

	case ws.MessageTypeReset:
		_, err := wsc.gameService.ResetGame(gameID, playerID)
		return err

	default:
		return fmt.Errorf("unknown message type: %s", msg.Type)
	}
}
