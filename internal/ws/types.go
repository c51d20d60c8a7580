package ws

import (
	"encoding/json"

	"github.com/benbeisheim/hotseat-chess/internal/model"
)

// MessageType represents the different kinds of messages our system can handle
type MessageType string

const (
	MessageTypeClick     MessageType = "click"
	MessageTypeReset     MessageType = "reset"
	MessageTypeGameState MessageType = "gameState"
	MessageTypeGameOver  MessageType = "gameOver"
	MessageTypeError     MessageType = "error"
)

// Message represents a WebSocket message in our system
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// ClickPayload is a square click reported by a board UI. Promotion is the
// piece to promote to if the click completes a pawn's final step; it
// defaults to a queen.
type ClickPayload struct {
	File      int             `json:"file"`
	Rank      int             `json:"rank"`
	Promotion model.PieceKind `json:"promotion,omitempty"`
}

func (p ClickPayload) Square() model.Square {
	return model.Square{File: p.File, Rank: p.Rank}
}

type GameOverPayload struct {
	Winner model.Color `json:"winner"`
}

type ErrorPayload struct {
	Error string `json:"error"`
}

// NewMessage marshals payload into a message of the given type.
func NewMessage(t MessageType, payload any) (Message, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Message{}, err
	}
	return Message{Type: t, Payload: raw}, nil
}
