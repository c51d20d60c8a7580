package middleware

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PlayerIDKey is the fiber.Locals key holding the caller's player id.
const PlayerIDKey = "playerID"

// EnsurePlayerID requires every request to identify its player through the
// X-Player-ID header or the playerId query parameter.
func EnsurePlayerID(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Check if playerID is already set
		if c.Locals(PlayerIDKey) != nil {
			return c.Next()
		}

		// Check header first
		playerID := c.Get("X-Player-ID")
		if playerID == "" {
			playerID = c.Query("playerId")
		}

		if playerID == "" {
			logger.Debug("request without player id", zap.String("path", c.Path()))
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Player ID is required. Please ensure client is properly initialized.",
			})
		}

		// Store in context for this request
		c.Locals(PlayerIDKey, playerID)
		return c.Next()
	}
}

// PlayerID returns the id stored by EnsurePlayerID.
func PlayerID(c *fiber.Ctx) string {
	id, _ := c.Locals(PlayerIDKey).(string)
	return id
}
