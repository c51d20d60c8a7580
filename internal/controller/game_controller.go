package controller

import (
	"errors"

	"github.com/benbeisheim/hotseat-chess/internal/middleware"
	"github.com/benbeisheim/hotseat-chess/internal/service"
	"github.com/benbeisheim/hotseat-chess/internal/ws"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type GameController struct {
	gameService *service.GameService
	logger      *zap.Logger
}

func NewGameController(gameService *service.GameService, logger *zap.Logger) *GameController {
	return &GameController{gameService: gameService, logger: logger}
}

func (gc *GameController) CreateGame(c *fiber.Ctx) error {
	gameID, err := gc.gameService.CreateGame()
	if err != nil {
		gc.logger.Error("create game failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Game created",
		"game_id": gameID,
	})
}

func (gc *GameController) GetGameState(c *fiber.Ctx) error {
	gameState, err := gc.gameService.GetGameState(c.Params("gameId"))
	if err != nil {
		return gc.errorResponse(c, err)
	}
	return c.JSON(gameState)
}

// Click applies one square click. Rejected clicks are not errors: the
// response reports the result and the unchanged or deselected state.
func (gc *GameController) Click(c *fiber.Ctx) error {
	var payload ws.ClickPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid click payload",
		})
	}

	state, result, err := gc.gameService.HandleClick(c.Params("gameId"), middleware.PlayerID(c), payload.Square(), payload.Promotion)
	if err != nil {
		return gc.errorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"result": result.String(),
		"state":  state,
	})
}

func (gc *GameController) ResetGame(c *fiber.Ctx) error {
	state, err := gc.gameService.ResetGame(c.Params("gameId"), middleware.PlayerID(c))
	if err != nil {
		return gc.errorResponse(c, err)
	}
	return c.JSON(state)
}

func (gc *GameController) DeleteGame(c *fiber.Ctx) error {
	if err := gc.gameService.DeleteGame(c.Params("gameId")); err != nil {
		return gc.errorResponse(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (gc *GameController) errorResponse(c *fiber.Ctx, err error) error {
	if errors.Is(err, service.ErrGameNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	gc.logger.Error("request failed", zap.String("path", c.Path()), zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "Failed to process game request",
	})
}
