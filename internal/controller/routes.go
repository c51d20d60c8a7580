package controller

import (
	"github.com/benbeisheim/hotseat-chess/internal/middleware"
	"github.com/benbeisheim/hotseat-chess/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"
	"go.uber.org/zap"
)

// NewApp builds the fiber application with every route wired to gameService.
func NewApp(gameService *service.GameService, allowedOrigins string, logger *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowHeaders:     "Origin, Content-Type, Accept, X-Player-ID",
		AllowMethods:     "GET, POST, DELETE, OPTIONS",
		AllowCredentials: allowedOrigins != "*",
	}))
	app.Use(middleware.RequestLogger(logger))

	gameController := NewGameController(gameService, logger)
	wsController := NewWebSocketController(gameService, logger)

	// Set up WebSocket routes
	app.Use("/ws/*", middleware.EnsurePlayerID(logger))
	app.Get("/ws/game/:gameId", middleware.WebSocketUpgrade(), websocket.New(wsController.HandleConnection, websocket.Config{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	}))

	// Set up REST routes
	api := app.Group("/api", middleware.EnsurePlayerID(logger))

	gameRoutes := api.Group("/game")
	gameRoutes.Post("/create", gameController.CreateGame)
	gameRoutes.Get("/:gameId", gameController.GetGameState)
	gameRoutes.Post("/:gameId/click", gameController.Click)
	gameRoutes.Post("/:gameId/reset", gameController.ResetGame)
	gameRoutes.Delete("/:gameId", gameController.DeleteGame)

	return app
}
