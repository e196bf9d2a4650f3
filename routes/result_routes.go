package routes

import (
	"github.com/anjiri1684/exam_portal/handlers"
	"github.com/anjiri1684/exam_portal/middleware"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

func ResultRoutes(app *fiber.App, h *handlers.ResultHandler) {
	api := app.Group("/api")

	results := api.Group("/results")
	results.Get("", h.ListResults)
	results.Get("/:id", h.GetResult)
}

func FeedRoutes(app *fiber.App, h *handlers.FeedHandler) {
	ws := app.Group("/ws", middleware.WebSocketUpgrade())
	ws.Get("/results", websocket.New(h.Stream))
}
