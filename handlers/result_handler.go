package handlers

import (
	"github.com/anjiri1684/exam_portal/services"
	"github.com/gofiber/fiber/v2"
)

type ResultHandler struct {
	results *services.ResultService
}

func NewResultHandler(results *services.ResultService) *ResultHandler {
	return &ResultHandler{results: results}
}

// ListResults handles GET /api/results?userId=...
func (h *ResultHandler) ListResults(c *fiber.Ctx) error {
	results, err := h.results.ListResults(c.Query("userId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"results": results})
}

func (h *ResultHandler) GetResult(c *fiber.Ctx) error {
	result, err := h.results.GetResult(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"result": result})
}
