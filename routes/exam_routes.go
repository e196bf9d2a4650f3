package routes

import (
	"github.com/anjiri1684/exam_portal/handlers"
	"github.com/gofiber/fiber/v2"
)

func ExamRoutes(app *fiber.App, h *handlers.ExamHandler) {
	api := app.Group("/api")

	exams := api.Group("/exams")
	exams.Get("", h.ListExams)
	exams.Post("/submit", h.SubmitExam)
	exams.Get("/:id", h.GetExam)
}
