package handlers

import (
	"github.com/anjiri1684/exam_portal/models"
	"github.com/anjiri1684/exam_portal/services"
	"github.com/gofiber/fiber/v2"
)

type SubmitExamRequest struct {
	ExamID    string           `json:"examId" validate:"required"`
	UserID    string           `json:"userId" validate:"required"`
	Answers   models.AnswerMap `json:"answers"`
	TimeSpent int              `json:"timeSpent" validate:"gte=0"`
}

type ExamHandler struct {
	exams  *services.ExamService
	grader *services.GradingService
}

func NewExamHandler(exams *services.ExamService, grader *services.GradingService) *ExamHandler {
	return &ExamHandler{exams: exams, grader: grader}
}

func (h *ExamHandler) ListExams(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"exams": h.exams.ListExams()})
}

func (h *ExamHandler) GetExam(c *fiber.Ctx) error {
	exam, err := h.exams.GetExam(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"exam": exam})
}

func (h *ExamHandler) SubmitExam(c *fiber.Ctx) error {
	var req SubmitExamRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	result, err := h.grader.Submit(services.SubmitInput{
		ExamID:    req.ExamID,
		UserID:    req.UserID,
		Answers:   req.Answers,
		TimeSpent: req.TimeSpent,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"result": result})
}
