package routes

import (
	"github.com/anjiri1684/exam_portal/handlers"
	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Auth   *handlers.AuthHandler
	Exam   *handlers.ExamHandler
	Result *handlers.ResultHandler
	Feed   *handlers.FeedHandler
}

func Register(app *fiber.App, h Handlers) {
	PublicRoutes(app)
	AuthRoutes(app, h.Auth)
	ExamRoutes(app, h.Exam)
	ResultRoutes(app, h.Result)
	if h.Feed != nil {
		FeedRoutes(app, h.Feed)
	}
}
