package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/anjiri1684/exam_portal/configs"
	"github.com/anjiri1684/exam_portal/database"
	"github.com/anjiri1684/exam_portal/handlers"
	"github.com/anjiri1684/exam_portal/jobs"
	"github.com/anjiri1684/exam_portal/middleware"
	"github.com/anjiri1684/exam_portal/routes"
	"github.com/anjiri1684/exam_portal/services"
	"github.com/anjiri1684/exam_portal/utils"
	"github.com/anjiri1684/exam_portal/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/robfig/cron/v3"
)

func main() {
	settings := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := database.NewFixtureStore()
	log.Printf("✅ Loaded %d exam(s) into the fixture store", len(store.Exams()))

	hub := websocket.NewHub(settings.FeedBuffer)
	go hub.Run(ctx)

	c := cron.New()
	if _, err := c.AddFunc(settings.ResultReportSchedule, jobs.ReportResultLog(store)); err != nil {
		log.Fatalf("🔥 Invalid RESULT_REPORT_SCHEDULE %q: %v", settings.ResultReportSchedule, err)
	}
	c.Start()
	defer c.Stop()
	log.Println("✅ Cron job for result log report scheduled successfully.")

	grader := services.NewGradingService(store, utils.NewResultIDGenerator(), services.WithPublisher(hub))

	app := fiber.New(fiber.Config{
		Prefork:       false,
		AppName:       settings.AppName,
		CaseSensitive: true,
		StrictRouting: true,
		ReadTimeout:   15 * time.Second,
		WriteTimeout:  15 * time.Second,
		IdleTimeout:   60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("[ERROR] %v | Path: %s | Method: %s", err, c.Path(), c.Method())
			return middleware.ErrorHandler(c, err)
		},
	})

	middleware.Setup(app, settings)

	routes.Register(app, routes.Handlers{
		Auth:   handlers.NewAuthHandler(services.NewAuthService(store)),
		Exam:   handlers.NewExamHandler(services.NewExamService(store), grader),
		Result: handlers.NewResultHandler(services.NewResultService(store)),
		Feed:   handlers.NewFeedHandler(hub),
	})

	go func() {
		<-ctx.Done()
		log.Println("Shutting down server...")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Printf("🔥 Server shutdown failed: %v", err)
		}
	}()

	log.Printf("✅ Server is running on port %s", settings.Port)
	if err := app.Listen(":" + settings.Port); err != nil {
		log.Fatalf("🔥 Server failed to start: %v", err)
	}
}
