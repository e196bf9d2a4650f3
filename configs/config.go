package config

import (
	"log"
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
)

var loadEnv sync.Once

type Settings struct {
	Port                 string
	AppName              string
	CORSAllowOrigins     string
	LogTimeZone          string
	ResultReportSchedule string
	FeedBuffer           int
}

func Config(key string) string {
	loadEnv.Do(func() {
		if err := godotenv.Load(".env"); err != nil {
			log.Println("Warning: .env file not found, reading from system environment variables")
		}
	})

	return os.Getenv(key)
}

func ConfigOr(key, fallback string) string {
	if v := Config(key); v != "" {
		return v
	}
	return fallback
}

func Load() Settings {
	feedBuffer, err := strconv.Atoi(ConfigOr("FEED_BUFFER", "64"))
	if err != nil || feedBuffer <= 0 {
		log.Printf("Warning: invalid FEED_BUFFER, using 64")
		feedBuffer = 64
	}

	return Settings{
		Port:                 ConfigOr("PORT", "8080"),
		AppName:              ConfigOr("APP_NAME", "Exam Portal"),
		CORSAllowOrigins:     ConfigOr("CORS_ALLOW_ORIGINS", "*"),
		LogTimeZone:          ConfigOr("LOG_TIMEZONE", "UTC"),
		ResultReportSchedule: ConfigOr("RESULT_REPORT_SCHEDULE", "*/5 * * * *"),
		FeedBuffer:           feedBuffer,
	}
}
