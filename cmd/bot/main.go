package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"filebot/internal/bot"
	"filebot/internal/config"
	"filebot/internal/handler"
	"filebot/internal/middleware"
	"filebot/internal/repository"
	"filebot/internal/service"
	"filebot/internal/telegram"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := config.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	redis, err := config.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redis.Close()

	if _, err := config.NewMinIOClient(cfg); err != nil {
		log.Printf("Warning: Failed to connect to MinIO: %v (welcome photo will not work)", err)
	}

	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		log.Fatalf("Failed to connect to Telegram: %v", err)
	}
	log.Printf("Authorized as @%s", api.Self.UserName)

	client := telegram.NewClient(api)
	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, redis, client, client, cfg)
	handlers := handler.NewHandlers(services, repos)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go bot.New(api, client, services, cfg).Run(ctx)

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/health"
		},
	}))

	setupRoutes(app, handlers, services)

	go func() {
		<-ctx.Done()
		_ = app.Shutdown()
	}()

	log.Printf("Server starting on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRoutes(app *fiber.App, h *handler.Handlers, services *service.Services) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	v1 := app.Group("/api/v1")

	v1.Post("/auth/token", h.Auth.Token)

	files := v1.Group("/files", middleware.AuthRequired(services.Auth))
	files.Get("/search", h.File.Search)
	files.Get("/stats", h.File.Stats)
}
