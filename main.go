package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"

	"skripsiku_backend/internals/configs"
	database "skripsiku_backend/internals/databases"
	middlewares "skripsiku_backend/internals/middlewares"
	routes "skripsiku_backend/internals/route"
	seeds "skripsiku_backend/internals/seeds"
)

func main() {
	configs.LoadEnv()

	app := fiber.New(fiber.Config{
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
	})

	middlewares.SetupMiddlewares(app)

	// 🔌 DB connect + pool + migrasi skema
	database.ConnectDB()
	database.TunePool()
	database.Migrate()

	// Data demo untuk development
	if os.Getenv("RUN_SEEDS") == "true" {
		seeds.RunAllSeeds(database.DB)
	}

	// ✅ Routes
	routes.SetupRoutes(app, database.DB)

	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	// Start server non-blocking
	go func() {
		log.Printf("✅ Listening on :%s", port)
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown + tutup pool DB
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	if sqlDB, err := database.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
