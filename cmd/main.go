package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"

	"jewelry-resale-server/internal/config"
	"jewelry-resale-server/internal/db"
	"jewelry-resale-server/internal/handlers"
	"jewelry-resale-server/internal/payment"
	"jewelry-resale-server/internal/store"
)

func main() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading it, using environment variables")
	}

	cfg := config.Load()

	database, err := db.Connect(cfg.MongoURI, cfg.DatabaseName)
	if err != nil {
		log.Fatalf("startup: %v", err)
	}

	app := fiber.New()
	app.Use(logger.New())
	app.Use(cors.New())

	h := handlers.New(store.New(database), payment.NewClient(cfg.StripeKey))
	h.Register(app)

	log.Fatal(app.Listen(":" + cfg.Port))
}
