package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"

	"realnest/internal/database"
	"realnest/internal/handlers"
	"realnest/internal/inquiry"
	"realnest/internal/property"
	"realnest/internal/routes"
	"realnest/internal/services"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, using environment variables")
	}

	// Connect to database
	db, err := database.Connect()
	if err != nil {
		log.Fatal("❌ Failed to connect to database:", err)
	}
	defer database.Close(db)

	// Run migrations
	if err := database.Migrate(db); err != nil {
		log.Fatal("❌ Failed to migrate database:", err)
	}
	log.Println("✅ Database connected and migrated successfully")

	// Cloudinary is optional: listings without images still work without it.
	uploads, err := services.NewCloudinaryService()
	if err != nil {
		log.Printf("⚠️  Cloudinary not configured, image uploads disabled: %v", err)
		uploads = nil
	} else {
		log.Println("✅ Cloudinary service initialized successfully")
	}

	// Wire the inquiry subsystem: store and property resolver are built once
	// and injected into the lifecycle service.
	inquiryStore := inquiry.NewStore(db)
	propertyResolver := property.NewResolver(db)
	inquiryService := inquiry.NewService(inquiryStore, propertyResolver)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:   "RealNest API v1.0",
		BodyLimit: 10 * 1024 * 1024,
	})

	// Middleware
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency})\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))

	// Health check routes
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to RealNest API",
			"status":  "running",
			"version": "1.0",
		})
	})

	app.Get("/api/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "RealNest",
		})
	})

	// Setup application routes
	routes.SetupUserRoutes(app, handlers.NewUserHandler(db))
	routes.SetupFlatRoutes(app, handlers.NewFlatHandler(db, uploads))
	routes.SetupShopRoutes(app, handlers.NewShopHandler(db, uploads))
	routes.SetupBunglowRoutes(app, handlers.NewBunglowHandler(db, uploads))
	routes.SetupSellerRoutes(app, handlers.NewSellerHandler(db))
	routes.SetupInquiryRoutes(app, handlers.NewInquiryHandler(inquiryService))

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("🚀 RealNest server starting on http://localhost:%s", port)
	log.Fatal(app.Listen(":" + port))
}
