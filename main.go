package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/spf13/viper"
	"gorm.io/gorm"

	"mercado/internal/database"
	"mercado/internal/handlers"
	"mercado/internal/models"
	"mercado/internal/repositories"
	"mercado/internal/services"
	"mercado/pkg/rabbitmq"
)

func main() {
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("SQLITE_PATH", "mercado.db")
	viper.AutomaticEnv()

	// Open the process-wide store handle. It is closed explicitly on
	// shutdown, after the HTTP server stops.
	db, err := database.Open(database.Config{
		PostgresDSN: viper.GetString("DATABASE_URL"),
		SQLitePath:  viper.GetString("SQLITE_PATH"),
	})
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Order events are optional: without RABBITMQ_URL the API runs the
	// same, it just does not publish.
	var events *rabbitmq.Client
	if url := viper.GetString("RABBITMQ_URL"); url != "" {
		events, err = rabbitmq.NewClient(rabbitmq.Config{URL: url})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
	}

	app := newApp(db, events)

	appPort := viper.GetString("APP_PORT")
	log.Printf("Starting server on port %s", appPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	if events != nil {
		if err := events.Close(); err != nil {
			log.Printf("Error closing RabbitMQ client: %v", err)
		}
	}
	if err := database.Close(db); err != nil {
		log.Printf("Error closing database: %v", err)
	}
	log.Println("Server gracefully stopped")
}

// newApp wires stores, services and handlers into a Fiber app. events may
// be nil.
func newApp(db *gorm.DB, events *rabbitmq.Client) *fiber.App {
	clientStore := repositories.NewGormStore[models.Client](db)
	sellerStore := repositories.NewGormStore[models.Seller](db)
	productStore := repositories.NewGormStore[models.Product](db)
	orderStore := repositories.NewGormStore[models.Order](db)

	var publisher services.OrderEventPublisher
	if events != nil {
		publisher = events
	}

	clientsHandler := handlers.NewClientsHandler(services.NewCrud[models.Client](clientStore))
	sellersHandler := handlers.NewSellersHandler(services.NewCrud[models.Seller](sellerStore))
	productsHandler := handlers.NewProductsHandler(services.NewCrud[models.Product](productStore))
	ordersHandler := handlers.NewOrdersHandler(services.NewOrderService(orderStore, publisher))

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler,
	})

	app.Use(cors.New())
	app.Use(requestid.New(requestid.Config{
		Generator: func() string { return uuid.New().String() },
	}))
	app.Use(logger.New())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"ok":      "true",
			"message": "hello",
		})
	})

	clientsHandler.RegisterRoutes(app)
	sellersHandler.RegisterRoutes(app)
	productsHandler.RegisterRoutes(app)
	ordersHandler.RegisterRoutes(app)

	return app
}
