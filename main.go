package main

import (
	"log"

	"github.com/AlexMarkGIT/shareit/config"
	"github.com/AlexMarkGIT/shareit/internal/handler"
	"github.com/AlexMarkGIT/shareit/internal/middleware"
	"github.com/AlexMarkGIT/shareit/internal/repository"
	"github.com/AlexMarkGIT/shareit/internal/service"
	"github.com/AlexMarkGIT/shareit/internal/validation"
	"github.com/AlexMarkGIT/shareit/pkg/database"
	"github.com/AlexMarkGIT/shareit/pkg/rabbitmq"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg := config.Load()

	db := database.NewPostgresDB(cfg.DSN())

	// RabbitMQ is optional: without it the service runs, it just stops
	// emitting booking lifecycle events.
	var publisher *rabbitmq.Publisher
	if cfg.RabbitURL != "" {
		var err error
		publisher, err = rabbitmq.NewPublisher(cfg.RabbitURL)
		if err != nil {
			log.Fatalf("failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RABBITMQ_URL not set, booking events disabled")
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	itemRepo := repository.NewItemRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	requestRepo := repository.NewRequestRepository(db)

	// Services
	userSvc := service.NewUserService(userRepo)
	itemSvc := service.NewItemService(itemRepo, userRepo, bookingRepo, commentRepo, requestRepo)
	bookingSvc := service.NewBookingService(bookingRepo, itemRepo, userRepo, publisher)
	requestSvc := service.NewRequestService(requestRepo, userRepo, itemRepo)

	// Echo
	e := echo.New()
	e.Validator = validation.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Printf("%s %s %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(echoMw.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "shareit"})
	})

	handler.NewUserHandler(userSvc).RegisterRoutes(e)
	handler.NewItemHandler(itemSvc).RegisterRoutes(e)
	handler.NewBookingHandler(bookingSvc).RegisterRoutes(e)
	handler.NewRequestHandler(requestSvc).RegisterRoutes(e)

	log.Printf("ShareIt starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
