package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/openhire/jobportal/pkg/errx"
	"github.com/openhire/jobportal/pkg/logx"
	"github.com/openhire/jobportal/portal/application/applicationapi"
	"github.com/openhire/jobportal/portal/catalog/catalogapi"
	"github.com/openhire/jobportal/portal/company/companyapi"
	"github.com/openhire/jobportal/portal/cv/cvapi"
	"github.com/openhire/jobportal/portal/dashboard/dashboardapi"
	"github.com/openhire/jobportal/portal/favorite/favoriteapi"
	"github.com/openhire/jobportal/portal/job/jobapi"
	"github.com/openhire/jobportal/portal/user/userapi"
)

func main() {
	// 1. Environment and Logger
	if err := godotenv.Load(); err != nil {
		logx.Debugf("No .env file loaded: %v", err)
	}
	logx.SetLevel(logx.LevelInfo)
	logx.Info("Starting Job Portal API Server...")

	// 2. Initialize Dependency Container
	container := NewContainer()
	defer container.DB.Close()
	defer container.Redis.Close()

	// 3. Seed reference data and the default admin
	if err := container.Seeder.Run(context.Background()); err != nil {
		logx.Fatalf("Seeding failed: %v", err)
	}

	// 4. Create Fiber App with Config
	app := fiber.New(fiber.Config{
		AppName:               "Job Portal API",
		DisableStartupMessage: true,
		ErrorHandler:          globalErrorHandler,
	})

	// 5. Global Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*", // Configure for production
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE, PATCH, HEAD",
	}))
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	// 6. Health Check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
			"db":     container.DB.Ping() == nil,
			"redis":  container.Redis.Ping(c.Context()).Err() == nil,
		})
	})

	// 7. Register Routes
	userapi.RegisterRoutes(app, container.UserHandlers, container.AuthMiddleware)
	catalogapi.RegisterRoutes(app, container.CatalogHandlers, container.AuthMiddleware)
	companyapi.RegisterRoutes(app, container.CompanyHandlers, container.AuthMiddleware)
	jobapi.RegisterRoutes(app, container.JobHandlers, container.AuthMiddleware)
	applicationapi.RegisterRoutes(app, container.ApplicationHandlers, container.AuthMiddleware)
	favoriteapi.RegisterRoutes(app, container.FavoriteHandlers, container.AuthMiddleware)
	cvapi.RegisterRoutes(app, container.CVHandlers, container.AuthMiddleware)
	dashboardapi.RegisterRoutes(app, container.DashboardHandlers, container.AuthMiddleware)

	// 8. Start Server with Graceful Shutdown
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	go func() {
		logx.Infof("Server listening on port %s", port)
		if err := app.Listen(":" + port); err != nil {
			logx.Fatalf("Server error: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c
	logx.Info("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		logx.Errorf("Server forced to shutdown: %v", err)
	}

	logx.Info("Server exited")
}

// globalErrorHandler converts internal errors to standard HTTP responses
func globalErrorHandler(c *fiber.Ctx, err error) error {
	// If it's a Fiber error (e.g., 404 handler not found)
	if e, ok := err.(*fiber.Error); ok {
		return c.Status(e.Code).JSON(fiber.Map{
			"error": e.Message,
			"code":  e.Code,
		})
	}

	// If it's our custom errx.Error
	if e, ok := err.(*errx.Error); ok {
		return c.Status(e.HTTPStatus).JSON(e.ToHTTPResponse())
	}

	// Default unknown error
	logx.Errorf("Internal Server Error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":   "Internal Server Error",
		"type":    "INTERNAL",
		"code":    "INTERNAL_ERROR",
		"message": "An unexpected error occurred",
	})
}
