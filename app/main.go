package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"employee/config"
	"employee/domain"
	"employee/middleware"
	"employee/services/employee/delivery"
	"employee/services/employee/repository"
	"employee/services/employee/usecase"
	"employee/web"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

var log *logrus.Logger

func main() {
	if err := config.LoadEnv(); err != nil {
		logrus.Warn("No .env file loaded, using process environment")
	}

	log = config.GetLogrusInstance()

	if err := startHTTP(); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}

func startHTTP() error {
	log.Info("Starting HTTP")
	app := fiber.New(config.GetFiberConfig())

	app.Use(recover.New())
	app.Use(middleware.NewRequestID())
	app.Use(middleware.RequestLogger(log))
	app.Use(cors.New(cors.Config{
		AllowOrigins: config.GetCORSAllowedOrigins(),
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, X-Request-ID",
	}))

	db, employeeRepo := bootStore()

	// repositories and usecases
	employeeUC := usecase.NewEmployeeUseCase(employeeRepo, config.GetStoreTimeout())

	// deliveries
	delivery.NewEmployeeDelivery(app, employeeUC)
	if err := delivery.NewWebDelivery(app, web.Assets()); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Infof("Starting HTTP server on %s", config.GetFiberListenAddress())
		return app.Listen(config.GetFiberListenAddress())
	})
	g.Go(func() error {
		<-gCtx.Done()
		log.Info("Shutting down the server...")
		if err := app.Shutdown(); err != nil {
			log.Errorf("Error during server shutdown: %v", err)
		}
		closeStore(db)
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	log.Info("Server shut down gracefully")
	return nil
}

// bootStore connects to the database. When that fails the API still starts
// and every request reports the connection error.
func bootStore() (*gorm.DB, domain.EmployeeRepo) {
	db, err := config.BootDB(log)
	if db == nil {
		log.Errorf("Error connecting to database: %v", err)
		return nil, repository.NewUnavailableEmployeeRepository(err)
	}
	if err != nil {
		log.Errorf("Error preparing employee table: %v", err)
	}

	return db, repository.NewEmployeeRepository(db)
}

func closeStore(db *gorm.DB) {
	if db == nil {
		return
	}

	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Errorf("Error closing database: %v", err)
	}
}
