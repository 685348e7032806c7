package main

import (
	"context"
	"flag"
	"log"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/quadgate/tollpass/internal/pkg/config"
	"github.com/quadgate/tollpass/internal/pkg/database"
	"github.com/quadgate/tollpass/internal/pkg/health"
	"github.com/quadgate/tollpass/internal/pkg/logger"
	"github.com/quadgate/tollpass/internal/pkg/server"
	"github.com/quadgate/tollpass/services/sim/handler"
	"github.com/quadgate/tollpass/services/sim/repository"
	"github.com/quadgate/tollpass/services/sim/usecase"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg, err := config.InitConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.NewAppLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Close()
	logger.SetGlobalLogger(appLogger)

	db, err := database.Open(cfg.Server.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	simRepo, err := repository.NewSimRepository(db)
	if err != nil {
		log.Fatalf("Failed to initialize repository: %v", err)
	}
	if cfg.Server.Seed {
		if err := simRepo.Seed(context.Background()); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	}

	simUC := usecase.NewSimUC(cfg, simRepo)
	simHandler := handler.NewSimHandler(simUC)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())
	simHandler.RegisterRoutes(e)
	health.RegisterHealthEndpoints(e, cfg.App.Name, cfg.App.Version, db)

	srv := server.NewGracefulServer(e, cfg.Server)
	if err := srv.Start(); err != nil {
		logger.Error("shutdown error", logger.Fields{"error": err.Error()})
	}
}
