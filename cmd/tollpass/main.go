package main

import (
	"context"
	"flag"
	"log"

	"github.com/quadgate/tollpass/internal/cli"
	"github.com/quadgate/tollpass/internal/pkg/config"
	"github.com/quadgate/tollpass/internal/pkg/logger"
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

	app, err := cli.NewApp(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize client: %v", err)
	}

	app.Run(context.Background())
}
