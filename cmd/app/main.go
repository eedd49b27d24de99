package main

import (
	"context"

	"github.com/rs/zerolog/log"

	"stayhub/config"
	"stayhub/di"
	"stayhub/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	app, err := di.InitializeApp()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize application")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go app.Consumer.Run(ctx)

	if err := app.Scheduler.Start(); err != nil {
		log.Fatal().Err(err).Msg("Failed to start booking expiry scheduler")
	}
	defer app.Scheduler.Stop()

	app.HTTP.Serve()
}
