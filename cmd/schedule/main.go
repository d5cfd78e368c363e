package main

import (
	"context"
	"log"
	"os"

	"github.com/Freeeeeet/schedule_cli/internal/app"
	"github.com/Freeeeeet/schedule_cli/internal/config"
	"github.com/Freeeeeet/schedule_cli/internal/controller"
)

func main() {

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)

	defer logger.Sync()

	root := controller.New(cfg, logger).RootCommand()

	// Ошибки с кодом выхода (конфликт, фатальные) обрабатывает сам cli
	if err := root.Run(context.Background(), os.Args); err != nil {
		os.Exit(1)
	}
}
