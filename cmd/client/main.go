package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-chat-assistant/internal/adapter"
	"github.com/MKhiriev/go-chat-assistant/internal/client"
	"github.com/MKhiriev/go-chat-assistant/internal/config"
	"github.com/MKhiriev/go-chat-assistant/internal/logger"
	"github.com/MKhiriev/go-chat-assistant/internal/service"
	"github.com/MKhiriev/go-chat-assistant/internal/store"
	"github.com/MKhiriev/go-chat-assistant/internal/tui"
	"github.com/MKhiriev/go-chat-assistant/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(2)
	}

	// the terminal belongs to the UI, so logs go to a file
	log := logger.NewClientLogger("chat-client", cfg.Log.FilePath, cfg.Log.Level)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	chatAdapter, err := adapter.NewHTTPChatAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create chat adapter")
	}

	localStorage, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services := service.NewClientServices(chatAdapter, localStorage, cfg.Adapter.BaseURL, log)

	ui, err := tui.New(services, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(ui, cfg.Workers, log, localStorage.Close)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
		os.Exit(1)
	}
}
