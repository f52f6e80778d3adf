// Command fakebackend serves the chat API from memory so the client can be
// run without the real backend.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-chat-assistant/internal/config"
	"github.com/MKhiriev/go-chat-assistant/internal/fakebackend"
	"github.com/MKhiriev/go-chat-assistant/internal/logger"
	"github.com/MKhiriev/go-chat-assistant/internal/server"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("chat-fake-backend")

	cfg, err := config.GetFakeBackendConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	opts := make([]fakebackend.Option, 0, len(cfg.Users))
	for username, password := range cfg.Users {
		opts = append(opts, fakebackend.WithUser(username, password))
	}
	backend := fakebackend.New(log, opts...)

	srv, err := server.NewServer(backend.Handler(), *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("server run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
