package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/handiism/song-review-hub/internal/catalog"
	"github.com/handiism/song-review-hub/internal/config"
	apihttp "github.com/handiism/song-review-hub/internal/http"
	"github.com/handiism/song-review-hub/internal/view"
	"github.com/handiism/song-review-hub/internal/web"
)

func main() {
	// Command line flags
	var (
		configFlag   = flag.String("config", "", "Path to config file (.json or .yaml)")
		apiFlag      = flag.String("api", "", "Backend base URL (overrides config)")
		listenFlag   = flag.String("listen", "", "Listen address (overrides config)")
		userFlag     = flag.Int("user", 0, "Current user id (overrides config)")
		logLevelFlag = flag.String("log-level", "", "Log level: trace, debug, info, warn, error")
	)

	flag.Parse()

	// Load config
	path := *configFlag
	if path == "" {
		path = config.DefaultPath()
	}
	settings, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if err := settings.ApplyEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading environment: %v\n", err)
		os.Exit(1)
	}

	// Apply flags
	if *apiFlag != "" {
		settings.APIBaseURL = *apiFlag
	}
	if *listenFlag != "" {
		settings.ListenAddr = *listenFlag
	}
	if *userFlag != 0 {
		settings.CurrentUserID = *userFlag
	}
	if *logLevelFlag != "" {
		settings.LogLevel = *logLevelFlag
	}
	if err := settings.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		os.Exit(1)
	}

	logger := settings.NewLogger("reviewhub")

	// Handle interrupts
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := apihttp.NewClient(settings.APIBaseURL,
		apihttp.WithTimeout(settings.RequestTimeout()),
		apihttp.WithLogger(logger.Named("api")),
	)
	api := catalog.New(client)
	manager := view.NewManager(api, settings.Session(), view.WithLogger(logger.Named("view")))

	server := web.New(manager, api,
		web.WithLogger(logger.Named("web")),
		web.WithCoverMaxSize(settings.CoverMaxSize),
	)

	logger.Info("starting", "api", settings.APIBaseURL, "user", settings.CurrentUserID)
	if err := server.Run(ctx, settings.ListenAddr); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
	logger.Info("shut down")
}
