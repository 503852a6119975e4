package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/handiism/song-review-hub/internal/catalog"
	"github.com/handiism/song-review-hub/internal/config"
	apihttp "github.com/handiism/song-review-hub/internal/http"
	ioutils "github.com/handiism/song-review-hub/internal/io"
	"github.com/handiism/song-review-hub/internal/tui"
	"github.com/handiism/song-review-hub/internal/view"
)

func main() {
	var (
		configFlag = flag.String("config", "", "Path to config file (.json or .yaml)")
		apiFlag    = flag.String("api", "", "Backend base URL (overrides config)")
		userFlag   = flag.Int("user", 0, "Current user id (overrides config)")
		logFlag    = flag.String("log", "", "Log file (default: tui.log next to the config file)")
	)

	flag.Parse()

	path := *configFlag
	if path == "" {
		path = config.DefaultPath()
	}
	settings, err := config.Load(path)
	if err == nil {
		err = settings.ApplyEnv()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *apiFlag != "" {
		settings.APIBaseURL = *apiFlag
	}
	if *userFlag != 0 {
		settings.CurrentUserID = *userFlag
	}
	if err := settings.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		os.Exit(1)
	}

	// The terminal belongs to the UI, so logs go to a file.
	logPath := *logFlag
	if logPath == "" {
		logPath = filepath.Join(filepath.Dir(path), "tui.log")
	}
	if err := ioutils.EnsureDir(filepath.Dir(logPath)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	logger := settings.NewLoggerTo("reviewhub-tui", logFile)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	client := apihttp.NewClient(settings.APIBaseURL,
		apihttp.WithTimeout(settings.RequestTimeout()),
		apihttp.WithLogger(logger.Named("api")),
	)
	manager := view.NewManager(catalog.New(client), settings.Session(), view.WithLogger(logger.Named("view")))

	if err := tui.Run(ctx, manager); err != nil {
		logger.Error("tui stopped", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
