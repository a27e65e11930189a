package main

import (
	"context"
	"errors"
	"flag"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/orbitalgames/cosmic-standoff/internal/config"
	"github.com/orbitalgames/cosmic-standoff/internal/game/events"
	"github.com/orbitalgames/cosmic-standoff/internal/game/events/subscribers"
	"github.com/orbitalgames/cosmic-standoff/internal/match"
	"github.com/orbitalgames/cosmic-standoff/internal/score"
	"github.com/orbitalgames/cosmic-standoff/internal/ui"
)

func main() {
	// Command line flags
	configPath := flag.String("config", "", "Path to config file")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error) (empty to use config default)")
	logFile := flag.String("log-file", "", "Log file path (empty to use config default)")
	scorePath := flag.String("score-path", "", "Score file path (empty to use config default)")
	seed := flag.Int64("seed", 0, "Random seed (0 for a time-based seed)")
	flag.Parse()

	// Initialize configuration
	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}

	cfg := config.Get()

	// Use config defaults if not overridden by flags
	if *logLevel == "" {
		*logLevel = cfg.Log.Level
	}
	if *logFile == "" {
		*logFile = cfg.Log.File
	}
	if *scorePath == "" {
		*scorePath = cfg.Score.Path
	}

	setupLogging(*logLevel, cfg.Log.Format, *logFile)

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	log.Info().
		Int64("seed", *seed).
		Str("score_path", *scorePath).
		Msg("Starting Cosmic Standoff")

	bus := events.NewEventBus()
	bus.Subscribe(subscribers.NewLoggerSubscriber("event-logger", log.Logger, zerolog.DebugLevel))

	// Prompts and story text go to stdout; logs stay on their own stream.
	console := ui.NewConsole(os.Stdin, os.Stdout, cfg.UI.ShortPause, cfg.UI.LongPause)
	store := score.NewStore(*scorePath, log.Logger)
	controller := match.NewController(console, console, store, bus, rng, log.Logger)

	// Ctrl+C quits mid-prompt: keep the wins, say goodbye, leave cleanly.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		log.Info().Str("signal", sig.String()).Msg("Interrupted, flushing score")
		if err := controller.FlushScore(); err != nil {
			log.Warn().Err(err).Msg("Could not flush score on shutdown")
		}
		console.Farewell(controller.Totals())
		os.Exit(0)
	}()

	if err := controller.Run(context.Background()); err != nil && !errors.Is(err, context.Canceled) {
		log.Error().Err(err).Msg("Session ended with an error")
		os.Exit(1)
	}

	log.Info().Msg("Session finished")
}

func setupLogging(level, format, file string) {
	// Parse log level
	var logLevel zerolog.Level
	switch level {
	case "debug":
		logLevel = zerolog.DebugLevel
	case "info":
		logLevel = zerolog.InfoLevel
	case "warn":
		logLevel = zerolog.WarnLevel
	case "error":
		logLevel = zerolog.ErrorLevel
	default:
		logLevel = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(logLevel)

	// The terminal belongs to the game, so logs default to stderr and can
	// be redirected to a file.
	out := os.Stderr
	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Warn().Err(err).Str("path", file).Msg("Could not open log file, logging to stderr")
		} else {
			out = f
		}
	}

	if format == "json" {
		log.Logger = zerolog.New(out).With().Timestamp().Logger()
	} else {
		log.Logger = zerolog.New(zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
		}).With().Timestamp().Logger()
	}
}
