// Package main is the entry point for minesweeper.
package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/leonelquinteros/gotext"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"github.com/samdwyer/minesweeper/internal/console"
	"github.com/samdwyer/minesweeper/internal/game"
	"github.com/samdwyer/minesweeper/internal/telemetry"
	"github.com/samdwyer/minesweeper/internal/theme"
)

var log = logrus.New()

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.WithError(err).Debug(".env file not loaded")
	}

	opts, err := parseOptions(os.Args[1:], os.Getenv)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	interactive := !opts.plain && term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
	closeLog := setupLogging(opts, interactive)
	defer closeLog()

	if opts.localeDir != "" {
		gotext.Configure(opts.localeDir, opts.lang, "minesweeper")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	th, err := theme.MustLoadRegistry().Get(opts.game.Theme)
	if err != nil {
		log.Fatalf("Failed to load theme: %v", err)
	}

	if setupOTelEnv() {
		shutdown, err := telemetry.Setup(ctx, telemetry.BoardInfo{
			Width:  opts.game.Board.Width,
			Height: opts.game.Board.Height,
			Mines:  opts.game.Board.Mines,
			Seeded: opts.game.Seed != 0,
			Theme:  th.ID,
		})
		if err != nil {
			log.WithError(err).Warn("telemetry setup failed, running without tracing")
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					log.WithError(err).Error("error shutting down telemetry")
				}
			}()
		}
	}

	session, err := game.NewSession(ctx, opts.game, log)
	if err != nil {
		log.Fatalf("Failed to start game: %v", err)
	}

	if interactive {
		g, err := game.New(session, th)
		if err != nil {
			log.Fatalf("Failed to initialize screen: %v", err)
		}
		if err := g.Run(ctx); err != nil && ctx.Err() == nil {
			log.Fatalf("Game error: %v", err)
		}
		return
	}

	useColor := term.IsTerminal(int(os.Stdout.Fd())) && color.SupportColor()
	c := console.New(session, th, os.Stdin, os.Stdout, useColor, log)
	if err := c.Run(ctx); err != nil && ctx.Err() == nil {
		log.Fatalf("Console error: %v", err)
	}
}

// setupLogging applies the configured level and output. The interactive
// screen owns the terminal, so without a log file its logs are discarded.
func setupLogging(opts options, interactive bool) func() {
	level, err := logrus.ParseLevel(opts.logLevel)
	if err != nil {
		log.WithField("level", opts.logLevel).Warn("unknown log level, using info")
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	switch {
	case opts.logFile != "":
		f, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		log.SetOutput(f)
		return func() { f.Close() }
	case interactive:
		log.SetOutput(io.Discard)
	default:
		log.SetOutput(os.Stderr)
	}
	return func() {}
}
