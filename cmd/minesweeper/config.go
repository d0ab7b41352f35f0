package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/samdwyer/minesweeper/internal/game"
	"github.com/samdwyer/minesweeper/internal/minefield"
	"github.com/samdwyer/minesweeper/internal/theme"
)

// options is everything main needs, after defaults, environment and flags.
type options struct {
	game      game.Config
	logLevel  string
	logFile   string
	localeDir string
	lang      string
	plain     bool // force the line-oriented console
}

// envInt reads an integer environment variable, returning def when unset.
func envInt(getenv func(string) string, key string, def int) (int, error) {
	v := getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func envString(getenv func(string) string, key, def string) string {
	if v := getenv(key); v != "" {
		return v
	}
	return def
}

// parseOptions builds options from the environment, then lets flags override.
func parseOptions(args []string, getenv func(string) string) (options, error) {
	defaults := minefield.DefaultConfig()

	width, err := envInt(getenv, "MINESWEEPER_WIDTH", defaults.Width)
	if err != nil {
		return options{}, err
	}
	height, err := envInt(getenv, "MINESWEEPER_HEIGHT", defaults.Height)
	if err != nil {
		return options{}, err
	}
	mines, err := envInt(getenv, "MINESWEEPER_MINES", defaults.Mines)
	if err != nil {
		return options{}, err
	}
	seed, err := envInt(getenv, "MINESWEEPER_SEED", 0)
	if err != nil {
		return options{}, err
	}

	opts := options{
		logLevel:  envString(getenv, "MINESWEEPER_LOG_LEVEL", "info"),
		logFile:   getenv("MINESWEEPER_LOG_FILE"),
		localeDir: getenv("MINESWEEPER_LOCALE_DIR"),
		lang:      envString(getenv, "MINESWEEPER_LANG", "en_US"),
	}
	themeID := envString(getenv, "MINESWEEPER_THEME", "")
	layout := getenv("MINESWEEPER_LAYOUT")

	fs := flag.NewFlagSet("minesweeper", flag.ContinueOnError)
	fs.IntVar(&width, "width", width, "grid columns")
	fs.IntVar(&height, "height", height, "grid rows")
	fs.IntVar(&mines, "mines", mines, "number of mines, clamped to the board size")
	fs.IntVar(&seed, "seed", seed, "random seed, 0 for a time-based seed")
	fs.StringVar(&themeID, "theme", themeID,
		"board theme ("+strings.Join(theme.MustLoadRegistry().IDs(), ", ")+")")
	fs.StringVar(&layout, "layout", layout, `fixed mine positions, e.g. "0,0;3,4"`)
	fs.StringVar(&opts.logLevel, "log-level", opts.logLevel, "log level")
	fs.StringVar(&opts.logFile, "log-file", opts.logFile, "write logs to this file")
	fs.BoolVar(&opts.plain, "plain", false, "use the line-oriented console even on a terminal")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	opts.game = game.Config{
		Board: minefield.Config{Width: width, Height: height, Mines: mines},
		Seed:  int64(seed),
		Theme: themeID,
	}
	if err := opts.game.Board.Validate(); err != nil {
		return options{}, err
	}

	if layout != "" {
		positions, err := parseLayout(layout)
		if err != nil {
			return options{}, err
		}
		opts.game.Layout = positions
	}

	return opts, nil
}

// parseLayout parses "x,y;x,y;..." into positions.
func parseLayout(s string) ([]minefield.Position, error) {
	var positions []minefield.Position
	for _, pair := range strings.Split(s, ";") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		xs, ys, ok := strings.Cut(pair, ",")
		if !ok {
			return nil, fmt.Errorf("layout entry %q: want x,y", pair)
		}
		x, err := strconv.Atoi(strings.TrimSpace(xs))
		if err != nil {
			return nil, fmt.Errorf("layout entry %q: %w", pair, err)
		}
		y, err := strconv.Atoi(strings.TrimSpace(ys))
		if err != nil {
			return nil, fmt.Errorf("layout entry %q: %w", pair, err)
		}
		positions = append(positions, minefield.Position{X: x, Y: y})
	}
	return positions, nil
}

// setupOTelEnv maps our Honeycomb variables onto the standard OTEL_* ones and
// reports whether an exporter is configured.
func setupOTelEnv() bool {
	apiKey := os.Getenv("HONEYCOMB_MINESWEEPER_API_KEY")
	if apiKey != "" {
		dataset := os.Getenv("HONEYCOMB_MINESWEEPER_DATASET")
		if dataset == "" {
			dataset = "minesweeper"
		}
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
	return os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != ""
}
