package main

import (
	"errors"
	"testing"

	"github.com/samdwyer/minesweeper/internal/minefield"
)

func envFrom(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestParseOptionsDefaults(t *testing.T) {
	opts, err := parseOptions(nil, envFrom(nil))
	if err != nil {
		t.Fatalf("parseOptions() error: %v", err)
	}
	if opts.game.Board != minefield.DefaultConfig() {
		t.Errorf("Board = %+v, want %+v", opts.game.Board, minefield.DefaultConfig())
	}
	if opts.game.Seed != 0 || opts.logLevel != "info" || opts.lang != "en_US" {
		t.Errorf("unexpected defaults: %+v", opts)
	}
}

func TestParseOptionsPrecedence(t *testing.T) {
	env := envFrom(map[string]string{
		"MINESWEEPER_WIDTH": "9",
		"MINESWEEPER_MINES": "10",
		"MINESWEEPER_SEED":  "42",
		"MINESWEEPER_THEME": "ascii",
	})
	opts, err := parseOptions([]string{"-mines", "12", "-plain"}, env)
	if err != nil {
		t.Fatalf("parseOptions() error: %v", err)
	}

	want := minefield.Config{Width: 9, Height: 16, Mines: 12}
	if opts.game.Board != want {
		t.Errorf("Board = %+v, want %+v", opts.game.Board, want)
	}
	if opts.game.Seed != 42 || opts.game.Theme != "ascii" || !opts.plain {
		t.Errorf("unexpected options: %+v", opts)
	}
}

func TestParseOptionsErrors(t *testing.T) {
	if _, err := parseOptions(nil, envFrom(map[string]string{"MINESWEEPER_HEIGHT": "tall"})); err == nil {
		t.Error("non-numeric height should fail")
	}
	if _, err := parseOptions([]string{"-width", "0"}, envFrom(nil)); !errors.Is(err, minefield.ErrInvalidDimensions) {
		t.Errorf("zero width error = %v, want ErrInvalidDimensions", err)
	}
	if _, err := parseOptions([]string{"-layout", "1;2"}, envFrom(nil)); err == nil {
		t.Error("malformed layout should fail")
	}
}

func TestParseLayout(t *testing.T) {
	got, err := parseLayout(" 0,0 ; 3, 4;")
	if err != nil {
		t.Fatalf("parseLayout() error: %v", err)
	}
	want := []minefield.Position{{X: 0, Y: 0}, {X: 3, Y: 4}}
	if len(got) != len(want) {
		t.Fatalf("parseLayout() = %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("parseLayout()[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}

	if _, err := parseLayout("a,b"); err == nil {
		t.Error("parseLayout(\"a,b\") should fail")
	}
}
