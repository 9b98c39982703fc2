package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/san-kum/lifesim/internal/config"
	"github.com/san-kum/lifesim/internal/life"
)

func TestWatchRunDrawsEachGenerationOnce(t *testing.T) {
	field, err := life.New(3, 3)
	if err != nil {
		t.Fatal(err)
	}
	field.ToggleCell(1, 0)
	field.ToggleCell(1, 1)
	field.ToggleCell(1, 2)

	cfg := config.DefaultConfig()
	cfg.TicksPerSecond = config.MaxTicksPerSecond
	cfg.Generations = 3

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var out bytes.Buffer
	logger := log.New(&bytes.Buffer{})
	if err := watchRun(ctx, &out, field, cfg, "blinker", logger); err != nil {
		t.Fatalf("watch failed: %v", err)
	}

	got := out.String()
	if n := strings.Count(got, "gen="); n != 3 {
		t.Errorf("expected 3 frames, got %d", n)
	}
	if n := strings.Count(got, "gen=3 "); n != 1 {
		t.Errorf("expected the last generation drawn once, got %d", n)
	}
	if strings.Contains(got, "gen=4 ") {
		t.Error("expected no frame past the limit")
	}
}
