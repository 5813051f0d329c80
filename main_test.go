package main

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sheikhrachel/gol-core/model"
	"github.com/sheikhrachel/gol-core/utils"
)

func TestLoadConfigLayers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"width": 40, "height": 20}`), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("GOL_HEIGHT", "25")

	config, err := loadConfig([]string{"-c", path, "-x", "12", "-t", "250ms"})
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if config.Width != 12 {
		t.Fatalf("flag should win for width, got %d", config.Width)
	}
	if config.Height != 25 {
		t.Fatalf("env should win over file for height, got %d", config.Height)
	}
	if config.TickPeriod != 250*time.Millisecond {
		t.Fatalf("expected 250ms tick, got %v", config.TickPeriod)
	}
}

func TestLoadConfigMissingFileFallsBack(t *testing.T) {
	config, err := loadConfig([]string{"-c", filepath.Join(t.TempDir(), "absent.json")})
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if config.Width != utils.DefaultConfig().Width {
		t.Fatalf("expected default width, got %d", config.Width)
	}
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	if _, err := loadConfig([]string{"-c", filepath.Join(t.TempDir(), "absent.json"), "-d", "2"}); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestCheckStopConditions(t *testing.T) {
	config := utils.DefaultConfig()
	config.Width, config.Height = 5, 5
	config.MaxGenerations = 2

	sim, err := model.NewSimulation(config)
	if err != nil {
		t.Fatalf("NewSimulation: %v", err)
	}
	if done, reason := checkStopConditions(sim, config); !done || reason != "extinction" {
		t.Fatalf("expected extinction, got %v %q", done, reason)
	}

	sim.Population().AddBlock(1, 1)
	if done, _ := checkStopConditions(sim, config); done {
		t.Fatal("fresh block should keep running")
	}
	for i := 0; i < 2; i++ {
		if _, err := sim.StepOnce(); err != nil {
			t.Fatalf("step: %v", err)
		}
	}
	if done, _ := checkStopConditions(sim, config); !done {
		t.Fatal("expected generation limit to stop the run")
	}
}

func TestRunLoopStopsOnCancel(t *testing.T) {
	config := utils.DefaultConfig()
	config.Width, config.Height = 4, 4
	config.FrameRate = time.Millisecond

	sim, err := model.NewSimulation(config)
	if err != nil {
		t.Fatalf("NewSimulation: %v", err)
	}
	sim.Population().AddBlock(1, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	renderer := model.NewTerminalRenderer(nil)
	renderer.Out = io.Discard
	if err := runLoop(ctx, sim, renderer, utils.NewStats()); err != nil {
		t.Fatalf("runLoop: %v", err)
	}
}
