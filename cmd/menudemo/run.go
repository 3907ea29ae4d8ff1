package main

import (
	"context"
	"errors"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/menunav/pkg/menunav"
	"github.com/BrandonKowalski/menunav/pkg/menunav/sdlhost"
)

func init() {
	// SDL must be driven from the main thread.
	runtime.LockOSThread()
}

func runDemo(cmd *cobra.Command, _ []string) error {
	cfg, reg, err := loadSettings()
	if err != nil {
		return err
	}

	menunav.Setup(cfg)
	defer menunav.Close()
	logger := menunav.GetLogger()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	host, err := sdlhost.New(cfg, sdlhost.DefaultTheme(cfg.FontPath))
	if err != nil {
		return err
	}
	defer host.Close()

	engine, err := menunav.New(reg, cfg, host, host.Audio())
	if err != nil {
		return err
	}

	buttons, err := watchInput(ctx, cfg.InputDevice)
	if err != nil {
		logger.Warn("Hardware buttons unavailable", "device", cfg.InputDevice, "error", err)
	}

	logger.Info("Starting", "start_screen", cfg.StartScreen, "history_capacity", cfg.HistoryCapacity)
	if err := host.Run(ctx, engine, buttons); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	logger.Info("Exiting", "frames", engine.Frames(), "screen", engine.CurrentScreen())
	return nil
}
