package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/menunav/pkg/menunav"
	"github.com/BrandonKowalski/menunav/pkg/menunav/registry"
	"github.com/BrandonKowalski/menunav/pkg/menunav/router"
)

// loadSettings reads the config file, then applies flags over it.
func loadSettings() (menunav.Config, *registry.Registry, error) {
	var (
		cfg menunav.Config
		err error
	)
	if configPath != "" {
		cfg, err = menunav.LoadConfig(configPath)
		if err == nil {
			cfg.ApplyEnv()
		}
	} else {
		cfg, err = menunav.LoadConfigFromEnv()
	}
	if err != nil {
		return cfg, nil, err
	}

	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if logPath != "" {
		cfg.LogPath = logPath
	}
	if menusPath != "" {
		cfg.MenusPath = menusPath
	}
	if inputDevice != "" {
		cfg.InputDevice = inputDevice
	}
	if err := cfg.Validate(); err != nil {
		return cfg, nil, err
	}

	reg, err := loadRegistry(cfg)
	return cfg, reg, err
}

func loadRegistry(cfg menunav.Config) (*registry.Registry, error) {
	if cfg.MenusPath == "" {
		return registry.Default()
	}
	catalog, err := registry.DefaultCatalog()
	if err != nil {
		return nil, err
	}
	return registry.LoadFile(cfg.MenusPath, catalog)
}

func writeMenus(w io.Writer, reg *registry.Registry) {
	for _, screen := range router.Screens() {
		def := reg.Definition(screen)
		fmt.Fprintf(w, "%s\n", screen)
		if len(def.Entries) == 0 {
			fmt.Fprintln(w, "  (no entries)")
			continue
		}
		for _, e := range def.Entries {
			target := "-"
			if s, ok := e.Action.Target(); ok {
				target = s.String()
			}
			fmt.Fprintf(w, "  %-12s %-16s %s\n", e.Label, e.Action, target)
		}
	}
}

func printMenus(cmd *cobra.Command, _ []string) error {
	_, reg, err := loadSettings()
	if err != nil {
		return err
	}
	writeMenus(cmd.OutOrStdout(), reg)
	return nil
}

func checkSettings(cmd *cobra.Command, _ []string) error {
	cfg, _, err := loadSettings()
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "ok: start %s, fallback %s, history %d\n",
		cfg.StartScreen, cfg.FallbackScreen, cfg.HistoryCapacity)
	return nil
}
