//go:build linux

package main

import (
	"context"

	"github.com/BrandonKowalski/menunav/pkg/menunav/constants"
	"github.com/BrandonKowalski/menunav/pkg/menunav/hwinput"
)

// watchInput starts reading device, if set. The watcher stops with ctx.
func watchInput(ctx context.Context, device string) (<-chan constants.VirtualButton, error) {
	if device == "" {
		return nil, nil
	}
	w, err := hwinput.Open(device)
	if err != nil {
		return nil, err
	}
	if err := w.Start(ctx); err != nil {
		return nil, err
	}
	return w.Buttons(), nil
}
