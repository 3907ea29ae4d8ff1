//go:build !linux

package main

import (
	"context"
	"errors"

	"github.com/BrandonKowalski/menunav/pkg/menunav/constants"
)

func watchInput(_ context.Context, device string) (<-chan constants.VirtualButton, error) {
	if device == "" {
		return nil, nil
	}
	return nil, errors.New("input devices are only supported on linux")
}
