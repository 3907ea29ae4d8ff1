// Package internal contains shared infrastructure for menunav: logger setup,
// menu layout geometry, held-direction tracking and gameplay motion. Types
// and functions in this package are not part of the public API.
package internal
