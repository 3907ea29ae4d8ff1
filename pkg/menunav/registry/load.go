package registry

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/BrandonKowalski/menunav/pkg/menunav/router"
)

//go:embed menus.toml
var defaultMenus []byte

type menuFile struct {
	Menus []menuSpec `toml:"menu"`
}

type menuSpec struct {
	Screen  router.Screen `toml:"screen"`
	Entries []entrySpec   `toml:"entry"`
}

type entrySpec struct {
	Label  string `toml:"label"` // Message ID
	Action Action `toml:"action"`
	Icon   string `toml:"icon"`
}

// Load builds a registry from a TOML menu layout. Entry labels are message
// IDs rendered through catalog.
func Load(data []byte, catalog *Catalog) (*Registry, error) {
	var f menuFile
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return nil, NewConfigurationError("load_menus", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, NewConfigurationError("load_menus", fmt.Errorf("unknown keys: %s", strings.Join(keys, ", ")))
	}

	defs := make([]MenuDefinition, 0, len(f.Menus))
	for _, m := range f.Menus {
		def := MenuDefinition{Screen: m.Screen, Entries: make([]Entry, 0, len(m.Entries))}
		for _, e := range m.Entries {
			label, err := catalog.Label(e.Label)
			if err != nil {
				return nil, err
			}
			def.Entries = append(def.Entries, Entry{Label: label, Action: e.Action, Icon: e.Icon})
		}
		defs = append(defs, def)
	}
	return New(defs...)
}

// LoadFile reads a menu layout from disk.
func LoadFile(filename string, catalog *Catalog) (*Registry, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, NewConfigurationError("load_menus", err)
	}
	return Load(data, catalog)
}

// Default returns the built-in menus with English labels.
func Default() (*Registry, error) {
	catalog, err := DefaultCatalog()
	if err != nil {
		return nil, err
	}
	return Load(defaultMenus, catalog)
}
