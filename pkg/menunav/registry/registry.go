package registry

import (
	"fmt"

	"github.com/BrandonKowalski/menunav/pkg/menunav/router"
)

// Entry is a single selectable element of a menu.
type Entry struct {
	Label  string // Display text, unique within the menu
	Action Action // What pressing the element does
	Icon   string // Optional icon name rendered next to the label
}

// MenuDefinition is the ordered list of entries shown on a screen.
// Order determines on-screen position only.
type MenuDefinition struct {
	Screen  router.Screen
	Entries []Entry
}

// Labels returns the entry labels in display order.
func (d MenuDefinition) Labels() []string {
	labels := make([]string, len(d.Entries))
	for i, e := range d.Entries {
		labels[i] = e.Label
	}
	return labels
}

func (d MenuDefinition) clone() MenuDefinition {
	entries := make([]Entry, len(d.Entries))
	copy(entries, d.Entries)
	return MenuDefinition{Screen: d.Screen, Entries: entries}
}

func (d MenuDefinition) validate() error {
	if !d.Screen.Valid() {
		return fmt.Errorf("unknown screen %d", int(d.Screen))
	}
	tags := make(map[Action]bool, len(d.Entries))
	labels := make(map[string]bool, len(d.Entries))
	for _, e := range d.Entries {
		if e.Label == "" {
			return fmt.Errorf("%s: entry with empty label", d.Screen)
		}
		if _, err := e.Action.MarshalText(); err != nil {
			return fmt.Errorf("%s: %q: %w", d.Screen, e.Label, err)
		}
		if tags[e.Action] {
			return fmt.Errorf("%s: duplicate action %s", d.Screen, e.Action)
		}
		if labels[e.Label] {
			return fmt.Errorf("%s: duplicate label %q", d.Screen, e.Label)
		}
		tags[e.Action] = true
		labels[e.Label] = true
	}
	return nil
}

// Registry maps every screen to its menu definition. It is immutable once
// built.
type Registry struct {
	defs map[router.Screen]MenuDefinition
}

// New builds a registry. Every screen in router.Screens must be defined
// exactly once; a screen without selectable elements is given an empty
// definition explicitly.
func New(defs ...MenuDefinition) (*Registry, error) {
	r := &Registry{defs: make(map[router.Screen]MenuDefinition, len(defs))}
	for _, d := range defs {
		if err := d.validate(); err != nil {
			return nil, NewConfigurationError("new_registry", err)
		}
		if _, dup := r.defs[d.Screen]; dup {
			return nil, NewConfigurationError("new_registry", fmt.Errorf("%s defined twice", d.Screen))
		}
		r.defs[d.Screen] = d.clone()
	}
	for _, s := range router.Screens() {
		if _, ok := r.defs[s]; !ok {
			return nil, NewConfigurationError("new_registry", fmt.Errorf("no menu definition for %s", s))
		}
	}
	return r, nil
}

// MustNew is like New but panics on error.
func MustNew(defs ...MenuDefinition) *Registry {
	r, err := New(defs...)
	if err != nil {
		panic(err)
	}
	return r
}

// Definition returns a copy of the screen's menu. It panics with a
// *ConfigurationError when the registry was never initialized.
func (r *Registry) Definition(screen router.Screen) MenuDefinition {
	return r.definition(screen).clone()
}

func (r *Registry) definition(screen router.Screen) MenuDefinition {
	if r == nil || r.defs == nil {
		panic(NewConfigurationError("definition", ErrNotInitialized))
	}
	d, ok := r.defs[screen]
	if !ok {
		panic(NewConfigurationError("definition", fmt.Errorf("no menu definition for %s", screen)))
	}
	return d
}

// Lookup returns the action bound to label on screen, or ErrUnresolvedAction.
func (r *Registry) Lookup(screen router.Screen, label string) (Action, error) {
	for _, e := range r.definition(screen).Entries {
		if e.Label == label {
			return e.Action, nil
		}
	}
	return ActionNoop, fmt.Errorf("%s: %q: %w", screen, label, ErrUnresolvedAction)
}

// Resolve returns the action bound to label on screen. Unknown labels resolve
// to ActionNoop.
func (r *Registry) Resolve(screen router.Screen, label string) Action {
	action, _ := r.Lookup(screen, label)
	return action
}

// LabelFor returns the label bound to action on screen.
func (r *Registry) LabelFor(screen router.Screen, action Action) (string, bool) {
	for _, e := range r.definition(screen).Entries {
		if e.Action == action {
			return e.Label, true
		}
	}
	return "", false
}
