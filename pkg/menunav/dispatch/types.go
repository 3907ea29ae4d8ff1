package dispatch

import "fmt"

// Handle is an opaque reference to a spawned UI element. It is issued by the
// UI collaborator and is only meaningful to it.
type Handle uint64

// Element is a selectable element of the active screen.
type Element struct {
	Handle Handle
	Label  string // Rendered text; resolved to an action through the registry
}

// Interaction is the pointer/focus state of an element.
type Interaction int

const (
	InteractionNone    Interaction = iota // Not hovered, not pressed
	InteractionHovered                    // Pointer over, or focused
	InteractionPressed                    // Clicked, or confirmed while focused
)

func (i Interaction) String() string {
	switch i {
	case InteractionNone:
		return "none"
	case InteractionHovered:
		return "hovered"
	case InteractionPressed:
		return "pressed"
	default:
		return fmt.Sprintf("interaction(%d)", int(i))
	}
}

// Style is the visual state the UI collaborator applies to an element.
type Style int

const (
	StyleNormal Style = iota
	StyleHovered
	StylePressed
)

func (s Style) String() string {
	switch s {
	case StyleNormal:
		return "normal"
	case StyleHovered:
		return "hovered"
	case StylePressed:
		return "pressed"
	default:
		return fmt.Sprintf("style(%d)", int(s))
	}
}

// Cue identifies a sound played through the audio collaborator. The SDL host
// treats it as an asset path.
type Cue string
