package constants

// Icon names usable in the "icon" field of a menu entry. The SDL host ships an
// SVG for each.
const (
	IconBack = "back" // Left arrow
	IconExit = "exit" // Power symbol
)
