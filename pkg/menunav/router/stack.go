package router

// DefaultHistoryCapacity is the number of exited screens remembered for back
// navigation.
const DefaultHistoryCapacity = 5

// History is a bounded stack of previously visited screens.
// When a push would exceed the capacity the oldest entry is dropped.
type History struct {
	entries  []Screen // oldest first
	capacity int
}

// NewHistory creates an empty history. A capacity below 1 falls back to
// DefaultHistoryCapacity.
func NewHistory(capacity int) *History {
	if capacity < 1 {
		capacity = DefaultHistoryCapacity
	}
	return &History{
		entries:  make([]Screen, 0, capacity),
		capacity: capacity,
	}
}

// Push records the screen being left.
func (h *History) Push(screen Screen) {
	if len(h.entries) == h.capacity {
		copy(h.entries, h.entries[1:])
		h.entries = h.entries[:h.capacity-1]
	}
	h.entries = append(h.entries, screen)
}

// Pop removes and returns the most recently pushed screen.
// The boolean is false when the history is empty.
func (h *History) Pop() (Screen, bool) {
	if len(h.entries) == 0 {
		return 0, false
	}
	screen := h.entries[len(h.entries)-1]
	h.entries = h.entries[:len(h.entries)-1]
	return screen, true
}

// Peek returns the most recently pushed screen without removing it.
func (h *History) Peek() (Screen, bool) {
	if len(h.entries) == 0 {
		return 0, false
	}
	return h.entries[len(h.entries)-1], true
}

// IsEmpty returns true if no screens are recorded.
func (h *History) IsEmpty() bool {
	return len(h.entries) == 0
}

// Len returns the number of recorded screens.
func (h *History) Len() int {
	return len(h.entries)
}

// Cap returns the fixed capacity.
func (h *History) Cap() int {
	return h.capacity
}

// Entries returns a copy of the recorded screens, most recent first.
func (h *History) Entries() []Screen {
	out := make([]Screen, len(h.entries))
	for i, s := range h.entries {
		out[len(h.entries)-1-i] = s
	}
	return out
}

// Clear removes all entries.
func (h *History) Clear() {
	h.entries = h.entries[:0]
}
