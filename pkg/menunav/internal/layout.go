package internal

// Button geometry of the menu column.
const (
	ButtonWidth  int32 = 250
	ButtonHeight int32 = 65
	ButtonMargin int32 = 25
)

// Padding defines spacing on all four sides of an element.
type Padding struct {
	Top    int32
	Right  int32
	Bottom int32
	Left   int32
}

// UniformPadding creates a Padding with the same value on all sides.
func UniformPadding(value int32) Padding {
	return Padding{
		Top:    value,
		Right:  value,
		Bottom: value,
		Left:   value,
	}
}

// Rect is an axis-aligned rectangle in window coordinates.
type Rect struct {
	X, Y, W, H int32
}

// Contains reports whether the point lies inside the rectangle. The right and
// bottom edges are exclusive.
func (r Rect) Contains(x, y int32) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Inset shrinks the rectangle by p.
func (r Rect) Inset(p Padding) Rect {
	return Rect{
		X: r.X + p.Left,
		Y: r.Y + p.Top,
		W: max(r.W-p.Left-p.Right, 0),
		H: max(r.H-p.Top-p.Bottom, 0),
	}
}

// Center returns a rectangle of size w x h centered in r.
func (r Rect) Center(w, h int32) Rect {
	return Rect{X: r.X + (r.W-w)/2, Y: r.Y + (r.H-h)/2, W: w, H: h}
}

// ButtonColumn lays out count buttons in a vertical column centered in a
// screen of the given size. Each button is surrounded by ButtonMargin.
func ButtonColumn(count int, screenW, screenH int32) []Rect {
	if count <= 0 {
		return nil
	}
	margin := UniformPadding(ButtonMargin)
	slotH := ButtonHeight + margin.Top + margin.Bottom
	total := slotH * int32(count)

	top := (screenH - total) / 2
	left := (screenW - ButtonWidth) / 2

	rects := make([]Rect, count)
	for i := range rects {
		rects[i] = Rect{
			X: left,
			Y: top + slotH*int32(i) + margin.Top,
			W: ButtonWidth,
			H: ButtonHeight,
		}
	}
	return rects
}

// HitTest returns the index of the first rectangle containing the point, or -1.
func HitTest(rects []Rect, x, y int32) int {
	for i, r := range rects {
		if r.Contains(x, y) {
			return i
		}
	}
	return -1
}
