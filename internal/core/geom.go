// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect is an axis-aligned bounding box in world units.
// Y grows downward, so Top is the smaller Y.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// CenteredAt creates a rectangle of the given size whose center is (cx, cy).
func CenteredAt(cx, cy, w, h float64) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// Valid reports whether the rectangle has a positive area.
func (r Rect) Valid() bool {
	return r.W > 0 && r.H > 0
}

// Translate moves the rectangle in place.
func (r *Rect) Translate(dx, dy float64) {
	r.X += dx
	r.Y += dy
}

// Left returns the x-coordinate of the left edge.
func (r Rect) Left() float64 { return r.X }

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Top returns the y-coordinate of the top edge.
func (r Rect) Top() float64 { return r.Y }

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the center point of the rectangle.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// CenterVec returns the center point as a vector.
func (r Rect) CenterVec() Vec {
	x, y := r.Center()
	return Vec{X: x, Y: y}
}

// SetLeft moves the rectangle so its left edge is at x.
func (r *Rect) SetLeft(x float64) { r.X = x }

// SetRight moves the rectangle so its right edge is at x.
func (r *Rect) SetRight(x float64) { r.X = x - r.W }

// SetTop moves the rectangle so its top edge is at y.
func (r *Rect) SetTop(y float64) { r.Y = y }

// SetBottom moves the rectangle so its bottom edge is at y.
func (r *Rect) SetBottom(y float64) { r.Y = y - r.H }

// Overlaps reports whether the closed extents of both rectangles intersect
// on both axes. Touching edges count as contact.
func (r Rect) Overlaps(other Rect) bool {
	if r.Right() < other.Left() || other.Right() < r.Left() {
		return false
	}
	if r.Bottom() < other.Top() || other.Bottom() < r.Top() {
		return false
	}
	return true
}

// Vec is a 2D vector used for velocities and points.
type Vec struct {
	X, Y float64
}

// Len returns the Euclidean length of the vector.
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Direction returns the vector pointing from -> to with length speed.
// Returns the zero vector when the points coincide.
func Direction(from, to Vec, speed float64) Vec {
	dx := to.X - from.X
	dy := to.Y - from.Y
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return Vec{}
	}
	return Vec{X: dx / dist * speed, Y: dy / dist * speed}
}
