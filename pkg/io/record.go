package io

import (
	"github.com/matzehuels/isotile/pkg/errors"
	"github.com/matzehuels/isotile/pkg/geometry"
	"github.com/matzehuels/isotile/pkg/layout"
)

// Coordinate is a tile anchor encoded as a two-element [x, y] array.
type Coordinate [2]int

// Record is the serialized form of a layout.
type Record struct {
	Width       int          `json:"width"`
	Height      int          `json:"height"`
	Coordinates []Coordinate `json:"coordinates"`
}

// NewRecord captures the size and tile anchors of l.
func NewRecord(l *layout.Layout) Record {
	size := l.Size()
	coords := l.Coordinates()

	rec := Record{
		Width:       size.Width,
		Height:      size.Height,
		Coordinates: make([]Coordinate, len(coords)),
	}
	for i, p := range coords {
		rec.Coordinates[i] = Coordinate{p.X, p.Y}
	}
	return rec
}

// Size returns the canvas size stored in the record.
func (r Record) Size() geometry.Size {
	return geometry.Size{Width: r.Width, Height: r.Height}
}

// Points returns the stored tile anchors in order.
func (r Record) Points() []geometry.Point {
	pts := make([]geometry.Point, len(r.Coordinates))
	for i, c := range r.Coordinates {
		pts[i] = geometry.Point{X: c[0], Y: c[1]}
	}
	return pts
}

// Validate rejects records that no layout could have produced: negative
// canvas dimensions, or anchors outside the canvas.
func (r Record) Validate() error {
	if r.Width < 0 || r.Height < 0 {
		return errors.New(errors.ErrCodeInvalidFormat, "canvas size must not be negative, got %dx%d", r.Width, r.Height)
	}
	size := r.Size()
	for i, p := range r.Points() {
		if !size.Contains(p) {
			return errors.New(errors.ErrCodeInvalidFormat, "coordinate %d %v lies outside canvas %v", i, p, size)
		}
	}
	return nil
}
