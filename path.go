// Copyright 2022 The vdsvg Authors. All rights reserved.
//
// path.go adapts rasterx paths to the geometry queries the exporter
// needs: string form, arc length, and rescaling by a transform.
package vdsvg

import (
	"math"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

// PathData is the capability set the exporter requires of a path
// geometry: its SVG path-string form, its total arc length, and a
// copy rescaled by an affine transform. RasterPath is the provided
// implementation; callers with their own geometry may supply another.
type PathData interface {
	String() string
	Length() float64
	Transformed(m Matrix2D) PathData
}

// RasterPath implements PathData on a rasterx.Path.
type RasterPath struct {
	Path rasterx.Path
}

// ParsePath compiles an SVG path data string into a RasterPath. The
// parsing itself is oksvg's job; only the compiled operations live
// here. Parsing is strict: unknown commands are an error, not a
// warning.
func ParsePath(d string) (*RasterPath, error) {
	c := &oksvg.PathCursor{ErrorMode: oksvg.StrictErrorMode}
	if err := c.CompilePath(d); err != nil {
		return nil, err
	}
	return &RasterPath{Path: c.Path}, nil
}

func (p *RasterPath) String() string {
	return p.Path.ToSVGPath()
}

// Length returns the arc length of the path, curves flattened into
// chords.
func (p *RasterPath) Length() float64 {
	var sink lengthSink
	p.Path.AddTo(&sink)
	return sink.total
}

// Transformed returns a copy of the path with m applied to every
// control point.
func (p *RasterPath) Transformed(m Matrix2D) PathData {
	out := make(rasterx.Path, 0, len(p.Path))
	ma := MatrixAdder{Adder: &out, M: m}
	p.Path.AddTo(&ma)
	return &RasterPath{Path: out}
}

// curveChords is the number of chords a bezier segment is flattened
// into when measuring length.
const curveChords = 64

// lengthSink is a rasterx.Adder that accumulates flattened arc
// length instead of building geometry.
type lengthSink struct {
	total      float64
	cur, first fixed.Point26_6
}

func (s *lengthSink) Start(a fixed.Point26_6) {
	s.cur, s.first = a, a
}

func (s *lengthSink) Line(b fixed.Point26_6) {
	s.total += chord(s.cur, b)
	s.cur = b
}

func (s *lengthSink) QuadBezier(b, c fixed.Point26_6) {
	p0, p1, p2 := unfix(s.cur), unfix(b), unfix(c)
	px, py := p0[0], p0[1]
	for i := 1; i <= curveChords; i++ {
		t := float64(i) / curveChords
		u := 1 - t
		x := u*u*p0[0] + 2*u*t*p1[0] + t*t*p2[0]
		y := u*u*p0[1] + 2*u*t*p1[1] + t*t*p2[1]
		s.total += math.Hypot(x-px, y-py)
		px, py = x, y
	}
	s.cur = c
}

func (s *lengthSink) CubeBezier(b, c, d fixed.Point26_6) {
	p0, p1, p2, p3 := unfix(s.cur), unfix(b), unfix(c), unfix(d)
	px, py := p0[0], p0[1]
	for i := 1; i <= curveChords; i++ {
		t := float64(i) / curveChords
		u := 1 - t
		x := u*u*u*p0[0] + 3*u*u*t*p1[0] + 3*u*t*t*p2[0] + t*t*t*p3[0]
		y := u*u*u*p0[1] + 3*u*u*t*p1[1] + 3*u*t*t*p2[1] + t*t*t*p3[1]
		s.total += math.Hypot(x-px, y-py)
		px, py = x, y
	}
	s.cur = d
}

func (s *lengthSink) Stop(closeLoop bool) {
	if closeLoop {
		s.total += chord(s.cur, s.first)
		s.cur = s.first
	}
}

func unfix(p fixed.Point26_6) [2]float64 {
	return [2]float64{float64(p.X) / 64, float64(p.Y) / 64}
}

func chord(a, b fixed.Point26_6) float64 {
	return math.Hypot(float64(b.X-a.X)/64, float64(b.Y-a.Y)/64)
}
