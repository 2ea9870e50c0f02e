// Copyright 2022 The vdsvg Authors. All rights reserved.
package vdsvg

import (
	"math"
	"testing"
)

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestMatrixCompose(t *testing.T) {
	// Translate then scale: the scale applies in the translated
	// frame, so the point scales first and shifts after.
	m := Identity.Translate(10, 0).Scale(2, 2)
	x, y := m.Transform(1, 1)
	if !near(x, 12) || !near(y, 2) {
		t.Errorf("Transform(1,1) = (%v,%v), want (12,2)", x, y)
	}
}

func TestPivotCompensatedScale(t *testing.T) {
	m := Identity.Translate(10, 10).Scale(2, 2).Translate(-10, -10)

	// The pivot point is fixed under the composed transform.
	x, y := m.Transform(10, 10)
	if !near(x, 10) || !near(y, 10) {
		t.Errorf("pivot moved to (%v,%v)", x, y)
	}

	x, y = m.Transform(0, 0)
	if !near(x, -10) || !near(y, -10) {
		t.Errorf("Transform(0,0) = (%v,%v), want (-10,-10)", x, y)
	}
}

func TestRotateAboutPivot(t *testing.T) {
	m := Identity.Translate(1, 0).Rotate(math.Pi / 2).Translate(-1, 0)
	x, y := m.Transform(2, 0)
	if !near(x, 1) || !near(y, 1) {
		t.Errorf("Transform(2,0) = (%v,%v), want (1,1)", x, y)
	}
	if !near(m.A, 0) || !near(m.D, 0) {
		t.Errorf("scale components = (%v,%v), want (0,0)", m.A, m.D)
	}
}
