// Copyright 2022 The vdsvg Authors. All rights reserved.
package vdsvg

import (
	"math"
	"strings"
	"testing"
)

func TestParsePathLength(t *testing.T) {
	tests := []struct {
		name string
		d    string
		want float64
	}{
		{name: "horizontal line", d: "M0,0 L100,0", want: 100},
		{name: "closed square", d: "M0,0 h10 v10 h-10 z", want: 40},
		{name: "two subpaths", d: "M0,0 L10,0 M0,20 L0,30", want: 20},
		{name: "degenerate quad", d: "M0,0 Q50,0 100,0", want: 100},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			p, err := ParsePath(test.d)
			if err != nil {
				t.Fatal(err)
			}
			if got := p.Length(); math.Abs(got-test.want) > 1e-3 {
				t.Errorf("Length() = %v, want %v", got, test.want)
			}
		})
	}
}

func TestCurveLengthBounds(t *testing.T) {
	// A genuine curve is longer than its chord and shorter than its
	// control polygon.
	p, err := ParsePath("M0,0 C0,50 100,50 100,0")
	if err != nil {
		t.Fatal(err)
	}
	got := p.Length()
	if got <= 100 || got >= 200 {
		t.Errorf("Length() = %v, want within (100,200)", got)
	}
}

func TestTransformedLength(t *testing.T) {
	p, err := ParsePath("M0,0 h10 v10 h-10 z")
	if err != nil {
		t.Fatal(err)
	}
	scaled := p.Transformed(Identity.Scale(2, 2))
	if got := scaled.Length(); math.Abs(got-80) > 1e-3 {
		t.Errorf("scaled Length() = %v, want 80", got)
	}
	// The source path is untouched.
	if got := p.Length(); math.Abs(got-40) > 1e-3 {
		t.Errorf("source Length() = %v, want 40", got)
	}
}

func TestPathString(t *testing.T) {
	p, err := ParsePath("M0,0 L100,0")
	if err != nil {
		t.Fatal(err)
	}
	s := p.String()
	if !strings.HasPrefix(s, "M") {
		t.Errorf("String() = %q, want a moveto-first path string", s)
	}
}

func TestParsePathRejectsGarbage(t *testing.T) {
	if _, err := ParsePath("M0,0 X9"); err == nil {
		t.Error("expected an error for an unknown path command")
	}
}
