// Copyright 2022 The vdsvg Authors. All rights reserved.
package vdsvg

import (
	"testing"
)

func TestTrimToDash(t *testing.T) {
	tests := []struct {
		name                     string
		start, end, offset, plen float64
		dashArray, dashOffset    string
	}{
		{name: "front half", start: 0, end: 0.5, offset: 0, plen: 100,
			dashArray: "50,50.1", dashOffset: "100"},
		{name: "wraparound", start: 0.8, end: 0.2, offset: 0, plen: 100,
			dashArray: "40,60.1", dashOffset: "20"},
		{name: "offset wraps past one", start: 0.1, end: 0.6, offset: 0.95, plen: 200,
			dashArray: "100,100.2", dashOffset: "190"},
		{name: "zero length path", start: 0.25, end: 0.75, offset: 0, plen: 0,
			dashArray: "0,0", dashOffset: "0"},
		{name: "full range with offset", start: 0, end: 1, offset: 0.25, plen: 100,
			dashArray: "100,0.1", dashOffset: "75"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			da, do := trimToDash(test.start, test.end, test.offset, test.plen)
			if da != test.dashArray {
				t.Errorf("dash array: got %q, want %q", da, test.dashArray)
			}
			if do != test.dashOffset {
				t.Errorf("dash offset: got %q, want %q", do, test.dashOffset)
			}
		})
	}
}

func TestMod1(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{0.25, 0.25},
		{1, 0},
		{1.75, 0.75},
		{-0.25, 0.75},
		{3.5, 0.5},
	}
	for _, test := range tests {
		got := mod1(test.in)
		if diff := got - test.want; diff > 1e-12 || diff < -1e-12 {
			t.Errorf("mod1(%v) = %v, want %v", test.in, got, test.want)
		}
	}
}

func TestNum(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{40, "40"},
		{60.099999999999994, "60.1"},
		{0.95, "0.95"},
		{-10, "-10"},
		{0, "0"},
		{-0.00001, "0"},
		{19.999999999999996, "20"},
	}
	for _, test := range tests {
		if got := num(test.in); got != test.want {
			t.Errorf("num(%v) = %q, want %q", test.in, got, test.want)
		}
	}
}
