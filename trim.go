// Copyright 2022 The vdsvg Authors. All rights reserved.
package vdsvg

import (
	"math"
	"strconv"
	"strings"
)

// seamPad widens the hidden dash segment slightly so floating-point
// rounding cannot leave a hairline of stroke visible where the trim
// range wraps around the end of the path.
const seamPad = 0.001

// trimToDash converts a normalized trim range into an SVG stroke
// dash array and offset for a path of the given length. When start
// is greater than end the visible region wraps past the end of the
// path, i.e. it is the union of [start,1] and [0,end].
func trimToDash(start, end, offset, length float64) (dashArray, dashOffset string) {
	shown := end - start
	if start > end {
		shown++
	}
	dashArray = num(shown*length) + "," + num((1-shown+seamPad)*length)
	dashOffset = num(length * (1 - mod1(start+offset)))
	return dashArray, dashOffset
}

// mod1 wraps v into [0,1).
func mod1(v float64) float64 {
	m := math.Mod(v, 1)
	if m < 0 {
		m++
	}
	return m
}

// num formats f in its minimal decimal form, rounded to four places:
// 40 not "40.0000", "60.1" not "60.099999999999994".
func num(f float64) string {
	s := strconv.FormatFloat(f, 'f', 4, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	if s == "" || s == "-0" {
		s = "0"
	}
	return s
}
