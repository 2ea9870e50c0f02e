// Copyright 2022 The vdsvg Authors. All rights reserved.
//
// The vdsvg package exports vector-drawable layer trees as SVG
// documents. The layer model mirrors the Android vector drawable
// format: a single vector root, nested transform groups, and stroked
// or filled path leaves with optional trim-path ranges. The package
// only reads the tree; construction and mutation belong to the
// caller.
package vdsvg

import (
	"image/color"
)

// FillRule selects the SVG fill-rule for a path.
type FillRule uint8

const (
	NonZero FillRule = iota
	EvenOdd
)

type (
	// Layer is the closed set of tree node variants: *VectorLayer,
	// *GroupLayer and *PathLayer. It is sealed so that variant
	// switches stay exhaustive.
	Layer interface {
		layerID() string
		layerName() string
		childLayers() []Layer
	}

	// VectorLayer is the document root. Exactly one exists per tree
	// and it never appears below the root.
	VectorLayer struct {
		ID, Name      string
		Width, Height float64
		Alpha         float64
		Children      []Layer
	}

	// GroupLayer applies a coordinate-system transform to all of its
	// descendants. Rotation is in degrees; rotation and scale are
	// applied about the pivot point.
	GroupLayer struct {
		ID, Name               string
		TranslateX, TranslateY float64
		Rotation               float64
		PivotX, PivotY         float64
		ScaleX, ScaleY         float64
		Children               []Layer
	}

	// PathLayer is a leaf carrying geometry and paint. A nil color
	// means that paint function is off; a nil Path renders as an
	// empty path string.
	PathLayer struct {
		ID, Name         string
		Path             PathData
		FillColor        color.Color
		FillAlpha        float64
		StrokeColor      color.Color
		StrokeAlpha      float64
		StrokeWidth      float64
		TrimPathStart    float64
		TrimPathEnd      float64
		TrimPathOffset   float64
		StrokeLinecap    string
		StrokeLinejoin   string
		StrokeMiterLimit float64
		FillType         FillRule
	}
)

// DefaultVector, DefaultGroup and DefaultPath hold the attribute
// defaults of each variant. Copy the prototype and overwrite what
// differs; attributes left at these values are elided from the
// output.
var (
	DefaultVector = VectorLayer{Alpha: 1}

	DefaultGroup = GroupLayer{ScaleX: 1, ScaleY: 1}

	DefaultPath = PathLayer{
		FillAlpha:        1,
		StrokeAlpha:      1,
		TrimPathEnd:      1,
		StrokeLinecap:    "butt",
		StrokeLinejoin:   "miter",
		StrokeMiterLimit: 4,
		FillType:         NonZero,
	}
)

func (l *VectorLayer) layerID() string      { return l.ID }
func (l *VectorLayer) layerName() string    { return l.Name }
func (l *VectorLayer) childLayers() []Layer { return l.Children }

func (l *GroupLayer) layerID() string      { return l.ID }
func (l *GroupLayer) layerName() string    { return l.Name }
func (l *GroupLayer) childLayers() []Layer { return l.Children }

func (l *PathLayer) layerID() string      { return l.ID }
func (l *PathLayer) layerName() string    { return l.Name }
func (l *PathLayer) childLayers() []Layer { return nil }

// FindLayer returns the layer with the given id, or nil if the tree
// does not contain it.
func FindLayer(root Layer, id string) Layer {
	if root.layerID() == id {
		return root
	}
	for _, c := range root.childLayers() {
		if found := FindLayer(c, id); found != nil {
			return found
		}
	}
	return nil
}
