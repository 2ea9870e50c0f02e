// Copyright 2022 The vdsvg Authors. All rights reserved.
//
// export.go walks a layer tree and materializes it as an SVG element
// tree: one visit per layer, threading the current output parent and
// the composed ancestor transform down the recursion, with attribute
// values elided whenever they equal the variant's declared default.
package vdsvg

import (
	"fmt"
	"image/color"
	"math"
	"strings"
)

const svgNamespace = "http://www.w3.org/2000/svg"

// ExportOptions controls the root svg element. Width, Height, X and
// Y are optional px sizing attributes; each is emitted only when
// supplied. OmitIDs suppresses the xmlns declaration and every id
// attribute, for embedding the output as a fragment of a larger
// document. A Printer with Indent 0 is coerced to the two-space
// default; set Indent negative for flat, unindented output.
type ExportOptions struct {
	Width, Height, X, Y *float64
	OmitIDs             bool
	Printer             Printer
}

// Px wraps a literal for the optional sizing fields of
// ExportOptions.
func Px(v float64) *float64 { return &v }

// ToSVG converts the layer tree rooted at root into an SVG document
// string. The tree is only read; converting the same tree twice
// yields byte-identical output.
func ToSVG(root *VectorLayer, opts *ExportOptions) string {
	if opts == nil {
		opts = &ExportOptions{}
	}
	ex := exporter{root: root, omitIDs: opts.OmitIDs}

	doc := NewElement("svg")
	walkLayer(Layer(root), walkContext{parent: doc, xform: Identity}, ex.mapLayer)

	if opts.Width != nil {
		doc.SetAttr("width", num(*opts.Width)+"px")
	}
	if opts.Height != nil {
		doc.SetAttr("height", num(*opts.Height)+"px")
	}
	if opts.X != nil {
		doc.SetAttr("x", num(*opts.X)+"px")
	}
	if opts.Y != nil {
		doc.SetAttr("y", num(*opts.Y)+"px")
	}
	if !opts.OmitIDs {
		doc.SetAttr("xmlns", svgNamespace)
	}

	pr := opts.Printer
	if pr.Indent == 0 {
		pr.Indent = 2
	}
	return pr.Print(doc)
}

// walkContext is the state threaded down the traversal: the output
// element receiving children, and the composed transform of every
// group passed through so far.
type walkContext struct {
	parent *Element
	xform  Matrix2D
}

// walkLayer performs the pre-order traversal: visit returns the
// context for l's children, which follow in their stored order.
func walkLayer(l Layer, ctx walkContext, visit func(Layer, walkContext) walkContext) {
	next := visit(l, ctx)
	for _, c := range l.childLayers() {
		walkLayer(c, next, visit)
	}
}

type exporter struct {
	root    *VectorLayer
	omitIDs bool
}

// mapLayer materializes one layer as an output element. The variant
// set is closed; anything else is a broken precondition.
func (ex *exporter) mapLayer(l Layer, ctx walkContext) walkContext {
	switch l := l.(type) {
	case *VectorLayer:
		if l != ex.root {
			panic("vdsvg: vector layer below the document root")
		}
		ctx.parent.SetAttr("viewBox", "0 0 "+num(l.Width)+" "+num(l.Height))
		ex.setID(ctx.parent, l.Name)
		if l.Alpha != 1 {
			ctx.parent.SetAttr("opacity", num(l.Alpha))
		}
		return ctx
	case *GroupLayer:
		e := ctx.parent.Append(NewElement("g"))
		ex.setID(e, l.Name)
		if t := groupTransform(l); t != "" {
			e.SetAttr("transform", t)
		}
		return walkContext{parent: e, xform: ctx.xform.Mult(l.transform())}
	case *PathLayer:
		ex.mapPath(l, ctx.parent, ctx.xform)
		return ctx
	default:
		panic(fmt.Sprintf("vdsvg: unknown layer variant %T", l))
	}
}

func (ex *exporter) mapPath(l *PathLayer, parent *Element, xform Matrix2D) *Element {
	e := parent.Append(NewElement("path"))
	ex.setID(e, l.Name)

	d := ""
	if l.Path != nil {
		d = l.Path.String()
	}
	e.SetAttr("d", d)

	if l.FillColor != nil {
		e.SetAttr("fill", cssColor(l.FillColor))
	} else {
		e.SetAttr("fill", "none")
	}
	if l.FillAlpha != 1 {
		e.SetAttr("fill-opacity", num(l.FillAlpha))
	}
	if l.StrokeColor != nil {
		e.SetAttr("stroke", cssColor(l.StrokeColor))
	}
	if l.StrokeAlpha != 1 {
		e.SetAttr("stroke-opacity", num(l.StrokeAlpha))
	}
	if l.StrokeWidth != 0 {
		e.SetAttr("stroke-width", num(l.StrokeWidth))
	}
	if l.StrokeLinecap != "" && l.StrokeLinecap != "butt" {
		e.SetAttr("stroke-linecap", l.StrokeLinecap)
	}
	if l.StrokeLinejoin != "" && l.StrokeLinejoin != "miter" {
		e.SetAttr("stroke-linejoin", l.StrokeLinejoin)
	}
	if l.StrokeMiterLimit != 4 {
		e.SetAttr("stroke-miterlimit", num(l.StrokeMiterLimit))
	}
	if l.FillType == EvenOdd {
		e.SetAttr("fill-rule", "evenodd")
	}

	if (l.TrimPathStart != 0 || l.TrimPathEnd != 1 || l.TrimPathOffset != 0) && l.Path != nil {
		length := l.Path.Length()
		if xform.A != 1 || xform.D != 1 {
			// Scaling changes arc length, so remeasure the
			// transformed geometry.
			length = l.Path.Transformed(xform).Length()
		}
		dashArray, dashOffset := trimToDash(
			l.TrimPathStart, l.TrimPathEnd, l.TrimPathOffset, length)
		e.SetAttr("stroke-dasharray", dashArray)
		e.SetAttr("stroke-dashoffset", dashOffset)
	}
	return e
}

func (ex *exporter) setID(e *Element, name string) {
	if !ex.omitIDs && name != "" {
		e.SetAttr("id", name)
	}
}

// groupTransform builds the transform attribute value: translate,
// then rotate about the pivot, then the pivot-compensated scale
// sequence. The order matches the decompose-at-pivot convention and
// must not change. An empty string means every component was at its
// default.
func groupTransform(g *GroupLayer) string {
	var parts []string
	if g.TranslateX != 0 || g.TranslateY != 0 {
		parts = append(parts, "translate("+num(g.TranslateX)+" "+num(g.TranslateY)+")")
	}
	if g.Rotation != 0 {
		parts = append(parts, "rotate("+num(g.Rotation)+" "+num(g.PivotX)+" "+num(g.PivotY)+")")
	}
	if g.ScaleX != 1 || g.ScaleY != 1 {
		hasPivot := g.PivotX != 0 || g.PivotY != 0
		if hasPivot {
			parts = append(parts, "translate("+num(g.PivotX)+" "+num(g.PivotY)+")")
		}
		parts = append(parts, "scale("+num(g.ScaleX)+" "+num(g.ScaleY)+")")
		if hasPivot {
			parts = append(parts, "translate("+num(-g.PivotX)+" "+num(-g.PivotY)+")")
		}
	}
	return strings.Join(parts, " ")
}

// FlattenTransform composes the transforms of every group on the
// chain from the root to the layer with the given id, outermost
// ancestor first: the same matrix the walker accumulates while
// exporting, recomputed for a caller that holds only an id. A
// missing id yields the identity.
func FlattenTransform(root *VectorLayer, layerID string) Matrix2D {
	m := Identity
	for _, l := range layerChain(Layer(root), layerID) {
		if g, ok := l.(*GroupLayer); ok {
			m = m.Mult(g.transform())
		}
	}
	return m
}

// layerChain returns the layers from root down to and including the
// layer with the given id, or nil when the tree does not contain it.
func layerChain(l Layer, id string) []Layer {
	if l.layerID() == id {
		return []Layer{l}
	}
	for _, c := range l.childLayers() {
		if tail := layerChain(c, id); tail != nil {
			return append([]Layer{l}, tail...)
		}
	}
	return nil
}

// transform is the group's matrix composed exactly as groupTransform
// emits it.
func (g *GroupLayer) transform() Matrix2D {
	m := Identity.Translate(g.TranslateX, g.TranslateY)
	m = m.Translate(g.PivotX, g.PivotY).
		Rotate(g.Rotation * math.Pi / 180).
		Translate(-g.PivotX, -g.PivotY)
	m = m.Translate(g.PivotX, g.PivotY).
		Scale(g.ScaleX, g.ScaleY).
		Translate(-g.PivotX, -g.PivotY)
	return m
}

// cssColor converts a color to CSS hex. Opacity travels in the
// *-opacity attributes, so the alpha channel is not encoded here.
func cssColor(c color.Color) string {
	nrgba := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", nrgba.R, nrgba.G, nrgba.B)
}
