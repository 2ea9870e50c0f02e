// Copyright 2022 The vdsvg Authors. All rights reserved.
//
// xmlout.go is a minimal XML output tree: ordered attributes, nested
// elements, and an indenting printer. encoding/xml handles escaping;
// marshalling is by hand because the attribute set of each element is
// decided at runtime and must keep its insertion order.
package vdsvg

import (
	"bytes"
	"encoding/xml"
	"strings"
)

// Element is one node of the output document.
type Element struct {
	Name     string
	Attr     []xml.Attr
	Children []*Element
}

func NewElement(name string) *Element {
	return &Element{Name: name}
}

// SetAttr sets an attribute, replacing an earlier value of the same
// name and otherwise appending.
func (e *Element) SetAttr(name, value string) {
	for i := range e.Attr {
		if e.Attr[i].Name.Local == name {
			e.Attr[i].Value = value
			return
		}
	}
	e.Attr = append(e.Attr, xml.Attr{Name: xml.Name{Local: name}, Value: value})
}

// Append adds a child element and returns it.
func (e *Element) Append(child *Element) *Element {
	e.Children = append(e.Children, child)
	return child
}

// Printer renders an Element tree as indented markup. Indent is the
// number of spaces per nesting level; a negative Indent renders flat
// (one element per line, no leading spaces). When WrapAttrs is
// non-zero and an element carries more than WrapAttrs attributes,
// each attribute is printed on its own line one level deeper.
type Printer struct {
	Indent    int
	WrapAttrs int
}

func (pr Printer) Print(e *Element) string {
	var b strings.Builder
	pr.print(&b, e, 0)
	return b.String()
}

func (pr Printer) print(b *strings.Builder, e *Element, depth int) {
	pad := pr.pad(depth)
	b.WriteString(pad)
	b.WriteByte('<')
	b.WriteString(e.Name)

	wrap := pr.WrapAttrs > 0 && len(e.Attr) > pr.WrapAttrs
	attrPad := pr.pad(depth + 1)
	for _, attr := range e.Attr {
		if wrap {
			b.WriteByte('\n')
			b.WriteString(attrPad)
		} else {
			b.WriteByte(' ')
		}
		b.WriteString(attr.Name.Local)
		b.WriteString(`="`)
		b.WriteString(escape(attr.Value))
		b.WriteByte('"')
	}

	if len(e.Children) == 0 {
		b.WriteString("/>\n")
		return
	}
	b.WriteString(">\n")
	for _, c := range e.Children {
		pr.print(b, c, depth+1)
	}
	b.WriteString(pad)
	b.WriteString("</")
	b.WriteString(e.Name)
	b.WriteString(">\n")
}

func (pr Printer) pad(depth int) string {
	if pr.Indent <= 0 {
		return ""
	}
	return strings.Repeat(" ", depth*pr.Indent)
}

func escape(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
