// Copyright 2015 Alex Browne and Soroush Pour.
// Allrights reserved. Use of this source code is
// governed by the MIT license, which can be found
// in the LICENSE file.

package element

import (
	"github.com/gopherjs/gopherjs/js"
	"honnef.co/go/js/dom"
)

// Point is a pair of pixel values. Depending on the function it holds a
// width and height, a position or a scroll offset.
type Point struct {
	X int
	Y int
}

// PositionOptions changes how Position measures an element.
type PositionOptions struct {
	// RelativeTo, if set, makes the position relative to that element
	// instead of the document.
	RelativeTo dom.Element
	// IgnoreBorder adds the element's left and top border widths, giving the
	// position of its padding box.
	IgnoreBorder bool
	// IgnoreBodyScroll leaves out the scroll offset of the body, giving the
	// position relative to the viewport.
	IgnoreBodyScroll bool
}

func body() dom.HTMLElement {
	return document.(dom.HTMLDocument).Body()
}

// isRoot reports whether el is the <html> or <body> element, which are
// measured through the viewport.
func isRoot(el dom.Element) bool {
	obj := el.Underlying()
	if obj == document.DocumentElement().Underlying() {
		return true
	}
	b := body()
	return b != nil && obj == b.Underlying()
}

// ViewportSize returns the client width and height of the document.
func ViewportSize() Point {
	html := document.DocumentElement().Underlying()
	return Point{
		X: html.Get("clientWidth").Int(),
		Y: html.Get("clientHeight").Int(),
	}
}

// PageScroll returns how far the page is scrolled.
func PageScroll() Point {
	scroll := Point{
		X: js.Global.Get("pageXOffset").Int(),
		Y: js.Global.Get("pageYOffset").Int(),
	}
	b := body()
	if b == nil {
		return scroll
	}
	if scroll.X == 0 {
		scroll.X = b.Underlying().Get("scrollLeft").Int()
	}
	if scroll.Y == 0 {
		scroll.Y = b.Underlying().Get("scrollTop").Int()
	}
	return scroll
}

// Size returns the outer width and height of el. For the <html> and <body>
// elements it returns the size of the viewport instead.
func Size(el dom.Element) Point {
	if isRoot(el) {
		return ViewportSize()
	}
	obj := el.Underlying()
	return Point{
		X: obj.Get("offsetWidth").Int(),
		Y: obj.Get("offsetHeight").Int(),
	}
}

// Scroll returns the scroll offset of el. For the <html> and <body>
// elements it returns the scroll offset of the page.
func Scroll(el dom.Element) Point {
	if isRoot(el) {
		return PageScroll()
	}
	obj := el.Underlying()
	return Point{
		X: obj.Get("scrollLeft").Int(),
		Y: obj.Get("scrollTop").Int(),
	}
}

// Position returns the position of el's border box relative to the document.
// opts may be nil.
func Position(el dom.Element, opts *PositionOptions) Point {
	if opts == nil {
		opts = &PositionOptions{}
	}
	rect := el.GetBoundingClientRect()
	pos := Point{
		X: int(rect.Left),
		Y: int(rect.Top),
	}
	if !opts.IgnoreBodyScroll {
		scroll := PageScroll()
		pos.X += scroll.X
		pos.Y += scroll.Y
	}
	if opts.RelativeTo != nil {
		relative := Position(opts.RelativeTo, nil)
		pos.X -= relative.X
		pos.Y -= relative.Y
	}
	if opts.IgnoreBorder {
		pos.X += GetStyleInt(el, "borderLeftWidth")
		pos.Y += GetStyleInt(el, "borderTopWidth")
	}
	return pos
}
