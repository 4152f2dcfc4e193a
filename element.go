// Copyright 2015 Alex Browne and Soroush Pour.
// Allrights reserved. Use of this source code is
// governed by the MIT license, which can be found
// in the LICENSE file.

package element

import (
	"strings"

	"honnef.co/go/js/dom"
)

const uidProperty = "domElementUID"

var (
	window   = dom.GetWindow()
	document = window.Document()
	nextUID  = 1
)

// Options describes the initial state of an element created with Create.
// Zero-valued fields are left alone.
type Options struct {
	Text       string
	ID         string
	Classes    []string
	Attributes map[string]string
	Styles     map[string]string
	Events     map[string]*Listener
}

// Create creates a new element with the given tag name and applies opts to
// it. The element is not inserted into the DOM. opts may be nil.
func Create(tagName string, opts *Options) dom.Element {
	el := document.CreateElement(tagName)
	UID(el)
	if opts == nil {
		return el
	}
	if opts.Text != "" {
		el.SetTextContent(opts.Text)
	}
	if opts.ID != "" {
		el.SetAttribute("id", opts.ID)
	}
	if len(opts.Classes) > 0 {
		el.SetAttribute("class", strings.Join(opts.Classes, " "))
	}
	for name, value := range opts.Attributes {
		el.SetAttribute(name, value)
	}
	if opts.Styles != nil {
		SetStyles(el, opts.Styles)
	}
	if opts.Events != nil {
		AddEvents(el, opts.Events)
	}
	return el
}

// UID returns the numeric identifier of el, assigning one the first time it
// is asked for. Identifiers start at 1 and are never reused.
func UID(el dom.Element) int {
	obj := el.Underlying()
	if v := obj.Get(uidProperty); !isUndefined(v) {
		return v.Int()
	}
	id := nextUID
	nextUID++
	obj.Set(uidProperty, id)
	return id
}

// Replace replaces target with el using the replaceChild method from the
// DOM API.
func Replace(el dom.Element, target dom.Element) {
	target.ParentNode().ReplaceChild(el, target)
}

// Clear removes every child node of el.
func Clear(el dom.Element) {
	for child := el.FirstChild(); child != nil; child = el.FirstChild() {
		el.RemoveChild(child)
	}
}

// Remove removes el from its parent. Listeners registered with AddEvent stay
// attached, so el can be inserted again later. It has no effect if el has no
// parent.
func Remove(el dom.Element) {
	if parent := el.ParentNode(); parent != nil {
		parent.RemoveChild(el)
	}
}

// Destroy removes all listeners registered on el and its descendants and then
// removes el from the DOM.
func Destroy(el dom.Element) {
	RemoveAllEvents(el)
	events.Forget(UID(el))
	children := el.Underlying().Get("children")
	for i := children.Length() - 1; i >= 0; i-- {
		Destroy(dom.WrapElement(children.Index(i)))
	}
	Remove(el)
}

// Prepend inserts el as the first child of target.
func Prepend(el dom.Element, target dom.Element) {
	target.InsertBefore(el, target.FirstChild())
}

// Append inserts el as the last child of target using the appendChild method
// from the DOM API.
func Append(el dom.Element, target dom.Element) {
	target.AppendChild(el)
}

// Before inserts el directly before target. It has no effect if target has
// no parent.
func Before(el dom.Element, target dom.Element) {
	if parent := target.ParentNode(); parent != nil {
		parent.InsertBefore(el, target)
	}
}

// After inserts el directly after target. It has no effect if target has no
// parent.
func After(el dom.Element, target dom.Element) {
	if parent := target.ParentNode(); parent != nil {
		parent.InsertBefore(el, target.NextSibling())
	}
}
