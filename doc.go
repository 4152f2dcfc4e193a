// Package element is a small library of DOM helpers written in pure go which
// compiles to javascript via gopherjs (github.com/gopherjs/gopherjs). It
// operates directly on dom.Element values from honnef.co/go/js/dom and
// includes helpers for creating elements from declarative options, moving
// them around the tree (Append, Before, Replace, Destroy, etc.), keeping
// track of the event listeners attached to them, and reading their size,
// position and styles. Transition and animation events are mapped to the
// vendor-prefixed names the running browser expects.
//
// Version X.X.X (develop)
//
// For the full source code and more information visit
// https://github.com/go-humble/element.
package element
