// Copyright 2015 Alex Browne and Soroush Pour.
// Allrights reserved. Use of this source code is
// governed by the MIT license, which can be found
// in the LICENSE file.

package element

import (
	"strings"

	"github.com/go-humble/element/internal/strutil"
	"github.com/go-humble/element/internal/vendor"
	"github.com/gopherjs/gopherjs/js"
	"honnef.co/go/js/dom"
)

var (
	// scratch style declaration used to probe for supported properties
	dummyStyle = document.CreateElement("div").Underlying().Get("style")
	vendors    = vendor.NewDetector(func(property string) bool {
		return !isUndefined(dummyStyle.Get(property))
	})
)

var (
	// CSSTransitionSupported reports whether the browser supports CSS
	// transitions, with or without a vendor prefix.
	CSSTransitionSupported = supported("transition")
	// CSSTransformSupported reports whether the browser supports CSS
	// transforms, with or without a vendor prefix.
	CSSTransformSupported = supported("transform")
)

func supported(property string) bool {
	_, ok := vendors.Prefix(property)
	return ok
}

// SupportedVendorProperty returns the name under which the browser supports
// property, e.g. "webkitTransform" for "transform" on older WebKit. ok is
// false if no variant is supported.
func SupportedVendorProperty(property string) (name string, ok bool) {
	return vendors.Property(property)
}

// SupportedVendorPrefix is like SupportedVendorProperty but only returns the
// prefix ("" for the standard property).
func SupportedVendorPrefix(property string) (prefix string, ok bool) {
	return vendors.Prefix(property)
}

func style(el dom.Element) *dom.CSSStyleDeclaration {
	return &dom.CSSStyleDeclaration{Object: el.Underlying().Get("style")}
}

// SetStyles sets the inline styles of el. Keys are camelCase property names
// as used by the style object (e.g. "borderLeftWidth").
func SetStyles(el dom.Element, styles map[string]string) {
	s := style(el)
	for property, value := range styles {
		s.Set(property, value)
	}
}

// SetVendorStyles is like SetStyles, but every property is first mapped to
// the variant the browser supports. Unsupported properties are skipped.
func SetVendorStyles(el dom.Element, styles map[string]string) {
	s := style(el)
	for property, value := range styles {
		if name, ok := vendors.Property(property); ok {
			s.Set(name, value)
		}
	}
}

// GetStyle returns the inline value of property, falling back to the
// computed value if no inline value is set.
func GetStyle(el dom.Element, property string) string {
	if value := stringProperty(style(el).Object, property); value != "" {
		return value
	}
	computed := window.GetComputedStyle(el, "")
	return stringProperty(computed.Object, property)
}

// GetStyleInt is like GetStyle but parses the leading integer of the value,
// so "12px" gives 12. Values without one give 0.
func GetStyleInt(el dom.Element, property string) int {
	return strutil.ParseInt(GetStyle(el, property))
}

// SetVendorStyle sets property on el together with its webkit, moz and ms
// variants.
func SetVendorStyle(el dom.Element, property string, value string) {
	s := style(el)
	upper := strutil.CapitalizeFirstLetter(property)
	for _, prefix := range []string{"webkit", "moz", "ms"} {
		s.Set(prefix+upper, value)
	}
	s.Set(property, value)
}

// RemoveVendorStyle removes property and its -webkit-, -moz- and -ms-
// variants from the inline styles of el.
func RemoveVendorStyle(el dom.Element, property string) {
	s := style(el)
	upper := strutil.CapitalizeFirstLetter(property)
	for _, prefix := range []string{"-webkit", "-moz", "-ms"} {
		s.RemoveProperty(strutil.Dasherize(prefix + upper))
	}
	s.RemoveProperty(strutil.Dasherize(property))
}

// Hide appends "display:none" to the style attribute of el, keeping whatever
// inline styles were already there. Calling it on a hidden element does
// nothing.
func Hide(el dom.Element) {
	current := el.GetAttribute("style")
	if strings.Contains(current, hidden) {
		return
	}
	switch {
	case current == "":
		el.SetAttribute("style", hidden)
	case strings.HasSuffix(current, ";"):
		el.SetAttribute("style", current+hidden+";")
	default:
		el.SetAttribute("style", current+";"+hidden+";")
	}
}

// Show undoes Hide. Only the "display:none" declaration is taken out of the
// style attribute.
func Show(el dom.Element) {
	current := el.GetAttribute("style")
	shown := strings.Replace(current, hidden+";", "", 1)
	if shown == current {
		shown = strings.Replace(current, hidden, "", 1)
	}
	if shown != current {
		el.SetAttribute("style", shown)
	}
}

const hidden = "display:none"

func stringProperty(o *js.Object, name string) string {
	v := o.Get(name)
	if isUndefined(v) {
		return ""
	}
	return v.String()
}
