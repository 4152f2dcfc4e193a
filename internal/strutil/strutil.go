// Copyright 2015 Alex Browne and Soroush Pour.
// Allrights reserved. Use of this source code is
// governed by the MIT license, which can be found
// in the LICENSE file.

// Package strutil holds the small string and number helpers used to build
// vendor-prefixed CSS property names and to read pixel values.
package strutil

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// CapitalizeFirstLetter returns s with its first rune upper-cased.
func CapitalizeFirstLetter(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// Dasherize converts a camelCase property name into its dashed CSS form,
// e.g. "webkitTransitionDuration" becomes "webkit-transition-duration" and
// "-webkitTransform" becomes "-webkit-transform".
func Dasherize(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)
	for i, r := range s {
		switch {
		case unicode.IsUpper(r):
			if i > 0 && s[i-1] != '-' {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
		case r == '_' || unicode.IsSpace(r):
			b.WriteByte('-')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// MaxParsedInt is the largest magnitude ParseInt returns. It fits the 32-bit
// int used by gopherjs.
const MaxParsedInt = 1<<31 - 1

// ParseInt reads a leading integer the way CSS values are usually read:
// leading whitespace and an optional sign are accepted, and parsing stops at
// the first non-digit. "12px" gives 12, "-3.7em" gives -3, and anything
// without leading digits gives 0. Values beyond MaxParsedInt are clamped to
// ±MaxParsedInt.
func ParseInt(s string) int {
	s = strings.TrimSpace(s)
	neg := false
	if s != "" && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			break
		}
		d := int(c - '0')
		if n > (MaxParsedInt-d)/10 {
			n = MaxParsedInt
			break
		}
		n = n*10 + d
	}
	if neg {
		return -n
	}
	return n
}
