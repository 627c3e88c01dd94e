package style

import (
	"strconv"
	"strings"
)

// This file defines unit-safe types and helpers for CSS lengths and line-height.

// Unit represents the original unit of a length value as written in a style
// declaration.
type Unit int

const (
	UnitNone    Unit = iota // unit-less numbers like line-height factors
	UnitPx                  // CSS pixels
	UnitPt                  // points (1pt = 4/3 px)
	UnitEm                  // relative to the element font size
	UnitRem                 // relative to the root font size (16px)
	UnitPercent             // relative to a caller-provided reference
)

// Conversion constants between pt and px (CSS reference pixel).
const (
	PtToPx = 4.0 / 3.0
	PxToPt = 1.0 / PtToPx
)

// RootFontSize is the assumed root font size for rem resolution.
const RootFontSize = 16.0

// UnitToString returns a short string for a Unit value.
func UnitToString(u Unit) string {
	switch u {
	case UnitPx:
		return "px"
	case UnitPt:
		return "pt"
	case UnitEm:
		return "em"
	case UnitRem:
		return "rem"
	case UnitPercent:
		return "%"
	case UnitNone:
		return ""
	default:
		return ""
	}
}

// Length preserves a numeric value with its unit.
type Length struct {
	Value float64 `json:"value"`
	Unit  Unit    `json:"unit"`
}

func (l Length) IsZero() bool { return l.Value == 0 }

// ToPx resolves the length to CSS pixels. fontSize supplies the base for
// em values, reference the base for percentages; both may be zero when the
// caller knows the unit cannot be relative.
func (l Length) ToPx(fontSize, reference float64) float64 {
	switch l.Unit {
	case UnitPx, UnitNone:
		return l.Value
	case UnitPt:
		return l.Value * PtToPx
	case UnitEm:
		return l.Value * fontSize
	case UnitRem:
		return l.Value * RootFontSize
	case UnitPercent:
		return l.Value / 100 * reference
	}
	return l.Value
}

// ParseLength parses a CSS length string preserving its unit. Malformed
// input yields a zero unit-less length.
func ParseLength(value string) Length {
	v := strings.TrimSpace(strings.ToLower(value))
	if v == "" {
		return Length{}
	}
	unit := UnitNone
	num := v
	for _, suf := range []struct {
		s string
		u Unit
	}{{"rem", UnitRem}, {"em", UnitEm}, {"px", UnitPx}, {"pt", UnitPt}, {"%", UnitPercent}} {
		if strings.HasSuffix(v, suf.s) {
			unit = suf.u
			num = strings.TrimSpace(strings.TrimSuffix(v, suf.s))
			break
		}
	}
	f, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return Length{}
	}
	return Length{Value: f, Unit: unit}
}

// LineHeightKind distinguishes factor-based vs absolute line-height
// specification.
type LineHeightKind int

const (
	LineHeightUnset LineHeightKind = iota
	LineHeightFactor
	LineHeightAbsolute
)

// LineHeightSpec preserves original author intent: either a factor
// (e.g. 1.2) or an absolute length (e.g. 22px).
type LineHeightSpec struct {
	Kind   LineHeightKind `json:"kind"`
	Factor float64        `json:"factor,omitempty"`
	Len    Length         `json:"len,omitempty"`
}

// Resolve computes the absolute line height in px for the given font size.
// Unset or non-positive specs fall back to fontSize * 1.4.
func (s LineHeightSpec) Resolve(fontSize float64) float64 {
	switch s.Kind {
	case LineHeightFactor:
		if s.Factor > 0 {
			return fontSize * s.Factor
		}
	case LineHeightAbsolute:
		if px := s.Len.ToPx(fontSize, fontSize); px > 0 {
			return px
		}
	}
	return fontSize * 1.4
}

// ParseLineHeight interprets a line-height declaration value: a bare number
// is a factor, anything else an absolute length.
func ParseLineHeight(value string) LineHeightSpec {
	v := strings.TrimSpace(value)
	if v == "" || strings.EqualFold(v, "normal") {
		return LineHeightSpec{}
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return LineHeightSpec{Kind: LineHeightFactor, Factor: f}
	}
	l := ParseLength(v)
	if l.Unit == UnitNone && l.Value == 0 {
		return LineHeightSpec{}
	}
	return LineHeightSpec{Kind: LineHeightAbsolute, Len: l}
}
