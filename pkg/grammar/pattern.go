package grammar

import (
	"fmt"
	"regexp"
	"strings"
)

// Range is an inclusive byte range used inside a character class.
type Range struct {
	Lo byte
	Hi byte
}

// Byte returns a range matching exactly one byte.
func Byte(b byte) Range {
	return Range{Lo: b, Hi: b}
}

// Span returns a range matching every byte from lo to hi inclusive.
// Panics when lo > hi since grammars are built at init time.
func Span(lo, hi byte) Range {
	if lo > hi {
		panic(fmt.Sprintf("grammar: invalid byte span %#02x-%#02x", lo, hi))
	}
	return Range{Lo: lo, Hi: hi}
}

func (r Range) source() string {
	if r.Lo == r.Hi {
		return hexByte(r.Lo)
	}
	return hexByte(r.Lo) + "-" + hexByte(r.Hi)
}

// Pattern is an immutable matching rule written over the Latin-1 view of
// a candidate, where every byte 0x00-0xFF is the rune U+0000-U+00FF.
// Patterns are combined with Seq, Alt, Star, Plus, Opt and Capture.
type Pattern struct {
	expr string
	// atomic reports whether expr can take a quantifier without grouping.
	atomic bool
}

// String returns the regexp source of the pattern.
func (p Pattern) String() string {
	return p.expr
}

// Compile compiles the pattern without anchors, so it matches anywhere
// inside the input.
func (p Pattern) Compile() *regexp.Regexp {
	return regexp.MustCompile(p.expr)
}

// Anchored compiles the pattern so that it only matches the whole input.
func (p Pattern) Anchored() *regexp.Regexp {
	return regexp.MustCompile(`\A(?:` + p.expr + `)\z`)
}

// Class matches a single byte that falls in any of the given ranges.
func Class(ranges ...Range) Pattern {
	return Pattern{expr: "[" + rangesSource(ranges) + "]", atomic: true}
}

// NotClass matches a single byte that falls in none of the given ranges.
func NotClass(ranges ...Range) Pattern {
	return Pattern{expr: "[^" + rangesSource(ranges) + "]", atomic: true}
}

// Lit matches exactly the given byte.
func Lit(b byte) Pattern {
	return Pattern{expr: hexByte(b), atomic: true}
}

// Seq matches each pattern in order.
func Seq(ps ...Pattern) Pattern {
	if len(ps) == 1 {
		return ps[0]
	}
	var b strings.Builder
	for _, p := range ps {
		// Alt always groups, so plain concatenation keeps precedence.
		b.WriteString(p.expr)
	}
	return Pattern{expr: b.String()}
}

// Alt matches any one of the given patterns.
func Alt(ps ...Pattern) Pattern {
	if len(ps) == 1 {
		return ps[0]
	}
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = p.expr
	}
	return Pattern{expr: group(strings.Join(parts, "|")), atomic: true}
}

// Star matches zero or more repetitions of p.
func Star(p Pattern) Pattern {
	return Pattern{expr: quantifiable(p) + "*"}
}

// Plus matches one or more repetitions of p.
func Plus(p Pattern) Pattern {
	return Pattern{expr: quantifiable(p) + "+"}
}

// Opt matches p or nothing.
func Opt(p Pattern) Pattern {
	return Pattern{expr: quantifiable(p) + "?"}
}

// Capture wraps p in a numbered capturing group.
func Capture(p Pattern) Pattern {
	return Pattern{expr: "(" + p.expr + ")", atomic: true}
}

func quantifiable(p Pattern) string {
	if p.atomic {
		return p.expr
	}
	return group(p.expr)
}

func group(expr string) string {
	return "(?:" + expr + ")"
}

func rangesSource(ranges []Range) string {
	if len(ranges) == 0 {
		panic("grammar: character class needs at least one range")
	}
	var b strings.Builder
	for _, r := range ranges {
		b.WriteString(r.source())
	}
	return b.String()
}

func hexByte(b byte) string {
	return fmt.Sprintf(`\x%02x`, b)
}
