package validator

import (
	"strings"

	"github.com/Code-Hex/uniseg"
)

// Default length range of an email address, inclusive.
const (
	DefaultMinLength = 3
	DefaultMaxLength = 320
)

// Tokenizer splits a value into the units that are counted by the length
// check.
type Tokenizer func(string) []string

// Characters splits s into user-perceived characters (grapheme clusters).
// It is the default tokenizer.
func Characters(s string) []string {
	var units []string
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		units = append(units, g.Str())
	}
	return units
}

// Runes splits s into Unicode code points.
func Runes(s string) []string {
	units := make([]string, 0, len(s))
	for _, r := range s {
		units = append(units, string(r))
	}
	return units
}

// Bytes splits s into single bytes.
func Bytes(s string) []string {
	units := make([]string, len(s))
	for i := range len(s) {
		units[i] = s[i : i+1]
	}
	return units
}

// Words splits s around runs of white space.
func Words(s string) []string {
	return strings.Fields(s)
}

// LengthBounds describes which length limits apply. Build it with Exactly,
// AtLeast, AtMost, Between or DefaultBounds.
type LengthBounds struct {
	min, max, exact          int
	hasMin, hasMax, hasExact bool
}

// DefaultBounds is the 3..320 range used when no length option is given.
func DefaultBounds() LengthBounds {
	return Between(DefaultMinLength, DefaultMaxLength)
}

// Exactly only checks that the length equals n.
func Exactly(n int) LengthBounds {
	return LengthBounds{exact: n, hasExact: true}
}

// AtLeast only checks the minimum length.
func AtLeast(n int) LengthBounds {
	return LengthBounds{min: n, hasMin: true}
}

// AtMost only checks the maximum length.
func AtMost(n int) LengthBounds {
	return LengthBounds{max: n, hasMax: true}
}

// Between checks both limits, inclusive.
func Between(min, max int) LengthBounds {
	return LengthBounds{min: min, max: max, hasMin: true, hasMax: true}
}

// Min returns the minimum length and whether it is checked.
func (b LengthBounds) Min() (int, bool) { return b.min, b.hasMin }

// Max returns the maximum length and whether it is checked.
func (b LengthBounds) Max() (int, bool) { return b.max, b.hasMax }

// Exact returns the exact length and whether it is checked.
func (b LengthBounds) Exact() (int, bool) { return b.exact, b.hasExact }

// IsZero reports whether no limit is set.
func (b LengthBounds) IsZero() bool {
	return !b.hasMin && !b.hasMax && !b.hasExact
}

// CountUnits returns the number of units tok splits value into.
// A nil tokenizer counts characters.
func CountUnits(value string, tok Tokenizer) int {
	if tok == nil {
		return uniseg.GraphemeClusterCount(value)
	}
	return len(tok(value))
}

// LengthRules returns the rules checking value against bounds. When an exact
// length is set only that one is checked.
func LengthRules(field, value string, bounds LengthBounds, tok Tokenizer, msgs Messages) []Rule {
	msgs = msgs.merge(DefaultMessages())
	if n, ok := bounds.Exact(); ok {
		return []Rule{ExactLength(field, value, n, tok, msgs.WrongLength)}
	}

	var rules []Rule
	if n, ok := bounds.Min(); ok {
		rules = append(rules, MinLength(field, value, n, tok, msgs.TooShort))
	}
	if n, ok := bounds.Max(); ok {
		rules = append(rules, MaxLength(field, value, n, tok, msgs.TooLong))
	}
	return rules
}

// CheckLength runs LengthRules and returns the failures, too short before
// too long.
func CheckLength(field, value string, bounds LengthBounds, tok Tokenizer, msgs Messages) ValidationErrors {
	return collect(LengthRules(field, value, bounds, tok, msgs)...)
}

// MinLength validates that value has at least min units.
func MinLength(field, value string, min int, tok Tokenizer, message string) Rule {
	return lengthRule(field, KindTooShort, KeyTooShort, min, message, DefaultMessages().TooShort, func() bool {
		return CountUnits(value, tok) >= min
	})
}

// MaxLength validates that value has at most max units.
func MaxLength(field, value string, max int, tok Tokenizer, message string) Rule {
	return lengthRule(field, KindTooLong, KeyTooLong, max, message, DefaultMessages().TooLong, func() bool {
		return CountUnits(value, tok) <= max
	})
}

// ExactLength validates that value has exactly n units.
func ExactLength(field, value string, n int, tok Tokenizer, message string) Rule {
	return lengthRule(field, KindWrongLength, KeyWrongLength, n, message, DefaultMessages().WrongLength, func() bool {
		return CountUnits(value, tok) == n
	})
}

func lengthRule(field string, kind ErrorKind, key string, bound int, message, fallback string, check func() bool) Rule {
	if message == "" {
		message = fallback
	}
	return Rule{
		Check: check,
		Error: ValidationError{
			Field:          field,
			Kind:           kind,
			Message:        formatMessage(message, bound),
			Bound:          bound,
			TranslationKey: key,
			TranslationValues: map[string]any{
				"field": field,
				"count": bound,
			},
		},
	}
}
