// Package address recognises electronic mail addresses using the grammars
// from package grammar. Matching is done on raw bytes and always covers the
// whole candidate.
package address

import "github.com/dmitrymomot/emailaddr/pkg/grammar"

// Address holds the two parts of a recognised address, as raw bytes of the
// original candidate.
type Address struct {
	LocalPart string
	Domain    string
}

// String joins the parts back with "@".
func (a Address) String() string {
	return a.LocalPart + "@" + a.Domain
}

// Recognize reports whether candidate is a legal address. The strict
// grammar (RFC 1035 domain) is used when strict is true, the general
// RFC 822 grammar otherwise. Empty input is never legal.
func Recognize(candidate string, strict bool) bool {
	if candidate == "" {
		return false
	}
	return grammar.Lookup(strict).Match(grammar.Latin1(candidate))
}

// Parse is like Recognize but also returns the matched local-part and
// domain.
func Parse(candidate string, strict bool) (Address, bool) {
	if candidate == "" {
		return Address{}, false
	}
	local, domain, ok := grammar.Lookup(strict).Split(grammar.Latin1(candidate))
	if !ok {
		return Address{}, false
	}
	return Address{
		LocalPart: grammar.FromLatin1(local),
		Domain:    grammar.FromLatin1(domain),
	}, true
}
