package grammar

import (
	"regexp"

	"golang.org/x/text/encoding/charmap"
)

// Name identifies one of the address grammars.
type Name string

const (
	// General is the RFC 822 addr-spec: local-part "@" domain, where the
	// domain may hold atoms and domain literals.
	General Name = "general"
	// Strict uses the RFC 822 local-part with an RFC 1035 domain: labels of
	// letters, digits and interior hyphens, no domain literals.
	Strict Name = "strict"
)

// Grammar is a compiled, immutable address grammar. All methods take the
// Latin-1 view of a candidate (see Latin1) and are safe for concurrent use.
type Grammar struct {
	name      Name
	localPart *regexp.Regexp
	domain    *regexp.Regexp
	address   *regexp.Regexp
}

var (
	general = compile(General, Domain)
	strict  = compile(Strict, StrictDomain)
)

func compile(name Name, domain Pattern) *Grammar {
	return &Grammar{
		name:      name,
		localPart: LocalPart.Anchored(),
		domain:    domain.Anchored(),
		address:   addrSpec(domain).Anchored(),
	}
}

// Lookup returns the strict grammar when strict is true and the general
// grammar otherwise.
func Lookup(strictDomain bool) *Grammar {
	if strictDomain {
		return strict
	}
	return general
}

// Name returns the grammar name.
func (g *Grammar) Name() Name { return g.name }

// Match reports whether the whole view is a legal address.
func (g *Grammar) Match(view string) bool {
	return g.address.MatchString(view)
}

// MatchLocalPart reports whether the whole view is a legal local-part.
func (g *Grammar) MatchLocalPart(view string) bool {
	return g.localPart.MatchString(view)
}

// MatchDomain reports whether the whole view is a legal domain.
func (g *Grammar) MatchDomain(view string) bool {
	return g.domain.MatchString(view)
}

// Split returns the local-part and domain of a legal address view.
// ok is false when the view does not match.
func (g *Grammar) Split(view string) (localPart, domain string, ok bool) {
	m := g.address.FindStringSubmatch(view)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}

// AddressPattern returns the source of the anchored address pattern.
func (g *Grammar) AddressPattern() string {
	return g.address.String()
}

// LocalPartPattern returns the source of the anchored local-part pattern.
func (g *Grammar) LocalPartPattern() string {
	return g.localPart.String()
}

// DomainPattern returns the source of the anchored domain pattern.
func (g *Grammar) DomainPattern() string {
	return g.domain.String()
}

// Latin1 maps every byte of s to the rune with the same value, so that
// byte ranges in patterns apply to raw bytes and not to UTF-8 code points.
func Latin1(s string) string {
	// ISO-8859-1 decodes every byte, the error is always nil.
	view, _ := charmap.ISO8859_1.NewDecoder().String(s)
	return view
}

// FromLatin1 turns a Latin-1 view back into the original bytes.
func FromLatin1(view string) string {
	raw, err := charmap.ISO8859_1.NewEncoder().String(view)
	if err != nil {
		return view
	}
	return raw
}
