// Package grammar builds the byte level patterns that define a legal
// electronic mail address.
//
// Two grammars are provided. General follows the RFC 822 addr-spec: a
// local-part of dot separated words (atoms or quoted strings), "@", and a
// domain of dot separated atoms or bracketed domain literals. Strict keeps
// the same local-part but requires an RFC 1035 domain: labels made of ASCII
// letters and digits, with hyphens allowed only between them.
//
// # Architecture
//
// Every fragment of the grammars (QText, Atom, QuotedString, DomainLiteral,
// Label, ...) is a named Pattern built with a handful of combinators:
// Class, NotClass, Lit, Seq, Alt, Star, Plus, Opt and Capture. A Pattern is
// regexp source, so any fragment can be compiled and tested on its own.
//
// The grammars are defined over bytes, not over Unicode code points. Go's
// regexp engine works on UTF-8, so candidates are matched through their
// Latin-1 view: Latin1 maps byte 0xNN to rune U+00NN, which makes a class
// such as [^\x80-\xff] reject every non-ASCII byte of the original input.
//
// Both grammars are compiled once during package initialisation and are
// never modified afterwards. The compiled *regexp.Regexp values are safe for
// concurrent use, so Lookup can be called from any goroutine without locks.
//
// # Usage
//
//	g := grammar.Lookup(true)
//	ok := g.Match(grammar.Latin1("john@example.com"))
//
//	local, domain, ok := g.Split(grammar.Latin1(`"J. Smith"@example.com`))
//
// Most callers should use package address, which hides the Latin-1 view.
package grammar
