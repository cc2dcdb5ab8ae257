package grammar

// Byte values used by the address grammars.
const (
	cr           byte = 0x0d
	space        byte = 0x20
	doubleQuote  byte = 0x22
	openParen    byte = 0x28
	closeParen   byte = 0x29
	comma        byte = 0x2c
	hyphen       byte = 0x2d
	dot          byte = 0x2e
	colon        byte = 0x3a
	lessThan     byte = 0x3c
	greaterThan  byte = 0x3e
	at           byte = 0x40
	openBracket  byte = 0x5b
	backslash    byte = 0x5c
	closeBracket byte = 0x5d
	del          byte = 0x7f
)

// RFC 822 fragments. Each one is an independent Pattern and can be compiled
// and matched on its own.
var (
	// QText is any byte except CR, double quote, backslash and 0x80-0xFF.
	QText = NotClass(Byte(cr), Byte(doubleQuote), Byte(backslash), Span(0x80, 0xff))

	// DText is any byte except CR, square brackets, backslash and 0x80-0xFF.
	DText = NotClass(Byte(cr), Span(openBracket, closeBracket), Span(0x80, 0xff))

	// AtomChar is any byte except controls, space, specials and 0x7F-0xFF.
	AtomChar = NotClass(
		Span(0x00, space),
		Byte(doubleQuote),
		Byte(openParen), Byte(closeParen),
		Byte(comma), Byte(dot),
		Span(colon, lessThan),
		Byte(greaterThan), Byte(at),
		Span(openBracket, closeBracket),
		Span(del, 0xff),
	)

	// Atom is a run of one or more atom characters.
	Atom = Plus(AtomChar)

	// QuotedPair is a backslash followed by any 7-bit byte.
	QuotedPair = Seq(Lit(backslash), Class(Span(0x00, 0x7f)))

	// QuotedString is a double-quoted run of qtext and quoted pairs.
	QuotedString = Seq(Lit(doubleQuote), Star(Alt(QText, QuotedPair)), Lit(doubleQuote))

	// DomainLiteral is a bracketed run of dtext and quoted pairs.
	DomainLiteral = Seq(Lit(openBracket), Star(Alt(DText, QuotedPair)), Lit(closeBracket))

	// Word is an atom or a quoted string.
	Word = Alt(Atom, QuotedString)

	// LocalPart is one or more dot separated words. Both grammars share it.
	LocalPart = dotted(Word)

	// SubDomain is a general domain element: an atom or a domain literal.
	SubDomain = Alt(Atom, DomainLiteral)

	// Domain is the general domain: dot separated sub-domains.
	Domain = dotted(SubDomain)
)

// dotted matches p followed by any number of "." p.
func dotted(p Pattern) Pattern {
	return Seq(p, Star(Seq(Lit(dot), p)))
}

// addrSpec captures the local-part and the domain around "@".
func addrSpec(domain Pattern) Pattern {
	return Seq(Capture(LocalPart), Lit(at), Capture(domain))
}
