package grammar

// RFC 1035 fragments used by the strict domain grammar.
var (
	// Letter is an ASCII letter.
	Letter = Class(Span('a', 'z'), Span('A', 'Z'))

	// Digit is an ASCII digit.
	Digit = Class(Span('0', '9'))

	// LetDig is an ASCII letter or digit.
	LetDig = Class(Span('a', 'z'), Span('A', 'Z'), Span('0', '9'))

	// Label starts and ends with a letter or digit and may hold hyphens
	// in between. A single letter or digit is a valid label.
	Label = Seq(LetDig, Opt(Seq(Star(Class(Span('a', 'z'), Span('A', 'Z'), Span('0', '9'), Byte(hyphen))), LetDig)))

	// StrictDomain is one or more dot separated labels.
	StrictDomain = dotted(Label)
)
