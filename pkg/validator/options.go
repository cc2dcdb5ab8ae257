package validator

// Event names a record lifecycle event an email validation is scoped to.
type Event string

const (
	// OnSave runs the validation on every save. It is the default.
	OnSave   Event = "save"
	OnCreate Event = "create"
	OnUpdate Event = "update"
)

// Condition is a host supplied predicate evaluated on every validation.
type Condition func() bool

// Range is an inclusive length range used by Options.Within and Options.In.
type Range struct {
	Min int
	Max int
}

// Options is the declaration schema of an email validation. Zero values
// mean "not configured".
type Options struct {
	// WrongFormat overrides the message used when the format check fails.
	WrongFormat string
	// Strict selects the RFC 1035 domain grammar. Nil means true.
	Strict *bool

	Minimum *int
	Maximum *int
	Is      *int
	Within  *Range
	// In is a synonym of Within.
	In *Range

	TooLong     string
	TooShort    string
	WrongLength string

	// Tokenizer splits values into counted units. Characters when nil.
	Tokenizer Tokenizer

	AllowNil   bool
	AllowBlank bool

	// On limits the validation to one lifecycle event. Empty means OnSave.
	On     Event
	If     Condition
	Unless Condition
}

// Option keys accepted by ResolveMap.
const (
	KeyOptWrongFormat = "wrong_format"
	KeyOptStrict      = "strict"
	KeyOptMinimum     = "minimum"
	KeyOptMaximum     = "maximum"
	KeyOptIs          = "is"
	KeyOptWithin      = "within"
	KeyOptIn          = "in"
	KeyOptTooLong     = "too_long"
	KeyOptTooShort    = "too_short"
	KeyOptWrongLength = "wrong_length"
	KeyOptTokenizer   = "tokenizer"
	KeyOptAllowNil    = "allow_nil"
	KeyOptAllowBlank  = "allow_blank"
	KeyOptOn          = "on"
	KeyOptIf          = "if"
	KeyOptUnless      = "unless"
)

// OptionKeys lists every key accepted by ResolveMap.
var OptionKeys = []string{
	KeyOptWrongFormat, KeyOptStrict,
	KeyOptMinimum, KeyOptMaximum, KeyOptIs, KeyOptWithin, KeyOptIn,
	KeyOptTooLong, KeyOptTooShort, KeyOptWrongLength,
	KeyOptTokenizer, KeyOptAllowNil, KeyOptAllowBlank,
	KeyOptOn, KeyOptIf, KeyOptUnless,
}

// Bool returns a pointer to b, for Options.Strict.
func Bool(b bool) *bool { return &b }

// Int returns a pointer to n, for the length options.
func Int(n int) *int { return &n }
