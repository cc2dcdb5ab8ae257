package validator

import "strings"

// Config is a resolved email validation declaration. It is produced by a
// Resolver and never changes; resolve new Options to reconfigure.
type Config struct {
	wrongFormat string
	strict      bool
	bounds      LengthBounds
	messages    Messages
	tokenizer   Tokenizer
	allowNil    bool
	allowBlank  bool
	on          Event
	ifCond      Condition
	unlessCond  Condition
}

// WrongFormat returns the message used when the format check fails.
func (c Config) WrongFormat() string { return c.wrongFormat }

// Strict reports whether the strict domain grammar is used.
func (c Config) Strict() bool { return c.strict }

// Bounds returns the length limits that are checked.
func (c Config) Bounds() LengthBounds { return c.bounds }

// Messages returns the resolved message table, overrides included.
func (c Config) Messages() Messages { return c.messages }

// Tokenizer returns the tokenizer used by the length check. Nil means
// Characters.
func (c Config) Tokenizer() Tokenizer { return c.tokenizer }

// AllowNil reports whether an absent value skips validation.
func (c Config) AllowNil() bool { return c.allowNil }

// AllowBlank reports whether an empty or white space value skips validation.
func (c Config) AllowBlank() bool { return c.allowBlank }

// On returns the lifecycle event the validation is scoped to.
func (c Config) On() Event { return c.on }

// ActiveOn reports whether the validation runs for event. A validation
// scoped to OnSave runs for every event.
func (c Config) ActiveOn(event Event) bool {
	return c.on == OnSave || c.on == event
}

// skip reports whether the skip rules exclude candidate. An absent value
// counts as blank.
func (c Config) skip(candidate *string) bool {
	switch {
	case candidate == nil && (c.allowNil || c.allowBlank):
		return true
	case candidate != nil && c.allowBlank && strings.TrimSpace(*candidate) == "":
		return true
	case c.ifCond != nil && !c.ifCond():
		return true
	case c.unlessCond != nil && c.unlessCond():
		return true
	}
	return false
}
