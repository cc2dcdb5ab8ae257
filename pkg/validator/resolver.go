package validator

import (
	"log/slog"
	"math"
	"slices"

	"github.com/samber/lo"

	"github.com/dmitrymomot/emailaddr/pkg/logger"
)

// Resolver turns declaration options into a Config. It holds the default
// message table and is safe for concurrent use.
type Resolver struct {
	messages Messages
	logger   *slog.Logger
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithLogger sets the logger used to report declarations. Nil is ignored.
func WithLogger(l *slog.Logger) ResolverOption {
	return func(r *Resolver) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewResolver returns a Resolver using msgs as the default message table.
// Empty entries of msgs fall back to DefaultMessages.
func NewResolver(msgs Messages, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		messages: msgs.merge(DefaultMessages()),
		logger:   logger.Discard(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var defaultResolver = NewResolver(DefaultMessages())

// Resolve resolves opts with the default English messages.
func Resolve(opts Options) (Config, error) {
	return defaultResolver.Resolve(opts)
}

// ResolveMap resolves a dynamic option map with the default English messages.
func ResolveMap(raw map[string]any) (Config, error) {
	return defaultResolver.ResolveMap(raw)
}

// Messages returns the default message table of the resolver.
func (r *Resolver) Messages() Messages {
	return r.messages
}

// Resolve validates opts and applies the defaults: strict grammar, the
// default format message and, when no length option is set, the 3..320
// range. Errors are *ConfigError values matching ErrInvalidConfig.
func (r *Resolver) Resolve(opts Options) (Config, error) {
	cfg, err := r.resolve(opts)
	if err != nil {
		r.logger.Warn("email validation config rejected", logger.Component("validator"), logger.Error(err))
		return Config{}, err
	}

	min, hasMin := cfg.bounds.Min()
	max, hasMax := cfg.bounds.Max()
	exact, hasExact := cfg.bounds.Exact()
	r.logger.Debug("email validation config resolved",
		logger.Component("validator"),
		logger.Strict(cfg.strict),
		logger.Event(string(cfg.on)),
		logger.Group("length",
			logger.OptionalInt("min", min, hasMin),
			logger.OptionalInt("max", max, hasMax),
			logger.OptionalInt("is", exact, hasExact),
		),
	)
	return cfg, nil
}

// ResolveMap resolves options given as a dynamic map keyed by the names in
// OptionKeys. Unknown keys and values of the wrong type are rejected.
func (r *Resolver) ResolveMap(raw map[string]any) (Config, error) {
	opts, err := OptionsFromMap(raw)
	if err != nil {
		r.logger.Warn("email validation config rejected", logger.Component("validator"), logger.Error(err))
		return Config{}, err
	}
	return r.Resolve(opts)
}

func (r *Resolver) resolve(opts Options) (Config, error) {
	on := opts.On
	if on == "" {
		on = OnSave
	}
	if !slices.Contains([]Event{OnSave, OnCreate, OnUpdate}, on) {
		return Config{}, configErr(KeyOptOn, "unknown event %q", on)
	}

	bounds, err := resolveBounds(opts)
	if err != nil {
		return Config{}, err
	}

	strict := true
	if opts.Strict != nil {
		strict = *opts.Strict
	}

	msgs := Messages{
		InvalidFormat: opts.WrongFormat,
		TooShort:      opts.TooShort,
		TooLong:       opts.TooLong,
		WrongLength:   opts.WrongLength,
	}.merge(r.messages)

	return Config{
		wrongFormat: msgs.InvalidFormat,
		strict:      strict,
		bounds:      bounds,
		messages:    msgs,
		tokenizer:   opts.Tokenizer,
		allowNil:    opts.AllowNil,
		allowBlank:  opts.AllowBlank,
		on:          on,
		ifCond:      opts.If,
		unlessCond:  opts.Unless,
	}, nil
}

// resolveBounds applies the precedence is > minimum/maximum/within > default.
// Within (or In) sets both sides; Minimum and Maximum override one side.
func resolveBounds(opts Options) (LengthBounds, error) {
	if opts.Within != nil && opts.In != nil {
		return LengthBounds{}, configErr(KeyOptIn, "cannot be combined with %q", KeyOptWithin)
	}
	for _, opt := range []struct {
		key string
		n   *int
	}{{KeyOptMinimum, opts.Minimum}, {KeyOptMaximum, opts.Maximum}, {KeyOptIs, opts.Is}} {
		if opt.n != nil && *opt.n < 0 {
			return LengthBounds{}, configErr(opt.key, "must not be negative, got %d", *opt.n)
		}
	}

	rangeKey, rng := KeyOptWithin, opts.Within
	if rng == nil {
		rangeKey, rng = KeyOptIn, opts.In
	}
	if rng != nil {
		if rng.Min < 0 || rng.Max < 0 {
			return LengthBounds{}, configErr(rangeKey, "must not be negative, got %d..%d", rng.Min, rng.Max)
		}
		if rng.Min > rng.Max {
			return LengthBounds{}, configErr(rangeKey, "minimum %d is greater than maximum %d", rng.Min, rng.Max)
		}
	}

	if opts.Is != nil {
		return Exactly(*opts.Is), nil
	}

	var b LengthBounds
	if rng != nil {
		b = Between(rng.Min, rng.Max)
	}
	if opts.Minimum != nil {
		b.min, b.hasMin = *opts.Minimum, true
	}
	if opts.Maximum != nil {
		b.max, b.hasMax = *opts.Maximum, true
	}
	if b.hasMin && b.hasMax && b.min > b.max {
		return LengthBounds{}, configErr(KeyOptMinimum, "minimum %d is greater than maximum %d", b.min, b.max)
	}
	if b.IsZero() {
		return DefaultBounds(), nil
	}
	return b, nil
}

// OptionsFromMap converts a dynamic option map into Options. Nil values are
// treated as absent keys.
func OptionsFromMap(raw map[string]any) (Options, error) {
	if unknown := lo.Without(lo.Keys(raw), OptionKeys...); len(unknown) > 0 {
		slices.Sort(unknown)
		return Options{}, configErr(unknown[0], "unknown option")
	}

	var opts Options
	for _, key := range OptionKeys {
		v, ok := raw[key]
		if !ok || v == nil {
			continue
		}
		if err := setOption(&opts, key, v); err != nil {
			return Options{}, err
		}
	}
	return opts, nil
}

func setOption(opts *Options, key string, v any) error {
	var ok bool
	switch key {
	case KeyOptWrongFormat:
		opts.WrongFormat, ok = v.(string)
	case KeyOptTooLong:
		opts.TooLong, ok = v.(string)
	case KeyOptTooShort:
		opts.TooShort, ok = v.(string)
	case KeyOptWrongLength:
		opts.WrongLength, ok = v.(string)
	case KeyOptStrict:
		var b bool
		b, ok = v.(bool)
		opts.Strict = &b
	case KeyOptAllowNil:
		opts.AllowNil, ok = v.(bool)
	case KeyOptAllowBlank:
		opts.AllowBlank, ok = v.(bool)
	case KeyOptMinimum:
		opts.Minimum, ok = toIntPtr(v)
	case KeyOptMaximum:
		opts.Maximum, ok = toIntPtr(v)
	case KeyOptIs:
		opts.Is, ok = toIntPtr(v)
	case KeyOptWithin:
		opts.Within, ok = toRange(v)
	case KeyOptIn:
		opts.In, ok = toRange(v)
	case KeyOptTokenizer:
		opts.Tokenizer, ok = toTokenizer(v)
	case KeyOptOn:
		opts.On, ok = toEvent(v)
	case KeyOptIf:
		opts.If, ok = toCondition(v)
	case KeyOptUnless:
		opts.Unless, ok = toCondition(v)
	}
	if !ok {
		return configErr(key, "unsupported value type %T", v)
	}
	return nil
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint:
		return int(n), true
	case uint32:
		return int(n), true
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return int(n), true
	}
	return 0, false
}

func toIntPtr(v any) (*int, bool) {
	n, ok := toInt(v)
	if !ok {
		return nil, false
	}
	return &n, true
}

func toRange(v any) (*Range, bool) {
	var pair []any
	switch r := v.(type) {
	case Range:
		return &r, true
	case *Range:
		return r, r != nil
	case [2]int:
		return &Range{Min: r[0], Max: r[1]}, true
	case []int:
		if len(r) != 2 {
			return nil, false
		}
		return &Range{Min: r[0], Max: r[1]}, true
	case []any:
		pair = r
	default:
		return nil, false
	}

	if len(pair) != 2 {
		return nil, false
	}
	min, okMin := toInt(pair[0])
	max, okMax := toInt(pair[1])
	if !okMin || !okMax {
		return nil, false
	}
	return &Range{Min: min, Max: max}, true
}

func toTokenizer(v any) (Tokenizer, bool) {
	switch t := v.(type) {
	case Tokenizer:
		return t, t != nil
	case func(string) []string:
		return t, t != nil
	}
	return nil, false
}

func toEvent(v any) (Event, bool) {
	switch e := v.(type) {
	case Event:
		return e, true
	case string:
		return Event(e), true
	}
	return "", false
}

// toCondition accepts a callable or an already evaluated bool.
func toCondition(v any) (Condition, bool) {
	switch c := v.(type) {
	case Condition:
		return c, c != nil
	case func() bool:
		return c, c != nil
	case bool:
		return func() bool { return c }, true
	}
	return nil, false
}
