package config

// Option configures how environment variables are parsed.
type Option func(*options)

type options struct {
	prefix string
}

// WithPrefix prepends prefix to every variable name of the struct tags, so
// `env:"STRICT"` with prefix "EMAILCHECK_" reads EMAILCHECK_STRICT.
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}
