// Package config loads typed settings from environment variables and .env
// files.
//
// It wraps github.com/joho/godotenv for .env files and
// github.com/caarlos0/env/v11 for struct tag parsing. Each configuration
// type is parsed once per process and cached; ForceReloadConfig and
// ResetCache exist for tests and for programs that change their environment
// at runtime.
//
//	type Settings struct {
//	    Strict   bool   `env:"STRICT" envDefault:"true"`
//	    Lang     string `env:"LANG" envDefault:"en"`
//	    Messages string `env:"MESSAGES"`
//	}
//
//	if err := config.LoadEnv("./emailcheck.env"); err != nil {
//	    return err
//	}
//	var s Settings
//	if err := config.Load(&s, config.WithPrefix("EMAILCHECK_")); err != nil {
//	    return err
//	}
//
// Errors wrap the sentinels ErrParsingConfig, ErrLoadingEnvFile and
// ErrNilPointer and can be checked with errors.Is.
package config
