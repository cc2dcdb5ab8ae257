package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// configCache stores one parsed copy per configuration type.
type configCache struct {
	mu     sync.RWMutex
	values map[string]any
	onces  map[string]*sync.Once
}

var (
	globalCache = newConfigCache()

	defaultEnvLoaded sync.Once
)

func newConfigCache() *configCache {
	return &configCache{
		values: make(map[string]any),
		onces:  make(map[string]*sync.Once),
	}
}

// LoadEnv loads one or more .env files into the process environment. Files
// are applied in order and later files override earlier ones. Variables
// already set in the process environment are overridden as well.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	if err := godotenv.Overload(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// MustLoadEnv is like LoadEnv but panics on error.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(fmt.Sprintf("Failed to load env files: %v", err))
	}
}

// Load parses environment variables into v based on its `env` struct tags.
// The default .env file is read once, if present, without overriding the
// process environment. Each configuration type is parsed once; later calls
// return the cached copy.
//
//	type Settings struct {
//		Strict bool `env:"STRICT" envDefault:"true"`
//		Min    int  `env:"MIN"`
//	}
//
//	var s Settings
//	err := config.Load(&s, config.WithPrefix("EMAILCHECK_"))
func Load[T any](v *T, opts ...Option) error {
	defaultEnvLoaded.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	typeName := getTypeName[T]()

	if globalCache.get(typeName, v) {
		return nil
	}

	globalCache.mu.Lock()
	once, exists := globalCache.onces[typeName]
	if !exists {
		once = new(sync.Once)
		globalCache.onces[typeName] = once
	}
	globalCache.mu.Unlock()

	var err error
	once.Do(func() {
		if err = parse(v, opts); err != nil {
			// Allow a later call to retry once the environment is fixed.
			globalCache.mu.Lock()
			delete(globalCache.onces, typeName)
			globalCache.mu.Unlock()
			return
		}
		globalCache.mu.Lock()
		globalCache.values[typeName] = *v
		globalCache.mu.Unlock()
	})
	if err != nil {
		return err
	}

	if globalCache.get(typeName, v) {
		return nil
	}
	return ErrConfigNotLoaded
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}

// ForceReloadConfig parses v again, ignoring and replacing the cached copy.
func ForceReloadConfig[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}
	if err := parse(v, opts); err != nil {
		return err
	}

	typeName := getTypeName[T]()
	globalCache.mu.Lock()
	globalCache.values[typeName] = *v
	globalCache.mu.Unlock()
	return nil
}

// ResetCache drops every cached configuration.
func ResetCache() {
	fresh := newConfigCache()
	globalCache.mu.Lock()
	globalCache.values = fresh.values
	globalCache.onces = fresh.onces
	globalCache.mu.Unlock()
}

func (c *configCache) get(typeName string, v any) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	cached, ok := c.values[typeName]
	if !ok {
		return false
	}
	reflect.ValueOf(v).Elem().Set(reflect.ValueOf(cached))
	return true
}

func parse[T any](v *T, opts []Option) error {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if err := env.ParseWithOptions(v, env.Options{Prefix: o.prefix}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// getTypeName returns a string identifier for the generic type T.
func getTypeName[T any]() string {
	return reflect.TypeFor[T]().String()
}
