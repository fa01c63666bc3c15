package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// configCache stores parsed configuration values keyed by type and prefix.
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

// Option tunes a single Load call.
type Option func(*loadOptions)

type loadOptions struct {
	prefix   string
	envFiles []string
}

// WithPrefix parses variables with the given prefix, e.g. "TARGETS_" turns
// `env:"STRICT"` into TARGETS_STRICT. Values loaded with different prefixes
// are cached separately.
func WithPrefix(prefix string) Option {
	return func(o *loadOptions) { o.prefix = prefix }
}

// WithEnvFiles loads the given dotenv files before parsing.
// Variables already present in the environment win over file values.
func WithEnvFiles(files ...string) Option {
	return func(o *loadOptions) { o.envFiles = append(o.envFiles, files...) }
}

// Load parses environment variables into v. Each configuration type (and
// prefix) is parsed once per process; later calls copy the cached value.
//
// The default .env file in the working directory is loaded on first use if it
// exists.
//
// Example:
//
//	type TargetsConfig struct {
//		StrictValidation bool   `env:"TARGETS_STRICT_VALIDATION" envDefault:"false"`
//		SeedFile         string `env:"TARGETS_SEED_FILE"`
//	}
//
//	var cfg TargetsConfig
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T, opts ...Option) error {
	defaultEnvLoaded.Do(func() {
		// .env is optional
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	var o loadOptions
	for _, opt := range opts {
		opt(&o)
	}

	if len(o.envFiles) > 0 {
		if err := godotenv.Load(o.envFiles...); err != nil {
			return errors.Join(ErrLoadingEnvFile, err)
		}
	}

	key := getTypeName[T]() + "|" + o.prefix

	if globalCache.get(key, v) {
		return nil
	}

	globalCache.mu.Lock()
	once, exists := globalCache.onces[key]
	if !exists {
		once = new(sync.Once)
		globalCache.onces[key] = once
	}
	globalCache.mu.Unlock()

	var err error
	once.Do(func() {
		var parsed T
		if parseErr := env.ParseWithOptions(&parsed, env.Options{Prefix: o.prefix}); parseErr != nil {
			err = errors.Join(ErrParsingConfig, parseErr)
			// allow a retry once the environment is fixed
			globalCache.mu.Lock()
			delete(globalCache.onces, key)
			globalCache.mu.Unlock()
			return
		}

		globalCache.mu.Lock()
		globalCache.values[key] = parsed
		globalCache.mu.Unlock()
	})
	if err != nil {
		return err
	}

	if globalCache.get(key, v) {
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

// Reset drops every cached configuration so the next Load parses again.
// Intended for tests.
func Reset() {
	globalCache.mu.Lock()
	defer globalCache.mu.Unlock()
	globalCache.values = make(map[string]any)
	globalCache.onces = make(map[string]*sync.Once)
}

func (c *configCache) get(key string, dst any) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	cached, ok := c.values[key]
	if !ok {
		return false
	}
	reflect.ValueOf(dst).Elem().Set(reflect.ValueOf(cached))
	return true
}

// getTypeName returns a string identifier for the generic type T
func getTypeName[T any]() string {
	var zero T
	t := reflect.TypeOf(zero)
	if t == nil {
		return fmt.Sprintf("%T", new(T))
	}
	return t.PkgPath() + "." + t.String()
}
