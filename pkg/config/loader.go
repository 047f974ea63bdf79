package config

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var defaultEnvLoaded sync.Once

type options struct {
	prefix string
	files  []string
	env    map[string]string
}

// Option customizes Load.
type Option func(*options)

// WithPrefix only reads variables starting with prefix, e.g. "FORMCHECK_".
func WithPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

// WithEnvFiles loads the given .env files before parsing. Missing files are
// an error, unlike the default .env which is optional.
func WithEnvFiles(files ...string) Option {
	return func(o *options) { o.files = append(o.files, files...) }
}

// WithEnvironment parses from env instead of the process environment.
func WithEnvironment(env map[string]string) Option {
	return func(o *options) { o.env = env }
}

// Load fills v from environment variables using `env` struct tags.
//
// The default .env file in the working directory is loaded once per process
// if it exists; variables already set are never overridden.
//
//	type Config struct {
//		LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//		Schema   string `env:"SCHEMA,required"`
//	}
//
//	var cfg Config
//	err := config.Load(&cfg, config.WithPrefix("FORMCHECK_"))
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	defaultEnvLoaded.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})

	if len(o.files) > 0 {
		for _, f := range o.files {
			if _, err := os.Stat(f); err != nil {
				return errors.Join(ErrLoadingEnvFile, err)
			}
		}
		if err := godotenv.Load(o.files...); err != nil {
			return errors.Join(ErrLoadingEnvFile, err)
		}
	}

	envOpts := env.Options{Prefix: o.prefix}
	if o.env != nil {
		envOpts.Environment = o.env
	}

	if err := env.ParseWithOptions(v, envOpts); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics on failure.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}
