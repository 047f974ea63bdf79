// Package config loads configuration structs from environment variables.
//
// It wraps github.com/joho/godotenv (optional .env files) and
// github.com/caarlos0/env/v11 (struct tag parsing):
//
//	type Config struct {
//		LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
//		LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, config.WithPrefix("FORMCHECK_")); err != nil {
//		// errors.Is(err, config.ErrParsingConfig)
//	}
//
// Tests can pass WithEnvironment to avoid touching the process environment.
package config
