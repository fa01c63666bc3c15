// Package config loads typed configuration structs from environment variables.
//
// It wraps github.com/caarlos0/env/v11 for struct parsing and
// github.com/joho/godotenv for .env files. Each configuration type is parsed
// once and cached, so packages can call Load for their own struct without
// coordinating with main.
//
// # Usage
//
//	type Config struct {
//		Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
//
// Use WithPrefix to parse the same struct under a namespace and WithEnvFiles to
// read additional dotenv files. Reset clears the cache between tests.
//
// # Errors
//
//   - ErrNilPointer: nil destination
//   - ErrParsingConfig: a variable is missing or has the wrong type
//   - ErrLoadingEnvFile: an explicit dotenv file could not be read
package config
