// Package config loads typed configuration structs from environment variables.
//
// Load reads dotenv files with github.com/joho/godotenv (missing files are
// fine) and then parses struct tags with github.com/caarlos0/env/v11, so the
// same struct works locally with a .env file and in containers with real
// environment variables. Tags follow the env library: `env:"NAME"`,
// `envDefault:"value"`, and the `,required` flag.
//
// Each package that talks to infrastructure ships its own Config struct with
// env tags (see pkg/redis, pkg/pg, pkg/mongo); binaries load only the ones
// they need:
//
//	var redisCfg redis.Config
//	config.MustLoad(&redisCfg)
//
// Errors are wrapped with ErrParsingConfig or ErrLoadingEnvFile and can be
// checked with errors.Is.
package config
