// Package logger provides a global logger for the application
package logger

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
)

// Flags are the command line overrides of the environment log level. They are
// bound by the CLI rather than parsed here so that the flag set has one owner.
type Flags struct {
	Debug bool
	Trace bool
	Info  bool
}

// Level resolves the log level for an environment and the command line
// overrides. dev and test log everything, anything else logs info and above.
func Level(environment string, flags Flags) zerolog.Level {
	var logLevel zerolog.Level
	switch strings.ToLower(environment) {
	case "dev", "test":
		logLevel = zerolog.TraceLevel
	default:
		logLevel = zerolog.InfoLevel
	}

	switch {
	case flags.Debug:
		logLevel = zerolog.DebugLevel
	case flags.Trace:
		logLevel = zerolog.TraceLevel
	case flags.Info:
		logLevel = zerolog.InfoLevel
	}
	return logLevel
}

// Init initializes the logger with the configuration from the environment
// and command line flags.
// It sets up the global logger to use zerolog with console output.
// Example usage:
//
//	logger.Init(logger.Flags{Debug: debug}) <- inside the root command's PersistentPreRun
//
// Then, `go run ./cmd/hmeasure compute --debug scores.csv`
func Init(flags Flags) {
	// A .env file is optional; the process environment is enough.
	envErr := godotenv.Load()

	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).With().Caller().Logger()

	environment := strings.ToLower(os.Getenv("ENVIRONMENT"))
	if environment == "" {
		environment = "prod"
	}

	switch environment {
	case "dev", "test", "prod":
	default:
		log.Warn().Str("environment", environment).Msg("Unknown environment - defaulting to production log level (info and above)")
	}

	logLevel := Level(environment, flags)
	zerolog.SetGlobalLevel(logLevel)

	if envErr != nil && !errors.Is(envErr, fs.ErrNotExist) {
		log.Warn().Err(envErr).Msg("failed to load .env file")
	}
	log.Debug().Str("environment", environment).Str("level", logLevel.String()).Msg("logger initialized")
}
