package main

import (
	"go.uber.org/zap"

	"github.com/dshills/perfwheel/internal/config"
	"github.com/dshills/perfwheel/internal/logging"
	"github.com/dshills/perfwheel/internal/questionnaire"
	"github.com/dshills/perfwheel/internal/wheel"
)

// envFile is read from the working directory when present.
const envFile = ".env"

// setup loads configuration and builds the logger. --verbose forces debug level.
func setup(verbose bool) (*config.Config, *zap.Logger, error) {
	cfg := config.Load(envFile)
	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}
	logger, err := logging.New(cfg.AppEnv, level)
	if err != nil {
		return nil, nil, exitError(3, "invalid log configuration: %v", err)
	}
	return cfg, logger, nil
}

// questionnaireFlags are shared by every command that works on one questionnaire.
type questionnaireFlags struct {
	name string
	file string
}

// resolve picks the questionnaire: --questionnaire-file, then --questionnaire,
// then the ratings file's own choice, then configuration.
func (f *questionnaireFlags) resolve(fromFile, fromConfig string) (*wheel.Questionnaire, error) {
	name := f.name
	if name == "" {
		name = fromFile
	}
	if name == "" {
		name = fromConfig
	}
	q, err := questionnaire.Resolve(name, f.file)
	if err != nil {
		return nil, exitError(3, "failed to load questionnaire: %v", err)
	}
	return q, nil
}
