package common

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/jonesrussell/wikihop/internal/config"
	"github.com/jonesrussell/wikihop/internal/logger"
)

// NewCommandDeps creates CommandDeps by loading config from v and creating the logger.
func NewCommandDeps(v *viper.Viper) (CommandDeps, error) {
	cfg, err := config.Load(v)
	if err != nil {
		return CommandDeps{}, fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg.Logger)
	if err != nil {
		return CommandDeps{}, fmt.Errorf("create logger: %w", err)
	}

	deps := CommandDeps{
		Logger: log,
		Config: cfg,
	}

	if validateErr := deps.Validate(); validateErr != nil {
		return CommandDeps{}, fmt.Errorf("validate deps: %w", validateErr)
	}

	return deps, nil
}
