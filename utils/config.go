package utils

import (
	"time"

	"github.com/jinzhu/configor"

	"github.com/orcastack/core/types"
)

// LoadConfig loads config from the given path and applies defaults
func LoadConfig(configPath string) (types.Config, error) {
	config := types.Config{}
	if err := configor.Load(&config, configPath); err != nil {
		return config, err
	}
	if config.Engine.CallTimeout <= 0 || config.Engine.MaxProfiles <= 0 {
		return config, types.ErrConfigInvaild
	}
	// timeouts are given in seconds
	config.Engine.CallTimeout = config.Engine.CallTimeout * time.Second
	return config, nil
}
