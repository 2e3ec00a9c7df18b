package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/rangekit/rangefetch/internal/log"
)

// LoadConfig reads the configuration from configPath. A missing file is not
// an error: the built-in defaults are used so the tool works out of the box.
func LoadConfig(configPath string) (*Config, error) {
	configFile := filepath.Clean(configPath)

	if !filepath.IsAbs(configFile) {
		if path, err := filepath.Abs(configFile); err != nil {
			return nil, fmt.Errorf("failed to get absolute path: %v", err)
		} else {
			configFile = path
		}
	}

	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		log.Debugf("Configuration file not found at %s, using defaults", configFile)
		return Default(), nil
	}

	content, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %v", err)
	}

	var config Config
	if err := toml.Unmarshal(content, &config); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			log.Errorf(derr.String())
			row, col := derr.Position()
			log.Errorf("Error at line %d, column %d", row, col)
			return nil, fmt.Errorf("failed to parse config file")
		}
		return nil, fmt.Errorf("failed to parse config file: %v", err)
	}

	config._absConfigFileDir = filepath.Dir(configFile)
	config.applyDefaults()

	log.Debugf("Configuration file path: %s", configFile)
	log.Debugf("Providers output directory: %s", config.GetAbsProvidersDir())
	log.Debugf("Chunks output directory: %s", config.GetAbsChunksDir())

	return &config, nil
}
