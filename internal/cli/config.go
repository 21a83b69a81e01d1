package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/stockpile/internal/paths"
	"github.com/mesh-intelligence/stockpile/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	cfgKeyBackend      = "backend"
	cfgKeyDataFile     = "data_file"
	cfgKeyLowThreshold = "low_threshold"
)

// configFile holds the structure written to config.yaml by init.
type configFile struct {
	Backend      string `yaml:"backend"`
	DataFile     string `yaml:"data_file,omitempty"`
	LowThreshold int    `yaml:"low_threshold"`
}

// loadConfig reads config.yaml from configDir using Viper. A missing
// config.yaml is not an error; defaults apply.
func loadConfig(configDir string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyBackend, types.BackendJSON)
	v.SetDefault(cfgKeyLowThreshold, types.DefaultLowThreshold)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if _, err := os.Stat(configDir); errors.Is(err, fs.ErrNotExist) {
		return v, nil
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// resolveConfig merges flags over the loaded configuration.
func (a *app) resolveConfig(v *viper.Viper) (types.Config, error) {
	backend := v.GetString(cfgKeyBackend)
	if a.backendFlag != "" {
		backend = a.backendFlag
	}

	dataFile, err := paths.ResolveDataFile(a.dataFileFlag, v.GetString(cfgKeyDataFile))
	if err != nil {
		return types.Config{}, fmt.Errorf("resolve data file: %w", err)
	}

	return types.Config{
		Backend:      backend,
		DataFile:     dataFile,
		LowThreshold: v.GetInt(cfgKeyLowThreshold),
	}, nil
}

// writeConfigIfMissing creates config.yaml with the given values if the file
// does not exist. An existing file is left alone.
func writeConfigIfMissing(path string, cfg configFile) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}
	header := []byte("# Stockpile configuration\n")
	if err := os.WriteFile(path, append(header, data...), 0o644); err != nil {
		return false, err
	}
	return true, nil
}
