// Package paths resolves the configuration directory and the inventory data
// file.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// DefaultDataFileName is the data file used in the working directory when
// nothing else is configured.
const DefaultDataFileName = "inventory.json"

// Environment variable names for overrides.
const (
	EnvConfigDir = "STOCKPILE_CONFIG_DIR"
	EnvDataFile  = "STOCKPILE_DATA_FILE"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/stockpile (fallback ~/.config/stockpile)
// macOS:   ~/Library/Application Support/stockpile
// Windows: %APPDATA%/stockpile
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "stockpile"), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", "stockpile"), nil
	default:
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "stockpile"), nil
	}
}

// ResolveConfigDir returns the configuration directory following the precedence
// chain: flag > STOCKPILE_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveDataFile returns the inventory file following the precedence chain:
// flag > configYAMLValue > STOCKPILE_DATA_FILE env > $(CWD)/inventory.json.
func ResolveDataFile(flag, configYAMLValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configYAMLValue != "" {
		return filepath.Abs(configYAMLValue)
	}
	if env := os.Getenv(EnvDataFile); env != "" {
		return filepath.Abs(env)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultDataFileName), nil
}
