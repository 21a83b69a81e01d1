package types

import "errors"

// Config holds backend selection and stock defaults for the CLI.
type Config struct {
	Backend      string `json:"backend" yaml:"backend"`
	DataFile     string `json:"data_file" yaml:"data_file"`
	LowThreshold int    `json:"low_threshold" yaml:"low_threshold"`
}

// Supported backend names.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Defaults.
const (
	DefaultDataFile     = "inventory.json"
	DefaultLowThreshold = 5
)

// Config validation errors.
var (
	ErrBackendEmpty     = errors.New("backend must not be empty")
	ErrBackendUnknown   = errors.New("unknown backend")
	ErrThresholdInvalid = errors.New("low threshold must not be negative")
)

// knownBackends lists the backends that Validate accepts.
var knownBackends = map[string]bool{
	BackendJSON:   true,
	BackendSQLite: true,
}

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return ErrBackendUnknown
	}
	if c.LowThreshold < 0 {
		return ErrThresholdInvalid
	}
	return nil
}
