package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize stockpile configuration and data file",
		Long:  "Create the configuration directory with a default config.yaml, then create an empty inventory file if none exists.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := os.MkdirAll(a.configDir, 0o755); err != nil {
				return sysError(fmt.Errorf("create config directory: %w", err))
			}

			// Only an explicit --data-file is pinned in config.yaml; otherwise
			// the data file stays relative to the working directory.
			var dataFile string
			if a.dataFileFlag != "" {
				dataFile = a.cfg.DataFile
			}
			configPath := filepath.Join(a.configDir, configFileExt)
			created, err := writeConfigIfMissing(configPath, configFile{
				Backend:      a.cfg.Backend,
				DataFile:     dataFile,
				LowThreshold: a.cfg.LowThreshold,
			})
			if err != nil {
				return sysError(fmt.Errorf("write config: %w", err))
			}
			if created {
				a.logger.Debug("wrote default config")
			}

			if err := a.ensureDataFile(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Stockpile initialized successfully")
			fmt.Fprintln(out, "  config:", configPath)
			fmt.Fprintln(out, "  data:  ", a.cfg.DataFile)
			return nil
		},
	}
}

// ensureDataFile saves an empty inventory when the data file does not exist.
func (a *app) ensureDataFile() error {
	_, err := os.Stat(a.cfg.DataFile)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return sysError(fmt.Errorf("stat data file: %w", err))
	}

	if err := os.MkdirAll(filepath.Dir(a.cfg.DataFile), 0o755); err != nil {
		return sysError(fmt.Errorf("create data directory: %w", err))
	}
	s, err := a.newStore()
	if err != nil {
		return err
	}
	return a.saveStore(s)
}
