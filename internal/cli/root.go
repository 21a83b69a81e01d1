// Package cli implements the stockpile command-line interface.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/stockpile/internal/paths"
	"github.com/mesh-intelligence/stockpile/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// app holds global flag values and the state shared by all subcommands for
// one invocation.
type app struct {
	configDirFlag string
	dataFileFlag  string
	backendFlag   string
	jsonMode      bool
	verbose       bool

	configDir string
	cfg       types.Config
	logger    *zap.Logger
}

// NewRootCmd creates the top-level "stockpile" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "stockpile",
		Short: "Stockpile is a small local inventory tracker",
		Long: `Stockpile tracks item quantities in a local JSON (or SQLite) file.
It supports adding and removing stock, quantity lookups, low-stock checks
and simple reports.`,
		// Errors are printed once by Execute.
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	root.PersistentFlags().StringVar(&a.configDirFlag, "config-dir", "", "configuration directory (default: $XDG_CONFIG_HOME/stockpile)")
	root.PersistentFlags().StringVar(&a.dataFileFlag, "data-file", "", "inventory file (default: $(CWD)/inventory.json)")
	root.PersistentFlags().StringVar(&a.backendFlag, "backend", "", "storage backend: json or sqlite (default: from config, else json)")
	root.PersistentFlags().BoolVar(&a.jsonMode, "json", false, "output in JSON format")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newVersionCmd(),
		newInitCmd(a),
		newAddCmd(a),
		newRemoveCmd(a),
		newGetCmd(a),
		newLowCmd(a),
		newReportCmd(a),
		newListCmd(a),
		newApplyCmd(a),
		newDemoCmd(a),
	)
	return root
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(root.ErrOrStderr(), "Error:", err)
		return exitCode(err)
	}
	return exitSuccess
}

// setup builds the logger, resolves the config directory and loads the
// configuration. It runs before every subcommand.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	a.logger = newLogger(cmd.ErrOrStderr(), a.verbose).With(zap.String("run", newRunID()))

	if cmd.Name() == "version" {
		return nil
	}

	configDir, err := paths.ResolveConfigDir(a.configDirFlag)
	if err != nil {
		return sysError(fmt.Errorf("resolve config dir: %w", err))
	}
	a.configDir = configDir

	v, err := loadConfig(configDir)
	if err != nil {
		return sysError(fmt.Errorf("load config: %w", err))
	}

	cfg, err := a.resolveConfig(v)
	if err != nil {
		return sysError(err)
	}
	if err := cfg.Validate(); err != nil {
		return userError(fmt.Errorf("invalid config: %w", err))
	}
	a.cfg = cfg

	a.logger.Debug("configuration loaded",
		zap.String("config_dir", configDir),
		zap.String("backend", cfg.Backend),
		zap.String("data_file", cfg.DataFile),
		zap.Int("low_threshold", cfg.LowThreshold))
	return nil
}

// exitError carries the exit code for a failed command.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func userError(err error) error { return &exitError{code: exitUserError, err: err} }
func sysError(err error) error  { return &exitError{code: exitSysError, err: err} }

// exitCode maps an error from Execute to a process exit code. Errors raised
// by cobra itself (unknown command, bad arguments) are user errors.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var e *exitError
	if errors.As(err, &e) {
		return e.code
	}
	return exitUserError
}
