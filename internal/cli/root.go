// Package cli implements the pkgcatalog command line.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/git-pkgs/catalog/internal/config"
	"github.com/git-pkgs/catalog/internal/core"
	"github.com/git-pkgs/catalog/internal/logging"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger = zerolog.Nop() //nolint:gochecknoglobals // set once per command in setupLogging

// NewRootCmd creates the root command for the pkgcatalog CLI.
func NewRootCmd(ver string) *cobra.Command {
	return NewRootCmdWithEnv(ver, os.LookupEnv)
}

// NewRootCmdWithEnv creates the root command with an explicit environment
// lookup for testability.
func NewRootCmdWithEnv(ver string, lookupEnv func(string) (string, bool)) *cobra.Command {
	var logResult *logging.Result

	cmd := &cobra.Command{
		Use:           "pkgcatalog",
		Short:         "Search and browse a package catalog",
		Long:          "pkgcatalog loads a package index once and filters, sorts and pages through it locally.",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, lookupEnv)
			if err != nil {
				return err
			}
			cmd.SetContext(withConfig(cmd.Context(), cfg))
			logResult = setupLogging(cmd, cfg)
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return cleanupLogging(logResult)
		},
	}

	cmd.PersistentFlags().String("config", "", "config file (default $XDG_CONFIG_HOME/pkgcatalog/config.yaml)")
	cmd.PersistentFlags().String("endpoint", "", "package index URL or file path")
	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().Duration("timeout", 0, "index request timeout (0 = use config)")

	cmd.AddCommand(
		newListCmd(),
		newShareCmd(),
		newSearchCmd(),
		newBrowseCmd(),
		newLicensesCmd(),
		newConfigCmd(),
	)

	return cmd
}

const rootCmdExample = `  # Show the first page of the catalog
  pkgcatalog list

  # Filter and sort
  pkgcatalog list --query jwt --license MIT --sort date

  # Reopen a shared link
  pkgcatalog list --from-url 'https://pkgs.example.org/packages?author=acme&sort=name'

  # Read a local index
  pkgcatalog list --endpoint ./packages.json

  # Browse interactively
  pkgcatalog browse`

// resolveConfig layers the config file, environment and flags, in that order.
func resolveConfig(cmd *cobra.Command, lookupEnv func(string) (string, bool)) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		if v, ok := lookupEnv(config.EnvConfig); ok {
			path = v
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(lookupEnv); err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("endpoint") {
		cfg.Endpoint, _ = cmd.Flags().GetString("endpoint")
	}
	if cmd.Flags().Changed("timeout") {
		timeout, _ := cmd.Flags().GetDuration("timeout")
		if timeout < 0 {
			return nil, fmt.Errorf("timeout must be >= 0, got %s", timeout)
		}
		if timeout > 0 {
			cfg.Fetch.Timeout = timeout
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// ExitCode maps a command error to a process exit status. A failed catalog
// load exits with 2, any other error with 1.
func ExitCode(err error) int {
	var loadErr *core.LoadError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &loadErr):
		return 2
	default:
		return 1
	}
}
