package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/git-pkgs/catalog/internal/config"
	"github.com/git-pkgs/catalog/internal/logging"
)

type configKey struct{}

func withConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// configFrom returns the resolved configuration stored by the root command,
// or the defaults when a subcommand runs on its own.
func configFrom(ctx context.Context) *config.Config {
	if ctx != nil {
		if cfg, ok := ctx.Value(configKey{}).(*config.Config); ok {
			return cfg
		}
	}
	return config.Default()
}

// setupLogging configures logging from the resolved config and the --debug flag.
func setupLogging(cmd *cobra.Command, cfg *config.Config) *logging.Result {
	loggingCfg := cfg.ToLoggingConfig()
	loggingCfg.Output = cmd.ErrOrStderr()

	debug, _ := cmd.Flags().GetBool("debug")
	if debug {
		loggingCfg.Level = "debug"
		loggingCfg.Format = logging.FormatConsole
		loggingCfg.File = ""
	}

	result, err := logging.New(loggingCfg)
	if err != nil {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v, logging to stderr\n", err)
	}
	logger = logging.ComponentLogger(result.Logger, "cli")

	cmd.SetContext(logging.WithLogger(cmd.Context(), logger))
	logger.Debug().Str("command", cmd.Name()).Msg("command started")

	return result
}

func cleanupLogging(result *logging.Result) error {
	if result == nil {
		return nil
	}
	return result.Close()
}
