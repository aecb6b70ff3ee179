package cli

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/git-pkgs/catalog/fetch"
	"github.com/git-pkgs/catalog/internal/tui"
)

func newBrowseCmd() *cobra.Command {
	var filters criteriaFlags

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse the catalog interactively",
		Long: `Opens a terminal browser over the catalog.

Keys: n/→ next page, p/← previous page, 1-9 go to page, / search,
s cycle sort, x clear filters, c copy share link, r reload, q quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !isTerminal(os.Stdout) {
				return errors.New("browse needs an interactive terminal, use list instead")
			}
			values, err := filters.values(cmd)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			cfg := configFrom(ctx)
			loader, err := newLoader(cfg)
			if err != nil {
				return err
			}
			guarded := fetch.NewCircuitBreakerLoader(loader)

			session, err := openSession(ctx, cfg, guarded, values)
			if err != nil {
				return err
			}

			m := tui.New(ctx, session, guarded, cfg.ShareBase)
			if err := tui.Run(ctx, m); err != nil {
				return err
			}
			logger.Debug().Interface("breakers", guarded.GetBreakerState()).Msg("browse finished")
			return nil
		},
	}

	filters.register(cmd)
	return cmd
}
