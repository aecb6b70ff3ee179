package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/git-pkgs/catalog/internal/core"
)

func newShareCmd() *cobra.Command {
	var filters criteriaFlags

	cmd := &cobra.Command{
		Use:   "share",
		Short: "Print a shareable link for a set of filters",
		Long: `Prints the link that reopens the catalog with the given filters.
The catalog is not loaded.`,
		Example: `  pkgcatalog share --author acme --sort name`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			values, err := filters.values(cmd)
			if err != nil {
				return err
			}
			cfg := configFrom(cmd.Context())
			link := core.CriteriaFromValues(values).ShareURL(cfg.ShareBase)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), link)
			return err
		},
	}

	filters.register(cmd)
	return cmd
}
