package cli

import (
	"github.com/spf13/cobra"

	"github.com/git-pkgs/catalog/internal/core"
)

func newListCmd() *cobra.Command {
	var (
		filters criteriaFlags
		page    int
		output  string
		purl    string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print one page of the filtered catalog",
		Example: `  # First page of everything
  pkgcatalog list

  # Third page of MIT packages for linux, newest first
  pkgcatalog list --license mit --os linux --sort date --page 3

  # A single package by package URL
  pkgcatalog list --purl pkg:generic/acme/jwt-tools

  # Machine readable
  pkgcatalog list --query jwt --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateOutput(output); err != nil {
				return err
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
			session, err := openSession(ctx, cfg, loader, values)
			if err != nil {
				return err
			}

			if purl != "" {
				return runPURLLookup(cmd, session.Catalog(), purl, output)
			}

			session.GoTo(page)
			return writePage(cmd.OutOrStdout(), output, session.Page(), session.Criteria(),
				cfg.ShareBase, textStyles(cmd.OutOrStdout()))
		},
	}

	filters.register(cmd)
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().StringVarP(&output, "output", "o", outputText, "output format: text, json or yaml")
	cmd.Flags().StringVar(&purl, "purl", "", "show the package a package URL refers to")

	return cmd
}

// runPURLLookup prints the single record purl refers to.
func runPURLLookup(cmd *cobra.Command, records []core.Record, purl, output string) error {
	rec, err := core.FindByPURL(records, purl)
	if err != nil {
		return err
	}
	v := core.Paginate([]core.Record{rec}, 1, 1)
	return writePage(cmd.OutOrStdout(), output, v, core.Criteria{}, "", textStyles(cmd.OutOrStdout()))
}
