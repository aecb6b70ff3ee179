package cli

import (
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/github/go-spdx/v2/spdxexp"
	"github.com/spf13/cobra"

	"github.com/git-pkgs/catalog/internal/core"
)

// noLicense labels records without a license.
const noLicense = "(none)"

// licenseCount is one distinct license and how many records carry it.
type licenseCount struct {
	License string
	Count   int
	Valid   bool
}

// countLicenses groups records by license, case-insensitively, keeping the
// first spelling seen. The result is ordered by count, then name.
func countLicenses(records []core.Record) []licenseCount {
	index := make(map[string]int)
	var counts []licenseCount
	for _, r := range records {
		lic := strings.TrimSpace(r.License)
		if lic == "" {
			lic = noLicense
		}
		key := strings.ToLower(lic)
		if i, ok := index[key]; ok {
			counts[i].Count++
			continue
		}
		index[key] = len(counts)
		counts = append(counts, licenseCount{License: lic, Count: 1})
	}

	for i := range counts {
		if counts[i].License == noLicense {
			continue
		}
		valid, _ := spdxexp.ValidateLicenses([]string{counts[i].License})
		counts[i].Valid = valid
	}

	sort.SliceStable(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return strings.ToLower(counts[i].License) < strings.ToLower(counts[j].License)
	})
	return counts
}

func newLicensesCmd() *cobra.Command {
	var invalidOnly bool

	cmd := &cobra.Command{
		Use:   "licenses",
		Short: "List the licenses used in the catalog",
		Long: `Lists every distinct license in the catalog with the number of packages
using it and whether it is a valid SPDX expression.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			cfg := configFrom(ctx)
			loader, err := newLoader(cfg)
			if err != nil {
				return err
			}
			records, err := loader.Load(ctx)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "LICENSE\tPACKAGES\tSPDX")
			for _, lc := range countLicenses(records) {
				if invalidOnly && lc.Valid {
					continue
				}
				spdx := "invalid"
				if lc.Valid {
					spdx = "valid"
				}
				fmt.Fprintf(w, "%s\t%d\t%s\n", lc.License, lc.Count, spdx)
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&invalidOnly, "invalid", false, "only show licenses that are not valid SPDX")
	return cmd
}
