package cli

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/git-pkgs/catalog/internal/core"
)

// searchAnswers holds the values collected by the search form.
type searchAnswers struct {
	Query    string
	Author   string
	Group    string
	Keywords string
	License  string
	OS       string
	Sort     string
}

// values converts the answers to query parameters, omitting empty ones.
func (a searchAnswers) values() url.Values {
	return core.Criteria{
		Query:    a.Query,
		Author:   a.Author,
		Group:    a.Group,
		Keywords: a.Keywords,
		License:  a.License,
		OS:       a.OS,
		Sort:     a.Sort,
	}.Values()
}

// distinctOS returns every OS token in the catalog, lowercased and sorted.
func distinctOS(records []core.Record) []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range records {
		for _, o := range r.OS {
			o = strings.ToLower(strings.TrimSpace(o))
			if o == "" || seen[o] {
				continue
			}
			seen[o] = true
			out = append(out, o)
		}
	}
	sort.Strings(out)
	return out
}

func buildSearchForm(records []core.Record, a *searchAnswers) *huh.Form {
	licenseOpts := []huh.Option[string]{huh.NewOption("Any", "")}
	for _, lc := range countLicenses(records) {
		if lc.License == noLicense {
			continue
		}
		licenseOpts = append(licenseOpts,
			huh.NewOption(fmt.Sprintf("%s (%d)", lc.License, lc.Count), lc.License))
	}

	osOpts := []huh.Option[string]{huh.NewOption("Any", "")}
	for _, o := range distinctOS(records) {
		osOpts = append(osOpts, huh.NewOption(o, o))
	}

	sortOpts := []huh.Option[string]{huh.NewOption("Index order", "")}
	for _, k := range core.SortKeys() {
		sortOpts = append(sortOpts, huh.NewOption(k, k))
	}

	textGroup := huh.NewGroup(
		huh.NewInput().
			Title("Search").
			Description("Text in the package name or description.").
			Key(core.ParamQuery).
			Value(&a.Query),
		huh.NewInput().
			Title("Author").
			Key(core.ParamAuthor).
			Value(&a.Author),
		huh.NewInput().
			Title("Group").
			Key(core.ParamGroup).
			Value(&a.Group),
		huh.NewInput().
			Title("Keywords").
			Description("Text in the package tags.").
			Key(core.ParamKeywords).
			Value(&a.Keywords),
	)

	choiceGroup := huh.NewGroup(
		huh.NewSelect[string]().
			Title("License").
			Key(core.ParamLicense).
			Options(licenseOpts...).
			Value(&a.License),
		huh.NewSelect[string]().
			Title("Operating system").
			Key(core.ParamOS).
			Options(osOpts...).
			Value(&a.OS),
		huh.NewSelect[string]().
			Title("Sort by").
			Key(core.ParamSort).
			Options(sortOpts...).
			Value(&a.Sort),
	)

	return huh.NewForm(textGroup, choiceGroup)
}

func newSearchCmd() *cobra.Command {
	var (
		output     string
		accessible bool
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Fill in an advanced search form and print the results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateOutput(output); err != nil {
				return err
			}
			if !accessible && !isTerminal(os.Stdin) {
				return errors.New("search needs an interactive terminal (or --accessible)")
			}

			ctx := cmd.Context()
			cfg := configFrom(ctx)
			loader, err := newLoader(cfg)
			if err != nil {
				return err
			}
			session, err := openSession(ctx, cfg, loader, nil)
			if err != nil {
				return err
			}

			var answers searchAnswers
			form := buildSearchForm(session.Catalog(), &answers).WithAccessible(accessible)
			if err := form.RunWithContext(ctx); err != nil {
				if errors.Is(err, huh.ErrUserAborted) {
					return nil
				}
				return fmt.Errorf("search form: %w", err)
			}

			session.Start(answers.values())
			return writePage(cmd.OutOrStdout(), output, session.Page(), session.Criteria(),
				cfg.ShareBase, textStyles(cmd.OutOrStdout()))
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", outputText, "output format: text, json or yaml")
	cmd.Flags().BoolVar(&accessible, "accessible", false, "use plain prompts instead of the form UI")
	return cmd
}
