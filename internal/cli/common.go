package cli

import (
	"context"
	"fmt"
	"net/url"

	"github.com/spf13/cobra"

	// register the file, http and https loaders
	_ "github.com/git-pkgs/catalog/all"
	"github.com/git-pkgs/catalog/internal/config"
	"github.com/git-pkgs/catalog/internal/core"
	"github.com/git-pkgs/catalog/internal/logging"
)

// criteriaFlags holds the filter flags shared by list and share.
type criteriaFlags struct {
	query    string
	author   string
	group    string
	keywords string
	license  string
	os       string
	sort     string
	fromURL  string
}

func (f *criteriaFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.query, "query", "", "text to find in name or description")
	cmd.Flags().StringVar(&f.author, "author", "", "text to find in the author")
	cmd.Flags().StringVar(&f.group, "group", "", "text to find in the group")
	cmd.Flags().StringVar(&f.keywords, "keywords", "", "text to find in the tags")
	cmd.Flags().StringVar(&f.license, "license", "", "exact license, case-insensitive")
	cmd.Flags().StringVar(&f.os, "os", "", "supported operating system")
	cmd.Flags().StringVar(&f.sort, "sort", "", fmt.Sprintf("sort key %v", core.SortKeys()))
	cmd.Flags().StringVar(&f.fromURL, "from-url", "", "start from the filters of a shared link")
}

// values returns the query parameters selected by --from-url overlaid with
// any filter flag set on the command line.
func (f *criteriaFlags) values(cmd *cobra.Command) (url.Values, error) {
	values := url.Values{}
	if f.fromURL != "" {
		_, v, err := core.ParseQuery(f.fromURL)
		if err != nil {
			return nil, fmt.Errorf("parsing --from-url: %w", err)
		}
		values = v
	}

	overrides := []struct {
		flag, param, value string
	}{
		{"query", core.ParamQuery, f.query},
		{"author", core.ParamAuthor, f.author},
		{"group", core.ParamGroup, f.group},
		{"keywords", core.ParamKeywords, f.keywords},
		{"license", core.ParamLicense, f.license},
		{"os", core.ParamOS, f.os},
		{"sort", core.ParamSort, f.sort},
	}
	for _, o := range overrides {
		if cmd.Flags().Changed(o.flag) {
			values.Set(o.param, o.value)
		}
	}

	if s := values.Get(core.ParamSort); s != "" && !core.IsSortKey(s) {
		logger.Warn().Str("sort", s).Msg("unknown sort key, keeping index order")
	}
	return values, nil
}

// newClient builds the index client from the fetch settings.
func newClient(cfg *config.Config) *core.Client {
	c := core.NewClient(
		core.WithTimeout(cfg.Fetch.Timeout),
		core.WithMaxRetries(cfg.Fetch.MaxRetries),
	)
	if cfg.Fetch.UserAgent != "" {
		c = c.WithUserAgent(cfg.Fetch.UserAgent)
	}
	return c
}

// newLoader returns the loader for the configured endpoint.
func newLoader(cfg *config.Config) (core.Loader, error) {
	return core.New(cfg.Endpoint, newClient(cfg))
}

// openSession loads the catalog once and applies values to it.
func openSession(ctx context.Context, cfg *config.Config, loader core.Loader, values url.Values) (*core.Session, error) {
	log := logging.ComponentLogger(logging.FromContext(ctx), "session")
	session, err := core.LoadSession(ctx, loader,
		core.WithPageSize(cfg.PageSize),
		core.WithLogger(log),
	)
	if err != nil {
		return nil, err
	}
	session.Start(values)
	return session, nil
}
