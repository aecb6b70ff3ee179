package catalog_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/git-pkgs/catalog"
	_ "github.com/git-pkgs/catalog/all"
)

const indexJSON = `[
	{"name":"jwt-tools","group":"acme","desc":"Sign and verify JSON Web Tokens","version":"1.2.0",
	 "date":20240301.120000,"license":"MIT","tags":"jwt,security","supports":"linux,windows","projURL":"https://example.org/jwt"},
	{"name":"doc-gen","group":"zeta","desc":"Generates documentation","version":"0.3.1",
	 "date":20230101,"license":"Apache-2.0","tags":"documentation","supports":"macos,linux","projURL":""},
	{"name":"ai-helper","group":"acme","desc":"OpenAI client","version":"2.0.0",
	 "date":null,"license":"MIT","tags":"ai,openai","supports":"windows","projURL":""}
]`

func indexServer(t *testing.T) (*httptest.Server, *int) {
	t.Helper()
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(indexJSON))
	}))
	t.Cleanup(server.Close)
	return server, &requests
}

func TestSupportedSchemes(t *testing.T) {
	got := catalog.SupportedSchemes()
	want := []string{"file", "http", "https"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SupportedSchemes() = %v, want %v", got, want)
	}
}

func TestDefaultEndpoint(t *testing.T) {
	if got := catalog.DefaultEndpoint("https"); got == "" {
		t.Error("no default https endpoint")
	}
	if got := catalog.DefaultEndpoint("gopher"); got != "" {
		t.Errorf("DefaultEndpoint(gopher) = %q, want empty", got)
	}
}

func TestLoadOverHTTP(t *testing.T) {
	server, requests := indexServer(t)

	records, err := catalog.Load(context.Background(), server.URL+"/v1/packages?info=1", nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("len(records) = %d, want 3", len(records))
	}
	if *requests != 1 {
		t.Errorf("requests = %d, want 1", *requests)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.json")
	if err := os.WriteFile(path, []byte(indexJSON), 0o600); err != nil {
		t.Fatal(err)
	}

	for _, endpoint := range []string{path, "file://" + path} {
		records, err := catalog.Load(context.Background(), endpoint, nil)
		if err != nil {
			t.Fatalf("Load(%q) failed: %v", endpoint, err)
		}
		if len(records) != 3 {
			t.Errorf("Load(%q) returned %d records, want 3", endpoint, len(records))
		}
	}
}

func TestLoadFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	_, err := catalog.Load(context.Background(), server.URL+"/v1/packages", nil)

	var loadErr *catalog.LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("error = %v, want *LoadError", err)
	}
	var httpErr *catalog.HTTPError
	if !errors.As(err, &httpErr) || httpErr.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("error = %v, want HTTP 503", err)
	}
}

func TestSessionWorkflow(t *testing.T) {
	server, requests := indexServer(t)

	loader, err := catalog.New(server.URL, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	session, err := catalog.LoadSession(context.Background(), loader, catalog.WithPageSize(1))
	if err != nil {
		t.Fatalf("LoadSession failed: %v", err)
	}

	criteria, values, err := catalog.ParseQuery("?license=MIT&sort=date")
	if err != nil {
		t.Fatalf("ParseQuery failed: %v", err)
	}
	session.Start(values)

	if session.Criteria() != criteria {
		t.Errorf("Criteria() = %+v, want %+v", session.Criteria(), criteria)
	}

	first := session.Page()
	if first.TotalPages != 2 || first.Items[0].Name != "jwt-tools" {
		t.Fatalf("page 1 = %+v", first)
	}
	session.Next()
	if got := session.Page().Items[0].Name; got != "ai-helper" {
		t.Errorf("page 2 item = %q, want ai-helper", got)
	}

	link := session.Criteria().ShareURL("https://pkgs.example.org/packages")
	if link != "https://pkgs.example.org/packages?license=mit&sort=date" {
		t.Errorf("ShareURL() = %q", link)
	}

	if *requests != 1 {
		t.Errorf("paging and filtering made %d requests, want 1", *requests)
	}
}

func TestLoadNotFound(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	_, err := catalog.Load(context.Background(), server.URL+"/v1/packages", nil)
	var loadErr *catalog.LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("error = %v, want *LoadError", err)
	}
	if !errors.Is(err, catalog.ErrNotFound) {
		t.Errorf("errors.Is(%v, ErrNotFound) = false for a 404 index", err)
	}
}

func TestParsePURL(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"pkg:generic/acme/jwt-tools", false},
		{"pkg:generic/acme/jwt-tools@1.2.0", false},
		{catalog.RecordPURL(catalog.Record{Name: "doc-gen", Group: "zeta", Versions: "0.3.1"}), false},
		{"jwt-tools", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p, err := catalog.ParsePURL(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePURL(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && p == nil {
				t.Errorf("ParsePURL(%q) = nil", tt.input)
			}
		})
	}
}

func TestFindByPURL(t *testing.T) {
	records := []catalog.Record{{Name: "jwt-tools", Group: "acme", Versions: "1.2.0"}}

	purl := catalog.RecordPURL(records[0])
	got, err := catalog.FindByPURL(records, purl)
	if err != nil {
		t.Fatalf("FindByPURL(%q) failed: %v", purl, err)
	}
	if got.Name != "jwt-tools" {
		t.Errorf("Name = %q", got.Name)
	}

	_, err = catalog.FindByPURL(records, "pkg:generic/acme/missing")
	if !errors.Is(err, catalog.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}
