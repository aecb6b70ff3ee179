package catalog_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/git-pkgs/catalog"
	_ "github.com/git-pkgs/catalog/all"
)

func BenchmarkLoad(b *testing.B) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(indexJSON))
	}))
	defer server.Close()

	loader, err := catalog.New(server.URL, nil)
	if err != nil {
		b.Fatal(err)
	}
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := loader.Load(ctx); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSessionApply(b *testing.B) {
	path := filepath.Join(b.TempDir(), "index.json")
	if err := os.WriteFile(path, []byte(indexJSON), 0o600); err != nil {
		b.Fatal(err)
	}
	records, err := catalog.Load(context.Background(), path, nil)
	if err != nil {
		b.Fatal(err)
	}
	session := catalog.NewSession(records)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		session.Apply(catalog.Criteria{License: "mit", Sort: "name"})
		session.Next()
	}
}
