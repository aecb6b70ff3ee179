package core

import (
	"errors"
	"testing"
)

func TestRecordPURL(t *testing.T) {
	tests := []struct {
		name   string
		record Record
		want   string
	}{
		{"with group and version", Record{Name: "jwt-tools", Group: "acme", Versions: "1.2.0"}, "pkg:generic/acme/jwt-tools@1.2.0"},
		{"no version", Record{Name: "jwt-tools", Group: "acme"}, "pkg:generic/acme/jwt-tools"},
		{"no group", Record{Name: "jwt-tools", Versions: "1.2.0"}, "pkg:generic/jwt-tools@1.2.0"},
		{"no name", Record{Group: "acme"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RecordPURL(tt.record); got != tt.want {
				t.Errorf("RecordPURL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParsePURL(t *testing.T) {
	p, err := ParsePURL("pkg:generic/acme/jwt-tools@1.2.0")
	if err != nil {
		t.Fatalf("ParsePURL failed: %v", err)
	}
	if p.Type != PURLType || p.Namespace != "acme" || p.Name != "jwt-tools" || p.Version != "1.2.0" {
		t.Errorf("unexpected purl: %+v", p.PackageURL)
	}

	if _, err := ParsePURL("jwt-tools"); err == nil {
		t.Error("expected error for a string without the pkg: scheme")
	}
}

func TestFindByPURL(t *testing.T) {
	catalog := testCatalog()

	tests := []struct {
		purl     string
		wantName string
		notFound bool
	}{
		{"pkg:generic/acme/jwt-tools", "jwt-tools", false},
		{"pkg:generic/acme/jwt-tools@1.2.0", "jwt-tools", false},
		{"pkg:generic/Zeta/doc-gen", "doc-gen", false},
		{"pkg:generic/acme/jwt-tools@9.9.9", "", true},
		{"pkg:generic/other/jwt-tools", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.purl, func(t *testing.T) {
			r, err := FindByPURL(catalog, tt.purl)
			if tt.notFound {
				if !errors.Is(err, ErrNotFound) {
					t.Fatalf("FindByPURL(%q) error = %v, want ErrNotFound", tt.purl, err)
				}
				var nf *NotFoundError
				if !errors.As(err, &nf) {
					t.Errorf("error should be *NotFoundError, got %T", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("FindByPURL(%q) failed: %v", tt.purl, err)
			}
			if r.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", r.Name, tt.wantName)
			}
		})
	}
}

func TestFindByPURL_RoundTrip(t *testing.T) {
	for _, r := range testCatalog() {
		got, err := FindByPURL(testCatalog(), RecordPURL(r))
		if err != nil {
			t.Fatalf("FindByPURL(%q) failed: %v", RecordPURL(r), err)
		}
		if got.Name != r.Name {
			t.Errorf("FindByPURL(%q) = %q, want %q", RecordPURL(r), got.Name, r.Name)
		}
	}
}
