package client

import "testing"

func TestIndexURL(t *testing.T) {
	tests := []struct {
		base string
		want string
	}{
		{"https://pkgs.example.org", "https://pkgs.example.org/v1/packages?info=1"},
		{"https://pkgs.example.org/", "https://pkgs.example.org/v1/packages?info=1"},
		{"http://localhost:8080", "http://localhost:8080/v1/packages?info=1"},
		{"https://pkgs.example.org/custom/index.json", "https://pkgs.example.org/custom/index.json"},
		{"https://pkgs.example.org/v1/packages?info=1", "https://pkgs.example.org/v1/packages?info=1"},
		{"not a url", "not a url"},
	}

	for _, tt := range tests {
		if got := IndexURL(tt.base); got != tt.want {
			t.Errorf("IndexURL(%q) = %q, want %q", tt.base, got, tt.want)
		}
	}
}

func TestHost(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected string
	}{
		{"https", "https://pkgs.example.org/v1/packages", "pkgs.example.org"},
		{"with port", "https://example.com:8080/path", "example.com:8080"},
		{"invalid URL", "not-a-valid-url", "not-a-valid-url"},
		{"long path", "/srv/catalogs/2024/very/long/directory/structure/index.json", "/srv/catalogs/2024/very/long/directory/structure/i"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Host(tt.url); got != tt.expected {
				t.Errorf("Host(%q) = %q, want %q", tt.url, got, tt.expected)
			}
		})
	}
}
