package core

import "testing"

func TestLookupTag(t *testing.T) {
	tests := []struct {
		tag       string
		wantClass string
		wantIcon  string
	}{
		{"jwt", "tag-gradient", "fas fa-key"},
		{" JWT ", "tag-gradient", "fas fa-key"},
		{"security", "tag-danger", "fas fa-shield-alt"},
		{"openai", "tag-primary", "fas fa-brain"},
		{"rust", DefaultTagClass, ""},
		{"", DefaultTagClass, ""},
	}

	for _, tt := range tests {
		info := LookupTag(tt.tag)
		if info.Class != tt.wantClass {
			t.Errorf("LookupTag(%q).Class = %q, want %q", tt.tag, info.Class, tt.wantClass)
		}
		if info.Icon != tt.wantIcon {
			t.Errorf("LookupTag(%q).Icon = %q, want %q", tt.tag, info.Icon, tt.wantIcon)
		}
	}
}

func TestKnownTags(t *testing.T) {
	tags := KnownTags()
	if len(tags) != 8 {
		t.Fatalf("len(KnownTags()) = %d, want 8", len(tags))
	}
	for _, tag := range tags {
		if LookupTag(tag).Description == "" {
			t.Errorf("known tag %q has no description", tag)
		}
	}
}
