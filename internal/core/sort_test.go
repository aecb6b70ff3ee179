package core

import (
	"reflect"
	"testing"
)

func TestSortRecords(t *testing.T) {
	tests := []struct {
		key  string
		want []string
	}{
		{"name", []string{"ai-helper", "doc-gen", "jwt-tools"}},
		{"NAME", []string{"ai-helper", "doc-gen", "jwt-tools"}},
		{"group", []string{"jwt-tools", "ai-helper", "doc-gen"}},
		{"author", []string{"jwt-tools", "ai-helper", "doc-gen"}},
		{"license", []string{"doc-gen", "jwt-tools", "ai-helper"}},
		{"date", []string{"jwt-tools", "doc-gen", "ai-helper"}},
		{"unknown", []string{"jwt-tools", "doc-gen", "ai-helper"}},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			records := testCatalog()
			SortRecords(records, tt.key)
			if got := names(records); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SortRecords(%q) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}

func TestSortRecords_Stable(t *testing.T) {
	versions := func(records []Record) []string {
		out := make([]string, len(records))
		for i, r := range records {
			out[i] = r.Versions
		}
		return out
	}

	tests := []struct {
		key     string
		records []Record
		want    []string
	}{
		{
			key: "name",
			records: []Record{
				{Name: "same", Versions: "1"},
				{Name: "other", Versions: "2"},
				{Name: "same", Versions: "3"},
				{Name: "SAME", Versions: "4"},
			},
			want: []string{"2", "1", "3", "4"},
		},
		{
			key: "group",
			records: []Record{
				{Group: "same", Versions: "1"},
				{Group: "same", Versions: "2"},
				{Group: "SAME", Versions: "3"},
			},
			want: []string{"1", "2", "3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			SortRecords(tt.records, tt.key)
			if got := versions(tt.records); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SortRecords(%q) reordered equal keys: got %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}

func TestSortRecords_UndatedLast(t *testing.T) {
	records := []Record{
		{Name: "none-1"},
		{Name: "old", Date: day(2020, 1, 1)},
		{Name: "none-2"},
		{Name: "new", Date: day(2024, 1, 1)},
	}
	SortRecords(records, SortDate)

	want := []string{"new", "old", "none-1", "none-2"}
	if got := names(records); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestIsSortKey(t *testing.T) {
	for _, k := range SortKeys() {
		if !IsSortKey(k) {
			t.Errorf("IsSortKey(%q) = false for a listed key", k)
		}
	}
	if !IsSortKey(" Date ") {
		t.Error("IsSortKey should ignore case and whitespace")
	}
	if IsSortKey("popularity") {
		t.Error("IsSortKey(popularity) = true, want false")
	}
}
