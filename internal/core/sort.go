package core

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortDate is the only key ordered newest first.
const SortDate = "date"

// sortFields maps the string sort keys to the record value they compare.
var sortFields = map[string]func(Record) string{
	"name":        func(r Record) string { return r.Name },
	"group":       func(r Record) string { return r.Group },
	"author":      func(r Record) string { return r.Author() },
	"description": func(r Record) string { return r.Description },
	"versions":    func(r Record) string { return r.Versions },
	"license":     func(r Record) string { return r.License },
	"tags":        func(r Record) string { return strings.Join(r.Tags, ",") },
	"os":          func(r Record) string { return strings.Join(r.OS, ",") },
}

// SortKeys returns the recognized sort keys in a stable order.
func SortKeys() []string {
	keys := make([]string, 0, len(sortFields)+1)
	for k := range sortFields {
		keys = append(keys, k)
	}
	keys = append(keys, SortDate)
	sort.Strings(keys)
	return keys
}

// IsSortKey reports whether key orders records. Unknown keys are accepted by
// SortRecords but leave the order untouched.
func IsSortKey(key string) bool {
	key = fold(key)
	if key == SortDate {
		return true
	}
	_, ok := sortFields[key]
	return ok
}

// SortRecords stable-sorts records in place by key.
//
// "date" sorts newest first with undecodable dates last. Every other key
// sorts ascending on the lowercased field using the root collation. An
// unknown key compares all records as equal.
func SortRecords(records []Record, key string) {
	key = fold(key)

	if key == SortDate {
		sort.SliceStable(records, func(i, j int) bool {
			return newer(records[i], records[j])
		})
		return
	}

	field, ok := sortFields[key]
	if !ok {
		return
	}

	type keyed struct {
		key    string
		record Record
	}
	items := make([]keyed, len(records))
	for i, r := range records {
		items[i] = keyed{key: strings.ToLower(field(r)), record: r}
	}

	col := collate.New(language.Und)
	sort.SliceStable(items, func(i, j int) bool {
		return col.CompareString(items[i].key, items[j].key) < 0
	})

	for i := range items {
		records[i] = items[i].record
	}
}

func newer(a, b Record) bool {
	switch {
	case a.HasDate() && b.HasDate():
		return a.Date.After(b.Date)
	case a.HasDate():
		return true
	default:
		return false
	}
}
