package core

import (
	"fmt"
	"testing"
)

func benchCatalog(n int) []Record {
	base := testCatalog()
	records := make([]Record, n)
	for i := range records {
		r := base[i%len(base)]
		r.Name = fmt.Sprintf("%s-%d", r.Name, i)
		records[i] = r
	}
	return records
}

func BenchmarkApplyFilters(b *testing.B) {
	catalog := benchCatalog(5000)
	c := Criteria{Query: "tools", OS: "linux", Sort: "name"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ApplyFilters(catalog, c)
	}
}

func BenchmarkSortRecords_Date(b *testing.B) {
	catalog := benchCatalog(5000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ws := ApplyFilters(catalog, Criteria{})
		SortRecords(ws, SortDate)
	}
}

func BenchmarkDecodeIndex(b *testing.B) {
	data := []byte(`[` +
		`{"name":"jwt-tools","group":"acme","desc":"Sign tokens","version":"1.2.0","date":20240315.09153,` +
		`"license":"MIT","tags":"jwt,security","supports":"linux,windows","projURL":"https://example.org"}` +
		`]`)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := DecodeIndex(data); err != nil {
			b.Fatal(err)
		}
	}
}
