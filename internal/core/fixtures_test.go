package core

import (
	"context"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func testCatalog() []Record {
	return []Record{
		{
			Name:        "jwt-tools",
			Group:       "acme",
			Description: "Sign and verify JSON Web Tokens",
			Versions:    "1.2.0",
			Date:        day(2024, time.March, 1),
			License:     "MIT",
			Tags:        []string{"jwt", "security"},
			OS:          []string{"linux", "windows"},
		},
		{
			Name:        "doc-gen",
			Group:       "Zeta",
			Description: "Generates documentation sites",
			Versions:    "0.3.1",
			Date:        day(2023, time.January, 1),
			License:     "Apache-2.0",
			Tags:        []string{"documentation"},
			OS:          []string{"macos", "linux"},
		},
		{
			Name:        "ai-helper",
			Group:       "acme",
			Description: "Thin OpenAI client",
			Versions:    "2.0.0",
			License:     "mit",
			Tags:        []string{"ai", "openai"},
			OS:          []string{"windows"},
		},
	}
}

func names(records []Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Name
	}
	return out
}

// stubLoader returns fixed records or a fixed error.
type stubLoader struct {
	endpoint string
	records  []Record
	err      error
	calls    int
}

func (l *stubLoader) Endpoint() string { return l.endpoint }

func (l *stubLoader) Load(_ context.Context) ([]Record, error) {
	l.calls++
	if l.err != nil {
		return nil, &LoadError{Endpoint: l.endpoint, Err: l.err}
	}
	return l.records, nil
}
