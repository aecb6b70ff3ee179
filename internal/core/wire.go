package core

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// WireRecord is one entry of the package index as served by the endpoint.
type WireRecord struct {
	Name     LooseString `json:"name"`
	Group    LooseString `json:"group"`
	Desc     LooseString `json:"desc"`
	Version  LooseString `json:"version"`
	Date     PackedDate  `json:"date"`
	License  LooseString `json:"license"`
	Tags     LooseString `json:"tags"`     // comma joined
	Supports LooseString `json:"supports"` // comma joined OS tokens
	ProjURL  LooseString `json:"projURL"`
}

// LooseString accepts a JSON string, number or boolean. null and absent
// fields decode to "".
type LooseString string

func (s *LooseString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = LooseString(v)
		return nil
	}
	switch data[0] {
	case '{', '[':
		return fmt.Errorf("cannot use %s as a string", data)
	}
	*s = LooseString(data)
	return nil
}

// PackedDate is a YYYYMMDD.hhmmss number. Digit strings are accepted too.
// Anything unparseable is kept as NaN, which decodes to the zero time.
type PackedDate float64

func (d *PackedDate) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*d = PackedDate(0)
		return nil
	}
	raw := string(data)
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		raw = strings.TrimSpace(raw)
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		f = math.NaN()
	}
	*d = PackedDate(f)
	return nil
}

// Record converts the wire form into a Record.
func (w WireRecord) Record() Record {
	return Record{
		Name:        string(w.Name),
		Group:       string(w.Group),
		Description: string(w.Desc),
		Versions:    string(w.Version),
		Date:        DecodeDate(float64(w.Date)),
		License:     string(w.License),
		Tags:        splitList(string(w.Tags), false),
		OS:          splitList(string(w.Supports), true),
		ProjectURL:  string(w.ProjURL),
	}
}

// DecodeIndex parses a package index document: a JSON array of records.
func DecodeIndex(data []byte) ([]Record, error) {
	var raw []WireRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decoding package index: %w", err)
	}
	return Normalize(raw), nil
}

// Normalize converts wire records in order.
func Normalize(raw []WireRecord) []Record {
	records := make([]Record, 0, len(raw))
	for _, w := range raw {
		records = append(records, w.Record())
	}
	return records
}

// splitList splits a comma joined field. An empty field yields an empty,
// non-nil slice. OS tokens are trimmed and lowercased; tags are kept as-is.
func splitList(s string, osTokens bool) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	if osTokens {
		for i, p := range parts {
			parts[i] = strings.ToLower(strings.TrimSpace(p))
		}
	}
	return parts
}
