package core

import (
	"fmt"
	"strings"

	packageurl "github.com/package-url/packageurl-go"
)

// PURLType is the package URL type used for catalog entries.
const PURLType = "generic"

// PURL wraps packageurl.PackageURL with catalog helpers.
type PURL struct {
	packageurl.PackageURL
}

// RecordPURL returns the package URL of r, pkg:generic/<group>/<name>@<versions>.
// The version is omitted when the record has none.
func RecordPURL(r Record) string {
	if r.Name == "" {
		return ""
	}
	p := packageurl.NewPackageURL(PURLType, r.Group, r.Name, r.Versions, nil, "")
	return p.ToString()
}

// ParsePURL parses a Package URL string into its components.
func ParsePURL(purl string) (*PURL, error) {
	p, err := packageurl.FromString(purl)
	if err != nil {
		return nil, err
	}
	return &PURL{p}, nil
}

// FindByPURL returns the first record whose group and name match purl.
// The purl's version, when present, must equal the record's version token.
func FindByPURL(catalog []Record, purl string) (Record, error) {
	p, err := ParsePURL(purl)
	if err != nil {
		return Record{}, fmt.Errorf("parsing purl %q: %w", purl, err)
	}

	for _, r := range catalog {
		if !strings.EqualFold(r.Name, p.Name) || !strings.EqualFold(r.Group, p.Namespace) {
			continue
		}
		if p.Version != "" && r.Versions != p.Version {
			continue
		}
		return r, nil
	}

	return Record{}, &NotFoundError{Group: p.Namespace, Name: p.Name}
}
