package manifest

import (
	"fmt"
	"path/filepath"
	"strings"

	pkgerrors "github.com/matzehuels/pkgorder/pkg/errors"
	"github.com/matzehuels/pkgorder/pkg/order"
)

// Parser reads one manifest format.
type Parser interface {
	// Type returns the manifest type identifier (e.g., "package.json").
	Type() string
	// Supports reports whether this parser handles the given filename.
	Supports(filename string) bool
	// Parse decodes the manifest content read from location.
	Parse(location string, data []byte) (*order.Package, error)
	// CacheDir names the directory where the ecosystem keeps installed
	// dependencies. Discovery never descends into it.
	CacheDir() string
}

// Defaults returns the built-in parsers.
func Defaults() []Parser {
	return []Parser{&PackageJSON{}, &CargoToml{}}
}

// Select returns the parsers from Defaults whose Type is in types, matched
// case-insensitively. No types selects every parser.
func Select(types ...string) ([]Parser, error) {
	all := Defaults()
	if len(types) == 0 {
		return all, nil
	}
	var out []Parser
	for _, t := range types {
		found := false
		for _, p := range all {
			if strings.EqualFold(p.Type(), t) {
				out = append(out, p)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("unknown manifest type: %s (available: %s)", t, strings.Join(typeNames(all), ", "))
		}
	}
	return out, nil
}

// Detect finds a parser that supports the given file path.
// Returns an error if no parser matches.
func Detect(path string, parsers ...Parser) (Parser, error) {
	name := filepath.Base(path)
	if err := pkgerrors.ValidateManifestFilename(name); err != nil {
		return nil, err
	}
	for _, p := range parsers {
		if p.Supports(name) {
			return p, nil
		}
	}
	return nil, fmt.Errorf("unsupported manifest: %s", name)
}

func typeNames(parsers []Parser) []string {
	names := make([]string, len(parsers))
	for i, p := range parsers {
		names[i] = p.Type()
	}
	return names
}
