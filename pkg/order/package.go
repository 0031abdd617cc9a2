package order

import (
	"fmt"
	"strings"
)

// Package is one manifest's view of a package: its name and the names it
// depends on. Version specs are carried but never interpreted.
type Package struct {
	Location        string            // Manifest path or other opaque origin
	Name            string            // Package name; empty when the manifest has none
	Dependencies    map[string]string // Runtime dependencies, name to version spec
	DevDependencies map[string]string // Development dependencies, name to version spec
	Rank            int               // Number of other in-scope packages this one uses
}

// String returns the package name, or its location when unnamed.
func (p *Package) String() string {
	if p.Name != "" {
		return p.Name
	}
	return p.Location
}

// Names returns the names of pkgs in order.
func Names(pkgs []*Package) []string {
	names := make([]string, len(pkgs))
	for i, p := range pkgs {
		names[i] = p.Name
	}
	return names
}

// describe renders pkgs as "[name:rank ...]" for debug logging.
func describe(pkgs []*Package) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, p := range pkgs {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s:%d", p.Name, p.Rank)
	}
	b.WriteByte(']')
	return b.String()
}
