package order

import (
	"slices"
	"strings"
)

// Arrangement produces the starting sequence consumed by [Insert]. It must
// return every input package exactly once and must not modify the input.
type Arrangement func(pkgs []*Package) []*Package

// ByNameDescending arranges packages by name, highest first. Equal names
// keep their input order.
func ByNameDescending(pkgs []*Package) []*Package {
	out := slices.Clone(pkgs)
	slices.SortStableFunc(out, func(a, b *Package) int {
		return strings.Compare(b.Name, a.Name)
	})
	return out
}

// Fixed returns an arrangement that starts with the packages named in names,
// in that order, followed by the remaining packages by descending name.
// Names that match no package are ignored.
func Fixed(names ...string) Arrangement {
	return func(pkgs []*Package) []*Package {
		byName := make(map[string]*Package, len(pkgs))
		for _, p := range pkgs {
			if _, ok := byName[p.Name]; !ok {
				byName[p.Name] = p
			}
		}

		out := make([]*Package, 0, len(pkgs))
		pinned := make(map[*Package]bool, len(names))
		for _, name := range names {
			p, ok := byName[name]
			if !ok || pinned[p] {
				continue
			}
			pinned[p] = true
			out = append(out, p)
		}

		var rest []*Package
		for _, p := range pkgs {
			if !pinned[p] {
				rest = append(rest, p)
			}
		}
		return append(out, ByNameDescending(rest)...)
	}
}
