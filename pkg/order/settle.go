package order

import "slices"

// settle returns seq unchanged when every package already follows the
// packages it uses. Otherwise it emits, repeatedly, the earliest package
// whose used packages have all been emitted, so unrelated packages keep
// their relative order.
//
// [Insert] only compares the incoming package with placed ones, so a chain
// such as c→b→a can end up split when b arrives after both ends were
// placed. settle closes that gap and catches cycles longer than two.
func settle(seq []*Package) ([]*Package, error) {
	out := make([]*Package, 0, len(seq))
	pending := slices.Clone(seq)
	for len(pending) > 0 {
		i := slices.IndexFunc(pending, func(p *Package) bool {
			return usedIn(p, pending) == nil
		})
		if i < 0 {
			return nil, cycleIn(pending)
		}
		out = append(out, pending[i])
		pending = slices.Delete(pending, i, i+1)
	}
	return out, nil
}

// usedIn returns the first package of pkgs, other than p, that p uses.
func usedIn(p *Package, pkgs []*Package) *Package {
	for _, q := range pkgs {
		if q != p && Uses(p, q) {
			return q
		}
	}
	return nil
}

// cycleIn follows uses edges from the first pending package until one
// repeats. Every pending package uses another pending one, so it always does.
func cycleIn(pending []*Package) error {
	seen := make(map[*Package]bool, len(pending))
	p := pending[0]
	for !seen[p] {
		seen[p] = true
		p = usedIn(p, pending)
	}
	return &CircularDependencyError{A: p, B: usedIn(p, pending)}
}
