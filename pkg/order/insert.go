package order

import "slices"

// Insert orders pkgs by inserting them one at a time, in the given order,
// into a growing output sequence. Ranks must already be set (see
// [ComputeRanks]); pkgs itself is left untouched.
//
// It fails with a [*CircularDependencyError] as soon as the package being
// inserted and an already placed package use each other.
func Insert(pkgs []*Package) ([]*Package, error) {
	return insert(pkgs, nil)
}

func insert(pkgs []*Package, trace func(next *Package, placed []*Package)) ([]*Package, error) {
	out := make([]*Package, 0, len(pkgs))
	for _, a := range pkgs {
		if len(out) == 0 {
			out = append(out, a)
			continue
		}
		if trace != nil {
			trace(a, out)
		}
		var err error
		if out, err = place(out, a); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// place returns out with a inserted. The scan runs front to back:
//   - a uses cur: a belongs somewhere after cur; remember the slot right
//     behind cur and keep scanning, or append if cur is last.
//   - cur uses a: a goes directly before cur.
//   - unrelated and cur is last: drop a into the remembered slot if there is
//     one, otherwise append when a outranks cur and prepend when it does not.
func place(out []*Package, a *Package) ([]*Package, error) {
	insertAt := 0
	last := len(out) - 1
	for i, cur := range out {
		iUseYou, youUseMe := Uses(a, cur), Uses(cur, a)
		switch {
		case iUseYou && youUseMe:
			return nil, &CircularDependencyError{A: a, B: cur}
		case iUseYou:
			if i == last {
				return append(out, a), nil
			}
			insertAt = i + 1
		case youUseMe:
			return slices.Insert(out, i, a), nil
		case i == last:
			if insertAt > 0 {
				return slices.Insert(out, insertAt, a), nil
			}
			if a.Rank > cur.Rank {
				return append(out, a), nil
			}
			return slices.Insert(out, 0, a), nil
		}
	}
	// Not reached: every case returns at the last element.
	return append(out, a), nil
}
