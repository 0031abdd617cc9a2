package order

// Uses reports whether a declares b as a dependency or devDependency.
// A package without a name is never used by anything.
func Uses(a, b *Package) bool {
	if b.Name == "" {
		return false
	}
	if _, ok := a.Dependencies[b.Name]; ok {
		return true
	}
	_, ok := a.DevDependencies[b.Name]
	return ok
}
