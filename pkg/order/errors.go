package order

import (
	"fmt"

	pkgerrors "github.com/matzehuels/pkgorder/pkg/errors"
)

// Sentinel errors matched with errors.Is. Both carry a pkg/errors code, so
// pkgerrors.Is(err, pkgerrors.ErrCodeCircularDependency) works as well.
var (
	ErrCircularDependency = pkgerrors.New(pkgerrors.ErrCodeCircularDependency, "circular dependency")
	ErrDuplicatePackage   = pkgerrors.New(pkgerrors.ErrCodeDuplicatePackage, "duplicate package name")
)

// CircularDependencyError reports two packages that use each other.
type CircularDependencyError struct {
	A, B *Package
}

func (e *CircularDependencyError) Error() string {
	return fmt.Sprintf("circular dependency between %q (%s) and %q (%s)",
		e.A.Name, e.A.Location, e.B.Name, e.B.Location)
}

func (e *CircularDependencyError) Unwrap() error { return ErrCircularDependency }

// DuplicatePackageError reports two manifests declaring the same name.
type DuplicatePackageError struct {
	Name          string
	First, Second string // Locations of the clashing manifests
}

func (e *DuplicatePackageError) Error() string {
	return fmt.Sprintf("duplicate package name %q in %s and %s", e.Name, e.First, e.Second)
}

func (e *DuplicatePackageError) Unwrap() error { return ErrDuplicatePackage }
