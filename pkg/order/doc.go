// Package order computes a dependency-safe processing order for the packages
// of a multi-package repository.
//
// # Overview
//
// Given a set of [Package] records, [Compute] returns the same records
// arranged so that whenever package A lists package B in its dependencies or
// devDependencies, B comes before A. Tools that build, test or publish every
// package of a repository can walk the result front to back.
//
// # Algorithm
//
// Ordering happens in three steps:
//
//  1. [ComputeRanks] counts, for each package, how many other packages of
//     the set it uses. Ranks only break ties; they are not the sort key.
//  2. An [Arrangement] fixes the starting sequence. The default,
//     [ByNameDescending], makes the result independent of filesystem order.
//  3. [Insert] consumes the arrangement one package at a time and inserts each
//     into a growing output sequence, scanning from the front:
//     a package that uses the current item moves past it, a package used by
//     the current item is placed directly before it, and a package unrelated
//     to everything placed so far goes to the back if it outranks the last
//     item and to the front otherwise.
//
// Insertion alone can split a transitive chain for some starting orders, so
// [Compute] finishes with a stable pass that moves such packages behind what
// they use. The pass is a no-op whenever insertion already got it right.
//
// The result respects every direct relation. Packages with no relation to
// each other are placed deterministically for a given arrangement, but no
// other guarantee is made about them.
//
// # Errors
//
// Two packages that use each other abort the run with a
// [*CircularDependencyError]; no partial order is returned. Longer cycles
// are reported the same way by the final pass. Two packages
// with the same non-empty name abort with a [*DuplicatePackageError] before
// any ordering starts.
//
// # Usage
//
//	sorted, err := order.Compute(pkgs)
//	if errors.Is(err, order.ErrCircularDependency) {
//	    // report and stop
//	}
//
//	// Seed a custom starting sequence
//	sorted, err = order.Compute(pkgs, order.WithArrangement(order.Fixed("core", "cli")))
package order
