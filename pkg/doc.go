// Package pkg provides the libraries behind pkgorder, which orders the
// packages of a repository so that every package comes after the packages
// it uses.
//
// # Overview
//
// The pkg directory is organized into three areas:
//
//  1. [order] - The ordering engine (ranks, arrangements, insertion)
//  2. [manifest] - Discovery and parsing of package.json and Cargo.toml
//  3. [pipeline] - Orchestration (discover → parse → order) with caching
//
// Supporting packages: [cache] stores computed orders, [io] reads and writes
// package records as JSON or text, [errors] carries machine-readable codes,
// [observability] exposes hooks, and [buildinfo] holds version data.
//
// # Architecture
//
//	Repository root
//	       ↓
//	  [manifest] Discover + Load
//	       ↓
//	  []*order.Package (location, name, dependencies, devDependencies)
//	       ↓
//	  [order] ComputeRanks → Arrangement → Insert
//	       ↓
//	  ordered packages → text, JSON or table
//
// # Quick Start
//
//	pkgs := []*order.Package{
//	    {Name: "app", Dependencies: map[string]string{"lib": "^1.0.0"}},
//	    {Name: "lib"},
//	}
//	sorted, err := order.Compute(pkgs)
//	if errors.Is(err, order.ErrCircularDependency) {
//	    // two packages use each other
//	}
//	fmt.Println(order.Names(sorted)) // [lib app]
//
// Order a whole repository:
//
//	runner := pipeline.NewRunner(nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{Root: "."})
//
// [order]: https://pkg.go.dev/github.com/matzehuels/pkgorder/pkg/order
// [manifest]: https://pkg.go.dev/github.com/matzehuels/pkgorder/pkg/manifest
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/pkgorder/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/pkgorder/pkg/cache
// [io]: https://pkg.go.dev/github.com/matzehuels/pkgorder/pkg/io
// [errors]: https://pkg.go.dev/github.com/matzehuels/pkgorder/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/pkgorder/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/pkgorder/pkg/buildinfo
package pkg
