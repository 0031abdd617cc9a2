package order

import (
	"slices"

	"github.com/charmbracelet/log"

	pkgerrors "github.com/matzehuels/pkgorder/pkg/errors"
)

// Option configures [Compute].
type Option func(*config)

type config struct {
	arrange Arrangement
	logger  *log.Logger
}

// WithArrangement replaces the default [ByNameDescending] starting order.
func WithArrangement(a Arrangement) Option {
	return func(c *config) {
		if a != nil {
			c.arrange = a
		}
	}
}

// WithLogger enables debug tracing of every insertion step.
func WithLogger(l *log.Logger) Option {
	return func(c *config) { c.logger = l }
}

// Compute returns pkgs in dependency order: if A uses B, B precedes A.
//
// It ranks the packages, arranges them (by descending name unless
// [WithArrangement] says otherwise) and runs [Insert]. If the insertion left
// a package ahead of something it uses, the packages involved are moved
// just far enough back; a result that is already valid is returned as is.
// The input slice keeps its order; only the packages' Rank fields are written.
func Compute(pkgs []*Package, opts ...Option) ([]*Package, error) {
	cfg := config{arrange: ByNameDescending}
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := checkDuplicates(pkgs); err != nil {
		return nil, err
	}

	ComputeRanks(pkgs)

	arranged := cfg.arrange(pkgs)
	if !samePackages(pkgs, arranged) {
		return nil, pkgerrors.New(pkgerrors.ErrCodeInternal,
			"arrangement returned %d packages, want the %d it was given", len(arranged), len(pkgs))
	}

	var trace func(*Package, []*Package)
	if cfg.logger != nil {
		cfg.logger.Debug("arranged", "start", describe(arranged))
		trace = func(next *Package, placed []*Package) {
			cfg.logger.Debug("insert", "pkg", next.Name, "placed", describe(placed))
		}
	}

	inserted, err := insert(arranged, trace)
	if err != nil {
		return nil, err
	}
	sorted, err := settle(inserted)
	if err != nil {
		return nil, err
	}
	if cfg.logger != nil {
		if !slices.Equal(inserted, sorted) {
			cfg.logger.Debug("settled", "inserted", describe(inserted))
		}
		cfg.logger.Debug("sorted", "order", describe(sorted))
	}
	return sorted, nil
}

// checkDuplicates rejects two packages sharing a non-empty name. Unnamed
// packages never match as a dependency, so any number of them is fine.
func checkDuplicates(pkgs []*Package) error {
	seen := make(map[string]*Package, len(pkgs))
	for _, p := range pkgs {
		if p.Name == "" {
			continue
		}
		if prev, ok := seen[p.Name]; ok {
			return &DuplicatePackageError{Name: p.Name, First: prev.Location, Second: p.Location}
		}
		seen[p.Name] = p
	}
	return nil
}

func samePackages(a, b []*Package) bool {
	if len(a) != len(b) {
		return false
	}
	count := make(map[*Package]int, len(a))
	for _, p := range a {
		count[p]++
	}
	for _, p := range b {
		if count[p] == 0 {
			return false
		}
		count[p]--
	}
	return true
}
