package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/pkgorder/pkg/cache"
	"github.com/matzehuels/pkgorder/pkg/manifest"
	"github.com/matzehuels/pkgorder/pkg/observability"
	"github.com/matzehuels/pkgorder/pkg/order"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API use it so caching behaves the same everywhere.
//
// The Runner is stateless except for the cache and logger. Multiple
// goroutines can safely use the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Logger: logger,
	}
}

// Execute discovers and orders every package under opts.Root.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	logger := r.logger(opts)

	result := &Result{ID: uuid.NewString(), Root: opts.Root}

	discoverStart := time.Now()
	pkgs, err := r.Load(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.Stats.DiscoverTime = time.Since(discoverStart)
	result.Stats.Manifests = len(pkgs)

	logger.Info("loaded manifests",
		"run", result.ID,
		"count", len(pkgs),
		"duration", result.Stats.DiscoverTime)

	orderStart := time.Now()
	sorted, cached, err := r.Order(ctx, pkgs, opts)
	if err != nil {
		return nil, fmt.Errorf("order: %w", err)
	}
	result.Packages = sorted
	result.Cached = cached
	result.Stats.OrderTime = time.Since(orderStart)

	logger.Info("ordered packages",
		"run", result.ID,
		"count", len(sorted),
		"cached", cached,
		"duration", result.Stats.OrderTime)

	return result, nil
}

// Load discovers and parses the manifests under opts.Root.
func (r *Runner) Load(ctx context.Context, opts Options) (pkgs []*order.Package, err error) {
	hooks := observability.Pipeline()
	hooks.OnDiscoverStart(ctx, opts.Root)
	start := time.Now()
	defer func() {
		hooks.OnDiscoverComplete(ctx, opts.Root, len(pkgs), time.Since(start), err)
	}()

	parsers, err := manifest.Select(opts.Types...)
	if err != nil {
		return nil, err
	}
	paths, err := manifest.Discover(ctx, opts.Root, parsers...)
	if err != nil {
		return nil, err
	}
	r.logger(opts).Debug("discovered manifests", "root", opts.Root, "count", len(paths))
	return manifest.Load(ctx, paths, parsers...)
}

// Order sorts pkgs, consulting the cache first. The boolean reports a cache
// hit. Ranks are recomputed either way.
func (r *Runner) Order(ctx context.Context, pkgs []*order.Package, opts Options) (sorted []*order.Package, cached bool, err error) {
	if err := opts.ValidateForOrder(); err != nil {
		return nil, false, err
	}
	logger := r.logger(opts)

	hooks := observability.Pipeline()
	hooks.OnOrderStart(ctx, len(pkgs))
	start := time.Now()
	defer func() {
		hooks.OnOrderComplete(ctx, len(pkgs), cached, time.Since(start), err)
	}()

	arrange, arrangeID := opts.arrangement()
	useCache := !opts.NoCache && arrangeID != ""

	var key string
	if useCache {
		key = cache.OrderKey(arrangeID, fingerprints(pkgs))
		if hit := r.fromCache(ctx, key, pkgs); hit != nil {
			order.ComputeRanks(pkgs)
			logger.Debug("order cache hit", "key", key)
			return hit, true, nil
		}
	}

	sorted, err = order.Compute(pkgs, order.WithArrangement(arrange), order.WithLogger(logger))
	if err != nil {
		return nil, false, err
	}

	if useCache {
		r.toCache(ctx, key, sorted, logger)
	}
	return sorted, false, nil
}

// fromCache returns pkgs in the cached order, or nil on a miss or when the
// entry does not describe exactly these packages.
func (r *Runner) fromCache(ctx context.Context, key string, pkgs []*order.Package) []*order.Package {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil || !hit {
		observability.Cache().OnCacheMiss(ctx, "order")
		return nil
	}

	var locations []string
	if err := json.Unmarshal(data, &locations); err != nil || len(locations) != len(pkgs) {
		observability.Cache().OnCacheMiss(ctx, "order")
		return nil
	}

	byLocation := make(map[string]*order.Package, len(pkgs))
	for _, p := range pkgs {
		byLocation[p.Location] = p
	}
	sorted := make([]*order.Package, 0, len(pkgs))
	for _, loc := range locations {
		p, ok := byLocation[loc]
		if !ok {
			observability.Cache().OnCacheMiss(ctx, "order")
			return nil
		}
		delete(byLocation, loc)
		sorted = append(sorted, p)
	}

	observability.Cache().OnCacheHit(ctx, "order")
	return sorted
}

func (r *Runner) toCache(ctx context.Context, key string, sorted []*order.Package, logger *log.Logger) {
	locations := make([]string, len(sorted))
	for i, p := range sorted {
		locations[i] = p.Location
	}
	data, err := json.Marshal(locations)
	if err != nil {
		return
	}
	if err := r.Cache.Set(ctx, key, data, DefaultCacheTTL); err != nil {
		logger.Warn("cache write failed", "key", key, "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, "order", len(data))
}

func (r *Runner) logger(opts Options) *log.Logger {
	if opts.Logger != nil {
		return opts.Logger
	}
	return r.Logger
}

// fingerprint describes a package by what ordering depends on: its
// location, its name and the names it uses. Version specs are left out.
type fingerprint struct {
	Location        string   `json:"location"`
	Name            string   `json:"name"`
	Dependencies    []string `json:"deps"`
	DevDependencies []string `json:"dev_deps"`
}

func fingerprints(pkgs []*order.Package) []fingerprint {
	out := make([]fingerprint, len(pkgs))
	for i, p := range pkgs {
		out[i] = fingerprint{
			Location:        p.Location,
			Name:            p.Name,
			Dependencies:    sortedKeys(p.Dependencies),
			DevDependencies: sortedKeys(p.DevDependencies),
		}
	}
	return out
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
