// Package pipeline ties discovery, parsing and ordering together for the CLI
// and the HTTP API.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Load: walk a root directory for manifests and parse them
//  2. Order: rank, arrange and insert the packages (see package order)
//
// Order results are cached by a hash of every package's location, name and
// dependency keys plus the starting arrangement, so an unchanged repository
// is ordered once.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{Root: "."})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, pkg := range result.Packages {
//	    fmt.Println(pkg.Location)
//	}
package pipeline

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	pkgerrors "github.com/matzehuels/pkgorder/pkg/errors"
	"github.com/matzehuels/pkgorder/pkg/order"
)

// DefaultCacheTTL is how long a computed order stays cached.
const DefaultCacheTTL = 7 * 24 * time.Hour

// arrangementDefault identifies order.ByNameDescending in cache keys.
const arrangementDefault = "name-desc"

// Options configures a pipeline run.
type Options struct {
	Root    string   `json:"root"`
	Types   []string `json:"types,omitempty"` // Manifest types to discover; empty means all
	Pin     []string `json:"pin,omitempty"`   // Package names that start the arrangement
	NoCache bool     `json:"no_cache,omitempty"`

	// Arrangement overrides Pin. Results are cached only when ArrangementID
	// names it.
	Arrangement   order.Arrangement `json:"-"`
	ArrangementID string            `json:"-"`

	Logger *log.Logger `json:"-"`
}

// Validate checks the options used by Execute.
func (o Options) Validate() error {
	if o.Root == "" {
		return pkgerrors.New(pkgerrors.ErrCodeInvalidInput, "root is required")
	}
	return o.ValidateForOrder()
}

// ValidateForOrder checks the options used by Order.
func (o Options) ValidateForOrder() error {
	for _, name := range o.Pin {
		if strings.TrimSpace(name) == "" {
			return pkgerrors.New(pkgerrors.ErrCodeInvalidInput, "pinned package names cannot be empty")
		}
	}
	return nil
}

// arrangement returns the starting order to use and its cache identity.
// An empty identity disables caching.
func (o Options) arrangement() (order.Arrangement, string) {
	switch {
	case o.Arrangement != nil:
		return o.Arrangement, o.ArrangementID
	case len(o.Pin) > 0:
		pin, _ := json.Marshal(o.Pin)
		return order.Fixed(o.Pin...), "fixed:" + string(pin)
	default:
		return order.ByNameDescending, arrangementDefault
	}
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// ID identifies the run in logs and API responses.
	ID string

	// Root is the directory that was searched.
	Root string

	// Packages holds every discovered package in dependency order.
	Packages []*order.Package

	// Cached reports whether the order came from the cache.
	Cached bool

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Manifests    int
	DiscoverTime time.Duration
	OrderTime    time.Duration
}

// String summarizes the run for log output.
func (s Stats) String() string {
	return fmt.Sprintf("%d manifests, discover %s, order %s",
		s.Manifests, s.DiscoverTime.Round(time.Millisecond), s.OrderTime.Round(time.Millisecond))
}
