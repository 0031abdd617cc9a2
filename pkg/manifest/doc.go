// Package manifest finds package manifests under a directory tree and reads
// them into [order.Package] records.
//
// Two formats are supported out of the box:
//   - package.json (npm, yarn and pnpm workspaces); node_modules is skipped
//   - Cargo.toml (Rust workspaces); target is skipped
//
// Discovery and loading are separate steps so callers can filter or report
// the paths before anything is read:
//
//	paths, err := manifest.Discover(ctx, root, manifest.Defaults()...)
//	pkgs, err := manifest.Load(ctx, paths, manifest.Defaults()...)
//
// Load reads files concurrently but returns records in path order.
package manifest
