package manifest

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	pkgerrors "github.com/matzehuels/pkgorder/pkg/errors"
	"github.com/matzehuels/pkgorder/pkg/order"
)

// maxOpenManifests bounds concurrent reads in Load.
const maxOpenManifests = 16

// Discover walks root and returns the path of every file some parser
// supports, sorted lexically. Hidden directories and the parsers' dependency
// cache directories are skipped.
func Discover(ctx context.Context, root string, parsers ...Parser) ([]string, error) {
	if err := pkgerrors.ValidateRoot(root); err != nil {
		return nil, err
	}

	skip := make(map[string]bool, len(parsers))
	for _, p := range parsers {
		skip[p.CacheDir()] = true
	}

	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		name := d.Name()
		if d.IsDir() {
			if path != root && (skip[name] || strings.HasPrefix(name, ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		if _, err := Detect(name, parsers...); err == nil {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.Sort(paths)
	return paths, nil
}

// Load reads and parses each path with the first parser that supports it.
// Files are read concurrently; the result has one record per path, in the
// same order. The first failure cancels the remaining reads.
func Load(ctx context.Context, paths []string, parsers ...Parser) ([]*order.Package, error) {
	pkgs := make([]*order.Package, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxOpenManifests)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			pkg, err := loadOne(path, parsers)
			if err != nil {
				return err
			}
			pkgs[i] = pkg
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return pkgs, nil
}

func loadOne(path string, parsers []Parser) (*order.Package, error) {
	parser, err := Detect(path, parsers...)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.ErrCodeUnsupported, err, "load %s", path)
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, pkgerrors.Wrap(pkgerrors.ErrCodeFileNotFound, err, "read %s", path)
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.ErrCodeInvalidPath, err, "read %s", path)
	}
	pkg, err := parser.Parse(path, data)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.ErrCodeInvalidManifest, err, "parse %s", path)
	}
	if err := pkgerrors.ValidatePackageName(pkg.Name); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.ErrCodeInvalidManifest, err, "%s", path)
	}
	return pkg, nil
}
