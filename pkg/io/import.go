package io

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	pkgerrors "github.com/matzehuels/pkgorder/pkg/errors"
	"github.com/matzehuels/pkgorder/pkg/order"
)

// Record is the JSON form of a package accepted by [ReadJSON] and the HTTP
// API.
type Record struct {
	Location        string            `json:"location" yaml:"location"`
	Name            string            `json:"name" yaml:"name"`
	Dependencies    map[string]string `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
	DevDependencies map[string]string `json:"devDependencies,omitempty" yaml:"devDependencies,omitempty"`
}

// Package converts r into a package with non-nil dependency maps.
func (r Record) Package() *order.Package {
	return &order.Package{
		Location:        r.Location,
		Name:            r.Name,
		Dependencies:    orEmpty(r.Dependencies),
		DevDependencies: orEmpty(r.DevDependencies),
	}
}

// Packages converts records into packages, validating every name.
func Packages(records []Record) ([]*order.Package, error) {
	pkgs := make([]*order.Package, len(records))
	for i, r := range records {
		if err := pkgerrors.ValidatePackageName(r.Name); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		pkgs[i] = r.Package()
	}
	return pkgs, nil
}

// ReadJSON decodes an array of package records from r.
//
// Missing names decode as "" and missing dependency maps as empty maps.
// ReadJSON returns an error with code INVALID_FORMAT when the input is not
// a JSON array of objects, and INVALID_MANIFEST when a name is unusable.
// ReadJSON does not close r.
func ReadJSON(r io.Reader) ([]*order.Package, error) {
	var records []Record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.ErrCodeInvalidFormat, err, "decode package records")
	}
	return Packages(records)
}

// ReadYAML decodes a YAML sequence of package records from r, with the
// same keys and defaults as [ReadJSON].
func ReadYAML(r io.Reader) ([]*order.Package, error) {
	var records []Record
	if err := yaml.NewDecoder(r).Decode(&records); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.ErrCodeInvalidFormat, err, "decode package records")
	}
	return Packages(records)
}

// ImportFile reads package records from path. Files ending in .yaml or
// .yml are read as YAML, everything else as JSON.
func ImportFile(path string) ([]*order.Package, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, pkgerrors.Wrap(pkgerrors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ReadYAML(f)
	default:
		return ReadJSON(f)
	}
}

func orEmpty(m map[string]string) map[string]string {
	if m == nil {
		return map[string]string{}
	}
	return m
}
