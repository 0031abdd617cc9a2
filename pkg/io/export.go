package io

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/pkgorder/pkg/order"
)

type orderedPackage struct {
	Location string `json:"location" yaml:"location"`
	Name     string `json:"name" yaml:"name"`
	Rank     int    `json:"rank" yaml:"rank"`
}

func ordered(pkgs []*order.Package) []orderedPackage {
	out := make([]orderedPackage, len(pkgs))
	for i, p := range pkgs {
		out[i] = orderedPackage{Location: p.Location, Name: p.Name, Rank: p.Rank}
	}
	return out
}

// WriteJSON encodes pkgs, in the given order, as an indented JSON array of
// {location, name, rank} objects.
func WriteJSON(w io.Writer, pkgs []*order.Package) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(ordered(pkgs)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteYAML encodes pkgs, in the given order, as a YAML sequence of
// {location, name, rank} mappings.
func WriteYAML(w io.Writer, pkgs []*order.Package) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(ordered(pkgs)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return enc.Close()
}

// WriteText writes the location of each package on its own line.
func WriteText(w io.Writer, pkgs []*order.Package) error {
	bw := bufio.NewWriter(w)
	for _, p := range pkgs {
		if _, err := fmt.Fprintln(bw, p.Location); err != nil {
			return err
		}
	}
	return bw.Flush()
}
