package cli

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	pkgerrors "github.com/matzehuels/pkgorder/pkg/errors"
)

// Output formats accepted by --format and the config file.
const (
	formatText  = "text"
	formatJSON  = "json"
	formatYAML  = "yaml"
	formatTable = "table"
)

// fileConfig is the content of a .pkgorder.toml file:
//
//	format = "json"
//	pin = ["core", "cli"]
//	types = ["package.json"]
//	no_cache = true
type fileConfig struct {
	Format  string   `toml:"format"`
	Pin     []string `toml:"pin"`
	Types   []string `toml:"types"`
	NoCache bool     `toml:"no_cache"`
}

// loadConfig reads the config file at path, or <root>/.pkgorder.toml when
// path is empty. A missing default file yields an empty config; a missing
// explicit file is an error.
func loadConfig(path, root string) (*fileConfig, error) {
	explicit := path != ""
	if !explicit {
		path = filepath.Join(root, configFile)
	}

	var cfg fileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return &fileConfig{}, nil
		}
		if errors.Is(err, fs.ErrNotExist) {
			return nil, pkgerrors.Wrap(pkgerrors.ErrCodeFileNotFound, err, "config %s", path)
		}
		return nil, pkgerrors.Wrap(pkgerrors.ErrCodeInvalidFormat, err, "config %s", path)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, pkgerrors.New(pkgerrors.ErrCodeInvalidFormat,
			"config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := validateFormat(cfg.Format); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validateFormat(format string) error {
	switch format {
	case "", formatText, formatJSON, formatYAML, formatTable:
		return nil
	}
	return pkgerrors.New(pkgerrors.ErrCodeInvalidInput,
		"unknown format %q (want text, json, yaml or table)", format)
}

// apply copies config values into opts for every flag the user did not set.
func (cfg *fileConfig) apply(cmd *cobra.Command, opts *orderOpts) {
	flags := cmd.Flags()
	if cfg.Format != "" && !flags.Changed("format") {
		opts.format = cfg.Format
	}
	if len(cfg.Pin) > 0 && !flags.Changed("pin") {
		opts.pin = cfg.Pin
	}
	if len(cfg.Types) > 0 && !flags.Changed("type") {
		opts.types = cfg.Types
	}
	if cfg.NoCache && !flags.Changed("no-cache") {
		opts.noCache = true
	}
}
