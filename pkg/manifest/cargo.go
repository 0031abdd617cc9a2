package manifest

import (
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/pkgorder/pkg/order"
)

// CargoToml parses Cargo.toml files. Dependencies may be given as a bare
// version string or as a table; tables contribute their version key, which
// is empty for path and workspace dependencies.
type CargoToml struct{}

func (c *CargoToml) Type() string              { return "Cargo.toml" }
func (c *CargoToml) CacheDir() string          { return "target" }
func (c *CargoToml) Supports(name string) bool { return strings.EqualFold(name, "cargo.toml") }

func (c *CargoToml) Parse(location string, data []byte) (*order.Package, error) {
	var cargo cargoFile
	if err := toml.Unmarshal(data, &cargo); err != nil {
		return nil, err
	}
	return &order.Package{
		Location:        location,
		Name:            cargo.Package.Name,
		Dependencies:    cargoDeps(cargo.Dependencies),
		DevDependencies: cargoDeps(cargo.DevDependencies),
	}, nil
}

type cargoFile struct {
	Package struct {
		Name string `toml:"name"`
	} `toml:"package"`
	Dependencies    map[string]any `toml:"dependencies"`
	DevDependencies map[string]any `toml:"dev-dependencies"`
}

func cargoDeps(raw map[string]any) map[string]string {
	deps := make(map[string]string, len(raw))
	for name, spec := range raw {
		switch v := spec.(type) {
		case string:
			deps[name] = v
		case map[string]any:
			version, _ := v["version"].(string)
			deps[name] = version
		default:
			deps[name] = ""
		}
	}
	return deps
}
