package manifest

import (
	"encoding/json"
	"strings"

	"github.com/matzehuels/pkgorder/pkg/order"
)

// PackageJSON parses package.json files. It extracts the name,
// dependencies and devDependencies; peerDependencies are not part of the
// build order.
type PackageJSON struct{}

func (p *PackageJSON) Type() string              { return "package.json" }
func (p *PackageJSON) CacheDir() string          { return "node_modules" }
func (p *PackageJSON) Supports(name string) bool { return strings.EqualFold(name, "package.json") }

func (p *PackageJSON) Parse(location string, data []byte) (*order.Package, error) {
	var pkg packageFile
	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil, err
	}
	return &order.Package{
		Location:        location,
		Name:            pkg.Name,
		Dependencies:    orEmpty(pkg.Dependencies),
		DevDependencies: orEmpty(pkg.DevDependencies),
	}, nil
}

type packageFile struct {
	Name            string            `json:"name"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

func orEmpty(m map[string]string) map[string]string {
	if m == nil {
		return map[string]string{}
	}
	return m
}
