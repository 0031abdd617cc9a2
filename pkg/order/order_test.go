package order

import (
	"bytes"
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	pkgerrors "github.com/matzehuels/pkgorder/pkg/errors"
)

// newPkg builds a package whose runtime dependencies are deps.
func newPkg(name string, deps ...string) *Package {
	p := &Package{
		Location:        name + "/package.json",
		Name:            name,
		Dependencies:    map[string]string{},
		DevDependencies: map[string]string{},
	}
	for _, d := range deps {
		p.Dependencies[d] = "^1.0.0"
	}
	return p
}

// workspace: b uses a, c uses a and b, aa uses b and u. Only aa uses u.
func workspace() []*Package {
	return []*Package{
		newPkg("u"),
		newPkg("a"),
		newPkg("b", "a"),
		newPkg("c", "a", "b"),
		newPkg("aa", "b", "u"),
	}
}

// chain is the five-package scenario where a and aa both build on u.
func chain() []*Package {
	return []*Package{
		newPkg("u"),
		newPkg("a", "u"),
		newPkg("b", "a"),
		newPkg("c", "b", "aa"),
		newPkg("aa", "u"),
	}
}

func assertOrder(t *testing.T, got []*Package, want ...string) {
	t.Helper()
	if names := Names(got); !slices.Equal(names, want) {
		t.Errorf("order = %v, want %v", names, want)
	}
}

// assertRespects checks completeness and that every used package comes first.
func assertRespects(t *testing.T, in, out []*Package) {
	t.Helper()
	if len(out) != len(in) {
		t.Fatalf("len(out) = %d, want %d", len(out), len(in))
	}
	pos := make(map[*Package]int, len(out))
	for i, p := range out {
		if _, dup := pos[p]; dup {
			t.Fatalf("%s appears twice in %v", p, Names(out))
		}
		pos[p] = i
	}
	for _, p := range in {
		if _, ok := pos[p]; !ok {
			t.Fatalf("%s missing from %v", p, Names(out))
		}
	}
	for _, a := range out {
		for _, b := range out {
			if a != b && Uses(a, b) && pos[b] > pos[a] {
				t.Errorf("%s uses %s but comes first in %v", a, b, Names(out))
			}
		}
	}
}

func TestComputeDefaultArrangement(t *testing.T) {
	got, err := Compute(workspace())
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	assertOrder(t, got, "u", "a", "b", "aa", "c")
}

func TestComputeWithArrangement(t *testing.T) {
	tests := []struct {
		name  string
		start []string
		want  []string
	}{
		{
			name:  "different starting order",
			start: []string{"b", "c", "a", "u", "aa"},
			want:  []string{"u", "a", "b", "aa", "c"},
		},
		{
			name:  "high order deps first",
			start: []string{"aa", "c", "u", "a", "b"},
			want:  []string{"a", "b", "c", "u", "aa"},
		},
		{
			name:  "low order deps first",
			start: []string{"a", "b", "u", "c", "aa"},
			want:  []string{"u", "a", "b", "aa", "c"},
		},
		{
			name:  "high and low order intermixed",
			start: []string{"a", "aa", "u", "c", "b"},
			want:  []string{"a", "b", "c", "u", "aa"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pkgs := workspace()
			got, err := Compute(pkgs, WithArrangement(Fixed(tt.start...)))
			if err != nil {
				t.Fatalf("Compute: %v", err)
			}
			assertOrder(t, got, tt.want...)
			assertRespects(t, pkgs, got)
		})
	}
}

func TestComputeChain(t *testing.T) {
	pkgs := chain()
	got, err := Compute(pkgs)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	assertOrder(t, got, "u", "a", "b", "aa", "c")
	assertRespects(t, pkgs, got)
}

func TestComputeRespectsEveryStartingOrder(t *testing.T) {
	for _, build := range []func() []*Package{workspace, chain} {
		names := Names(build())
		for _, perm := range permutations(names) {
			pkgs := build()
			got, err := Compute(pkgs, WithArrangement(Fixed(perm...)))
			if err != nil {
				t.Fatalf("Compute(%v): %v", perm, err)
			}
			assertRespects(t, pkgs, got)
		}
	}
}

func permutations(s []string) [][]string {
	if len(s) <= 1 {
		return [][]string{slices.Clone(s)}
	}
	var out [][]string
	for i := range s {
		rest := slices.Concat(s[:i], s[i+1:])
		for _, p := range permutations(rest) {
			out = append(out, append([]string{s[i]}, p...))
		}
	}
	return out
}

func TestComputeCircular(t *testing.T) {
	tests := []struct {
		name string
		pkgs []*Package
	}{
		{
			name: "direct",
			pkgs: []*Package{newPkg("p", "q"), newPkg("q", "p")},
		},
		{
			name: "through dev dependency",
			pkgs: func() []*Package {
				p, q := newPkg("p", "q"), newPkg("q")
				q.DevDependencies["p"] = "*"
				return []*Package{p, q, newPkg("r")}
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compute(tt.pkgs)
			if got != nil {
				t.Errorf("Compute returned partial order %v", Names(got))
			}
			if !errors.Is(err, ErrCircularDependency) {
				t.Fatalf("err = %v, want ErrCircularDependency", err)
			}
			if !pkgerrors.Is(err, pkgerrors.ErrCodeCircularDependency) {
				t.Errorf("code = %v, want %v", pkgerrors.GetCode(err), pkgerrors.ErrCodeCircularDependency)
			}
			if !strings.Contains(err.Error(), "circular dependency") {
				t.Errorf("message %q does not mention circular dependency", err)
			}
			var cerr *CircularDependencyError
			if !errors.As(err, &cerr) {
				t.Fatalf("err is %T, want *CircularDependencyError", err)
			}
			if pair := []string{cerr.A.Name, cerr.B.Name}; !slices.Contains(pair, "p") || !slices.Contains(pair, "q") {
				t.Errorf("cycle members = %v, want p and q", pair)
			}
		})
	}
}

func TestComputeSingle(t *testing.T) {
	x := newPkg("x")
	got, err := Compute([]*Package{x})
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if len(got) != 1 || got[0] != x {
		t.Errorf("Compute = %v, want [x]", Names(got))
	}
}

func TestComputeEmpty(t *testing.T) {
	got, err := Compute(nil)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Compute(nil) = %v, want empty", Names(got))
	}
}

func TestComputeUnrelated(t *testing.T) {
	pkgs := []*Package{newPkg("x"), newPkg("z"), newPkg("y")}
	got, err := Compute(pkgs)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	// Arranged z, y, x; equal ranks put every newcomer at the front.
	assertOrder(t, got, "x", "y", "z")
	for _, p := range got {
		if p.Rank != 0 {
			t.Errorf("%s rank = %d, want 0", p, p.Rank)
		}
	}
}

func TestComputeUnnamed(t *testing.T) {
	anon1 := &Package{Location: "one/package.json", Dependencies: map[string]string{"": "*"}}
	anon2 := &Package{Location: "two/package.json", DevDependencies: map[string]string{"": "*"}}
	pkgs := []*Package{anon1, anon2, newPkg("lib")}

	got, err := Compute(pkgs)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	assertRespects(t, pkgs, got)
	if anon1.Rank != 0 || anon2.Rank != 0 {
		t.Errorf("ranks = %d, %d, want 0, 0", anon1.Rank, anon2.Rank)
	}
}

func TestComputeDuplicateName(t *testing.T) {
	first, second := newPkg("dup"), newPkg("dup")
	second.Location = "other/package.json"

	_, err := Compute([]*Package{first, newPkg("x"), second})
	var derr *DuplicatePackageError
	if !errors.As(err, &derr) {
		t.Fatalf("err = %v, want *DuplicatePackageError", err)
	}
	if derr.Name != "dup" || derr.First != first.Location || derr.Second != second.Location {
		t.Errorf("DuplicatePackageError = %+v", derr)
	}
	if !pkgerrors.Is(err, pkgerrors.ErrCodeDuplicatePackage) {
		t.Errorf("code = %v, want %v", pkgerrors.GetCode(err), pkgerrors.ErrCodeDuplicatePackage)
	}
}

func TestComputeDeterministic(t *testing.T) {
	pkgs := workspace()
	first, err := Compute(pkgs)
	if err != nil {
		t.Fatal(err)
	}
	for range 5 {
		again, err := Compute(pkgs)
		if err != nil {
			t.Fatal(err)
		}
		if !slices.Equal(first, again) {
			t.Fatalf("Compute not deterministic: %v then %v", Names(first), Names(again))
		}
	}
}

func TestComputeLeavesInputOrder(t *testing.T) {
	pkgs := workspace()
	before := slices.Clone(pkgs)
	if _, err := Compute(pkgs); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(pkgs, before) {
		t.Errorf("input reordered to %v", Names(pkgs))
	}
}

func TestComputeBadArrangement(t *testing.T) {
	dropLast := func(pkgs []*Package) []*Package { return pkgs[:len(pkgs)-1] }
	repeatFirst := func(pkgs []*Package) []*Package {
		out := slices.Clone(pkgs)
		out[len(out)-1] = out[0]
		return out
	}

	for name, arrange := range map[string]Arrangement{"drop": dropLast, "repeat": repeatFirst} {
		t.Run(name, func(t *testing.T) {
			_, err := Compute(workspace(), WithArrangement(arrange))
			if !pkgerrors.Is(err, pkgerrors.ErrCodeInternal) {
				t.Errorf("err = %v, want %v", err, pkgerrors.ErrCodeInternal)
			}
		})
	}
}

func TestComputeLogsSteps(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	if _, err := Compute(workspace(), WithLogger(logger)); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"arranged", "insert", "sorted", "c:2"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}
