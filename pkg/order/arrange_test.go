package order

import (
	"slices"
	"testing"
)

func TestByNameDescending(t *testing.T) {
	pkgs := workspace()
	before := slices.Clone(pkgs)

	got := ByNameDescending(pkgs)
	assertOrder(t, got, "u", "c", "b", "aa", "a")
	if !slices.Equal(pkgs, before) {
		t.Error("ByNameDescending modified its input")
	}
}

func TestByNameDescendingStable(t *testing.T) {
	first := &Package{Location: "first"}
	second := &Package{Location: "second"}
	got := ByNameDescending([]*Package{first, newPkg("a"), second})
	if got[1] != first || got[2] != second {
		t.Errorf("unnamed packages reordered: %v", []string{got[1].Location, got[2].Location})
	}
}

func TestFixed(t *testing.T) {
	tests := []struct {
		name  string
		names []string
		want  []string
	}{
		{"full order", []string{"a", "aa", "u", "c", "b"}, []string{"a", "aa", "u", "c", "b"}},
		{"partial pins rest by name", []string{"b"}, []string{"b", "u", "c", "aa", "a"}},
		{"unknown names ignored", []string{"zz", "a"}, []string{"a", "u", "c", "b", "aa"}},
		{"repeated names ignored", []string{"c", "c", "u"}, []string{"c", "u", "b", "aa", "a"}},
		{"no names", nil, []string{"u", "c", "b", "aa", "a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertOrder(t, Fixed(tt.names...)(workspace()), tt.want...)
		})
	}
}
