package order

import (
	"errors"
	"slices"
	"testing"
)

func TestInsertCanSplitChain(t *testing.T) {
	pkgs := chain()
	ComputeRanks(pkgs)

	inserted, err := Insert(Fixed("a", "aa", "u", "c", "b")(pkgs))
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	// b arrives after a (placed last) and c; it lands before c, ahead of a.
	assertOrder(t, inserted, "u", "aa", "b", "c", "a")

	got, err := Compute(pkgs, WithArrangement(Fixed("a", "aa", "u", "c", "b")))
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	assertOrder(t, got, "u", "aa", "a", "b", "c")
}

func TestSettleKeepsValidOrder(t *testing.T) {
	pkgs := workspace()
	seq := Fixed("u", "a", "b", "aa", "c")(pkgs)

	got, err := settle(seq)
	if err != nil {
		t.Fatalf("settle: %v", err)
	}
	if !slices.Equal(got, seq) {
		t.Errorf("settle changed a valid order to %v", Names(got))
	}
}

func TestComputeLongCycle(t *testing.T) {
	pkgs := []*Package{
		newPkg("a", "b"),
		newPkg("b", "c"),
		newPkg("c", "a"),
		newPkg("d", "a"),
	}

	_, err := Compute(pkgs)
	if !errors.Is(err, ErrCircularDependency) {
		t.Fatalf("err = %v, want ErrCircularDependency", err)
	}
	var cerr *CircularDependencyError
	if !errors.As(err, &cerr) {
		t.Fatalf("err is %T", err)
	}
	if cerr.A.Name == "d" || cerr.B.Name == "d" {
		t.Errorf("d is not on the cycle: %v", err)
	}
	if !Uses(cerr.A, cerr.B) {
		t.Errorf("%s does not use %s", cerr.A, cerr.B)
	}
}
