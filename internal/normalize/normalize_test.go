package normalize

import (
	"testing"

	"github.com/arytiwari/jioastro-sub006/pkg/core"
)

func TestFold(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Gaja Kesari Yoga", "gaja kesari yoga"},
		{"gaj  kesari-yoga", "gaj kesari yoga"},
		{"  GAJAKESARI   YOGA ", "gajakesari yoga"},
		{"Neecha-Bhanga Raja Yoga", "neecha bhanga raja yoga"},
		{"---", ""},
		{"", ""},
		{"\tBudha Aditya\n", "budha aditya"},
	}

	for _, tc := range cases {
		if got := Fold(tc.in); got != tc.want {
			t.Errorf("Fold(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFold_Idempotent(t *testing.T) {
	inputs := []string{
		"Gaja Kesari Yoga",
		"gaj  kesari-yoga",
		"DHAN--RIPU  yoga",
		"",
		"Xyz Yoga",
	}
	for _, in := range inputs {
		once := Fold(in)
		twice := Fold(once)
		if once != twice {
			t.Errorf("Fold not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}

// fakeIndex is a map-backed variant index for resolver tests.
type fakeIndex map[string]*core.YogaDefinition

func (f fakeIndex) Lookup(folded string) (*core.YogaDefinition, bool) {
	def, ok := f[folded]
	return def, ok
}

func testIndex() fakeIndex {
	gajaKesari := &core.YogaDefinition{CanonicalName: "Gaja Kesari Yoga", Tier: core.TierMajorPositive}
	ripuDhan := &core.YogaDefinition{CanonicalName: "Dhana Yoga (Ripu-Dhan Type)", Tier: core.TierMajorPositive}
	return fakeIndex{
		"gaja kesari yoga": gajaKesari,
		"gajakesari yoga":  gajaKesari,
		"gaj kesari yoga":  gajaKesari,
		"ripu dhan yoga":   ripuDhan,
	}
}

func TestResolver_ExactVariant(t *testing.T) {
	r := NewResolver(testIndex())

	for _, raw := range []string{"Gaja Kesari Yoga", "Gajakesari Yoga", "gaj  kesari-yoga"} {
		res := r.Resolve(raw)
		if res.Unresolved {
			t.Fatalf("Resolve(%q) unexpectedly unresolved", raw)
		}
		if res.Key != "Gaja Kesari Yoga" {
			t.Errorf("Resolve(%q).Key = %q, want %q", raw, res.Key, "Gaja Kesari Yoga")
		}
		if res.Definition == nil || res.Definition.CanonicalName != "Gaja Kesari Yoga" {
			t.Errorf("Resolve(%q) returned wrong definition", raw)
		}
	}
}

func TestResolver_ReorderRetry(t *testing.T) {
	r := NewResolver(testIndex())

	// "Dhan Ripu Yoga" is not indexed, but its token swap "ripu dhan yoga" is.
	res := r.Resolve("Dhan Ripu Yoga")
	if res.Unresolved {
		t.Fatal("reorder retry did not resolve")
	}
	if res.Key != "Dhana Yoga (Ripu-Dhan Type)" {
		t.Errorf("Key = %q, want %q", res.Key, "Dhana Yoga (Ripu-Dhan Type)")
	}

	// Three-token bodies get no retry.
	res = r.Resolve("Dhan Ripu Extra Yoga")
	if !res.Unresolved {
		t.Error("three-token name should not reorder-resolve")
	}
}

func TestResolver_Passthrough(t *testing.T) {
	r := NewResolver(testIndex())

	res := r.Resolve("Xyz   Yoga")
	if !res.Unresolved {
		t.Fatal("unknown name should be unresolved")
	}
	if res.Key != "xyz yoga" {
		t.Errorf("Key = %q, want %q", res.Key, "xyz yoga")
	}
	if res.Display != "Xyz Yoga" {
		t.Errorf("Display = %q, want %q", res.Display, "Xyz Yoga")
	}
	if res.Definition != nil {
		t.Error("passthrough must carry no definition")
	}
}

func TestResolver_Deterministic(t *testing.T) {
	r := NewResolver(testIndex())
	for _, raw := range []string{"Gajakesari Yoga", "Dhan Ripu Yoga", "Xyz Yoga"} {
		first := r.Resolve(raw)
		second := r.Resolve(raw)
		if first != second {
			t.Errorf("Resolve(%q) not deterministic: %+v vs %+v", raw, first, second)
		}
	}
}
