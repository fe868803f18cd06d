package hm

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestFreeVarsExcludesSchemeQuantifiers(t *testing.T) {
	bound := &Variable{Name: "t0", Kind: NoKind}
	free := &Variable{Name: "t1", Kind: NoKind}
	sch := &Scheme{Vars: []*Variable{bound}, Body: Arrow(bound, free)}

	got := FreeVars(sch)
	assert.False(t, got.Contains("t0"))
	assert.True(t, got.Contains("t1"))
}

func TestFreeVarsOfSliceUnionsAcrossElements(t *testing.T) {
	a := &Variable{Name: "t0", Kind: NoKind}
	b := &Variable{Name: "t1", Kind: NoKind}

	got := FreeVarsOfSlice([]Type{a, b, NumberType()})
	want := []string{"t0", "t1"}

	if diff := cmp.Diff(want, sortedNames(got)); diff != "" {
		t.Fatalf("free variable names mismatch (-want +got):\n%s", diff)
	}
}

func sortedNames(vs VarSet) []string {
	names := vs.Names()
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j-1] > names[j]; j-- {
			names[j-1], names[j] = names[j], names[j-1]
		}
	}
	return names
}
