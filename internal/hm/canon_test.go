package hm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeSchemeRenamesInOccurrenceOrder(t *testing.T) {
	t7 := &Variable{Name: "t7", Kind: NoKind}
	t3 := &Variable{Name: "t3", Kind: NoKind}
	sch := &Scheme{
		Vars: []*Variable{t7, t3},
		Body: Arrow(t7, Arrow(t3, t7)),
	}

	got := CanonicalizeScheme(sch)
	assert.Equal(t, "forall t0 t1. t0 -> t1 -> t0", got.String())
}

func TestCanonicalizeSchemeIsStableAcrossAlphaEquivalentRenamings(t *testing.T) {
	a := &Variable{Name: "t0", Kind: NoKind}
	first := &Scheme{Vars: []*Variable{a}, Body: Arrow(a, a)}

	x := &Variable{Name: "t99", Kind: NoKind}
	second := &Scheme{Vars: []*Variable{x}, Body: Arrow(x, x)}

	assert.Equal(t, CanonicalizeScheme(first).String(), CanonicalizeScheme(second).String())
}
