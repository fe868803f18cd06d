package hmerr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"wisp/hmerr"
)

type fakeType string

func (f fakeType) String() string { return string(f) }

func TestNotInScopeError(t *testing.T) {
	err := hmerr.NewNotInScopeError("x")
	assert.Equal(t, hmerr.KindNotInScope, err.Kind())
	assert.Equal(t, "x", err.Name)
	assert.Contains(t, err.Error(), "x is not in scope")
}

func TestUnificationError(t *testing.T) {
	err := hmerr.NewUnificationError(fakeType("Number"), fakeType("String"))
	assert.Equal(t, hmerr.KindUnificationError, err.Kind())
	assert.Contains(t, err.Error(), "cannot unify type")
	assert.Contains(t, err.Error(), "Number")
	assert.Contains(t, err.Error(), "String")
}

func TestMatchingError(t *testing.T) {
	err := hmerr.NewMatchingError(fakeType("t0 -> t0"), fakeType("Number -> Number"))
	assert.Equal(t, hmerr.KindMatchingError, err.Kind())
	assert.Contains(t, err.Error(), "cannot match type")
}

func TestRecursiveTypeError(t *testing.T) {
	err := hmerr.NewRecursiveTypeError("t0", fakeType("t0 -> t1"))
	assert.Equal(t, hmerr.KindRecursiveType, err.Kind())
	assert.Equal(t, "t0", err.Name)
	assert.Contains(t, err.Error(), "contains references to itself")
}

func TestSubstitutionConflictError(t *testing.T) {
	err := hmerr.NewSubstitutionConflict("t0", fakeType("Number"), fakeType("String"))
	assert.Equal(t, hmerr.KindSubstitutionConflict, err.Kind())
	assert.Equal(t, "t0", err.Name)
	assert.Contains(t, err.Error(), "conflicting substitutions")
}

func TestDifferentLengthsError(t *testing.T) {
	err := hmerr.NewDifferentLengthsError(2, 3)
	assert.Equal(t, hmerr.KindDifferentLengths, err.Kind())
	assert.Equal(t, 2, err.Left)
	assert.Equal(t, 3, err.Right)
	assert.Contains(t, err.Error(), "2 types against 3 types")
}

func TestAllKindsSatisfyTypeError(t *testing.T) {
	var errs []hmerr.TypeError
	errs = append(errs,
		hmerr.NewNotInScopeError("y"),
		hmerr.NewUnificationError(fakeType("a"), fakeType("b")),
		hmerr.NewMatchingError(fakeType("a"), fakeType("b")),
		hmerr.NewRecursiveTypeError("t0", fakeType("t0")),
		hmerr.NewSubstitutionConflict("t0", fakeType("a"), fakeType("b")),
		hmerr.NewDifferentLengthsError(1, 2),
	)
	for _, e := range errs {
		assert.NotEmpty(t, e.Error())
		assert.NotEmpty(t, e.Kind())
	}
}
