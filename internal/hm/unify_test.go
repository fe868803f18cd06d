package hm

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"wisp/hmerr"
)

func TestUnifyIdenticalConstructors(t *testing.T) {
	c := NewContext()
	s, err := c.Unify(NumberType(), NumberType())
	assert.NoError(t, err)
	assert.Empty(t, s)
}

func TestUnifyVariableBindsToConcreteType(t *testing.T) {
	c := NewContext()
	v := c.Fresh(NoKind)
	s, err := c.Unify(v, StringType())
	assert.NoError(t, err)
	assert.True(t, Equal(StringType(), s[v.Name]))
}

func TestUnifyMismatchedConstructorsFails(t *testing.T) {
	c := NewContext()
	_, err := c.Unify(NumberType(), StringType())
	assert.Error(t, err)
	assert.Equal(t, hmerr.KindUnificationError, err.(hmerr.TypeError).Kind())
}

func TestUnifyOccursCheckFails(t *testing.T) {
	c := NewContext()
	v := c.Fresh(NoKind)
	selfApplication := Arrow(v, v)
	_, err := c.Unify(v, selfApplication)
	assert.Error(t, err)
	assert.Equal(t, hmerr.KindRecursiveType, err.(hmerr.TypeError).Kind())
}

func TestUnifyArrowsUnifiesOperandsPairwise(t *testing.T) {
	c := NewContext()
	a := c.Fresh(NoKind)
	b := c.Fresh(NoKind)
	s, err := c.Unify(Arrow(a, b), Arrow(NumberType(), StringType()))
	assert.NoError(t, err)
	assert.True(t, Equal(NumberType(), ApplySubst(a, s)))
	assert.True(t, Equal(StringType(), ApplySubst(b, s)))
}

func TestMatchOnlyBindsTheLeftSide(t *testing.T) {
	c := NewContext()
	v := c.Fresh(NoKind)
	_, err := c.Match(NumberType(), v)
	assert.Error(t, err)
	assert.Equal(t, hmerr.KindMatchingError, err.(hmerr.TypeError).Kind())
}

func TestMatchBindsLeftVariableToRigidRight(t *testing.T) {
	c := NewContext()
	v := c.Fresh(NoKind)
	s, err := c.Match(v, NumberType())
	assert.NoError(t, err)
	assert.True(t, Equal(NumberType(), s[v.Name]))
}

func TestMatchArrowsCombineWithSafeCompose(t *testing.T) {
	c := NewContext()
	v := c.Fresh(NoKind)
	s, err := c.Match(Arrow(v, v), Arrow(NumberType(), NumberType()))
	assert.NoError(t, err)
	assert.True(t, Equal(NumberType(), ApplySubst(v, s)))
}

func TestMatchArrowsConflictingSubstitutionsFail(t *testing.T) {
	c := NewContext()
	v := c.Fresh(NoKind)
	_, err := c.Match(Arrow(v, v), Arrow(NumberType(), StringType()))
	assert.Error(t, err)
	assert.Equal(t, hmerr.KindSubstitutionConflict, err.(hmerr.TypeError).Kind())
}
