package hm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComposeIsAssociative(t *testing.T) {
	a := Substitution{"t0": NumberType()}
	b := Substitution{"t1": &Variable{Name: "t0", Kind: NoKind}}
	c := Substitution{"t2": StringType()}

	left := Compose(Compose(a, b), c)
	right := Compose(a, Compose(b, c))

	ty := &Variable{Name: "t2", Kind: NoKind}
	assert.True(t, Equal(ApplySubst(ty, left), ApplySubst(ty, right)))
}

func TestComposeLaterWinsOnConflict(t *testing.T) {
	outer := Substitution{"t0": NumberType()}
	inner := Substitution{"t0": StringType()}

	got := Compose(outer, inner)
	assert.True(t, Equal(StringType(), got["t0"]))
}

func TestApplySubstIsIdempotentOnceFullyResolved(t *testing.T) {
	s := Substitution{"t0": NumberType()}
	v := &Variable{Name: "t0", Kind: NoKind}

	once := ApplySubst(v, s)
	twice := ApplySubst(once, s)
	assert.True(t, Equal(once, twice))
}

func TestSafeComposeRejectsConflictingBindings(t *testing.T) {
	a := Substitution{"t0": NumberType()}
	b := Substitution{"t0": StringType()}

	_, err := SafeCompose(a, b)
	assert.Error(t, err)
}

func TestSafeComposeAcceptsAgreeingBindings(t *testing.T) {
	a := Substitution{"t0": NumberType(), "t1": StringType()}
	b := Substitution{"t0": NumberType()}

	got, err := SafeCompose(a, b)
	assert.NoError(t, err)
	assert.True(t, Equal(NumberType(), got["t0"]))
	assert.True(t, Equal(StringType(), got["t1"]))
}
