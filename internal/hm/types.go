// Package hm implements a Hindley-Milner type inference engine with
// higher-kinded types. Kinds are represented in the same algebra as types,
// so a single recursive sum carries both levels.
package hm

import (
	"fmt"
	"strings"
)

// Type is the closed sum of type (and kind) variants described by the data
// model: nullary constructors, type variables, type-level application, the
// distinguished arrow-kind builder, the "kind is unconstrained" sentinel,
// and universally quantified schemes.
type Type interface {
	fmt.Stringer
	isType()
}

// Constructor is a nullary type constructor such as Number, String, Boolean
// or the kind *.
type Constructor struct {
	Name string
	Kind Type
}

func (*Constructor) isType() {}

func (c *Constructor) String() string { return c.Name }

// Variable is a type variable occurrence - possibly a fresh inference
// variable, possibly a scheme's bound quantifier.
type Variable struct {
	Name string
	Kind Type
}

func (*Variable) isType() {}

func (v *Variable) String() string { return v.Name }

// formatQuantifier renders a scheme's bound variable the way the source
// language shows a kind-annotated binder: "(name :: kind)" once the kind is
// known, bare otherwise.
func formatQuantifier(v *Variable) string {
	if IsNoKind(v.Kind) {
		return v.Name
	}
	return fmt.Sprintf("(%s :: %s)", v.Name, v.Kind.String())
}

// TyApp is type-level application; a function arrow is encoded as
// Apply(Apply(ArrowKind, from), to).
type TyApp struct {
	Fun Type
	Arg Type
}

func (*TyApp) isType() {}

func (t *TyApp) String() string {
	if from, to, ok := UnwrapFunction(t); ok {
		if _, _, isArrow := UnwrapFunction(from); isArrow {
			return fmt.Sprintf("(%s) -> %s", from, to)
		}
		return fmt.Sprintf("%s -> %s", from, to)
	}
	if _, nested := t.Arg.(*TyApp); nested {
		return fmt.Sprintf("%s (%s)", t.Fun, t.Arg)
	}
	return fmt.Sprintf("%s %s", t.Fun, t.Arg)
}

// arrowKindType is the distinguished type constructor for the function-type
// builder. It exists because its own kind would otherwise need to refer to
// itself; ArrowKind is self-kinded by construction (see KindOf).
type arrowKindType struct{}

func (*arrowKindType) isType() {}

func (*arrowKindType) String() string { return "kind(->)" }

// ArrowKind is the sole instance of arrowKindType.
var ArrowKind Type = &arrowKindType{}

// noKindType is the sentinel meaning "kind is unconstrained / not yet
// known"; it unifies with anything.
type noKindType struct{}

func (*noKindType) isType() {}

func (*noKindType) String() string { return "[no kind]" }

// NoKind is the sole instance of noKindType.
var NoKind Type = &noKindType{}

// IsNoKind reports whether t is the NoKind sentinel.
func IsNoKind(t Type) bool {
	_, ok := t.(*noKindType)
	return ok
}

// Scheme is a universally quantified type: forall v1 ... vn. body. It never
// appears nested inside another Scheme, Apply, or Constructor.
type Scheme struct {
	Vars []*Variable
	Body Type
}

func (*Scheme) isType() {}

func (s *Scheme) String() string {
	if len(s.Vars) == 0 {
		return s.Body.String()
	}
	names := make([]string, len(s.Vars))
	for i, v := range s.Vars {
		names[i] = formatQuantifier(v)
	}
	return fmt.Sprintf("forall %s. %s", strings.Join(names, " "), s.Body.String())
}

// IsScheme reports whether t carries a top-level quantifier.
func IsScheme(t Type) bool {
	_, ok := t.(*Scheme)
	return ok
}

// Star is the kind of all types with a runtime value. It is itself a
// Constructor whose own kind is NoKind, which is what breaks the infinite
// regress of "what is the kind of a kind".
func Star() Type { return &Constructor{Name: "*", Kind: NoKind} }

func constant(name string) Type { return &Constructor{Name: name, Kind: Star()} }

// NumberType, StringType and BooleanType are the base constants the
// inference engine's literal rules produce.
func NumberType() Type  { return constant("Number") }
func StringType() Type  { return constant("String") }
func BooleanType() Type { return constant("Boolean") }

// Arrow builds the function type from -> to.
func Arrow(from, to Type) Type {
	return &TyApp{Fun: &TyApp{Fun: ArrowKind, Arg: from}, Arg: to}
}

// UnwrapFunction recognizes the Apply(Apply(ArrowKind, from), to) shape used
// to encode function types and returns its operands.
func UnwrapFunction(t Type) (from, to Type, ok bool) {
	outer, isApp := t.(*TyApp)
	if !isApp {
		return nil, nil, false
	}
	inner, isApp := outer.Fun.(*TyApp)
	if !isApp {
		return nil, nil, false
	}
	if _, isArrow := inner.Fun.(*arrowKindType); !isArrow {
		return nil, nil, false
	}
	return inner.Arg, outer.Arg, true
}

// Equal is structural equality over the Type algebra, used as unification's
// and matching's first (cheapest) case.
func Equal(a, b Type) bool {
	switch x := a.(type) {
	case *Constructor:
		y, ok := b.(*Constructor)
		return ok && x.Name == y.Name && Equal(x.Kind, y.Kind)
	case *Variable:
		y, ok := b.(*Variable)
		return ok && x.Name == y.Name && Equal(x.Kind, y.Kind)
	case *TyApp:
		y, ok := b.(*TyApp)
		return ok && Equal(x.Fun, y.Fun) && Equal(x.Arg, y.Arg)
	case *arrowKindType:
		_, ok := b.(*arrowKindType)
		return ok
	case *noKindType:
		_, ok := b.(*noKindType)
		return ok
	case *Scheme:
		y, ok := b.(*Scheme)
		if !ok || len(x.Vars) != len(y.Vars) {
			return false
		}
		for i := range x.Vars {
			if x.Vars[i].Name != y.Vars[i].Name || !Equal(x.Vars[i].Kind, y.Vars[i].Kind) {
				return false
			}
		}
		return Equal(x.Body, y.Body)
	}
	return false
}
