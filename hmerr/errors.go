// Package hmerr defines the tagged error taxonomy the inference engine
// aborts with. Every inference failure is exactly one of these kinds; none
// is recovered locally, and all of them propagate to the engine's entry
// point.
package hmerr

import "fmt"

// Kind categorizes a type-inference failure.
type Kind string

const (
	KindNotInScope           Kind = "NotInScope"
	KindUnificationError     Kind = "UnificationError"
	KindMatchingError        Kind = "MatchingError"
	KindRecursiveType        Kind = "RecursiveType"
	KindSubstitutionConflict Kind = "SubstitutionConflict"
	KindDifferentLengths     Kind = "DifferentLengths"
)

// stringer is the minimal interface this package needs from hm.Type,
// avoided as a direct import so hmerr never depends on the engine package -
// the engine depends on hmerr, not the other way around.
type stringer interface {
	String() string
}

// TypeError is the interface every error this package produces satisfies.
type TypeError interface {
	error
	Kind() Kind
}

// baseError carries the rendered message and the kind tag; every concrete
// error below embeds it.
type baseError struct {
	kind Kind
	msg  string
}

func (e *baseError) Error() string { return e.msg }
func (e *baseError) Kind() Kind     { return e.kind }

// NotInScopeError reports a Variable AST node referencing an identifier
// absent from the typing environment.
type NotInScopeError struct {
	baseError
	Name string
}

func NewNotInScopeError(name string) *NotInScopeError {
	return &NotInScopeError{
		baseError: baseError{kind: KindNotInScope, msg: fmt.Sprintf("variable %s is not in scope", name)},
		Name:      name,
	}
}

// UnificationError reports that two types cannot be made structurally
// equal.
type UnificationError struct {
	baseError
	Left, Right stringer
}

func NewUnificationError(left, right stringer) *UnificationError {
	return &UnificationError{
		baseError: baseError{
			kind: KindUnificationError,
			msg:  fmt.Sprintf("cannot unify type\n    %s\nwith type\n    %s", left, right),
		},
		Left:  left,
		Right: right,
	}
}

// MatchingError reports that a type annotation is not satisfied by the
// inferred type.
type MatchingError struct {
	baseError
	Left, Right stringer
}

func NewMatchingError(left, right stringer) *MatchingError {
	return &MatchingError{
		baseError: baseError{
			kind: KindMatchingError,
			msg:  fmt.Sprintf("cannot match type\n    %s\nwith type\n    %s", left, right),
		},
		Left:  left,
		Right: right,
	}
}

// RecursiveTypeError is an occurs-check failure: binding name to t would
// create an infinite type.
type RecursiveTypeError struct {
	baseError
	Name string
	Type stringer
}

func NewRecursiveTypeError(name string, t stringer) *RecursiveTypeError {
	return &RecursiveTypeError{
		baseError: baseError{
			kind: KindRecursiveType,
			msg:  fmt.Sprintf("type\n    %s = %s\ncontains references to itself", name, t),
		},
		Name: name,
		Type: t,
	}
}

// SubstitutionConflictError reports that, during a safe-compose, name was
// mapped to two distinct types.
type SubstitutionConflictError struct {
	baseError
	Name        string
	Left, Right stringer
}

func NewSubstitutionConflict(name string, left, right stringer) *SubstitutionConflictError {
	return &SubstitutionConflictError{
		baseError: baseError{
			kind: KindSubstitutionConflict,
			msg:  fmt.Sprintf("conflicting substitutions:\n    %s = %s\nand\n    %s = %s", name, left, name, right),
		},
		Name:  name,
		Left:  left,
		Right: right,
	}
}

// DifferentLengthsError reports that UnifyMany received vectors of
// unequal length - an internal invariant violation, still surfaced to the
// caller rather than panicking.
type DifferentLengthsError struct {
	baseError
	Left, Right int
}

func NewDifferentLengthsError(left, right int) *DifferentLengthsError {
	return &DifferentLengthsError{
		baseError: baseError{
			kind: KindDifferentLengths,
			msg:  fmt.Sprintf("cannot unify %d types against %d types", left, right),
		},
		Left:  left,
		Right: right,
	}
}
