package hm

import "fmt"

// CanonicalizeScheme renames a scheme's quantifiers to t0, t1, ... in the
// order they are first encountered by a pre-order walk of the body, so two
// alpha-equivalent schemes compare equal regardless of how their variables
// happened to be numbered during inference. Used to keep principal-type
// assertions in tests stable across unrelated changes to fresh-name
// generation order.
func CanonicalizeScheme(sch *Scheme) *Scheme {
	quantified := make(map[string]bool, len(sch.Vars))
	kinds := make(map[string]Type, len(sch.Vars))
	for _, v := range sch.Vars {
		quantified[v.Name] = true
		kinds[v.Name] = v.Kind
	}

	var order []string
	seen := make(map[string]bool)

	var walk func(t Type)
	walk = func(t Type) {
		switch v := t.(type) {
		case *Variable:
			if quantified[v.Name] && !seen[v.Name] {
				seen[v.Name] = true
				order = append(order, v.Name)
			}
			walk(v.Kind)
		case *TyApp:
			walk(v.Fun)
			walk(v.Arg)
		case *Constructor:
			walk(v.Kind)
		}
	}
	walk(sch.Body)

	rename := make(Substitution, len(order))
	for i, name := range order {
		rename[name] = &Variable{Name: fmt.Sprintf("t%d", i), Kind: kinds[name]}
	}

	newVars := make([]*Variable, len(order))
	for i, name := range order {
		newVars[i] = &Variable{Name: fmt.Sprintf("t%d", i), Kind: ApplySubst(kinds[name], rename)}
	}

	return &Scheme{Vars: newVars, Body: ApplySubst(sch.Body, rename)}
}
