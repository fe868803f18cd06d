package hm

import "wisp/hmerr"

// Substitution is a finite mapping from type-variable name to type.
type Substitution map[string]Type

// ApplySubst applies a substitution to a type. Application is shallow per
// entry but recursive over structure: a Variable is rewritten if bound, an
// Apply recurses into both children, and every other variant (including a
// Scheme encountered directly, per the data model's invariant that a Scheme
// never nests inside Apply/Constructor/Variable) is left unchanged - the
// stored kind of a rewritten variable is deliberately not itself rewritten,
// since kinds participate in their own unification pass.
func ApplySubst(t Type, s Substitution) Type {
	if len(s) == 0 {
		return t
	}
	switch v := t.(type) {
	case *Variable:
		if rep, ok := s[v.Name]; ok {
			return rep
		}
		return v
	case *TyApp:
		return &TyApp{Fun: ApplySubst(v.Fun, s), Arg: ApplySubst(v.Arg, s)}
	default:
		return v
	}
}

// ApplySubstToScheme applies a substitution to a scheme's body after
// removing the scheme's own quantifiers from the substitution, so a fresh
// binder never gets shadowed by an outer substitution entry of the same
// name.
func ApplySubstToScheme(sch *Scheme, s Substitution) *Scheme {
	if len(s) == 0 {
		return sch
	}
	filtered := make(Substitution, len(s))
	for k, v := range s {
		filtered[k] = v
	}
	for _, q := range sch.Vars {
		delete(filtered, q.Name)
	}
	return &Scheme{Vars: sch.Vars, Body: ApplySubst(sch.Body, filtered)}
}

// ApplySubstToSlice applies a substitution to every element of ts.
func ApplySubstToSlice(ts []Type, s Substitution) []Type {
	out := make([]Type, len(ts))
	for i, t := range ts {
		out[i] = ApplySubst(t, s)
	}
	return out
}

// Compose produces the substitution outer ∘ inner: apply inner to the RHS
// of every entry of outer, then take the union with inner; on key
// conflict, inner wins. This is the single, left-biased composition rule
// used everywhere in this engine (the solver, the matcher, UnifyMany) -
// there is no second "safe" variant of ordinary Compose; see SafeCompose
// for the checked version matching must use.
func Compose(outer, inner Substitution) Substitution {
	result := make(Substitution, len(outer)+len(inner))
	for name, t := range outer {
		result[name] = ApplySubst(t, inner)
	}
	for name, t := range inner {
		result[name] = t
	}
	return result
}

// SafeCompose merges two substitutions and rejects the merge with
// hmerr.SubstitutionConflict if both bind the same variable to unequal
// types. Unlike Compose, neither side is privileged by re-applying the
// other first: the two substitutions are expected to already be internally
// consistent, and this only checks they agree where they overlap.
func SafeCompose(a, b Substitution) (Substitution, error) {
	for name, ta := range a {
		if tb, ok := b[name]; ok && !Equal(ta, tb) {
			return nil, hmerr.NewSubstitutionConflict(name, ta, tb)
		}
	}
	result := make(Substitution, len(a)+len(b))
	for name, t := range b {
		result[name] = t
	}
	for name, t := range a {
		result[name] = t
	}
	return result, nil
}
