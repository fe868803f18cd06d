package hm

// VarSet is the set of free type-variable names in some substitutable
// value, each mapped to the kind it carried where it was found. Two
// occurrences of the same variable name are assumed to agree on kind once
// kind-checking has run; until then the first non-wildcard kind observed
// wins, since NoKind never carries more information than a resolved kind.
type VarSet map[string]Type

func singletonVarSet(name string, kind Type) VarSet {
	return VarSet{name: kind}
}

func unionVarSet(sets ...VarSet) VarSet {
	result := make(VarSet)
	for _, s := range sets {
		for name, kind := range s {
			if existing, ok := result[name]; !ok || IsNoKind(existing) {
				result[name] = kind
			}
		}
	}
	return result
}

// Names returns the variable names in the set, order unspecified.
func (vs VarSet) Names() []string {
	names := make([]string, 0, len(vs))
	for name := range vs {
		names = append(names, name)
	}
	return names
}

// Contains reports whether name is a member of the set.
func (vs VarSet) Contains(name string) bool {
	_, ok := vs[name]
	return ok
}

// FreeVars returns the set of Variable-occurrences in t that are not bound
// by an enclosing Scheme's quantifier list, matched by name.
func FreeVars(t Type) VarSet {
	switch v := t.(type) {
	case *Variable:
		return singletonVarSet(v.Name, v.Kind)
	case *TyApp:
		return unionVarSet(FreeVars(v.Fun), FreeVars(v.Arg))
	case *Scheme:
		bound := make(map[string]bool, len(v.Vars))
		for _, q := range v.Vars {
			bound[q.Name] = true
		}
		inner := FreeVars(v.Body)
		result := make(VarSet, len(inner))
		for name, kind := range inner {
			if !bound[name] {
				result[name] = kind
			}
		}
		return result
	default:
		// Constructor, ArrowKind and NoKind contribute nothing.
		return VarSet{}
	}
}

// FreeVarsOfSlice unions FreeVars over a slice of types.
func FreeVarsOfSlice(ts []Type) VarSet {
	sets := make([]VarSet, len(ts))
	for i, t := range ts {
		sets[i] = FreeVars(t)
	}
	return unionVarSet(sets...)
}
