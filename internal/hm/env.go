package hm

// TypeEnv is a finite mapping from program-identifier name to a type
// scheme.
type TypeEnv map[string]*Scheme

// NewTypeEnv returns an environment containing at least Type ↦ *.
func NewTypeEnv() TypeEnv {
	return TypeEnv{"Type": &Scheme{Body: Star()}}
}

// Clone returns a shallow copy, so mutating the copy (as entering a local
// scope does) never affects the parent environment sharing the same
// scheme values.
func (e TypeEnv) Clone() TypeEnv {
	out := make(TypeEnv, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}

// WithBinding returns a clone of e extended with name bound to scheme.
func (e TypeEnv) WithBinding(name string, scheme *Scheme) TypeEnv {
	out := e.Clone()
	out[name] = scheme
	return out
}

// ApplySubst applies a substitution to every scheme in the environment.
func (e TypeEnv) ApplySubst(s Substitution) TypeEnv {
	if len(s) == 0 {
		return e
	}
	out := make(TypeEnv, len(e))
	for k, v := range e {
		out[k] = ApplySubstToScheme(v, s)
	}
	return out
}

// FreeVars unions FreeVars over every scheme bound in the environment.
func (e TypeEnv) FreeVars() VarSet {
	sets := make([]VarSet, 0, len(e))
	for _, v := range e {
		sets = append(sets, FreeVars(v))
	}
	return unionVarSet(sets...)
}
