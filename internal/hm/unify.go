package hm

import "wisp/hmerr"

// Unify produces the most general substitution sigma such that
// ApplySubst(left, sigma) == ApplySubst(right, sigma), reading the
// arguments structurally. Cases are tried in order: structural equality,
// the NoKind wildcard, same-named constructors (recurring on their kinds),
// scheme instantiation, variable binding (symmetric - either side may be a
// variable), then Apply/Apply after kind reconciliation.
func (c *Context) Unify(left, right Type) (Substitution, error) {
	if Equal(left, right) {
		return Substitution{}, nil
	}
	if IsNoKind(left) || IsNoKind(right) {
		return Substitution{}, nil
	}
	if lc, ok := left.(*Constructor); ok {
		if rc, ok := right.(*Constructor); ok && lc.Name == rc.Name {
			return c.Unify(lc.Kind, rc.Kind)
		}
	}
	if IsScheme(left) {
		return c.Unify(c.Instantiate(left), right)
	}
	if IsScheme(right) {
		return c.Unify(left, c.Instantiate(right))
	}
	if lv, ok := left.(*Variable); ok {
		return c.bind(lv, right)
	}
	if rv, ok := right.(*Variable); ok {
		return c.bind(rv, left)
	}
	if la, ok := left.(*TyApp); ok {
		if ra, ok := right.(*TyApp); ok {
			kFunL, kArrowL := constrainTypeApplication(c, la.Fun, la.Arg)
			kFunR, kArrowR := constrainTypeApplication(c, ra.Fun, ra.Arg)
			return c.UnifyMany(
				[]Type{kFunL, kFunR, la.Fun, la.Arg},
				[]Type{kArrowL, kArrowR, ra.Fun, ra.Arg},
			)
		}
	}
	return nil, hmerr.NewUnificationError(left, right)
}

// UnifyMany unifies two vectors of types element-by-element, threading the
// accumulated substitution through the remaining elements of both vectors
// before each subsequent step.
func (c *Context) UnifyMany(lefts, rights []Type) (Substitution, error) {
	if len(lefts) == 0 && len(rights) == 0 {
		return Substitution{}, nil
	}
	if len(lefts) == 0 || len(rights) == 0 {
		return nil, hmerr.NewDifferentLengthsError(len(lefts), len(rights))
	}
	head1, rest1 := lefts[0], lefts[1:]
	head2, rest2 := rights[0], rights[1:]

	headSubst, err := c.Unify(head1, head2)
	if err != nil {
		return nil, err
	}
	restSubst, err := c.UnifyMany(
		ApplySubstToSlice(rest1, headSubst),
		ApplySubstToSlice(rest2, headSubst),
	)
	if err != nil {
		return nil, err
	}
	return Compose(headSubst, restSubst), nil
}

// bind binds type variable v to t, or fails the occurs-check. When t is
// itself a variable of the same name, only the two kinds need
// reconciling - there is nothing to add to the substitution, since v and t
// already denote the same variable.
func (c *Context) bind(v *Variable, t Type) (Substitution, error) {
	if tv, ok := t.(*Variable); ok && tv.Name == v.Name {
		return c.Unify(tv.Kind, v.Kind)
	}
	if FreeVars(t).Contains(v.Name) {
		return nil, hmerr.NewRecursiveTypeError(v.Name, t)
	}
	kindOfOther := KindOf(c, t)
	kindSubst, err := c.Unify(kindOfOther, v.Kind)
	if err != nil {
		return nil, err
	}
	result := make(Substitution, len(kindSubst)+1)
	for name, ty := range kindSubst {
		result[name] = ty
	}
	result[v.Name] = ApplySubst(t, kindSubst)
	return result, nil
}
