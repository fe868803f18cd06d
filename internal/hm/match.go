package hm

import "wisp/hmerr"

// Match is a one-directional unifier used for programmer-supplied type
// annotations: only variables on the left may be bound, so the right side
// acts as a rigid template the inferred type must be an instance of. On
// Apply/Apply, after kind reconciliation the sub-matches are combined with
// SafeCompose rather than ordinary Compose - a disagreement there signals
// SubstitutionConflict rather than silently refining further.
func (c *Context) Match(left, right Type) (Substitution, error) {
	if Equal(left, right) {
		return Substitution{}, nil
	}
	if IsNoKind(left) || IsNoKind(right) {
		return Substitution{}, nil
	}
	if lc, ok := left.(*Constructor); ok {
		if rc, ok := right.(*Constructor); ok && lc.Name == rc.Name {
			return c.Match(lc.Kind, rc.Kind)
		}
	}
	if IsScheme(left) {
		return c.Match(c.Instantiate(left), right)
	}
	if IsScheme(right) {
		return c.Match(left, c.Instantiate(right))
	}
	if lv, ok := left.(*Variable); ok {
		return c.bind(lv, right)
	}
	// Note: when right (not left) is a Variable and left is not, the
	// Variable case above is not taken - matching falls through to the
	// Apply/Apply or error cases below, since only the left side may bind.
	if la, ok := left.(*TyApp); ok {
		if ra, ok := right.(*TyApp); ok {
			kFunL, kArrowL := constrainTypeApplication(c, la.Fun, la.Arg)
			kFunR, kArrowR := constrainTypeApplication(c, ra.Fun, ra.Arg)
			kindSubst, err := c.UnifyMany([]Type{kFunL, kFunR}, []Type{kArrowL, kArrowR})
			if err != nil {
				return nil, err
			}
			funSubst, err := c.Match(ApplySubst(la.Fun, kindSubst), ApplySubst(ra.Fun, kindSubst))
			if err != nil {
				return nil, err
			}
			argSubst, err := c.Match(ApplySubst(la.Arg, kindSubst), ApplySubst(ra.Arg, kindSubst))
			if err != nil {
				return nil, err
			}
			combined, err := SafeCompose(funSubst, argSubst)
			if err != nil {
				return nil, err
			}
			return Compose(combined, kindSubst), nil
		}
	}
	return nil, hmerr.NewMatchingError(left, right)
}
