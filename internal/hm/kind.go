package hm

// KindOf computes the kind of t, deferring to the constraint system when a
// type application's kind can't be read off directly. Kind-checking runs
// inside the same constraint system as type-checking, which is why NoKind
// behaves as a wildcard in Unify: it keeps an early kind commitment from
// blocking type-level progress.
func KindOf(c *Context, t Type) Type {
	switch v := t.(type) {
	case *Scheme:
		return KindOf(c, c.Instantiate(v))
	case *Constructor:
		return v.Kind
	case *Variable:
		return v.Kind
	case *arrowKindType:
		return Arrow(NoKind, Arrow(NoKind, NoKind))
	case *TyApp:
		if _, isArrow := v.Fun.(*arrowKindType); isArrow {
			// A partially applied arrow is kind-opaque in this design.
			return NoKind
		}
		kRet := c.Fresh(NoKind)
		kArg := KindOf(c, v.Arg)
		kFun := KindOf(c, v.Fun)
		c.ShouldUnify(kFun, Arrow(kArg, kRet))
		return kRet
	case *noKindType:
		return NoKind
	}
	return NoKind
}

// constrainTypeApplication produces the pair of kinds an Apply(fn, arg)
// node's unification must reconcile: the function's own kind, and the
// kind arrow its argument and a fresh result kind would form.
func constrainTypeApplication(c *Context, fn, arg Type) (kFun, kArrow Type) {
	kRet := c.Fresh(NoKind)
	kFun = KindOf(c, fn)
	kArg := KindOf(c, arg)
	return kFun, Arrow(kArg, kRet)
}
