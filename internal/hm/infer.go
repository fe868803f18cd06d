package hm

import "wisp/hmerr"

// Infer walks expr and returns its type, deferring every unification and
// match obligation it discovers onto the context's constraint list rather
// than solving them inline. Call Solve once the outermost expression has
// been walked to resolve them all at once.
func (c *Context) Infer(expr Expr) (Type, error) {
	switch e := expr.(type) {
	case *FloatLiteral:
		return NumberType(), nil

	case *StringLiteral:
		return StringType(), nil

	case *VariableExpr:
		scheme, ok := c.Env[e.Name]
		if !ok {
			return nil, hmerr.NewNotInScopeError(e.Name)
		}
		return c.Instantiate(scheme), nil

	case *Annotation:
		inferred, err := c.Infer(e.Expr)
		if err != nil {
			return nil, err
		}
		c.ShouldMatch(inferred, e.Annotation)
		return e.Annotation, nil

	case *If:
		condType, err := c.Infer(e.Cond)
		if err != nil {
			return nil, err
		}
		c.ShouldUnify(condType, BooleanType())

		thenType, err := c.Infer(e.Then)
		if err != nil {
			return nil, err
		}
		elseType, err := c.Infer(e.Else)
		if err != nil {
			return nil, err
		}
		c.ShouldUnify(thenType, elseType)
		return thenType, nil

	case *FunctionCall:
		funType, err := c.Infer(e.Function)
		if err != nil {
			return nil, err
		}
		argType, err := c.Infer(e.Argument)
		if err != nil {
			return nil, err
		}
		retType := c.Fresh(NoKind)
		c.ShouldUnify(funType, Arrow(argType, retType))
		return retType, nil

	case *Lambda:
		paramType := c.Fresh(NoKind)
		savedEnv := c.Env
		c.Env = c.Env.WithBinding(e.Param, &Scheme{Body: paramType})
		bodyType, err := c.Infer(e.Body)
		c.Env = savedEnv
		if err != nil {
			return nil, err
		}
		return Arrow(paramType, bodyType), nil

	case *Let:
		// The bound value is inferred in an isolated child context with its
		// own empty constraint list, so its constraints can be solved and
		// generalized locally before the parent ever sees them.
		child := c.NewChildContext()
		valueType, err := child.Infer(e.Value)
		if err != nil {
			return nil, err
		}
		valueSubst, err := child.Solve()
		if err != nil {
			return nil, err
		}
		c.Sync(child)
		c.WithSubstitution(valueSubst)
		generalized := c.Generalize(ApplySubst(valueType, valueSubst))

		savedEnv := c.Env
		c.Env = c.Env.WithBinding(e.Name, generalized)
		bodyType, err := c.Infer(e.Body)
		c.Env = savedEnv
		if err != nil {
			return nil, err
		}
		return bodyType, nil
	}
	return nil, hmerr.NewNotInScopeError("<unknown expression>")
}

// GetTypeOf infers and fully solves expr's type from a fresh context,
// returning its principal (most general) type scheme.
func GetTypeOf(expr Expr) (*Scheme, error) {
	return GetTypeOfIn(NewTypeEnv(), expr)
}

// GetTypeOfIn is GetTypeOf, but starting from a caller-supplied typing
// environment instead of the bare default - used to run inference against an
// environment extended with prelude bindings.
func GetTypeOfIn(env TypeEnv, expr Expr) (*Scheme, error) {
	return GetTypeOfWithContext(&Context{Env: env}, expr)
}

// GetTypeOfWithContext is GetTypeOf run against a caller-owned context, so
// callers can set Verbose (or anything else on Context) before inferring.
func GetTypeOfWithContext(c *Context, expr Expr) (*Scheme, error) {
	ty, err := c.Infer(expr)
	if err != nil {
		return nil, err
	}
	subst, err := c.Solve()
	if err != nil {
		return nil, err
	}
	c.WithSubstitution(subst)
	return c.Generalize(ApplySubst(ty, subst)), nil
}
