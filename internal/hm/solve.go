package hm

import "log"

// Solve resolves every constraint pending on the context into a single
// substitution. It folds left to right: each constraint's own substitution
// is applied to the remaining constraints before they are solved, so later
// constraints see the refinements earlier ones produced.
//
// Kind-checking can itself enqueue new constraints (via ShouldUnify) while a
// constraint already on the list is being solved. Once the initial list is
// exhausted, any such newly-queued constraints are solved in a second pass -
// this is the one place the engine re-enters the solver mid-flight, and
// Verbose gates a diagnostic when it happens.
func (c *Context) Solve() (Substitution, error) {
	pending := c.Constraints
	c.Constraints = nil

	subst, err := c.solveWithSubst(pending, Substitution{})
	if err != nil {
		return nil, err
	}

	if len(c.Constraints) > 0 {
		if c.Verbose {
			log.Printf("Found more constraints, continuing to solve")
		}
		more := applySubstToConstraints(c.Constraints, subst)
		c.Constraints = nil

		moreSubst, err := c.solveWithSubst(more, Substitution{})
		if err != nil {
			return nil, err
		}
		subst = Compose(subst, moreSubst)
	}

	return subst, nil
}

func (c *Context) solveWithSubst(constraints []Constraint, acc Substitution) (Substitution, error) {
	if len(constraints) == 0 {
		return acc, nil
	}
	head, rest := constraints[0], constraints[1:]

	var stepSubst Substitution
	var err error
	switch head.Kind {
	case Match:
		stepSubst, err = c.Match(head.Left, head.Right)
	default:
		stepSubst, err = c.Unify(head.Left, head.Right)
	}
	if err != nil {
		return nil, err
	}

	combined := Compose(acc, stepSubst)
	return c.solveWithSubst(applySubstToConstraints(rest, stepSubst), combined)
}
