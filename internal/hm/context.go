package hm

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Context owns the environment, the ordered list of pending constraints,
// and the monotonically increasing counter used for fresh-name generation.
// It is cloned freely when entering a local scope (Let); a child context's
// constraints and fresh counter are folded back into the parent
// deterministically when the child returns.
type Context struct {
	Env         TypeEnv
	Constraints []Constraint
	NextID      int
	// Verbose gates the solver's one sanctioned diagnostic (§6.3): a
	// notice printed when the re-entrant branch of Solve finds more
	// constraints to process. Suppressed by default.
	Verbose bool
}

// NewContext creates a fresh context with the initial environment.
func NewContext() *Context {
	return &Context{Env: NewTypeEnv()}
}

// Fresh generates a new inference variable t0, t1, ... carrying the
// requested kind (often NoKind).
func (c *Context) Fresh(kind Type) *Variable {
	id := c.NextID
	c.NextID++
	return &Variable{Name: fmt.Sprintf("t%d", id), Kind: kind}
}

// ShouldUnify records a Unify(from, to) obligation.
func (c *Context) ShouldUnify(from, to Type) {
	c.Constraints = append(c.Constraints, UnifyConstraint(from, to))
}

// ShouldMatch records a Match(from, to) obligation.
func (c *Context) ShouldMatch(from, to Type) {
	c.Constraints = append(c.Constraints, MatchConstraint(from, to))
}

// Instantiate replaces a scheme's quantifiers with fresh variables of the
// same kind and substitutes into its body. A non-scheme instantiates to
// itself.
func (c *Context) Instantiate(t Type) Type {
	scheme, ok := t.(*Scheme)
	if !ok {
		return t
	}
	sub := make(Substitution, len(scheme.Vars))
	for _, v := range scheme.Vars {
		sub[v.Name] = c.Fresh(v.Kind)
	}
	return ApplySubst(scheme.Body, sub)
}

// Generalize closes t over every free variable not bound in the current
// environment, producing forall v1 ... vn. t.
func (c *Context) Generalize(t Type) *Scheme {
	freeInEnv := c.Env.FreeVars()
	freeInType := FreeVars(t)

	names := make([]string, 0, len(freeInType))
	for name := range freeInType {
		if !freeInEnv.Contains(name) {
			names = append(names, name)
		}
	}
	sortVarNames(names)

	vars := make([]*Variable, len(names))
	for i, name := range names {
		vars[i] = &Variable{Name: name, Kind: freeInType[name]}
	}
	return &Scheme{Vars: vars, Body: t}
}

// sortVarNames orders fresh-variable names ("t0", "t1", ..., "t10") by
// their numeric suffix rather than lexically, so quantifier lists render in
// generation order.
func sortVarNames(names []string) {
	sort.Slice(names, func(i, j int) bool {
		ni, oki := varNumericSuffix(names[i])
		nj, okj := varNumericSuffix(names[j])
		if oki && okj {
			return ni < nj
		}
		return names[i] < names[j]
	})
}

func varNumericSuffix(name string) (int, bool) {
	if !strings.HasPrefix(name, "t") {
		return 0, false
	}
	n, err := strconv.Atoi(name[1:])
	if err != nil {
		return 0, false
	}
	return n, true
}

// NewChildContext returns an isolated context sharing c's environment and
// fresh-name counter but starting with an empty constraint list - used to
// infer a let-bound value so its constraints can be solved locally before
// the result is generalized (§4.3's let-polymorphism rule).
func (c *Context) NewChildContext() *Context {
	return &Context{
		Env:     c.Env.Clone(),
		NextID:  c.NextID,
		Verbose: c.Verbose,
	}
}

// Sync folds a child context's accrued constraints and fresh-counter
// advance back into the parent: constraints are appended in order, and the
// counter is taken as max, so no fresh name collides across the two.
func (c *Context) Sync(child *Context) {
	c.Constraints = append(c.Constraints, child.Constraints...)
	if child.NextID > c.NextID {
		c.NextID = child.NextID
	}
}

// WithSubstitution applies a substitution to the current environment in
// place.
func (c *Context) WithSubstitution(s Substitution) {
	c.Env = c.Env.ApplySubst(s)
}
