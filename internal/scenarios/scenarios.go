// Package scenarios catalogues canned expressions the inference engine can
// be run against. Surface-syntax parsing is out of scope for this engine, so
// both the test suite and the CLI drive it against these hand-built
// hm.Expr trees instead of parsed source.
package scenarios

import "wisp/internal/hm"

// Scenario pairs a named example expression with a human-readable
// description of what it exercises.
type Scenario struct {
	Name        string
	Description string
	Expr        hm.Expr
}

var identity = &hm.Lambda{Param: "x", Body: &hm.VariableExpr{Name: "x"}}

var all = []Scenario{
	{
		Name:        "number-literal",
		Description: "a bare number literal infers to Number",
		Expr:        &hm.FloatLiteral{Value: 1},
	},
	{
		Name:        "string-literal",
		Description: "a bare string literal infers to String",
		Expr:        &hm.StringLiteral{Value: "hello"},
	},
	{
		Name:        "identity",
		Description: "the identity lambda is polymorphic: forall t0. t0 -> t0",
		Expr:        identity,
	},
	{
		Name:        "let-polymorphism",
		Description: "a let-bound identity specializes to Number at its use site",
		Expr: &hm.Let{
			Name:  "id",
			Value: identity,
			Body: &hm.FunctionCall{
				Function: &hm.VariableExpr{Name: "id"},
				Argument: &hm.FloatLiteral{Value: 1},
			},
		},
	},
	{
		Name:        "let-polymorphism-two-uses",
		Description: "a let-bound identity is used at both Number and String",
		Expr: &hm.Let{
			Name:  "id",
			Value: identity,
			Body: &hm.Let{
				Name: "ignored",
				Value: &hm.FunctionCall{
					Function: &hm.VariableExpr{Name: "id"},
					Argument: &hm.FloatLiteral{Value: 1},
				},
				Body: &hm.FunctionCall{
					Function: &hm.VariableExpr{Name: "id"},
					Argument: &hm.StringLiteral{Value: "foo"},
				},
			},
		},
	},
	{
		Name:        "monomorphic-lambda-parameter",
		Description: "a lambda parameter is monomorphic: using it at two types fails to unify",
		Expr: &hm.Lambda{
			Param: "f",
			Body: &hm.If{
				Cond: &hm.FunctionCall{Function: &hm.VariableExpr{Name: "f"}, Argument: &hm.FloatLiteral{Value: 1}},
				Then: &hm.FunctionCall{Function: &hm.VariableExpr{Name: "f"}, Argument: &hm.StringLiteral{Value: "x"}},
				Else: &hm.FunctionCall{Function: &hm.VariableExpr{Name: "f"}, Argument: &hm.FloatLiteral{Value: 2}},
			},
		},
	},
	{
		Name:        "occurs-check",
		Description: "applying a lambda parameter to itself is an infinite type, rejected by the occurs check",
		Expr: &hm.Lambda{
			Param: "f",
			Body: &hm.FunctionCall{
				Function: &hm.VariableExpr{Name: "f"},
				Argument: &hm.VariableExpr{Name: "f"},
			},
		},
	},
	{
		Name:        "conditional",
		Description: "a lambda parameter used as an If condition is forced to Boolean",
		Expr: &hm.Lambda{
			Param: "b",
			Body: &hm.If{
				Cond: &hm.VariableExpr{Name: "b"},
				Then: &hm.FloatLiteral{Value: 1},
				Else: &hm.FloatLiteral{Value: 2},
			},
		},
	},
	{
		Name:        "conditional-branch-mismatch",
		Description: "If branches of different type fail to unify",
		Expr: &hm.Lambda{
			Param: "b",
			Body: &hm.If{
				Cond: &hm.VariableExpr{Name: "b"},
				Then: &hm.FloatLiteral{Value: 1},
				Else: &hm.StringLiteral{Value: "no"},
			},
		},
	},
	{
		Name:        "annotation-generalizes",
		Description: "a type annotation is matched against, not unified with, the inferred type",
		Expr: &hm.Annotation{
			Expr:       identity,
			Annotation: hm.Arrow(hm.NumberType(), hm.NumberType()),
		},
	},
	{
		Name:        "annotation-mismatch",
		Description: "an annotation that disagrees with the expression's type fails to match",
		Expr: &hm.Annotation{
			Expr:       &hm.FloatLiteral{Value: 1},
			Annotation: hm.StringType(),
		},
	},
	{
		Name:        "not-in-scope",
		Description: "referencing an unbound identifier fails with NotInScope",
		Expr:        &hm.VariableExpr{Name: "undefined"},
	},
}

// All returns every catalogued scenario, in a stable, registration order.
func All() []Scenario {
	out := make([]Scenario, len(all))
	copy(out, all)
	return out
}

// Find looks up a scenario by name.
func Find(name string) (Scenario, bool) {
	for _, s := range all {
		if s.Name == name {
			return s, true
		}
	}
	return Scenario{}, false
}
