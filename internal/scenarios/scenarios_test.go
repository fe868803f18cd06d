package scenarios_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"wisp/internal/hm"
	"wisp/internal/scenarios"
)

func TestAllScenariosAreFindable(t *testing.T) {
	for _, s := range scenarios.All() {
		found, ok := scenarios.Find(s.Name)
		assert.True(t, ok, "scenario %q not findable by name", s.Name)
		assert.Equal(t, s.Name, found.Name)
	}
}

func TestFindUnknownScenario(t *testing.T) {
	_, ok := scenarios.Find("does-not-exist")
	assert.False(t, ok)
}

// TestScenariosTypecheckOrFailAsDescribed runs every catalogued scenario and
// checks it resolves consistently with its own name: scenarios whose name
// ends in a recognizable failure mode must produce an error, everything else
// must succeed.
func TestScenariosTypecheckOrFailAsDescribed(t *testing.T) {
	failureScenarios := map[string]bool{
		"monomorphic-lambda-parameter": true,
		"occurs-check":                 true,
		"conditional-branch-mismatch":  true,
		"annotation-mismatch":          true,
		"not-in-scope":                 true,
	}

	for _, s := range scenarios.All() {
		t.Run(s.Name, func(t *testing.T) {
			_, err := hm.GetTypeOf(s.Expr)
			if failureScenarios[s.Name] {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
