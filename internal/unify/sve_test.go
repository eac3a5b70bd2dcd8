package unify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"effunify/internal/boolalg"
)

// assertUnifies checks by truth-table enumeration that s makes both sides
// of eq equivalent as Boolean functions.
func assertUnifies(t *testing.T, eq Equation, s Substitution) {
	t.Helper()

	lhs := s.Apply(eq.Lhs)
	rhs := s.Apply(eq.Rhs)

	vars := boolalg.FreeVars(lhs)
	for id := range boolalg.FreeVars(rhs) {
		vars.Add(id)
	}
	ids := vars.Sorted()
	require.LessOrEqual(t, len(ids), 16, "truth table too large for a test")

	assign := make(map[boolalg.VarID]bool, len(ids))
	for mask := 0; mask < 1<<uint(len(ids)); mask++ {
		for i, id := range ids {
			assign[id] = mask&(1<<uint(i)) != 0
		}
		require.Equal(t, boolalg.Eval(lhs, assign), boolalg.Eval(rhs, assign),
			"substitution %s does not unify %s under %v", s, eq, assign)
	}
}

func TestSatisfiable(t *testing.T) {
	assert.True(t, satisfiable(boolalg.True{}))
	assert.False(t, satisfiable(boolalg.False{}))
	assert.True(t, satisfiable(boolalg.Var{ID: 0}))
	assert.True(t, satisfiable(boolalg.MkNot(boolalg.Var{ID: 0})))
	assert.False(t, satisfiable(boolalg.MkAnd(boolalg.Var{ID: 0}, boolalg.MkNot(boolalg.Var{ID: 0}))))
}

func TestEliminateGroundQueries(t *testing.T) {
	s, err := eliminate(boolalg.False{}, nil, 0)
	require.NoError(t, err)
	assert.Empty(t, s, "a false query needs no bindings")

	_, err = eliminate(boolalg.True{}, nil, 0)
	assert.Error(t, err, "a satisfiable query with no flexible variables cannot be unified")
}

func TestUnifyEquationDisjunctionEqualsTrue(t *testing.T) {
	// x0 | x1 ~ true: the classic case needing variable elimination.
	eq := NewEquation(boolalg.MkOr(boolalg.Var{ID: 0}, boolalg.Var{ID: 1}), boolalg.True{})

	s, err := unifyEquation(eq, nil, 0)
	require.NoError(t, err)
	assertUnifies(t, eq, s)

	// The binding for x0 is parameterized by x0 itself.
	require.True(t, s.Bound(0))
	assert.True(t, boolalg.FreeVars(s[0]).Contains(1), "x0's solution mentions x1")
}

func TestUnifyEquationXorShape(t *testing.T) {
	// x0 ~ !x1 has solutions; verify by truth table.
	eq := NewEquation(boolalg.Var{ID: 0}, boolalg.MkNot(boolalg.Var{ID: 1}))

	s, err := unifyEquation(eq, nil, 0)
	require.NoError(t, err)
	assertUnifies(t, eq, s)
}

func TestUnifyEquationRigidConflict(t *testing.T) {
	// x0 ~ true with x0 rigid: no flexible variables, query satisfiable.
	rigid := boolalg.NewVarSet(0)
	eq := NewEquation(boolalg.Var{ID: 0}, boolalg.True{})

	_, err := unifyEquation(eq, rigid, 0)
	require.Error(t, err)
	conflict, ok := err.(*conflictError)
	require.True(t, ok)
	assert.Equal(t, boolalg.Var{ID: 0}, conflict.left, "the error carries the equation's sides")
}

func TestUnifyEquationRigidMixed(t *testing.T) {
	// x0 ~ r1 with r1 rigid: x0 must be bound to r1.
	rigid := boolalg.NewVarSet(1)
	eq := NewEquation(boolalg.Var{ID: 0}, boolalg.Var{ID: 1})

	s, err := unifyEquation(eq, rigid, 0)
	require.NoError(t, err)
	assert.False(t, s.Bound(1), "rigid variables are never bound")
	assertUnifies(t, eq, s)
}

func TestUnifyEquationBudget(t *testing.T) {
	eq := NewEquation(
		boolalg.MkOr(boolalg.Var{ID: 0}, boolalg.Var{ID: 1}),
		boolalg.MkAnd(boolalg.Var{ID: 2}, boolalg.Var{ID: 3}),
	)

	_, err := unifyEquation(eq, nil, 2)
	require.Error(t, err)
	_, ok := err.(*tooComplexError)
	assert.True(t, ok, "a tiny budget trips the complexity guard")
}

func TestSolveResidualComposesAcrossEquations(t *testing.T) {
	eqs := []Equation{
		NewEquation(boolalg.MkOr(boolalg.Var{ID: 0}, boolalg.Var{ID: 1}), boolalg.True{}),
		NewEquation(boolalg.Var{ID: 2}, boolalg.MkNot(boolalg.Var{ID: 0})),
	}

	s, err := solveResidual(eqs, nil, 0)
	require.NoError(t, err)
	for _, eq := range eqs {
		assertUnifies(t, eq, s)
	}
}

func TestSolveResidualConflict(t *testing.T) {
	rigid := boolalg.NewVarSet(0, 1)
	eqs := []Equation{
		NewEquation(boolalg.Var{ID: 0}, boolalg.Var{ID: 1}),
	}

	_, err := solveResidual(eqs, rigid, 0)
	assert.Error(t, err, "two distinct rigid variables cannot be equal")
}
