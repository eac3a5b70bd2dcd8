package unify

import (
	"fmt"

	"effunify/internal/boolalg"
)

// conflictError reports that no substitution can solve the system. The
// two terms witness the contradiction; the driver translates them back to
// the caller's vocabulary.
type conflictError struct {
	left  boolalg.Term
	right boolalg.Term
}

func (e *conflictError) Error() string {
	return fmt.Sprintf("cannot unify %s with %s", e.left.String(), e.right.String())
}

// tooComplexError reports that variable elimination exceeded the solver's
// complexity budget.
type tooComplexError struct {
	left  boolalg.Term
	right boolalg.Term
}

func (e *tooComplexError) Error() string {
	return fmt.Sprintf("equation %s ~ %s exceeds the complexity budget", e.left.String(), e.right.String())
}

// simplify discards trivially valid equations and reports contradictions
// between ground constants. It runs after every propagation round.
func simplify(eqs []Equation) ([]Equation, error) {
	var kept []Equation
	for _, eq := range eqs {
		if boolalg.Equal(eq.Lhs, eq.Rhs) {
			continue
		}
		if isConst(eq.Lhs) && isConst(eq.Rhs) {
			// Not equal, so true ~ false or false ~ true.
			return nil, &conflictError{left: eq.Lhs, right: eq.Rhs}
		}
		kept = append(kept, eq)
	}
	return kept, nil
}
