package unify

import (
	"fmt"

	"effunify/internal/boolalg"
)

// Equation is an oriented pair of Boolean terms denoting the constraint
// that both sides are equal. Orientation is a rewrite hint for the
// propagation phases, not semantics: (a, b) and (b, a) mean the same
// constraint.
type Equation struct {
	Lhs boolalg.Term
	Rhs boolalg.Term
}

// NewEquation builds an equation with normalized orientation: a variable
// side goes left; otherwise a constant side goes right.
func NewEquation(a, b boolalg.Term) Equation {
	if _, bIsVar := b.(boolalg.Var); bIsVar {
		if _, aIsVar := a.(boolalg.Var); !aIsVar {
			return Equation{Lhs: b, Rhs: a}
		}
		return Equation{Lhs: a, Rhs: b}
	}
	if isConst(a) && !isConst(b) {
		return Equation{Lhs: b, Rhs: a}
	}
	return Equation{Lhs: a, Rhs: b}
}

// Size measures the equation as the sum of both term sizes.
func (eq Equation) Size() int {
	return boolalg.Size(eq.Lhs) + boolalg.Size(eq.Rhs)
}

func (eq Equation) String() string {
	return fmt.Sprintf("%s ~ %s", eq.Lhs.String(), eq.Rhs.String())
}

func isConst(t boolalg.Term) bool {
	switch t.(type) {
	case boolalg.True, boolalg.False:
		return true
	default:
		return false
	}
}
