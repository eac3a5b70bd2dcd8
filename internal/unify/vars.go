package unify

import (
	"effunify/internal/boolalg"
)

// propagateVars eliminates equations between two variables in a single
// pass. A flexible left side binds to the right side; if only the right
// side is flexible the binding is flipped; two distinct rigid variables
// cannot be unified. Earlier bindings are applied before matching, so a
// chain like x ~ y, y ~ z resolves within the pass.
func propagateVars(eqs []Equation, rigid boolalg.VarSet) ([]Equation, Substitution, error) {
	s := EmptySubstitution()
	var kept []Equation
	for _, eq := range eqs {
		eq = s.ApplyEquation(eq)
		x, xOK := eq.Lhs.(boolalg.Var)
		y, yOK := eq.Rhs.(boolalg.Var)
		if !xOK || !yOK {
			kept = append(kept, eq)
			continue
		}
		if x.ID == y.ID {
			continue
		}
		switch {
		case !rigid.Contains(x.ID):
			s = bindOver(s, x.ID, y)
		case !rigid.Contains(y.ID):
			s = bindOver(s, y.ID, x)
		default:
			return nil, nil, &conflictError{left: x, right: y}
		}
	}
	return s.ApplyAll(kept), s, nil
}

// assignTrivial eliminates equations x ~ t where the flexible variable x
// does not occur in t, binding x to t under the bindings accumulated so
// far. Later equations in the pass see earlier bindings, and an equation
// whose rewritten right side reintroduces x is kept for elimination.
func assignTrivial(eqs []Equation, rigid boolalg.VarSet) ([]Equation, Substitution) {
	s := EmptySubstitution()
	var kept []Equation
	for _, eq := range eqs {
		eq = s.ApplyEquation(eq)
		x, ok := eq.Lhs.(boolalg.Var)
		if !ok || rigid.Contains(x.ID) {
			kept = append(kept, eq)
			continue
		}
		if boolalg.FreeVars(eq.Rhs).Contains(x.ID) {
			kept = append(kept, eq)
			continue
		}
		s = bindOver(s, x.ID, eq.Rhs)
	}
	return s.ApplyAll(kept), s
}

// bindOver composes the binding x -> t onto s, so values recorded earlier
// in the pass see the new binding and the result stays idempotent. The
// term t must already have s applied.
func bindOver(s Substitution, x boolalg.VarID, t boolalg.Term) Substitution {
	return Singleton(x, t).Compose(s)
}
