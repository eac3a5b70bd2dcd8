package unify

import (
	"effunify/internal/boolalg"
)

// propagateUnits eliminates equations of the shapes x ~ true, x ~ false
// and (x1 & ... & xn) ~ true, iterating to fixpoint. A conjunction of
// variables equals true exactly when every variable does, so each
// conjunct is bound individually. Rigid variables are never bound; an
// equation that would bind one is left for the later phases, where the
// contradiction (if any) surfaces.
func propagateUnits(eqs []Equation, rigid boolalg.VarSet) ([]Equation, Substitution) {
	total := EmptySubstitution()
	for {
		pass := EmptySubstitution()
		var kept []Equation
		for _, eq := range eqs {
			if !bindUnits(eq, rigid, pass) {
				kept = append(kept, eq)
			}
		}
		if len(pass) == 0 {
			return kept, total
		}
		eqs = pass.ApplyAll(kept)
		total = pass.Compose(total)
	}
}

// bindUnits matches one equation against the unit patterns, extending s
// with the bindings it discharges. It reports whether the equation was
// consumed. Bindings in this phase are always constants, so they can
// never reintroduce a variable into an earlier value.
func bindUnits(eq Equation, rigid boolalg.VarSet, s Substitution) bool {
	switch lhs := eq.Lhs.(type) {
	case boolalg.Var:
		// x ~ true and x ~ false
		if !isConst(eq.Rhs) || rigid.Contains(lhs.ID) {
			return false
		}
		if prev, ok := s[lhs.ID]; ok {
			// Contradictory rebinding stays in the list; applying s turns
			// it into a constant clash for the conflict check.
			return boolalg.Equal(prev, eq.Rhs)
		}
		s.Extend(lhs.ID, eq.Rhs)
		return true
	case boolalg.And:
		// (x1 & ... & xn) ~ true
		if _, ok := eq.Rhs.(boolalg.True); !ok {
			return false
		}
		ids := varConjuncts(lhs)
		if ids == nil {
			return false
		}
		for _, id := range ids {
			if rigid.Contains(id) {
				return false
			}
			if prev, ok := s[id]; ok {
				if _, isTrue := prev.(boolalg.True); !isTrue {
					// Clashes with an earlier binding; keep the equation so
					// the rewrite exposes the contradiction.
					return false
				}
			}
		}
		for _, id := range ids {
			if !s.Bound(id) {
				s.Extend(id, boolalg.True{})
			}
		}
		return true
	default:
		return false
	}
}

// varConjuncts returns the variable ids of a conjunction whose children
// are all variables, or nil if any child is not a variable.
func varConjuncts(a boolalg.And) []boolalg.VarID {
	ids := make([]boolalg.VarID, 0, len(a.Args))
	for _, arg := range a.Args {
		v, ok := arg.(boolalg.Var)
		if !ok {
			return nil
		}
		ids = append(ids, v.ID)
	}
	return ids
}
