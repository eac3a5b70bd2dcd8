package unify

import (
	"effunify/internal/boolalg"
)

// solveResidual unifies the equations that survived the propagation
// phases, one at a time, by successive variable elimination. Each
// equation's solution is applied to the remainder and composed onto the
// accumulated substitution.
func solveResidual(eqs []Equation, rigid boolalg.VarSet, maxTermSize int) (Substitution, error) {
	total := EmptySubstitution()
	for len(eqs) > 0 {
		eq := eqs[0]
		eqs = eqs[1:]
		s, err := unifyEquation(eq, rigid, maxTermSize)
		if err != nil {
			return nil, err
		}
		eqs = s.ApplyAll(eqs)
		total = s.Compose(total)
	}
	return total, nil
}

// unifyEquation reduces one equation to the query lhs XOR rhs, which must
// be equivalent to false, and eliminates its flexible variables in
// ascending id order.
func unifyEquation(eq Equation, rigid boolalg.VarSet, maxTermSize int) (Substitution, error) {
	query := boolalg.MkXor(eq.Lhs, eq.Rhs)

	var flexible []boolalg.VarID
	for _, id := range boolalg.FreeVars(query).Sorted() {
		if !rigid.Contains(id) {
			flexible = append(flexible, id)
		}
	}

	s, err := eliminate(query, flexible, maxTermSize)
	if err != nil {
		switch err.(type) {
		case *conflictError:
			return nil, &conflictError{left: eq.Lhs, right: eq.Rhs}
		case *tooComplexError:
			return nil, &tooComplexError{left: eq.Lhs, right: eq.Rhs}
		}
		return nil, err
	}
	return s, nil
}

// eliminate performs successive variable elimination on the query. For
// the first flexible variable x it solves the rest on
// query[x -> false] AND query[x -> true] and assembles the parametric
// binding for x; with no flexible variables left the query must already
// be unsatisfiable. The flexible count strictly decreases, and the smart
// constructors keep the intermediate terms canonical.
func eliminate(query boolalg.Term, flexible []boolalg.VarID, maxTermSize int) (Substitution, error) {
	if maxTermSize > 0 && boolalg.Size(query) > maxTermSize {
		return nil, &tooComplexError{left: query, right: boolalg.False{}}
	}

	if len(flexible) == 0 {
		// Any remaining variables are rigid; the query must be false for
		// every interpretation of them.
		if satisfiable(query) {
			return nil, &conflictError{left: query, right: boolalg.False{}}
		}
		return EmptySubstitution(), nil
	}

	x := flexible[0]
	rest := flexible[1:]

	t0 := Singleton(x, boolalg.False{}).Apply(query)
	t1 := Singleton(x, boolalg.True{}).Apply(query)

	sRest, err := eliminate(boolalg.MkAnd(t0, t1), rest, maxTermSize)
	if err != nil {
		return nil, err
	}

	// x's most general solution, parameterized by x itself:
	// sRest(t0) OR (x AND NOT sRest(t1)).
	tx := boolalg.MkOr(sRest.Apply(t0), boolalg.MkAnd(boolalg.Var{ID: x}, boolalg.MkNot(sRest.Apply(t1))))
	if v, ok := tx.(boolalg.Var); ok && v.ID == x {
		// Identity binding, nothing to record.
		return sRest, nil
	}
	return Singleton(x, tx).Merge(sRest), nil
}

// satisfiable decides satisfiability by enumerating all assignments to
// the query's variables, short-circuiting on the first satisfying one.
// The staged pipeline keeps the variable count tiny by the time this
// runs, so brute enumeration is cheaper than anything smarter.
func satisfiable(t boolalg.Term) bool {
	vars := boolalg.FreeVars(t).Sorted()
	assign := make(map[boolalg.VarID]bool, len(vars))
	for mask := 0; mask < 1<<uint(len(vars)); mask++ {
		for i, id := range vars {
			assign[id] = mask&(1<<uint(i)) != 0
		}
		if boolalg.Eval(t, assign) {
			return true
		}
	}
	return false
}
