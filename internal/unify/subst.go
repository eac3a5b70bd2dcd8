package unify

import (
	"fmt"
	"sort"
	"strings"

	"effunify/internal/boolalg"
)

// Substitution is a finite mapping from variable ids to canonical terms.
// The propagation phases maintain the invariant that no key occurs free in
// its own value; variable elimination deliberately breaks it by reusing an
// eliminated variable as the parameter of its own binding.
type Substitution map[boolalg.VarID]boolalg.Term

// EmptySubstitution returns a substitution with no bindings.
func EmptySubstitution() Substitution {
	return make(Substitution)
}

// Singleton returns a substitution with the single binding x -> t.
func Singleton(x boolalg.VarID, t boolalg.Term) Substitution {
	return Substitution{x: t}
}

// Bound reports whether x is in the substitution's domain.
func (s Substitution) Bound(x boolalg.VarID) bool {
	_, ok := s[x]
	return ok
}

// Apply replaces every bound variable in t by its binding, rebuilding
// connectives through the smart constructors so the result stays
// canonical. Subterms without bound variables are shared, not copied.
func (s Substitution) Apply(t boolalg.Term) boolalg.Term {
	if len(s) == 0 {
		return t
	}
	switch tt := t.(type) {
	case boolalg.True, boolalg.False:
		return tt
	case boolalg.Var:
		if bound, ok := s[tt.ID]; ok {
			return bound
		}
		return tt
	case boolalg.Not:
		inner := s.Apply(tt.Operand)
		if boolalg.Equal(inner, tt.Operand) {
			return tt
		}
		return boolalg.MkNot(inner)
	case boolalg.And:
		args, changed := s.applyArgs(tt.Args)
		if !changed {
			return tt
		}
		return boolalg.MkAndList(args)
	case boolalg.Or:
		args, changed := s.applyArgs(tt.Args)
		if !changed {
			return tt
		}
		return boolalg.MkOrList(args)
	default:
		panic(fmt.Sprintf("unify.Substitution.Apply: unexpected term %T", t))
	}
}

func (s Substitution) applyArgs(args []boolalg.Term) ([]boolalg.Term, bool) {
	out := make([]boolalg.Term, len(args))
	changed := false
	for i, arg := range args {
		out[i] = s.Apply(arg)
		if !boolalg.Equal(out[i], arg) {
			changed = true
		}
	}
	return out, changed
}

// ApplyEquation applies the substitution to both sides and re-normalizes
// the orientation.
func (s Substitution) ApplyEquation(eq Equation) Equation {
	return NewEquation(s.Apply(eq.Lhs), s.Apply(eq.Rhs))
}

// ApplyAll applies the substitution to every equation in the list.
func (s Substitution) ApplyAll(eqs []Equation) []Equation {
	if len(s) == 0 {
		return eqs
	}
	out := make([]Equation, len(eqs))
	for i, eq := range eqs {
		out[i] = s.ApplyEquation(eq)
	}
	return out
}

// Extend adds the binding x -> t in place. Binding an already-bound
// variable or a variable occurring in its own value is a solver bug.
func (s Substitution) Extend(x boolalg.VarID, t boolalg.Term) {
	if s.Bound(x) {
		panic(fmt.Sprintf("unify.Substitution.Extend: x%d is already bound", x))
	}
	if boolalg.FreeVars(t).Contains(x) {
		panic(fmt.Sprintf("unify.Substitution.Extend: x%d occurs in %s", x, t.String()))
	}
	s[x] = t
}

// Compose returns the left-biased composition of the receiver with other:
// the result applies other first, then the receiver. Every binding x -> t
// of other becomes x -> s(t), and bindings of s outside other's domain are
// kept unchanged.
func (s Substitution) Compose(other Substitution) Substitution {
	if len(s) == 0 {
		return other
	}
	if len(other) == 0 {
		return s
	}
	res := make(Substitution, len(s)+len(other))
	for x, t := range other {
		res[x] = s.Apply(t)
	}
	for x, t := range s {
		if _, shadowed := other[x]; !shadowed {
			res[x] = t
		}
	}
	return res
}

// Merge unions two substitutions with disjoint domains.
func (s Substitution) Merge(other Substitution) Substitution {
	res := make(Substitution, len(s)+len(other))
	for x, t := range s {
		res[x] = t
	}
	for x, t := range other {
		if _, dup := res[x]; dup {
			panic(fmt.Sprintf("unify.Substitution.Merge: overlapping binding for x%d", x))
		}
		res[x] = t
	}
	return res
}

func (s Substitution) String() string {
	ids := make([]boolalg.VarID, 0, len(s))
	for x := range s {
		ids = append(ids, x)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var sb strings.Builder
	sb.WriteString("{")
	for i, x := range ids {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "x%d -> %s", x, s[x].String())
	}
	sb.WriteString("}")
	return sb.String()
}
