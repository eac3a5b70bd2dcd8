package effects

import (
	"fmt"
	"sort"
	"strings"
)

// Subst maps effect variables to effect formulas. It is the caller-facing
// counterpart of the solver's internal substitution: the solver returns
// one of these from a successful unification.
type Subst map[Sym]Type

// EmptySubst returns a substitution with no bindings.
func EmptySubst() Subst {
	return make(Subst)
}

// Apply replaces every bound variable in t by its binding. Unbound
// variables and the constants pass through unchanged.
func (s Subst) Apply(t Type) Type {
	switch tt := t.(type) {
	case Pure, Univ:
		return tt
	case Var:
		if bound, ok := s[tt.Sym]; ok {
			return bound
		}
		return tt
	case Complement:
		return Complement{Inner: s.Apply(tt.Inner)}
	case Union:
		return Union{Left: s.Apply(tt.Left), Right: s.Apply(tt.Right)}
	case Intersection:
		return Intersection{Left: s.Apply(tt.Left), Right: s.Apply(tt.Right)}
	default:
		panic(fmt.Sprintf("effects.Subst.Apply: unexpected effect type %T", t))
	}
}

// Compose builds the substitution equivalent to applying other first and
// the receiver second. Bindings of the receiver whose variable is not in
// other's domain are kept as-is.
func (s Subst) Compose(other Subst) Subst {
	if len(s) == 0 {
		return other
	}
	if len(other) == 0 {
		return s
	}
	res := EmptySubst()
	for sym, t := range other {
		res[sym] = s.Apply(t)
	}
	for sym, t := range s {
		if _, shadowed := other[sym]; !shadowed {
			res[sym] = t
		}
	}
	return res
}

func (s Subst) String() string {
	syms := make([]string, 0, len(s))
	for sym := range s {
		syms = append(syms, string(sym))
	}
	sort.Strings(syms)

	var sb strings.Builder
	sb.WriteString("{")
	for i, sym := range syms {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s -> %s", sym, s[Sym(sym)].String())
	}
	sb.WriteString("}")
	return sb.String()
}
