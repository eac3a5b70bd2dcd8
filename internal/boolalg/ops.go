package boolalg

import (
	"fmt"
	"sort"
)

// VarSet is a set of variable ids.
type VarSet map[VarID]struct{}

// NewVarSet builds a set from the given ids.
func NewVarSet(ids ...VarID) VarSet {
	s := make(VarSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Add inserts id into the set.
func (s VarSet) Add(id VarID) {
	s[id] = struct{}{}
}

// Contains reports whether id is in the set.
func (s VarSet) Contains(id VarID) bool {
	_, ok := s[id]
	return ok
}

// Sorted returns the ids in ascending order.
func (s VarSet) Sorted() []VarID {
	ids := make([]VarID, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// FreeVars returns the set of variable ids occurring in t.
func FreeVars(t Term) VarSet {
	vars := make(VarSet)
	collectFreeVars(t, vars)
	return vars
}

func collectFreeVars(t Term, vars VarSet) {
	switch tt := t.(type) {
	case True, False:
		// no variables
	case Var:
		vars.Add(tt.ID)
	case Not:
		collectFreeVars(tt.Operand, vars)
	case And:
		for _, arg := range tt.Args {
			collectFreeVars(arg, vars)
		}
	case Or:
		for _, arg := range tt.Args {
			collectFreeVars(arg, vars)
		}
	default:
		panic(fmt.Sprintf("boolalg.FreeVars: unexpected term %T", t))
	}
}

// Size measures a term as its leaf count plus connective count. The
// solver's complexity budget uses it.
func Size(t Term) int {
	switch tt := t.(type) {
	case True, False, Var:
		return 1
	case Not:
		return 1 + Size(tt.Operand)
	case And:
		n := 1
		for _, arg := range tt.Args {
			n += Size(arg)
		}
		return n
	case Or:
		n := 1
		for _, arg := range tt.Args {
			n += Size(arg)
		}
		return n
	default:
		panic(fmt.Sprintf("boolalg.Size: unexpected term %T", t))
	}
}

// Equal reports structural equality. Canonical form makes structural
// equality the termination test of the propagation phases.
func Equal(a, b Term) bool {
	switch at := a.(type) {
	case True:
		_, ok := b.(True)
		return ok
	case False:
		_, ok := b.(False)
		return ok
	case Var:
		bt, ok := b.(Var)
		return ok && at.ID == bt.ID
	case Not:
		bt, ok := b.(Not)
		return ok && Equal(at.Operand, bt.Operand)
	case And:
		bt, ok := b.(And)
		return ok && equalArgs(at.Args, bt.Args)
	case Or:
		bt, ok := b.(Or)
		return ok && equalArgs(at.Args, bt.Args)
	default:
		panic(fmt.Sprintf("boolalg.Equal: unexpected term %T", a))
	}
}

func equalArgs(as, bs []Term) bool {
	if len(as) != len(bs) {
		return false
	}
	for i := range as {
		if !Equal(as[i], bs[i]) {
			return false
		}
	}
	return true
}

// Eval evaluates t under an assignment of truth values to variables.
// Variables absent from the assignment evaluate to false.
func Eval(t Term, assign map[VarID]bool) bool {
	switch tt := t.(type) {
	case True:
		return true
	case False:
		return false
	case Var:
		return assign[tt.ID]
	case Not:
		return !Eval(tt.Operand, assign)
	case And:
		for _, arg := range tt.Args {
			if !Eval(arg, assign) {
				return false
			}
		}
		return true
	case Or:
		for _, arg := range tt.Args {
			if Eval(arg, assign) {
				return true
			}
		}
		return false
	default:
		panic(fmt.Sprintf("boolalg.Eval: unexpected term %T", t))
	}
}
