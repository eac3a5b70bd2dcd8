package effects

import (
	"fmt"
)

// Type is the surface representation of an effect formula as the type
// checker sees it. Effects form a Boolean algebra over effect variables:
// Pure is the empty effect, Univ the all-effects value, and Complement,
// Union and Intersection combine them.
//
// Only the six constructors below implement Type. Handing any other
// implementation to the solver is a compiler bug and panics.
type Type interface {
	isEffect()
	String() string
}

// Sym identifies an effect variable on the caller side.
type Sym string

// Pure is the effect of an effect-free expression.
type Pure struct{}

// Univ is the effect carrying every effect primitive.
type Univ struct{}

// Var references an effect variable.
type Var struct {
	Sym Sym
}

// Complement negates an effect.
type Complement struct {
	Inner Type
}

// Union combines the effects of two subexpressions.
type Union struct {
	Left  Type
	Right Type
}

// Intersection keeps the effects common to two subexpressions.
type Intersection struct {
	Left  Type
	Right Type
}

func (Pure) isEffect()         {}
func (Univ) isEffect()         {}
func (Var) isEffect()          {}
func (Complement) isEffect()   {}
func (Union) isEffect()        {}
func (Intersection) isEffect() {}

func (Pure) String() string { return "pure" }
func (Univ) String() string { return "univ" }

func (v Var) String() string { return string(v.Sym) }

func (c Complement) String() string {
	return "!" + parenthesize(c.Inner)
}

func (u Union) String() string {
	return fmt.Sprintf("%s | %s", parenthesize(u.Left), parenthesize(u.Right))
}

func (i Intersection) String() string {
	return fmt.Sprintf("%s & %s", parenthesize(i.Left), parenthesize(i.Right))
}

// parenthesize wraps composite operands so the rendered formula re-parses
// with the same structure.
func parenthesize(t Type) string {
	switch t.(type) {
	case Union, Intersection:
		return "(" + t.String() + ")"
	default:
		return t.String()
	}
}

// TypeVars returns the multiset of effect variables occurring in t, in
// left-to-right occurrence order.
func TypeVars(t Type) []Sym {
	var syms []Sym
	collectTypeVars(t, &syms)
	return syms
}

func collectTypeVars(t Type, syms *[]Sym) {
	switch tt := t.(type) {
	case Pure, Univ:
		// no variables
	case Var:
		*syms = append(*syms, tt.Sym)
	case Complement:
		collectTypeVars(tt.Inner, syms)
	case Union:
		collectTypeVars(tt.Left, syms)
		collectTypeVars(tt.Right, syms)
	case Intersection:
		collectTypeVars(tt.Left, syms)
		collectTypeVars(tt.Right, syms)
	default:
		panic(fmt.Sprintf("effects.TypeVars: unexpected effect type %T", t))
	}
}

// Equal reports structural equality of two effect formulas.
func Equal(a, b Type) bool {
	switch at := a.(type) {
	case Pure:
		_, ok := b.(Pure)
		return ok
	case Univ:
		_, ok := b.(Univ)
		return ok
	case Var:
		bt, ok := b.(Var)
		return ok && at.Sym == bt.Sym
	case Complement:
		bt, ok := b.(Complement)
		return ok && Equal(at.Inner, bt.Inner)
	case Union:
		bt, ok := b.(Union)
		return ok && Equal(at.Left, bt.Left) && Equal(at.Right, bt.Right)
	case Intersection:
		bt, ok := b.(Intersection)
		return ok && Equal(at.Left, bt.Left) && Equal(at.Right, bt.Right)
	default:
		panic(fmt.Sprintf("effects.Equal: unexpected effect type %T", a))
	}
}
