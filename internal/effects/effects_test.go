package effects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeVarsOccurrenceOrder(t *testing.T) {
	formula := Union{
		Left:  Complement{Inner: Var{Sym: "b"}},
		Right: Intersection{Left: Var{Sym: "a"}, Right: Var{Sym: "b"}},
	}

	assert.Equal(t, []Sym{"b", "a", "b"}, TypeVars(formula), "multiset in occurrence order")
	assert.Empty(t, TypeVars(Pure{}))
}

func TestString(t *testing.T) {
	formula := Union{
		Left:  Complement{Inner: Var{Sym: "a"}},
		Right: Intersection{Left: Var{Sym: "b"}, Right: Univ{}},
	}

	assert.Equal(t, "!a | (b & univ)", formula.String())
	assert.Equal(t, "pure", Pure{}.String())
}

func TestStringParenthesizesNestedComplement(t *testing.T) {
	formula := Complement{Inner: Union{Left: Var{Sym: "a"}, Right: Var{Sym: "b"}}}
	assert.Equal(t, "!(a | b)", formula.String())
}

func TestEqual(t *testing.T) {
	a := Union{Left: Var{Sym: "a"}, Right: Pure{}}
	b := Union{Left: Var{Sym: "a"}, Right: Pure{}}
	c := Union{Left: Pure{}, Right: Var{Sym: "a"}}

	assert.True(t, Equal(a, b))
	assert.False(t, Equal(a, c), "structural equality is not commutative equality")
	assert.False(t, Equal(Pure{}, Univ{}))
}

func TestRigidityEnvDefaultsToFlexible(t *testing.T) {
	env := NewRigidityEnv()
	assert.Equal(t, Flexible, env.Get("anything"))

	env.MarkRigid("io", "net")
	assert.Equal(t, Rigid, env.Get("io"))
	assert.Equal(t, Rigid, env.Get("net"))
	assert.Equal(t, Flexible, env.Get("e1"))
}

func TestSubstApply(t *testing.T) {
	s := Subst{"a": Pure{}}
	formula := Union{Left: Var{Sym: "a"}, Right: Var{Sym: "b"}}

	applied := s.Apply(formula)
	assert.True(t, Equal(Union{Left: Pure{}, Right: Var{Sym: "b"}}, applied))
}

func TestSubstComposeAppliesRightFirst(t *testing.T) {
	s1 := Subst{"b": Pure{}}
	s2 := Subst{"a": Union{Left: Var{Sym: "b"}, Right: Var{Sym: "c"}}}

	composed := s1.Compose(s2)
	assert.True(t, Equal(Union{Left: Pure{}, Right: Var{Sym: "c"}}, composed["a"]),
		"a's binding sees s1")
	assert.True(t, Equal(Pure{}, composed["b"]))

	// Composition with empty is identity.
	assert.Equal(t, s1, EmptySubst().Compose(s1))
	assert.Equal(t, s1, s1.Compose(EmptySubst()))
}

func TestSubstString(t *testing.T) {
	s := Subst{"b": Univ{}, "a": Pure{}}
	assert.Equal(t, "{a -> pure, b -> univ}", s.String(), "bindings print in symbol order")
}
