package errors

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"effunify/internal/effects"
)

func TestMismatchedEffects(t *testing.T) {
	err := MismatchedEffects(effects.Pure{}, effects.Univ{})

	assert.Equal(t, ErrorMismatchedEffects, err.Code)
	assert.Equal(t, Error, err.Level)
	assert.Contains(t, err.Message, "pure")
	assert.Contains(t, err.Message, "univ")
	require.NotNil(t, err.Left)
	require.NotNil(t, err.Right)
}

func TestTooComplex(t *testing.T) {
	err := TooComplex(effects.Var{Sym: "e1"}, effects.Pure{})

	assert.Equal(t, ErrorTooComplex, err.Code)
	assert.Contains(t, err.Message, "too complex")
}

func TestErrorInterface(t *testing.T) {
	err := MismatchedEffects(effects.Pure{}, effects.Univ{})
	assert.Contains(t, err.Error(), "error[E0200]")
}

func TestBuilderAccumulatesContext(t *testing.T) {
	err := NewUnifyError(ErrorMismatchedEffects, "boom").
		WithNote("first note").
		WithNote("second note").
		WithHelp("try harder").
		Build()

	assert.Len(t, err.Notes, 2)
	assert.Equal(t, "try harder", err.HelpText)
}

func TestReporterIncludesWitnesses(t *testing.T) {
	err := MismatchedEffects(
		effects.Union{Left: effects.Var{Sym: "io"}, Right: effects.Var{Sym: "e1"}},
		effects.Pure{},
	)

	out := NewReporter("demo.efc").Format(err)
	assert.True(t, strings.Contains(out, "E0200"))
	assert.True(t, strings.Contains(out, "io | e1"))
	assert.True(t, strings.Contains(out, "pure"))
	assert.True(t, strings.Contains(out, "demo.efc"))
}

func TestErrorCodeMetadata(t *testing.T) {
	assert.Equal(t, "Unification", GetErrorCategory(ErrorMismatchedEffects))
	assert.Equal(t, "Constraint Language", GetErrorCategory(ErrorMalformedConstraint))
	assert.Contains(t, GetErrorDescription(ErrorTooComplex), "complex")
}
