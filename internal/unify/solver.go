package unify

import (
	"fmt"

	"github.com/tliron/commonlog"

	"effunify/internal/boolalg"
	"effunify/internal/effects"
	"effunify/internal/errors"
)

var log = commonlog.GetLogger("effunify.unify")

// Phase names reported to the tracing hook, in pipeline order.
const (
	PhaseUnits   = "units"
	PhaseVars    = "vars"
	PhaseTrivial = "trivial"
	PhaseSVE     = "sve"
)

// PhaseHook observes the solver after each phase: the equations still
// unsolved and the substitution the phase produced.
type PhaseHook func(phase string, eqs []Equation, s Substitution)

// Options configure a solver.
type Options struct {
	// MaxTermSize bounds the size of queries entering variable
	// elimination; exceeding it surfaces a TooComplex error. Zero
	// disables the budget.
	MaxTermSize int

	// OnPhaseComplete, when set, is called after every phase.
	OnPhaseComplete PhaseHook
}

// DefaultOptions returns the options used by UnifyAll.
func DefaultOptions() Options {
	return Options{MaxTermSize: 10000}
}

// Pair is one caller-supplied constraint between two effect formulas.
type Pair struct {
	Left  effects.Type
	Right effects.Type
}

// Solver unifies effect constraint systems. A Solver is stateless across
// calls; all working data is local to one Solve invocation, so distinct
// goroutines may share one.
type Solver struct {
	opts Options
}

// NewSolver creates a solver with the given options.
func NewSolver(opts Options) *Solver {
	return &Solver{opts: opts}
}

// UnifyAll solves the constraint system with default options.
func UnifyAll(pairs []Pair, env *effects.RigidityEnv) (effects.Subst, *errors.CompilerError) {
	return NewSolver(DefaultOptions()).Solve(pairs, env)
}

// Solve computes a most general substitution making every pair equal, or
// reports why none exists. The easy bulk of typical constraint systems is
// discharged by cheap propagation phases; only the residue reaches
// variable elimination.
func (sv *Solver) Solve(pairs []Pair, env *effects.RigidityEnv) (effects.Subst, *errors.CompilerError) {
	if len(pairs) == 0 {
		return effects.EmptySubst(), nil
	}

	in := newInterner(env)
	eqs := make([]Equation, 0, len(pairs))
	for _, p := range pairs {
		eqs = append(eqs, NewEquation(in.toTerm(p.Left), in.toTerm(p.Right)))
	}
	log.Debugf("solving %d effect equations over %d variables (%d rigid)",
		len(eqs), len(in.syms), len(in.rigid))

	total, err := sv.run(eqs, in.rigid)
	if err != nil {
		return nil, in.toCallerError(err)
	}

	result := effects.EmptySubst()
	for x, t := range total {
		result[in.syms[x]] = in.fromTerm(t)
	}
	return result, nil
}

// run executes the staged pipeline on interned equations and returns the
// composed substitution.
func (sv *Solver) run(eqs []Equation, rigid boolalg.VarSet) (Substitution, error) {
	eqs, s1 := propagateUnits(eqs, rigid)
	sv.phaseComplete(PhaseUnits, eqs, s1)

	eqs, err := simplify(eqs)
	if err != nil {
		return nil, err
	}

	eqs, s2, err := propagateVars(eqs, rigid)
	if err != nil {
		return nil, err
	}
	sv.phaseComplete(PhaseVars, eqs, s2)

	eqs, err = simplify(eqs)
	if err != nil {
		return nil, err
	}

	eqs, s3 := assignTrivial(eqs, rigid)
	sv.phaseComplete(PhaseTrivial, eqs, s3)

	eqs, err = simplify(eqs)
	if err != nil {
		return nil, err
	}

	s4, err := solveResidual(eqs, rigid, sv.opts.MaxTermSize)
	if err != nil {
		return nil, err
	}
	sv.phaseComplete(PhaseSVE, nil, s4)

	return s4.Compose(s3).Compose(s2).Compose(s1), nil
}

func (sv *Solver) phaseComplete(phase string, eqs []Equation, s Substitution) {
	log.Debugf("phase %s: %d bindings, %d equations remain", phase, len(s), len(eqs))
	if sv.opts.OnPhaseComplete != nil {
		sv.opts.OnPhaseComplete(phase, eqs, s)
	}
}

// interner assigns dense variable ids for one solve and converts between
// the caller's effect vocabulary and solver terms. Ids never alias across
// solves.
type interner struct {
	env   *effects.RigidityEnv
	ids   map[effects.Sym]boolalg.VarID
	syms  []effects.Sym
	rigid boolalg.VarSet
}

func newInterner(env *effects.RigidityEnv) *interner {
	return &interner{
		env:   env,
		ids:   make(map[effects.Sym]boolalg.VarID),
		rigid: make(boolalg.VarSet),
	}
}

func (in *interner) intern(sym effects.Sym) boolalg.VarID {
	if id, ok := in.ids[sym]; ok {
		return id
	}
	id := boolalg.VarID(len(in.syms))
	in.ids[sym] = id
	in.syms = append(in.syms, sym)
	if in.env.Get(sym) == effects.Rigid {
		in.rigid.Add(id)
	}
	return id
}

// toTerm translates a caller effect formula into a canonical Boolean
// term. Effects use the dual lattice where true is pure, so the caller's
// union is conjunction and intersection is disjunction. Any unknown
// implementation of effects.Type is a compiler bug.
func (in *interner) toTerm(t effects.Type) boolalg.Term {
	switch tt := t.(type) {
	case effects.Pure:
		return boolalg.True{}
	case effects.Univ:
		return boolalg.False{}
	case effects.Var:
		return boolalg.Var{ID: in.intern(tt.Sym)}
	case effects.Complement:
		return boolalg.MkNot(in.toTerm(tt.Inner))
	case effects.Union:
		return boolalg.MkAnd(in.toTerm(tt.Left), in.toTerm(tt.Right))
	case effects.Intersection:
		return boolalg.MkOr(in.toTerm(tt.Left), in.toTerm(tt.Right))
	default:
		panic(fmt.Sprintf("unify: unexpected effect type %T", t))
	}
}

// fromTerm translates a solver term back into the caller's vocabulary,
// folding n-ary connectives left-associatively.
func (in *interner) fromTerm(t boolalg.Term) effects.Type {
	switch tt := t.(type) {
	case boolalg.True:
		return effects.Pure{}
	case boolalg.False:
		return effects.Univ{}
	case boolalg.Var:
		return effects.Var{Sym: in.syms[tt.ID]}
	case boolalg.Not:
		return effects.Complement{Inner: in.fromTerm(tt.Operand)}
	case boolalg.And:
		acc := in.fromTerm(tt.Args[0])
		for _, arg := range tt.Args[1:] {
			acc = effects.Union{Left: acc, Right: in.fromTerm(arg)}
		}
		return acc
	case boolalg.Or:
		acc := in.fromTerm(tt.Args[0])
		for _, arg := range tt.Args[1:] {
			acc = effects.Intersection{Left: acc, Right: in.fromTerm(arg)}
		}
		return acc
	default:
		panic(fmt.Sprintf("unify: unexpected term %T", t))
	}
}

// toCallerError converts an internal phase failure into a caller-facing
// error with the witnesses mapped back to effect formulas.
func (in *interner) toCallerError(err error) *errors.CompilerError {
	switch e := err.(type) {
	case *conflictError:
		return errors.MismatchedEffects(in.fromTerm(e.left), in.fromTerm(e.right))
	case *tooComplexError:
		return errors.TooComplex(in.fromTerm(e.left), in.fromTerm(e.right))
	default:
		panic(fmt.Sprintf("unify: unexpected solver error %T", err))
	}
}
