package grammar

import (
	"effunify/internal/effects"
	"effunify/internal/unify"
)

// Lower converts a parsed constraint file into solver input: the
// constraint pairs in source order and the rigidity environment built
// from the rigid declarations. The identifiers pure and univ denote the
// constants; everything else is an effect variable.
func Lower(file *File) ([]unify.Pair, *effects.RigidityEnv) {
	env := effects.NewRigidityEnv()
	var pairs []unify.Pair
	for _, stmt := range file.Statements {
		switch {
		case stmt.Rigid != nil:
			for _, name := range stmt.Rigid.Names {
				env.MarkRigid(effects.Sym(name.Value))
			}
		case stmt.Constraint != nil:
			pairs = append(pairs, unify.Pair{
				Left:  lowerExpr(stmt.Constraint.Left),
				Right: lowerExpr(stmt.Constraint.Right),
			})
		}
	}
	return pairs, env
}

func lowerExpr(e *EffExpr) effects.Type {
	acc := lowerInter(e.Terms[0])
	for _, term := range e.Terms[1:] {
		acc = effects.Union{Left: acc, Right: lowerInter(term)}
	}
	return acc
}

func lowerInter(e *InterExpr) effects.Type {
	acc := lowerUnary(e.Terms[0])
	for _, term := range e.Terms[1:] {
		acc = effects.Intersection{Left: acc, Right: lowerUnary(term)}
	}
	return acc
}

func lowerUnary(e *UnaryEff) effects.Type {
	if e.Not != nil {
		return effects.Complement{Inner: lowerUnary(e.Not)}
	}
	return lowerPrimary(e.Primary)
}

func lowerPrimary(e *PrimaryEff) effects.Type {
	if e.Parens != nil {
		return lowerExpr(e.Parens)
	}
	switch e.Ident.Value {
	case "pure":
		return effects.Pure{}
	case "univ":
		return effects.Univ{}
	default:
		return effects.Var{Sym: effects.Sym(e.Ident.Value)}
	}
}
