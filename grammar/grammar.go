package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// File is one constraint source: rigidity declarations and equations over
// effect formulas, in any order.
type File struct {
	Statements []*Statement `@@*`
}

type Statement struct {
	Comment    *Comment    `  @@`
	Rigid      *RigidDecl  `| @@`
	Constraint *Constraint `| @@`
}

type Comment struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Text   string `@Comment`
}

type PosIdent struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Value  string `@Ident`
}

// RigidDecl marks effect variables as rigid: rigid io, net;
type RigidDecl struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Names  []PosIdent `"rigid" @@ { "," @@ } ";"`
}

// Constraint is one equation between effect formulas: lhs ~ rhs;
type Constraint struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Left   *EffExpr `@@ "~"`
	Right  *EffExpr `@@ ";"`
}

// EffExpr is a union of intersections; & binds tighter than |.
type EffExpr struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Terms  []*InterExpr `@@ { "|" @@ }`
}

type InterExpr struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Terms  []*UnaryEff `@@ { "&" @@ }`
}

type UnaryEff struct {
	Pos     lexer.Position
	EndPos  lexer.Position
	Not     *UnaryEff   `  "!" @@`
	Primary *PrimaryEff `| @@`
}

type PrimaryEff struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Parens *EffExpr  `  "(" @@ ")"`
	Ident  *PosIdent `| @@`
}
