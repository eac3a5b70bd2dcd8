package boolalg

import (
	"fmt"
	"strings"
)

func (True) String() string  { return "true" }
func (False) String() string { return "false" }

func (v Var) String() string { return fmt.Sprintf("x%d", v.ID) }

func (n Not) String() string {
	return "!" + operandString(n.Operand)
}

func (a And) String() string { return joinArgs(a.Args, " & ") }
func (o Or) String() string  { return joinArgs(o.Args, " | ") }

func joinArgs(args []Term, sep string) string {
	parts := make([]string, len(args))
	for i, arg := range args {
		parts[i] = operandString(arg)
	}
	return strings.Join(parts, sep)
}

// operandString parenthesizes connective operands so the printed form is
// unambiguous in trace output.
func operandString(t Term) string {
	switch t.(type) {
	case And, Or:
		return "(" + t.String() + ")"
	default:
		return t.String()
	}
}
