// Package repl SPDX-License-Identifier: Apache-2.0
package repl

import (
	"bufio"
	"fmt"
	"io"

	"effunify/grammar"
	"effunify/internal/effects"
	"effunify/internal/errors"
	"effunify/internal/unify"
)

const PROMPT = ">> "

// Start runs an interactive constraint session: enter rigid declarations
// and equations, then "solve" to unify the accumulated system, "reset" to
// clear it, or "quit" to leave.
func Start(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	reporter := errors.NewReporter("")

	var pairs []unify.Pair
	env := effects.NewRigidityEnv()

	for {
		fmt.Fprint(out, PROMPT)
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()

		switch line {
		case "":
			continue
		case "quit", "exit":
			return
		case "reset":
			pairs = nil
			env = effects.NewRigidityEnv()
			fmt.Fprintln(out, "cleared")
			continue
		case "solve":
			subst, solveErr := unify.UnifyAll(pairs, env)
			if solveErr != nil {
				fmt.Fprint(out, reporter.Format(solveErr))
				continue
			}
			fmt.Fprintln(out, subst.String())
			continue
		}

		file, err := grammar.ParseString("<repl>", line)
		if err != nil {
			grammar.ReportParseError(line, err)
			continue
		}
		newPairs, _ := grammar.Lower(file)
		pairs = append(pairs, newPairs...)
		mergeRigid(env, file)

		fmt.Fprintf(out, "%d constraints\n", len(pairs))
	}
}

// mergeRigid folds a line's rigid declarations into the session env.
func mergeRigid(env *effects.RigidityEnv, file *grammar.File) {
	for _, stmt := range file.Statements {
		if stmt.Rigid == nil {
			continue
		}
		for _, name := range stmt.Rigid.Names {
			env.MarkRigid(effects.Sym(name.Value))
		}
	}
}
