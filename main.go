// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/fatih/color"

	"effunify/grammar"
	"effunify/internal/effects"
	"effunify/internal/errors"
	"effunify/internal/unify"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: effunify <file.efc>")
		os.Exit(1)
	}

	path := os.Args[1]

	file, err := grammar.ParseFile(path)
	if err != nil {
		os.Exit(1)
	}

	pairs, env := grammar.Lower(file)
	subst, solveErr := unify.UnifyAll(pairs, env)
	if solveErr != nil {
		fmt.Print(errors.NewReporter(path).Format(solveErr))
		os.Exit(1)
	}

	printSubst(subst)
	color.Green("✅ Solved %d constraints from %s", len(pairs), path)
}

// printSubst lists the bindings in a stable order.
func printSubst(subst effects.Subst) {
	syms := make([]string, 0, len(subst))
	for sym := range subst {
		syms = append(syms, string(sym))
	}
	sort.Strings(syms)
	for _, sym := range syms {
		fmt.Printf("%s -> %s\n", sym, subst[effects.Sym(sym)].String())
	}
}
