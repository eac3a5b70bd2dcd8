// SPDX-License-Identifier: Apache-2.0
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/fatih/color"
	"github.com/tliron/commonlog"

	"effunify/grammar"
	"effunify/internal/effects"
	"effunify/internal/errors"
	"effunify/internal/unify"
	"effunify/repl"
)

func main() {
	interactive := flag.Bool("i", false, "start an interactive constraint session")
	verbosity := flag.Int("v", 0, "log verbosity (1 enables phase tracing)")
	budget := flag.Int("budget", 10000, "max term size for variable elimination (0 disables)")
	flag.Parse()

	commonlog.Configure(*verbosity, nil)

	if *interactive {
		repl.Start(os.Stdin, os.Stdout)
		return
	}

	if flag.NArg() < 1 {
		fmt.Println("Usage: effunify-cli [-i] [-v N] [-budget N] <file.efc>")
		os.Exit(1)
	}
	path := flag.Arg(0)

	file, err := grammar.ParseFile(path)
	if err != nil {
		os.Exit(1)
	}

	pairs, env := grammar.Lower(file)

	solver := unify.NewSolver(unify.Options{MaxTermSize: *budget})
	subst, solveErr := solver.Solve(pairs, env)
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
