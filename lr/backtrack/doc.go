/*
Package backtrack provides a non-deterministic shift-reduce parser with
backtracking. It recognizes input for arbitrary context-free grammars without
epsilon-productions, as long as the grammar contains no reduction cycles
(see "Limitations" below).

No parse tables are constructed. Instead, the parser greedily reduces whenever
the right-hand side of a rule matches the top of the parse stack, and shifts
the next input symbol when nothing can be reduced. When the input is
exhausted without having reduced to the start symbol, the parser undoes its
most recent actions one by one, trying the next candidate rule for an undone
reduction, or a shift instead of it.

Rule Order

Whenever more than one rule matches, the rule registered first wins. On
backtracking, candidates are tried in ascending order of rule numbers,
starting after the rule just undone. Rule order is therefore load-bearing:
it determines which derivation is found for ambiguous grammars, and it
influences the amount of backtracking for all others.

Usage

	b := lr.NewGrammarBuilder("G")
	b.Terminals("a", "+").Nonterminals("S").Start("S")
	b.LHS("S").T("a").End()             // 0: S ➞ a
	b.LHS("S").N("S").T("+").T("a").End() // 1: S ➞ S + a
	g, err := b.Grammar()
	...
	p := backtrack.NewParser(g)
	result, err := p.AnalyzeNames("a", "+", "a")
	if err != nil { ... }                 // grammar or parser fault
	if result.Accepted {
		fmt.Println(result.Derivation)    // 0 1
	}

Rejection of input is not an error. Errors are reserved for input symbols
which are not terminals of the grammar, for violated parser invariants, and
for exceeding the step limit.

A parse tree for accepted input may be built from the derivation with
package sppf.

Limitations

Grammars with reduction cycles (e.g., A ➞ B, B ➞ A) make the search
non-terminating. The parser counts its transitions and gives up with
ErrStepLimit once the configured maximum (option MaxSteps) is reached.

Parsers are immutable after construction and may be shared between
goroutines. Every call to Analyze works on its own parse stack.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package backtrack

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'backtrack.lr'.
func tracer() tracing.Trace {
	return tracing.Select("backtrack.lr")
}
