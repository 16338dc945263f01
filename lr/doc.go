/*
Package lr implements grammars for bottom-up parsing.

Building a Grammar

Grammars are specified using a grammar builder object. Clients first
declare the alphabets, i.e. the terminals, the non-terminals and the start
symbol, then add rules, consisting of a non-terminal on the left-hand side
and a non-empty sequence of symbols on the right-hand side.

Example:

    b := lr.NewGrammarBuilder("G")
    b.Terminals("!", "+", "a")
    b.Nonterminals("A", "B")
    b.Start("A")
    b.LHS("A").T("!").N("B").T("!").End()  // A  ->  ! B !
    b.LHS("B").T("a").End()                // B  ->  a
    b.LHS("B").T("a").T("+").N("B").End()  // B  ->  a + B
    g, err := b.Grammar()

This results in the following trivial grammar:

   g.Dump()

   0: [A] ::= [! B !]
   1: [B] ::= [a]
   2: [B] ::= [a + B]

Rule Order

Rules are numbered in the order of registration, starting at 0. Unlike
many grammar toolkits, rule order is not merely presentational: parsers of
this module prefer lower-numbered rules whenever more than one rule could be
applied, and derivations are reported as sequences of rule numbers.

Errors

Registration errors (undeclared symbols, empty right-hand sides, a terminal
on the left-hand side, overlapping alphabets) are detected eagerly. The
builder records the first error as a *ConfigurationError and returns it
from Grammar(). Once Grammar() has been called, the builder is frozen and
the resulting grammar is immutable. It may be shared between goroutines.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lr

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'backtrack.lr'.
func tracer() tracing.Trace {
	return tracing.Select("backtrack.lr")
}
