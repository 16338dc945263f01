/*
Package nondet is a toolbox for non-deterministic bottom-up parsing.

Grammars are supplied at runtime and may be ambiguous or otherwise outside
of the LR-families. A shift-reduce parser explores reduction and shift
choices and backtracks over them, reporting one bottom-up derivation for
accepted input. Package structure is as follows:

■ lr: Package lr implements grammars: alphabets of terminals and non-terminals,
a start symbol and an ordered list of rules.

■ lr/backtrack: Package backtrack implements the shift-reduce parser with
backtracking.

■ lr/sppf: Package sppf replays derivations and builds parse trees from them.

■ lr/scanner: Package scanner turns text into sequences of terminals.

■ lr/grammarfile: Package grammarfile reads grammars from a small text format.

■ cmd/btparse: Command btparse parses inputs from the command line or
interactively.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package nondet
