/*
Command btparse parses input with a backtracking shift-reduce parser.

Grammars are read from a grammar file (see package lr/grammarfile); without
one, btparse uses a small sample grammar for arithmetic expressions wrapped
in exclamation marks. Inputs are scanned into terminals before parsing, with
whitespace between terminals skipped.

Usage:

    btparse parse '!a+b!' '!(a*b)!'
    btparse parse --grammar expr.grammar --tree '!a*b!'
    btparse grammar --grammar expr.grammar
    btparse repl

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"fmt"
	"os"
)

func main() {
	err := Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
