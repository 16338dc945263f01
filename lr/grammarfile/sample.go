package grammarfile

import "github.com/npillmayer/nondet/lr"

// SampleText is a small grammar for arithmetic expressions, wrapped in
// exclamation marks. It has a shift/reduce conflict for every operator and
// needs backtracking to be parsed.
const SampleText = `# Sample grammar: expressions wrapped in '!'
%name         Wrapped-Expressions
%terminals    ! + * ( ) a b
%nonterminals A B T M
%start        A
A -> ! B !
B -> T
B -> T + B
T -> M
T -> M * T
M -> a
M -> b
M -> ( B )
`

// Sample returns the sample grammar.
func Sample() *lr.Grammar {
	spec, err := ParseString("sample", SampleText)
	if err != nil {
		panic(err) // SampleText is well-formed
	}
	return spec.Grammar
}
