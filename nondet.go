package nondet

import "fmt"

// --- Tokens ----------------------------------------------------------------

// TokType is a category type for a Token. Grammars of package lr assign every
// terminal a token type, which is the terminal's symbol value.
type TokType int

// Token represents an input token as produced by a scanner. For the parsers
// in this module every token stands for exactly one terminal of a grammar.
//
// An example would be a token for a terminal 'a':
//
//    TokType = 3           // value of terminal 'a' in the grammar
//    Lexeme  = "a"         // lexeme how it appeared in the input stream
//    Span    = 4…5         // occured at position 4 in the input stream
//
type Token interface {
	TokType() TokType
	Lexeme() string
	Span() Span
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a length of input token run. For every
// terminal and non-terminal, a derivation tree will track which input positions
// this symbol covers. A span denotes a start position and the position just
// behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

// IsNull is true for the zero span.
func (s Span) IsNull() bool {
	return s == Span{}
}

// Extend returns the smallest span covering s and other.
func (s Span) Extend(other Span) Span {
	if s.IsNull() {
		return other
	}
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
