/*
Package scanner defines an interface for scanners to be used with parsers of
package lr, together with a scanner for the terminals of a grammar.

The grammar scanner is backed by lexmachine. Every terminal of a grammar is
recognized by its name, taken literally, unless a client provides a regular
expression for it. Whitespace between tokens is skipped. Token types are the
symbol values of the terminals, which is what backtrack.Parser.AnalyzeTokens
expects.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"fmt"

	"github.com/npillmayer/nondet"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'backtrack.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("backtrack.scanner")
}

// EOF is the token type of the token signalling end of input.
const EOF nondet.TokType = -1

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() nondet.Token
	SetErrorHandler(func(error))
}

// Default error reporting function for scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used as default for
// the grammar scanner.
type DefaultToken struct {
	kind   nondet.TokType
	lexeme string
	span   nondet.Span
}

// MakeDefaultToken creates a token.
func MakeDefaultToken(typ nondet.TokType, lexeme string, span nondet.Span) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
	}
}

func (t DefaultToken) TokType() nondet.TokType {
	return t.kind
}

func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

func (t DefaultToken) Span() nondet.Span {
	return t.span
}

func (t DefaultToken) String() string {
	if t.kind == EOF {
		return "<EOF>"
	}
	return fmt.Sprintf("%q%v", t.lexeme, t.span)
}
