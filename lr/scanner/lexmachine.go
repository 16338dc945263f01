package scanner

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/npillmayer/nondet"
	"github.com/npillmayer/nondet/lr"
	"github.com/npillmayer/schuko/gtrace"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// ErrScan is reported for input which cannot be split into terminals.
var ErrScan = errors.New("cannot scan input")

// LMAdapter is a lexmachine adapter to use lexmachine as a scanner for the
// terminals of a grammar.
type LMAdapter struct {
	Lexer    *lexmachine.Lexer
	patterns map[string]string
}

// Option configures a grammar scanner.
type Option func(*LMAdapter)

// Pattern sets a regular expression (in lexmachine syntax) for a terminal,
// replacing the terminal's name as the literal to match.
func Pattern(terminal string, regex string) Option {
	return func(lm *LMAdapter) {
		lm.patterns[terminal] = regex
	}
}

// ForGrammar creates a lexmachine adapter recognizing the terminals of g.
// Terminals without a pattern are matched literally and take precedence over
// pattern terminals for matches of equal length.
//
// ForGrammar will return an error if compiling the DFA failed.
func ForGrammar(g *lr.Grammar, opts ...Option) (*LMAdapter, error) {
	adapter := &LMAdapter{
		Lexer:    lexmachine.NewLexer(),
		patterns: make(map[string]string),
	}
	for _, opt := range opts {
		opt(adapter)
	}
	terminals := g.Terminals()
	for name := range adapter.patterns {
		if _, ok := g.Terminal(name); !ok {
			return nil, fmt.Errorf("pattern for %q: %w", name, lr.ErrConfiguration)
		}
	}
	for _, A := range terminals {
		if _, ok := adapter.patterns[A.Name]; !ok {
			adapter.Lexer.Add([]byte(quote(A.Name)), MakeToken(A.Name, A.Value))
		}
	}
	for _, A := range terminals {
		if regex, ok := adapter.patterns[A.Name]; ok {
			adapter.Lexer.Add([]byte(regex), MakeToken(A.Name, A.Value))
		}
	}
	adapter.Lexer.Add([]byte(`( |\t|\n|\r)+`), Skip)
	if err := adapter.Lexer.Compile(); err != nil {
		gtrace.SyntaxTracer.Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

// quote escapes every character of a literal which is not a letter or digit.
func quote(lit string) string {
	var sb strings.Builder
	for _, r := range lit {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			sb.WriteByte('\\')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// Scanner creates a scanner for a given input. The scanner will implement the
// Tokenizer interface.
func (lm *LMAdapter) Scanner(input string) (*LMScanner, error) {
	s, err := lm.Lexer.Scanner([]byte(input))
	if err != nil {
		return &LMScanner{}, err
	}
	return &LMScanner{scanner: s, Error: logError}, nil
}

// Tokenize splits an input string into tokens, excluding the final EOF token.
// Unlike a Tokenizer, it does not skip unscannable input, but reports an error
// wrapping ErrScan.
func (lm *LMAdapter) Tokenize(input string) ([]nondet.Token, error) {
	sc, err := lm.Scanner(input)
	if err != nil {
		return nil, err
	}
	var scanErr error
	sc.SetErrorHandler(func(e error) {
		if scanErr == nil {
			scanErr = fmt.Errorf("%w: %v", ErrScan, e)
		}
	})
	var tokens []nondet.Token
	for token := sc.NextToken(); token.TokType() != EOF; token = sc.NextToken() {
		tokens = append(tokens, token)
	}
	if scanErr != nil {
		return nil, scanErr
	}
	tracer().Debugf("input %q has %d tokens", input, len(tokens))
	return tokens, nil
}

// LMScanner is a scanner type for lexmachine scanners, implementing the
// Tokenizer interface.
type LMScanner struct {
	scanner *lexmachine.Scanner
	Error   func(error)
}

var _ Tokenizer = (*LMScanner)(nil)

// SetErrorHandler sets an error handler for the scanner.
func (lms *LMScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		lms.Error = logError
		return
	}
	lms.Error = h
}

// NextToken is part of the Tokenizer interface. Unscannable input is reported
// to the error handler and skipped.
func (lms *LMScanner) NextToken() nondet.Token {
	if lms.scanner == nil {
		return DefaultToken{kind: EOF}
	}
	tok, err, eof := lms.scanner.Next()
	for err != nil {
		lms.Error(err)
		if ui, is := err.(*machines.UnconsumedInput); is {
			lms.scanner.TC = ui.FailTC
		}
		tok, err, eof = lms.scanner.Next()
	}
	if eof {
		return DefaultToken{kind: EOF}
	}
	token := tok.(*lexmachine.Token)
	tracer().Debugf("token %d = %q", token.Type, token.Lexeme)
	from := uint64(token.TC)
	return DefaultToken{
		kind:   nondet.TokType(token.Type),
		lexeme: string(token.Lexeme),
		span:   nondet.Span{from, from + uint64(len(token.Lexeme))},
	}
}

// ---------------------------------------------------------------------------

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a pre-defined action which wraps a scanned match into a token.
func MakeToken(name string, id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}
