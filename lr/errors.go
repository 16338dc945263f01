package lr

import (
	"errors"
	"fmt"
)

// ErrConfiguration is the error category for malformed grammars. Every
// *ConfigurationError matches it with errors.Is.
var ErrConfiguration = errors.New("grammar configuration error")

// ErrGrammarFrozen is returned for attempts to register rules or symbols after
// the grammar has been handed out by GrammarBuilder.Grammar().
var ErrGrammarFrozen = errors.New("grammar is frozen, no more registrations allowed")

// ErrorKind classifies configuration errors.
type ErrorKind int8

// Kinds of configuration errors.
const (
	UndeclaredSymbol    ErrorKind = iota + 1 // symbol not declared in any alphabet
	EmptyRHS                                 // rule with an empty right-hand side
	NonterminalExpected                      // terminal used where a non-terminal is required
	TerminalExpected                         // non-terminal used where a terminal is required
	AlphabetOverlap                          // symbol declared as terminal and as non-terminal
	DuplicateSymbol                          // symbol declared twice in the same alphabet
	StartUndeclared                          // start symbol missing or not a non-terminal
	EmptyName                                // symbol with an empty name
)

func (k ErrorKind) String() string {
	switch k {
	case UndeclaredSymbol:
		return "undeclared symbol"
	case EmptyRHS:
		return "empty right-hand side"
	case NonterminalExpected:
		return "non-terminal expected"
	case TerminalExpected:
		return "terminal expected"
	case AlphabetOverlap:
		return "alphabets overlap"
	case DuplicateSymbol:
		return "duplicate symbol"
	case StartUndeclared:
		return "start symbol undeclared"
	case EmptyName:
		return "empty symbol name"
	}
	return "unknown error"
}

// ConfigurationError is raised at registration time whenever a grammar is
// malformed. Rule is the serial number the offending rule would have had, or
// -1 if the error is not related to a rule.
type ConfigurationError struct {
	Grammar string
	Kind    ErrorKind
	Symbol  string
	Rule    int
}

func (e *ConfigurationError) Error() string {
	if e.Rule >= 0 {
		return fmt.Sprintf("grammar %s, rule %d: %s %q", e.Grammar, e.Rule, e.Kind, e.Symbol)
	}
	return fmt.Sprintf("grammar %s: %s %q", e.Grammar, e.Kind, e.Symbol)
}

// Unwrap lets errors.Is(err, ErrConfiguration) succeed.
func (e *ConfigurationError) Unwrap() error {
	return ErrConfiguration
}

func configError(g *Grammar, kind ErrorKind, sym string, rule int) *ConfigurationError {
	return &ConfigurationError{
		Grammar: g.Name,
		Kind:    kind,
		Symbol:  sym,
		Rule:    rule,
	}
}
