package lr

import (
	"bytes"
	"fmt"

	"github.com/npillmayer/nondet"
)

// --- Symbols ---------------------------------------------------------------

// Symbol represents a grammar symbol, i.e. a terminal or a non-terminal.
// Symbols are unique within a grammar and may be compared by identity.
//
// Value is the registration position of the symbol within the grammar,
// counting terminals and non-terminals together. For terminals it serves as
// the token type.
type Symbol struct {
	Name     string
	Value    int
	terminal bool
}

// IsTerminal returns true if this symbol represents a terminal.
func (A *Symbol) IsTerminal() bool {
	return A.terminal
}

// TokenType returns the token type of a terminal symbol.
func (A *Symbol) TokenType() nondet.TokType {
	return nondet.TokType(A.Value)
}

func (A *Symbol) String() string {
	return A.Name
}

// --- Rules -----------------------------------------------------------------

// Rule is a type for rules of a grammar. Rules cannot be empty: every right-hand
// side contains at least one symbol.
type Rule struct {
	Serial int     // order number of this rule within a grammar
	LHS    *Symbol // symbol of left hand side
	rhs    []*Symbol
}

// RHS returns the right-hand side of a rule. Clients must not modify the
// returned slice.
func (r *Rule) RHS() []*Symbol {
	return r.rhs
}

// Len returns the number of symbols on the right-hand side.
func (r *Rule) Len() int {
	return len(r.rhs)
}

// Last returns the rightmost symbol of the right-hand side.
func (r *Rule) Last() *Symbol {
	return r.rhs[len(r.rhs)-1]
}

// IsSuffixOf checks if the right-hand side of r equals the trailing symbols
// of a sentential form.
func (r *Rule) IsSuffixOf(form []*Symbol) bool {
	if len(r.rhs) > len(form) {
		return false
	}
	tail := form[len(form)-len(r.rhs):]
	for i, A := range r.rhs {
		if tail[i] != A {
			return false
		}
	}
	return true
}

func (r *Rule) String() string {
	var b bytes.Buffer
	b.WriteString(fmt.Sprintf("%d: [%s] ::= [", r.Serial, r.LHS))
	for i, A := range r.rhs {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(A.Name)
	}
	b.WriteString("]")
	return b.String()
}

// --- Grammar ---------------------------------------------------------------

// Grammar is a type for a context-free grammar with an ordered list of rules.
// Grammars are created by a GrammarBuilder and are immutable afterwards.
type Grammar struct {
	Name         string
	start        *Symbol
	rules        []*Rule
	symbols      []*Symbol          // all symbols in order of registration
	terminals    []*Symbol          // terminals in order of registration
	nonterminals []*Symbol          // non-terminals in order of registration
	symsByName   map[string]*Symbol // lookup by name
}

func newGrammar(name string) *Grammar {
	return &Grammar{
		Name:       name,
		rules:      make([]*Rule, 0, 16),
		symsByName: make(map[string]*Symbol),
	}
}

// Start returns the start symbol of the grammar.
func (g *Grammar) Start() *Symbol {
	return g.start
}

// Rule gets a grammar rule by its serial number. Returns nil if no such rule
// exists.
func (g *Grammar) Rule(no int) *Rule {
	if no < 0 || no >= len(g.rules) {
		return nil
	}
	return g.rules[no]
}

// Size returns the number of rules in the grammar.
func (g *Grammar) Size() int {
	return len(g.rules)
}

// EachRule iterates over all rules of the grammar in order of registration.
func (g *Grammar) EachRule(mapper func(r *Rule)) {
	for _, r := range g.rules {
		mapper(r)
	}
}

// EachSymbol iterates over all symbols of the grammar, terminals and
// non-terminals, in order of registration. Return values of the mapper
// function are collected and returned.
func (g *Grammar) EachSymbol(mapper func(A *Symbol) interface{}) []interface{} {
	var r []interface{}
	for _, A := range g.symbols {
		r = append(r, mapper(A))
	}
	return r
}

// Terminals returns the terminals of the grammar in order of registration.
func (g *Grammar) Terminals() []*Symbol {
	return append([]*Symbol(nil), g.terminals...)
}

// Nonterminals returns the non-terminals of the grammar in order of registration.
func (g *Grammar) Nonterminals() []*Symbol {
	return append([]*Symbol(nil), g.nonterminals...)
}

// SymbolByName gets a symbol for a given name, if found in the grammar.
func (g *Grammar) SymbolByName(name string) *Symbol {
	return g.symsByName[name]
}

// Terminal gets a terminal for a given name. It returns false if name is not
// declared as a terminal.
func (g *Grammar) Terminal(name string) (*Symbol, bool) {
	A, ok := g.symsByName[name]
	if !ok || !A.IsTerminal() {
		return nil, false
	}
	return A, true
}

// Dump is a debugging helper. It writes the rules of the grammar to the
// tracer at level Debug.
func (g *Grammar) Dump() {
	tracer().Debugf("--- grammar %s, start symbol %v ----------", g.Name, g.start)
	for _, r := range g.rules {
		tracer().Debugf("%3s", r)
	}
	tracer().Debugf("-------------------------------------------")
}

func (g *Grammar) String() string {
	var b bytes.Buffer
	for _, r := range g.rules {
		b.WriteString(r.String())
		b.WriteString("\n")
	}
	return b.String()
}

func (g *Grammar) addSymbol(name string, terminal bool) *Symbol {
	A := &Symbol{
		Name:     name,
		Value:    len(g.symbols),
		terminal: terminal,
	}
	g.symbols = append(g.symbols, A)
	if terminal {
		g.terminals = append(g.terminals, A)
	} else {
		g.nonterminals = append(g.nonterminals, A)
	}
	g.symsByName[name] = A
	return A
}
