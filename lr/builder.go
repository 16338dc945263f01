package lr

// GrammarBuilder is a builder type for grammars. Create one with
// NewGrammarBuilder, declare the alphabets and add the rules, then call
// Grammar().
//
// The builder is sticky with respect to errors: after the first
// configuration error every further call is a no-op, and the error is
// returned from Grammar().
type GrammarBuilder struct {
	g         *Grammar
	startName string
	err       error
	frozen    bool
	late      bool // registration attempted after freeze
}

// NewGrammarBuilder gets a new grammar builder, given the name of the grammar
// to build.
func NewGrammarBuilder(name string) *GrammarBuilder {
	return &GrammarBuilder{g: newGrammar(name)}
}

// Declare creates a grammar builder with the alphabets and the start symbol
// already declared. It is a shortcut for
//
//    NewGrammarBuilder(name).Terminals(t...).Nonterminals(n...).Start(start)
//
func Declare(name string, terminals []string, nonterminals []string, start string) *GrammarBuilder {
	return NewGrammarBuilder(name).Terminals(terminals...).Nonterminals(nonterminals...).Start(start)
}

// Terminals declares terminal symbols.
func (b *GrammarBuilder) Terminals(names ...string) *GrammarBuilder {
	for _, name := range names {
		b.declare(name, true)
	}
	return b
}

// Nonterminals declares non-terminal symbols.
func (b *GrammarBuilder) Nonterminals(names ...string) *GrammarBuilder {
	for _, name := range names {
		b.declare(name, false)
	}
	return b
}

// Start sets the start symbol. The symbol has to be declared as a non-terminal
// before Grammar() is called.
func (b *GrammarBuilder) Start(name string) *GrammarBuilder {
	if b.ok() {
		b.startName = name
	}
	return b
}

func (b *GrammarBuilder) declare(name string, terminal bool) {
	if b.frozen {
		b.late = true
	}
	if !b.ok() {
		return
	}
	if name == "" {
		b.err = configError(b.g, EmptyName, name, -1)
		return
	}
	if A, exists := b.g.symsByName[name]; exists {
		if A.IsTerminal() == terminal {
			b.err = configError(b.g, DuplicateSymbol, name, -1)
		} else {
			b.err = configError(b.g, AlphabetOverlap, name, -1)
		}
		return
	}
	b.g.addSymbol(name, terminal)
}

// LHS starts a rule given the left hand side symbol (non-terminal).
// After a call to Grammar() the rule is not registered, and Err() reports
// ErrGrammarFrozen.
func (b *GrammarBuilder) LHS(name string) *RuleBuilder {
	rb := &RuleBuilder{b: b}
	if b.frozen {
		b.late = true
	}
	if !b.ok() {
		return rb
	}
	rb.serial = len(b.g.rules)
	A := b.lookup(name, rb.serial)
	if A != nil && A.IsTerminal() {
		b.err = configError(b.g, NonterminalExpected, name, rb.serial)
		return rb
	}
	rb.lhs = A
	return rb
}

// AddRule appends a rule LHS ➞ RHS. Symbols are given by name and have to be
// declared beforehand. AddRule returns the new rule or the configuration
// error which prevented it.
func (b *GrammarBuilder) AddRule(lhs string, rhs ...string) (*Rule, error) {
	if b.frozen {
		b.late = true
		return nil, ErrGrammarFrozen
	}
	rb := b.LHS(lhs)
	for _, name := range rhs {
		rb.Sym(name)
	}
	r := rb.End()
	if r == nil {
		return nil, b.err
	}
	return r, nil
}

// Grammar returns the grammar built so far, or the first configuration error
// encountered. After a call to Grammar() the builder is frozen.
func (b *GrammarBuilder) Grammar() (*Grammar, error) {
	if b.err != nil {
		return nil, b.err
	}
	if !b.frozen {
		A, found := b.g.symsByName[b.startName]
		if !found || A.IsTerminal() {
			b.err = configError(b.g, StartUndeclared, b.startName, -1)
			return nil, b.err
		}
		b.g.start = A
		b.frozen = true
		tracer().Debugf("grammar %s frozen with %d rules", b.g.Name, len(b.g.rules))
	}
	return b.g, nil
}

// Err returns the first configuration error encountered so far, if any.
// If symbols or rules have been registered after the grammar has been
// frozen, Err returns ErrGrammarFrozen. The frozen grammar itself remains
// available from Grammar().
func (b *GrammarBuilder) Err() error {
	if b.err == nil && b.late {
		return ErrGrammarFrozen
	}
	return b.err
}

func (b *GrammarBuilder) ok() bool {
	return !b.frozen && b.err == nil
}

func (b *GrammarBuilder) lookup(name string, serial int) *Symbol {
	A, found := b.g.symsByName[name]
	if !found {
		b.err = configError(b.g, UndeclaredSymbol, name, serial)
		return nil
	}
	return A
}

// --- Rule builder ----------------------------------------------------------

// RuleBuilder is a builder type for rules.
type RuleBuilder struct {
	b      *GrammarBuilder
	serial int
	lhs    *Symbol
	rhs    []*Symbol
}

// N appends a non-terminal to the builder.
func (rb *RuleBuilder) N(name string) *RuleBuilder {
	if A := rb.sym(name); A != nil && A.IsTerminal() {
		rb.b.err = configError(rb.b.g, NonterminalExpected, name, rb.serial)
	}
	return rb
}

// T appends a terminal to the builder.
func (rb *RuleBuilder) T(name string) *RuleBuilder {
	if A := rb.sym(name); A != nil && !A.IsTerminal() {
		rb.b.err = configError(rb.b.g, TerminalExpected, name, rb.serial)
	}
	return rb
}

// Sym appends a symbol of either kind to the builder.
func (rb *RuleBuilder) Sym(name string) *RuleBuilder {
	rb.sym(name)
	return rb
}

func (rb *RuleBuilder) sym(name string) *Symbol {
	if rb.lhs == nil || !rb.b.ok() {
		return nil
	}
	A := rb.b.lookup(name, rb.serial)
	if A != nil {
		rb.rhs = append(rb.rhs, A)
	}
	return A
}

// End ends a rule and appends it to the grammar. It returns nil if the rule
// could not be registered; the reason is reported by Err().
func (rb *RuleBuilder) End() *Rule {
	if rb.lhs == nil || !rb.b.ok() {
		return nil
	}
	if len(rb.rhs) == 0 {
		rb.b.err = configError(rb.b.g, EmptyRHS, rb.lhs.Name, rb.serial)
		return nil
	}
	r := &Rule{
		Serial: len(rb.b.g.rules),
		LHS:    rb.lhs,
		rhs:    rb.rhs,
	}
	rb.b.g.rules = append(rb.b.g.rules, r)
	return r
}
