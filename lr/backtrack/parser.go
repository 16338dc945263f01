package backtrack

import (
	"fmt"

	"github.com/npillmayer/nondet"
	"github.com/npillmayer/nondet/lr"
)

// DefaultMaxSteps is the default step limit for a parser.
const DefaultMaxSteps = 1000000

// Parser is a shift-reduce parser with backtracking. Create one with NewParser.
type Parser struct {
	g           *lr.Grammar
	matcher     *matcher
	maxSteps    int
	keepHistory bool
}

// Grammar returns the grammar the parser has been created for.
func (p *Parser) Grammar() *lr.Grammar {
	return p.g
}

// Option configures a parser.
type Option func(p *Parser)

// MaxSteps sets the maximum number of parser transitions for a single call to
// Analyze. n ≤ 0 disables the limit. Without a limit, grammars with reduction
// cycles may send the parser into an endless loop.
func MaxSteps(n int) Option {
	return func(p *Parser) {
		p.maxSteps = n
	}
}

// KeepHistory sets or clears option KeepHistory: report the complete
// shift/reduce history of an accepting parse in Result.History.
// The default is true.
func KeepHistory(b bool) Option {
	return func(p *Parser) {
		p.keepHistory = b
	}
}

// NewParser creates a parser for a grammar.
func NewParser(g *lr.Grammar, opts ...Option) *Parser {
	p := &Parser{
		g:           g,
		maxSteps:    DefaultMaxSteps,
		keepHistory: true,
	}
	if g != nil {
		p.matcher = newMatcher(g)
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Result is the outcome of a parse. If Accepted is false, the input does not
// belong to the language of the grammar, and Derivation and History are nil.
type Result struct {
	Accepted   bool
	Derivation Derivation // rule numbers of the reductions, in order of application
	History    []Action   // every shift and reduce of the accepting path
	Steps      int        // number of transitions, including undone ones
	Backtracks int        // number of times the parser had to reverse
}

// Analyze checks if input belongs to the language of the parser's grammar.
// On success, it reports a bottom-up derivation.
//
// An error is returned if input contains a symbol which is not a terminal of
// the grammar, if the step limit has been exceeded, or if the parser detected
// an inconsistent internal state. Rejected input is not an error.
func (p *Parser) Analyze(input []*lr.Symbol) (*Result, error) {
	if p.g == nil || p.matcher == nil {
		tracer().Errorf("backtracking parser not initialized")
		return nil, ErrNotInitialized
	}
	for i, A := range input {
		if A == nil {
			return nil, &InputError{Position: i, Symbol: "<nil>"}
		}
		if !A.IsTerminal() || p.g.SymbolByName(A.Name) != A {
			return nil, &InputError{Position: i, Symbol: A.Name}
		}
	}
	tracer().Debugf("~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~")
	tracer().Debugf("analyze %v", input)
	if len(input) == 0 { // no rule derives the empty string
		tracer().Infof("empty input rejected")
		return &Result{}, nil
	}
	c := newConfiguration(input, p.maxSteps)
	st := Normal
	var err error
	for st != Ended {
		switch st {
		case Normal:
			if st, err = p.normal(c); st == Reverse {
				c.backtracks++
			}
		case Reverse:
			st, err = p.reverse(c)
		}
		if err != nil {
			tracer().Errorf("analyze %v: %v", input, err)
			return nil, fmt.Errorf("grammar %s: %w", p.g.Name, err)
		}
	}
	result := &Result{
		Accepted:   c.accepting(p.g),
		Steps:      c.steps,
		Backtracks: c.backtracks,
	}
	if result.Accepted {
		actions := c.history.actions()
		result.Derivation = derivationOf(actions)
		if p.keepHistory {
			result.History = actions
		}
		tracer().Infof("input accepted after %d steps, derivation = %v", c.steps, result.Derivation)
	} else {
		tracer().Infof("input rejected after %d steps", c.steps)
	}
	return result, nil
}

// AnalyzeNames is like Analyze, but input terminals are given by name.
func (p *Parser) AnalyzeNames(names ...string) (*Result, error) {
	if p.g == nil {
		return p.Analyze(nil)
	}
	input := make([]*lr.Symbol, len(names))
	for i, name := range names {
		A, ok := p.g.Terminal(name)
		if !ok {
			return nil, &InputError{Position: i, Symbol: name}
		}
		input[i] = A
	}
	return p.Analyze(input)
}

// AnalyzeTokens is like Analyze, but input terminals are given as tokens.
// Token types have to match the symbol values of the grammar's terminals.
func (p *Parser) AnalyzeTokens(tokens []nondet.Token) (*Result, error) {
	if p.g == nil {
		return p.Analyze(nil)
	}
	terminals := p.g.Terminals()
	bytype := make(map[nondet.TokType]*lr.Symbol, len(terminals))
	for _, A := range terminals {
		bytype[A.TokenType()] = A
	}
	input := make([]*lr.Symbol, len(tokens))
	for i, tok := range tokens {
		A, ok := bytype[tok.TokType()]
		if !ok {
			return nil, &InputError{Position: i, Symbol: tok.Lexeme()}
		}
		input[i] = A
	}
	return p.Analyze(input)
}

// --- State machine ---------------------------------------------------------

// State is a state of the parser's state machine.
type State int8

// The parser alternates between states Normal and Reverse, until it reaches
// state Ended.
const (
	Normal State = iota
	Reverse
	Ended
)

func (s State) String() string {
	switch s {
	case Normal:
		return "Normal"
	case Reverse:
		return "Reverse"
	case Ended:
		return "Ended"
	}
	return "?"
}

// normal reduces as long as a rule matches the top of the stack, then shifts
// the next input symbol. If no input is left, the parse either ends successfully
// or has to be reversed.
func (p *Parser) normal(c *configuration) (State, error) {
	for {
		r, ok := p.matcher.findReduction(c.stack, 0)
		if !ok {
			break
		}
		if err := c.tick(); err != nil {
			return Ended, err
		}
		if err := c.reduce(r); err != nil {
			return Ended, err
		}
	}
	if c.cursor < len(c.input) {
		if err := c.tick(); err != nil {
			return Ended, err
		}
		c.shift()
		return Normal, nil
	}
	if c.accepting(p.g) {
		return Ended, nil
	}
	tracer().Debugf("input exhausted with stack %v, reversing", c.stack)
	return Reverse, nil
}

// reverse undoes the most recent action. Undoing a reduction by rule r opens
// up two alternatives: reducing by a rule with a higher number than r, or
// shifting the next input symbol instead of having reduced. If neither is
// possible, the parser stays in state Reverse.
//
// Undoing the first shift leaves no choice to revisit: the input is rejected.
func (p *Parser) reverse(c *configuration) (State, error) {
	if err := c.tick(); err != nil {
		return Ended, err
	}
	a, err := c.undo()
	if err != nil {
		return Ended, err
	}
	switch a.Kind {
	case ShiftAction:
		if c.cursor == 0 {
			tracer().Debugf("no choice left to revisit")
			return Ended, nil
		}
		return Reverse, nil
	case ReduceAction:
		if r, ok := p.matcher.findReduction(c.stack, a.Rule.Serial+1); ok {
			tracer().Debugf("trying rule %d instead of rule %d", r.Serial, a.Rule.Serial)
			if err := c.reduce(r); err != nil {
				return Ended, err
			}
			return Normal, nil
		}
		if c.cursor == len(c.input) {
			return Reverse, nil
		}
		tracer().Debugf("shifting instead of rule %d", a.Rule.Serial)
		c.shift()
		return Normal, nil
	}
	return Ended, c.violation("history entry %v of unknown kind", a)
}

// --- Configuration ---------------------------------------------------------

// configuration is the mutable state of a single parse: the parse stack, the
// history of actions and the input cursor.
//
// Invariant: the number of shift entries in the history equals cursor.
type configuration struct {
	input      []*lr.Symbol
	stack      []*lr.Symbol
	history    *history
	cursor     int
	steps      int
	backtracks int
	maxSteps   int
}

func newConfiguration(input []*lr.Symbol, maxSteps int) *configuration {
	return &configuration{
		input:    input,
		stack:    make([]*lr.Symbol, 0, 2*len(input)),
		history:  newHistory(),
		maxSteps: maxSteps,
	}
}

func (c *configuration) tick() error {
	c.steps++
	if c.maxSteps > 0 && c.steps > c.maxSteps {
		return fmt.Errorf("%w: %d steps, stack %v", ErrStepLimit, c.maxSteps, c.stack)
	}
	return nil
}

func (c *configuration) accepting(g *lr.Grammar) bool {
	return c.cursor == len(c.input) && len(c.stack) == 1 && c.stack[0] == g.Start()
}

func (c *configuration) shift() {
	A := c.input[c.cursor]
	tracer().Debugf("shift %v", A)
	c.stack = append(c.stack, A)
	c.history.push(shift(A))
	c.cursor++
}

func (c *configuration) reduce(r *lr.Rule) error {
	if !r.IsSuffixOf(c.stack) {
		return c.violation("rule %v does not match stack %v", r, c.stack)
	}
	tracer().Debugf("reduce %v", r)
	c.stack = append(c.stack[:len(c.stack)-r.Len()], r.LHS)
	c.history.push(reduce(r))
	return nil
}

// undo pops the most recent action from the history and reverts its effect
// on the stack and on the input cursor.
func (c *configuration) undo() (Action, error) {
	a, ok := c.history.pop()
	if !ok {
		return a, c.violation("history underflow")
	}
	if len(c.stack) == 0 {
		return a, c.violation("stack underflow while undoing %v", a)
	}
	top := c.stack[len(c.stack)-1]
	if top != a.Symbol {
		return a, c.violation("top of stack %v does not match %v", top, a)
	}
	c.stack = c.stack[:len(c.stack)-1]
	tracer().Debugf("undo %v", a)
	switch a.Kind {
	case ShiftAction:
		if c.cursor == 0 {
			return a, c.violation("undoing %v with input cursor at 0", a)
		}
		c.cursor--
	case ReduceAction:
		c.stack = append(c.stack, a.Rule.RHS()...)
	}
	return a, nil
}

func (c *configuration) violation(format string, args ...interface{}) error {
	return &InvariantError{Step: c.steps, Detail: fmt.Sprintf(format, args...)}
}
