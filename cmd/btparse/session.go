package main

import (
	"fmt"
	"strings"

	"github.com/npillmayer/nondet"
	"github.com/npillmayer/nondet/lr"
	"github.com/npillmayer/nondet/lr/backtrack"
	"github.com/npillmayer/nondet/lr/grammarfile"
	"github.com/npillmayer/nondet/lr/scanner"
	"github.com/npillmayer/nondet/lr/sppf"
	"github.com/pterm/pterm"
)

// session bundles a grammar with a parser and a scanner for it.
type session struct {
	G        *lr.Grammar
	parser   *backtrack.Parser
	lexer    *scanner.LMAdapter
	bytype   map[nondet.TokType]*lr.Symbol
	oneBased bool
}

// loadSpec reads the grammar file given by flag --grammar, or returns the
// sample grammar.
func loadSpec(path string) (*grammarfile.Spec, error) {
	if path == "" {
		return grammarfile.ParseString("sample", grammarfile.SampleText)
	}
	return grammarfile.ParseFile(path)
}

func newSession(spec *grammarfile.Spec, maxSteps int, oneBased bool) (*session, error) {
	lexer, err := scanner.ForGrammar(spec.Grammar, spec.ScannerOptions()...)
	if err != nil {
		return nil, fmt.Errorf("cannot create scanner for grammar %s: %w", spec.Grammar.Name, err)
	}
	s := &session{
		G:        spec.Grammar,
		parser:   backtrack.NewParser(spec.Grammar, backtrack.MaxSteps(maxSteps)),
		lexer:    lexer,
		bytype:   make(map[nondet.TokType]*lr.Symbol),
		oneBased: oneBased,
	}
	for _, A := range spec.Grammar.Terminals() {
		s.bytype[A.TokenType()] = A
	}
	return s, nil
}

// outcome is the result of parsing a single input text.
type outcome struct {
	text   string
	tokens []nondet.Token
	result *backtrack.Result
	forest *sppf.Forest // nil for rejected input
}

func (s *session) parse(text string) (*outcome, error) {
	tokens, err := s.lexer.Tokenize(text)
	if err != nil {
		return nil, err
	}
	result, err := s.parser.AnalyzeTokens(tokens)
	if err != nil {
		return nil, err
	}
	o := &outcome{text: text, tokens: tokens, result: result}
	if result.Accepted {
		input := make([]*lr.Symbol, len(tokens))
		for i, tok := range tokens {
			input[i] = s.bytype[tok.TokType()]
		}
		if o.forest, err = sppf.FromDerivation(s.G, input, result.Derivation); err != nil {
			return nil, err
		}
	}
	return o, nil
}

func (s *session) report(o *outcome, withTree bool) {
	if !o.result.Accepted {
		pterm.Warning.Println(fmt.Sprintf("rejected  %s  (%d steps)", o.text, o.result.Steps))
		return
	}
	pterm.Success.Println(fmt.Sprintf("accepted  %s  derivation %s  (%d steps, %d backtracks)",
		o.text, o.result.Derivation.Format(s.oneBased), o.result.Steps, o.result.Backtracks))
	if withTree {
		s.renderTree(o)
	}
}

// --- Tree display ----------------------------------------------------------

// leveler collects the nodes of a parse tree as a pterm leveled list.
type leveler struct {
	ll       pterm.LeveledList
	tokens   []nondet.Token
	oneBased bool
}

func (l *leveler) EnterRule(sym *lr.Symbol, rhs []*sppf.RuleNode, ctxt sppf.RuleCtxt) bool {
	rule := ctxt.RuleIndex
	if l.oneBased {
		rule++
	}
	l.ll = append(l.ll, pterm.LeveledListItem{
		Level: ctxt.Level,
		Text:  fmt.Sprintf("%s  %s", sym.Name, pterm.FgGray.Sprint(fmt.Sprintf("rule %d", rule))),
	})
	return true
}

func (l *leveler) ExitRule(*lr.Symbol, []*sppf.RuleNode, sppf.RuleCtxt) interface{} {
	return nil
}

func (l *leveler) Terminal(sym *lr.Symbol, ctxt sppf.RuleCtxt) interface{} {
	text := sym.Name
	if pos := ctxt.Span.From(); pos < uint64(len(l.tokens)) {
		if lexeme := l.tokens[pos].Lexeme(); lexeme != sym.Name {
			text = fmt.Sprintf("%s %q", sym.Name, lexeme)
		}
	}
	l.ll = append(l.ll, pterm.LeveledListItem{Level: ctxt.Level, Text: text})
	return nil
}

func (s *session) renderTree(o *outcome) {
	l := &leveler{tokens: o.tokens, oneBased: s.oneBased}
	o.forest.TopDown(l)
	tracer().Debugf("tree has %d nodes", len(l.ll))
	root := pterm.NewTreeFromLeveledList(l.ll)
	pterm.DefaultTree.WithRoot(root).Render()
}

// --- Grammar display -------------------------------------------------------

func (s *session) printGrammar() {
	pterm.Info.Println(fmt.Sprintf("grammar %s, start symbol %s", s.G.Name, s.G.Start()))
	fmt.Printf("terminals:     %s\n", names(s.G.Terminals()))
	fmt.Printf("non-terminals: %s\n", names(s.G.Nonterminals()))
	s.G.EachRule(func(r *lr.Rule) {
		serial := r.Serial
		if s.oneBased {
			serial++
		}
		fmt.Printf("%4d  %s ➞ %s\n", serial, r.LHS.Name, names(r.RHS()))
	})
}

func names(syms []*lr.Symbol) string {
	n := make([]string, len(syms))
	for i, A := range syms {
		n[i] = A.Name
	}
	return strings.Join(n, " ")
}
