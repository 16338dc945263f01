package backtrack

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/npillmayer/nondet"
	"github.com/npillmayer/nondet/lr"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// We use a small expression grammar, wrapped in exclamation marks:
//
//     1: A ➞ ! B !
//     2: B ➞ T
//     3: B ➞ T + B
//     4: T ➞ M
//     5: T ➞ M * T
//     6: M ➞ a
//     7: M ➞ b
//     8: M ➞ ( B )
//
// Rule numbers are 1-based in this comment, as in the expected derivations
// of the tests.
func makeGrammar(t *testing.T) *lr.Grammar {
	level := tracer().GetTraceLevel()
	tracer().SetTraceLevel(tracing.LevelInfo)
	defer tracer().SetTraceLevel(level)
	b := lr.NewGrammarBuilder("Wrapped-Expressions")
	b.Terminals("!", "+", "*", "(", ")", "a", "b")
	b.Nonterminals("A", "B", "T", "M")
	b.Start("A")
	b.LHS("A").T("!").N("B").T("!").End()
	b.LHS("B").N("T").End()
	b.LHS("B").N("T").T("+").N("B").End()
	b.LHS("T").N("M").End()
	b.LHS("T").N("M").T("*").N("T").End()
	b.LHS("M").T("a").End()
	b.LHS("M").T("b").End()
	b.LHS("M").T("(").N("B").T(")").End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	return g
}

// split splits an input string into single-character terminal names.
func split(input string) []string {
	return strings.Split(input, "")
}

var acceptedInputs = []struct {
	input      string
	derivation string // 1-based
}{
	{"!a!", "6 4 2 1"},
	{"!a+b!", "6 4 7 4 2 3 1"},
	{"!a*b!", "6 7 4 5 2 1"},
	{"!(a)!", "6 4 2 8 4 2 1"},
}

var rejectedInputs = []string{
	"!a+*b!", "a!b", "!!", "!a", "a", "!a+!", "!(a!", "!ab!",
}

// --- the Tests -------------------------------------------------------------

func TestAccept(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "backtrack.lr")
	defer teardown()
	//
	p := NewParser(makeGrammar(t))
	for _, x := range acceptedInputs {
		result, err := p.AnalyzeNames(split(x.input)...)
		if err != nil {
			t.Fatal(err)
		}
		if !result.Accepted {
			t.Errorf("valid input string not accepted: %q", x.input)
			continue
		}
		if d := result.Derivation.Format(true); d != x.derivation {
			t.Errorf("expected derivation for %q to be %s, is %s", x.input, x.derivation, d)
		}
	}
}

func TestReject(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "backtrack.lr")
	defer teardown()
	//
	p := NewParser(makeGrammar(t))
	for _, input := range rejectedInputs {
		result, err := p.AnalyzeNames(split(input)...)
		if err != nil {
			t.Errorf("rejection of %q should not be an error, is %v", input, err)
			continue
		}
		if result.Accepted {
			t.Errorf("invalid input string accepted: %q, derivation = %v", input, result.Derivation)
		}
		if result.Derivation != nil || result.History != nil {
			t.Errorf("expected no derivation for rejected input %q", input)
		}
	}
}

func TestNestedParens(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "backtrack.lr")
	defer teardown()
	//
	p := NewParser(makeGrammar(t))
	result, err := p.AnalyzeNames(split("!(a+b)*(b+a)!")...)
	if err != nil {
		t.Fatal(err)
	}
	if !result.Accepted {
		t.Fatalf("valid input string not accepted")
	}
	if len(result.Derivation) != 18 {
		t.Errorf("expected derivation of length 18, is %d: %v", len(result.Derivation), result.Derivation)
	}
	if result.Derivation[len(result.Derivation)-1] != 0 {
		t.Errorf("expected derivation to end with start rule, is %v", result.Derivation)
	}
	if result.Backtracks == 0 {
		t.Errorf("expected parser to backtrack for this input")
	}
}

func TestDeterminism(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "backtrack.lr")
	defer teardown()
	//
	p := NewParser(makeGrammar(t))
	first, err := p.AnalyzeNames(split("!(a+b)*(b+a)!")...)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		result, err := p.AnalyzeNames(split("!(a+b)*(b+a)!")...)
		if err != nil {
			t.Fatal(err)
		}
		if result.Derivation.String() != first.Derivation.String() || result.Steps != first.Steps {
			t.Errorf("run #%d differs from first run: %v / %v", i, result.Derivation, first.Derivation)
		}
	}
}

func TestConcurrentAnalyze(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "backtrack.lr")
	defer teardown()
	//
	tracer().SetTraceLevel(tracing.LevelError)
	p := NewParser(makeGrammar(t))
	var wg sync.WaitGroup
	results := make([]string, 2*len(acceptedInputs))
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			x := acceptedInputs[i%len(acceptedInputs)]
			if result, err := p.AnalyzeNames(split(x.input)...); err == nil && result.Accepted {
				results[i] = result.Derivation.Format(true)
			}
		}(i)
	}
	wg.Wait()
	for i, d := range results {
		if x := acceptedInputs[i%len(acceptedInputs)]; d != x.derivation {
			t.Errorf("concurrent run #%d: expected %s, got %q", i, x.derivation, d)
		}
	}
}

func TestHistory(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "backtrack.lr")
	defer teardown()
	//
	p := NewParser(makeGrammar(t))
	result, err := p.AnalyzeNames(split("!a+b!")...)
	if err != nil || !result.Accepted {
		t.Fatalf("valid input not accepted: %v", err)
	}
	shifts := 0
	for _, a := range result.History {
		if a.Kind == ShiftAction {
			shifts++
		}
	}
	if shifts != 5 {
		t.Errorf("expected 5 shifts in history, have %d", shifts)
	}
	if len(result.History) != shifts+len(result.Derivation) {
		t.Errorf("history has %d entries, expected %d", len(result.History), shifts+len(result.Derivation))
	}
	p = NewParser(makeGrammar(t), KeepHistory(false))
	result, _ = p.AnalyzeNames(split("!a+b!")...)
	if result.History != nil || len(result.Derivation) != 7 {
		t.Errorf("expected no history, but a derivation")
	}
}

// Rules with identical right-hand sides: the earlier rule has to win.
//
//     0: S ➞ X
//     1: X ➞ x
//     2: Y ➞ x
//     3: S ➞ Y
func TestTieBreak(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "backtrack.lr")
	defer teardown()
	//
	b := lr.Declare("Ties", []string{"x"}, []string{"S", "X", "Y"}, "S")
	b.LHS("S").N("X").End()
	b.LHS("X").T("x").End()
	b.LHS("Y").T("x").End()
	b.LHS("S").N("Y").End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	result, err := NewParser(g).AnalyzeNames("x")
	if err != nil || !result.Accepted {
		t.Fatalf("input not accepted: %v", err)
	}
	if result.Derivation.String() != "1 0" {
		t.Errorf("expected derivation 1 0, is %v", result.Derivation)
	}
	// now the other way round: Y ➞ x comes first
	b = lr.Declare("Ties", []string{"x"}, []string{"S", "X", "Y"}, "S")
	b.LHS("S").N("X").End()
	b.LHS("Y").T("x").End()
	b.LHS("X").T("x").End()
	b.LHS("S").N("Y").End()
	g, _ = b.Grammar()
	result, err = NewParser(g).AnalyzeNames("x")
	if err != nil || !result.Accepted {
		t.Fatalf("input not accepted: %v", err)
	}
	if result.Derivation.String() != "1 3" {
		t.Errorf("expected derivation 1 3, is %v", result.Derivation)
	}
}

// Left recursion is fine as long as there is no reduction cycle.
//
//     0: S ➞ a
//     1: S ➞ S + a
func TestLeftRecursion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "backtrack.lr")
	defer teardown()
	//
	b := lr.Declare("Sums", []string{"a", "+"}, []string{"S"}, "S")
	b.LHS("S").T("a").End()
	b.LHS("S").N("S").T("+").T("a").End()
	g, _ := b.Grammar()
	result, err := NewParser(g).AnalyzeNames("a", "+", "a", "+", "a")
	if err != nil {
		t.Fatal(err)
	}
	if !result.Accepted || result.Derivation.String() != "0 1 1" {
		t.Errorf("expected derivation 0 1 1, have %v", result.Derivation)
	}
}

func TestEmptyInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "backtrack.lr")
	defer teardown()
	//
	result, err := NewParser(makeGrammar(t)).Analyze(nil)
	if err != nil || result.Accepted {
		t.Errorf("expected empty input to be rejected without error")
	}
}

func TestInputErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "backtrack.lr")
	defer teardown()
	//
	g := makeGrammar(t)
	p := NewParser(g)
	_, err := p.AnalyzeNames("!", "x", "!")
	var ierr *InputError
	if !errors.As(err, &ierr) || ierr.Position != 1 || !errors.Is(err, ErrNotTerminal) {
		t.Errorf("expected input error at position 1, got %v", err)
	}
	_, err = p.Analyze([]*lr.Symbol{g.SymbolByName("!"), g.SymbolByName("B")})
	if !errors.Is(err, ErrNotTerminal) {
		t.Errorf("expected non-terminal in input to be an error, got %v", err)
	}
	other := makeGrammar(t) // same names, different symbols
	_, err = p.Analyze([]*lr.Symbol{other.SymbolByName("a")})
	if !errors.Is(err, ErrNotTerminal) {
		t.Errorf("expected foreign terminal in input to be an error, got %v", err)
	}
	if _, err = NewParser(nil).AnalyzeNames("a"); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("expected parser without grammar to report ErrNotInitialized, got %v", err)
	}
	var zero Parser
	if _, err = zero.Analyze(nil); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("expected zero parser to report ErrNotInitialized, got %v", err)
	}
}

func TestParserGrammar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "backtrack.lr")
	defer teardown()
	//
	g := makeGrammar(t)
	if p := NewParser(g); p.Grammar() != g {
		t.Errorf("expected parser to return the grammar it was created for")
	}
	if p := NewParser(nil); p.Grammar() != nil {
		t.Errorf("expected parser without grammar to return nil")
	}
}

// A reduction cycle S ➞ A ➞ S makes the parser loop.
func TestStepLimit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "backtrack.lr")
	defer teardown()
	//
	tracer().SetTraceLevel(tracing.LevelError)
	b := lr.Declare("Cycle", []string{"a"}, []string{"S", "A"}, "S")
	b.LHS("S").T("a").End()
	b.LHS("A").N("S").End()
	b.LHS("S").N("A").End()
	g, _ := b.Grammar()
	_, err := NewParser(g, MaxSteps(500)).AnalyzeNames("a")
	if !errors.Is(err, ErrStepLimit) {
		t.Errorf("expected step limit to be exceeded, got %v", err)
	}
	if errors.Is(err, ErrInvariant) {
		t.Errorf("step limit must not be reported as invariant violation")
	}
}

type testToken struct {
	typ    nondet.TokType
	lexeme string
}

func (t testToken) TokType() nondet.TokType { return t.typ }
func (t testToken) Lexeme() string          { return t.lexeme }
func (t testToken) Span() nondet.Span       { return nondet.Span{} }

func TestAnalyzeTokens(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "backtrack.lr")
	defer teardown()
	//
	g := makeGrammar(t)
	var tokens []nondet.Token
	for _, name := range split("!a*b!") {
		A, _ := g.Terminal(name)
		tokens = append(tokens, testToken{A.TokenType(), name})
	}
	result, err := NewParser(g).AnalyzeTokens(tokens)
	if err != nil || !result.Accepted {
		t.Fatalf("expected tokens to be accepted: %v", err)
	}
	tokens = append(tokens, testToken{g.SymbolByName("B").TokenType(), "B"})
	if _, err = NewParser(g).AnalyzeTokens(tokens); !errors.Is(err, ErrNotTerminal) {
		t.Errorf("expected token of non-terminal type to be an error, got %v", err)
	}
}
