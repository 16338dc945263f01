package lr

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestBuilder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "backtrack.lr")
	defer teardown()
	//
	b := NewGrammarBuilder("G")
	b.Terminals("!", "+", "a").Nonterminals("A", "B").Start("A")
	b.LHS("A").T("!").N("B").T("!").End()
	b.LHS("B").T("a").End()
	r, err := b.AddRule("B", "a", "+", "B")
	if err != nil {
		t.Fatal(err)
	}
	if r.Serial != 2 || r.Len() != 3 || r.Last().Name != "B" {
		t.Errorf("unexpected rule %v", r)
	}
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	g.Dump()
	if g.Size() != 3 {
		t.Errorf("expected grammar to have 3 rules, has %d", g.Size())
	}
	if g.Start() != g.SymbolByName("A") {
		t.Errorf("expected start symbol to be A, is %v", g.Start())
	}
	if len(g.Terminals()) != 3 || len(g.Nonterminals()) != 2 {
		t.Errorf("alphabets have wrong size: %v / %v", g.Terminals(), g.Nonterminals())
	}
	if g.Rule(3) != nil || g.Rule(-1) != nil {
		t.Errorf("expected rules out of range to be nil")
	}
	if a, ok := g.Terminal("a"); !ok || !a.IsTerminal() {
		t.Errorf("expected 'a' to be a terminal")
	}
	if _, ok := g.Terminal("B"); ok {
		t.Errorf("expected 'B' not to be a terminal")
	}
	if g.Rule(0).String() != "0: [A] ::= [! B !]" {
		t.Errorf("unexpected rule string %q", g.Rule(0).String())
	}
}

func TestSymbolOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "backtrack.lr")
	defer teardown()
	//
	g, err := Declare("G", []string{"x", "y"}, []string{"S"}, "S").Grammar()
	if err != nil {
		t.Fatal(err)
	}
	names := g.EachSymbol(func(A *Symbol) interface{} {
		return A.Name
	})
	expected := []string{"x", "y", "S"}
	for i, n := range names {
		if n.(string) != expected[i] || g.SymbolByName(expected[i]).Value != i {
			t.Errorf("expected symbol #%d to be %s, is %v", i, expected[i], n)
		}
	}
}

func TestIsSuffixOf(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "backtrack.lr")
	defer teardown()
	//
	b := Declare("G", []string{"x", "y"}, []string{"S"}, "S")
	r := b.LHS("S").T("x").T("y").End()
	x, y := b.g.SymbolByName("x"), b.g.SymbolByName("y")
	if !r.IsSuffixOf([]*Symbol{y, x, y}) {
		t.Errorf("expected [x y] to be a suffix of [y x y]")
	}
	if r.IsSuffixOf([]*Symbol{x, y, x}) {
		t.Errorf("expected [x y] not to be a suffix of [x y x]")
	}
	if r.IsSuffixOf([]*Symbol{y}) {
		t.Errorf("expected [x y] not to be a suffix of [y]")
	}
}

func TestConfigurationErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "backtrack.lr")
	defer teardown()
	//
	tests := []struct {
		name  string
		build func(b *GrammarBuilder)
		kind  ErrorKind
	}{
		{"undeclared", func(b *GrammarBuilder) { b.LHS("S").T("z").End() }, UndeclaredSymbol},
		{"empty rhs", func(b *GrammarBuilder) { b.LHS("S").End() }, EmptyRHS},
		{"terminal lhs", func(b *GrammarBuilder) { b.LHS("x").T("x").End() }, NonterminalExpected},
		{"terminal expected", func(b *GrammarBuilder) { b.LHS("S").T("S").End() }, TerminalExpected},
		{"non-terminal expected", func(b *GrammarBuilder) { b.LHS("S").N("x").End() }, NonterminalExpected},
		{"overlap", func(b *GrammarBuilder) { b.Nonterminals("x") }, AlphabetOverlap},
		{"duplicate", func(b *GrammarBuilder) { b.Terminals("y") }, DuplicateSymbol},
		{"empty name", func(b *GrammarBuilder) { b.Terminals("") }, EmptyName},
		{"start", func(b *GrammarBuilder) { b.Start("x") }, StartUndeclared},
	}
	for _, test := range tests {
		b := Declare("G", []string{"x", "y"}, []string{"S"}, "S")
		test.build(b)
		_, err := b.Grammar()
		if err == nil {
			t.Errorf("%s: expected configuration error, got none", test.name)
			continue
		}
		if !errors.Is(err, ErrConfiguration) {
			t.Errorf("%s: expected error to be a configuration error: %v", test.name, err)
		}
		var cerr *ConfigurationError
		if !errors.As(err, &cerr) || cerr.Kind != test.kind {
			t.Errorf("%s: expected error kind %v, got %v", test.name, test.kind, err)
		}
	}
}

func TestStickyError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "backtrack.lr")
	defer teardown()
	//
	b := Declare("G", []string{"x"}, []string{"S"}, "S")
	if _, err := b.AddRule("S", "q"); err == nil {
		t.Errorf("expected AddRule to report undeclared symbol")
	}
	if r := b.LHS("S").T("x").End(); r != nil {
		t.Errorf("expected builder to refuse rules after an error")
	}
	var cerr *ConfigurationError
	if _, err := b.Grammar(); !errors.As(err, &cerr) || cerr.Symbol != "q" {
		t.Errorf("expected first error to be reported, got %v", err)
	}
}

func TestFrozen(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "backtrack.lr")
	defer teardown()
	//
	b := Declare("G", []string{"x"}, []string{"S"}, "S")
	b.LHS("S").T("x").End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	if _, err = b.AddRule("S", "x", "x"); !errors.Is(err, ErrGrammarFrozen) {
		t.Errorf("expected ErrGrammarFrozen, got %v", err)
	}
	if b.LHS("S").T("x").End() != nil || g.Size() != 1 {
		t.Errorf("expected frozen grammar to stay unchanged")
	}
	if !errors.Is(b.Err(), ErrGrammarFrozen) {
		t.Errorf("expected late rule to be reported as ErrGrammarFrozen, got %v", b.Err())
	}
	if _, err = b.Grammar(); err != nil {
		t.Errorf("expected repeated call to Grammar() to succeed, got %v", err)
	}
	b = Declare("G", []string{"x"}, []string{"S"}, "S")
	b.LHS("S").T("x").End()
	g, _ = b.Grammar()
	if b.Terminals("y"); !errors.Is(b.Err(), ErrGrammarFrozen) || g.SymbolByName("y") != nil {
		t.Errorf("expected late terminal to be reported as ErrGrammarFrozen, got %v", b.Err())
	}
}
