/*
Package grammarfile reads grammars from a small line-oriented text format.

A grammar file lists declarations and rules, one per line:

    # an expression grammar
    %name         Wrapped-Expressions
    %terminals    ! + * ( ) a b
    %nonterminals A B T M
    %start        A
    A -> ! B !
    B -> T
    B -> T + B

Symbols are separated by whitespace. Rules are numbered in the order they
appear in the file, starting with 0, which is the order a backtracking parser
tries them. Lines starting with '#' are comments.

A terminal may be given a regular expression for scanning input text:

    %pattern num [0-9]+

Without a pattern, a terminal matches its name literally. The regular
expression extends to the end of the line and may contain blanks.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package grammarfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/nondet/lr"
	"github.com/npillmayer/nondet/lr/scanner"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'backtrack.lr'.
func tracer() tracing.Trace {
	return tracing.Select("backtrack.lr")
}

// ErrSyntax is the error category for malformed grammar files.
var ErrSyntax = errors.New("syntax error")

// SpecError is an error in a grammar file. Cause is either ErrSyntax or a
// configuration error of package lr.
type SpecError struct {
	Cause      error
	SourceName string
	Row        int
}

func (e *SpecError) Error() string {
	var b strings.Builder
	if e.SourceName != "" {
		fmt.Fprintf(&b, "%v: ", e.SourceName)
	}
	if e.Row != 0 {
		fmt.Fprintf(&b, "%v: ", e.Row)
	}
	fmt.Fprintf(&b, "error: %v", e.Cause)
	return b.String()
}

func (e *SpecError) Unwrap() error {
	return e.Cause
}

// Spec is the content of a grammar file.
type Spec struct {
	Grammar  *lr.Grammar
	Patterns map[string]string // regular expressions for terminals, by name
}

// ScannerOptions returns scanner options for the patterns of a spec.
func (spec *Spec) ScannerOptions() []scanner.Option {
	opts := make([]scanner.Option, 0, len(spec.Patterns))
	for name, regex := range spec.Patterns {
		opts = append(opts, scanner.Pattern(name, regex))
	}
	return opts
}

// Parse reads a grammar file. sourceName is used for error messages and as
// the default name of the grammar.
func Parse(sourceName string, r io.Reader) (*Spec, error) {
	p := &parser{
		source:   sourceName,
		name:     sourceName,
		patterns: make(map[string]string),
	}
	lines := bufio.NewScanner(r)
	for lines.Scan() {
		p.row++
		if err := p.line(lines.Text()); err != nil {
			return nil, err
		}
	}
	if err := lines.Err(); err != nil {
		return nil, err
	}
	if p.b == nil {
		p.row = 0
		return nil, p.syntaxError("no rules found")
	}
	g, err := p.b.Grammar()
	if err != nil {
		p.row = 0
		return nil, p.errorf(err)
	}
	tracer().Debugf("grammar %s read from %s, %d rules", g.Name, sourceName, g.Size())
	return &Spec{Grammar: g, Patterns: p.patterns}, nil
}

// ParseString reads a grammar from a string.
func ParseString(sourceName string, text string) (*Spec, error) {
	return Parse(sourceName, strings.NewReader(text))
}

// ParseFile reads a grammar from a file.
func ParseFile(path string) (*Spec, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(path, f)
}

// --- Line parser -----------------------------------------------------------

type parser struct {
	source       string
	row          int
	name         string
	terminals    []string
	nonterminals []string
	start        string
	patterns     map[string]string
	b            *lr.GrammarBuilder // created with the first rule
}

func (p *parser) line(text string) error {
	fields := strings.Fields(text)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return nil
	}
	if fields[0] == "%pattern" {
		return p.pattern(strings.TrimSpace(text)[len("%pattern"):])
	}
	if strings.HasPrefix(fields[0], "%") {
		return p.directive(fields[0], fields[1:])
	}
	return p.rule(fields)
}

func (p *parser) directive(d string, args []string) error {
	if p.b != nil {
		return p.syntaxError("declaration %s after first rule", d)
	}
	switch d {
	case "%name":
		if len(args) != 1 {
			return p.syntaxError("%%name expects one argument")
		}
		p.name = args[0]
	case "%terminals":
		p.terminals = append(p.terminals, args...)
	case "%nonterminals":
		p.nonterminals = append(p.nonterminals, args...)
	case "%start":
		if len(args) != 1 {
			return p.syntaxError("%%start expects one argument")
		}
		p.start = args[0]
	default:
		return p.syntaxError("unknown declaration %s", d)
	}
	return nil
}

// pattern reads the arguments of a %pattern line. The regular expression is
// the rest of the line after the terminal name and may contain blanks.
func (p *parser) pattern(args string) error {
	if p.b != nil {
		return p.syntaxError("declaration %%pattern after first rule")
	}
	args = strings.TrimSpace(args)
	fields := strings.Fields(args)
	if len(fields) < 2 {
		return p.syntaxError("%%pattern expects a terminal and a regular expression")
	}
	p.patterns[fields[0]] = strings.TrimSpace(args[len(fields[0]):])
	return nil
}

func (p *parser) rule(fields []string) error {
	if len(fields) < 2 || fields[1] != "->" {
		return p.syntaxError("expected rule 'LHS -> RHS', have %q", strings.Join(fields, " "))
	}
	if p.b == nil {
		p.b = lr.Declare(p.name, p.terminals, p.nonterminals, p.start)
		if err := p.b.Err(); err != nil {
			return p.errorf(err)
		}
		for name := range p.patterns {
			if !contains(p.terminals, name) {
				return p.syntaxError("pattern for undeclared terminal %s", name)
			}
		}
	}
	if _, err := p.b.AddRule(fields[0], fields[2:]...); err != nil {
		return p.errorf(err)
	}
	return nil
}

func (p *parser) syntaxError(format string, args ...interface{}) error {
	return p.errorf(fmt.Errorf("%w: %s", ErrSyntax, fmt.Sprintf(format, args...)))
}

func (p *parser) errorf(cause error) error {
	return &SpecError{Cause: cause, SourceName: p.source, Row: p.row}
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
