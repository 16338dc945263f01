package backtrack

import (
	"errors"
	"fmt"
)

// Error categories of the parser. Rejected input is not an error; it is
// reported with Result.Accepted == false.
var (
	ErrNotTerminal = errors.New("not a terminal of the grammar")
	ErrInvariant   = errors.New("parser invariant violated")
	ErrStepLimit   = errors.New("step limit exceeded")

	// ErrNotInitialized is returned by parsers not created with NewParser
	// or created without a grammar.
	ErrNotInitialized = errors.New("backtracking parser not initialized")
)

// InputError reports an input symbol which is not a terminal of the grammar
// the parser has been created for.
type InputError struct {
	Position int
	Symbol   string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("input symbol #%d %q: %s", e.Position, e.Symbol, ErrNotTerminal)
}

// Unwrap lets errors.Is(err, ErrNotTerminal) succeed.
func (e *InputError) Unwrap() error {
	return ErrNotTerminal
}

// InvariantError signals a defect in the parser or a grammar the parser
// cannot cope with. It is never a statement about the input.
type InvariantError struct {
	Step   int
	Detail string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("%s at step %d: %s", ErrInvariant, e.Step, e.Detail)
}

// Unwrap lets errors.Is(err, ErrInvariant) succeed.
func (e *InvariantError) Unwrap() error {
	return ErrInvariant
}
