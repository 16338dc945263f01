package backtrack

import (
	"fmt"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/nondet/lr"
)

// ActionKind tags the entries of a parse history.
type ActionKind int8

// A parse history consists of shifts and reductions.
const (
	ShiftAction ActionKind = iota + 1
	ReduceAction
)

// Action is an entry of a parse history. Every mutation of the parse stack
// is recorded as an action. For shifts, Symbol is the terminal shifted; for
// reductions, Rule is the rule applied.
type Action struct {
	Kind   ActionKind
	Symbol *lr.Symbol
	Rule   *lr.Rule
}

func shift(A *lr.Symbol) Action {
	return Action{Kind: ShiftAction, Symbol: A}
}

func reduce(r *lr.Rule) Action {
	return Action{Kind: ReduceAction, Symbol: r.LHS, Rule: r}
}

func (a Action) String() string {
	switch a.Kind {
	case ShiftAction:
		return fmt.Sprintf("<shift %s>", a.Symbol)
	case ReduceAction:
		return fmt.Sprintf("<reduce %d>", a.Rule.Serial)
	}
	return "<none>"
}

// history is the chronological log of stack mutations.
type history struct {
	log *arraylist.List
}

func newHistory() *history {
	return &history{log: arraylist.New()}
}

func (h *history) push(a Action) {
	h.log.Add(a)
}

func (h *history) pop() (Action, bool) {
	n := h.log.Size()
	if n == 0 {
		return Action{}, false
	}
	a, _ := h.log.Get(n - 1)
	h.log.Remove(n - 1)
	return a.(Action), true
}

func (h *history) size() int {
	return h.log.Size()
}

// actions returns the history entries in chronological order.
func (h *history) actions() []Action {
	r := make([]Action, 0, h.log.Size())
	it := h.log.Iterator()
	for it.Next() {
		r = append(r, it.Value().(Action))
	}
	return r
}
