package backtrack

import (
	"strconv"
	"strings"
)

// Derivation is a sequence of rule numbers, in the order the rules have been
// applied by a bottom-up parse. Rule numbers are 0-based, as in lr.Grammar.
type Derivation []int

// OneBased returns the derivation with rule numbers counting from 1.
func (d Derivation) OneBased() []int {
	r := make([]int, len(d))
	for i, n := range d {
		r[i] = n + 1
	}
	return r
}

// Format returns the rule numbers separated by blanks.
func (d Derivation) Format(oneBased bool) string {
	var b strings.Builder
	for i, n := range d {
		if i > 0 {
			b.WriteByte(' ')
		}
		if oneBased {
			n++
		}
		b.WriteString(strconv.Itoa(n))
	}
	return b.String()
}

func (d Derivation) String() string {
	return d.Format(false)
}

// derivationOf projects a chronological history onto its reductions.
func derivationOf(actions []Action) Derivation {
	d := make(Derivation, 0, len(actions))
	for _, a := range actions {
		if a.Kind == ReduceAction {
			d = append(d, a.Rule.Serial)
		}
	}
	return d
}
