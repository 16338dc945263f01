package backtrack

import (
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/nondet/lr"
)

// matcher finds rules to reduce. For every symbol it keeps the rules whose
// right-hand side ends with that symbol, ordered by rule number.
type matcher struct {
	byLast map[*lr.Symbol]*treemap.Map // rule serial ➞ *lr.Rule
}

func newMatcher(g *lr.Grammar) *matcher {
	m := &matcher{byLast: make(map[*lr.Symbol]*treemap.Map)}
	g.EachRule(func(r *lr.Rule) {
		rules, ok := m.byLast[r.Last()]
		if !ok {
			rules = treemap.NewWith(utils.IntComparator)
			m.byLast[r.Last()] = rules
		}
		rules.Put(r.Serial, r)
	})
	return m
}

// findReduction returns the lowest-numbered rule with serial ≥ from, whose
// right-hand side is a suffix of stack.
func (m *matcher) findReduction(stack []*lr.Symbol, from int) (*lr.Rule, bool) {
	if len(stack) == 0 {
		return nil, false
	}
	rules, ok := m.byLast[stack[len(stack)-1]]
	if !ok {
		return nil, false
	}
	k, v := rules.Ceiling(from)
	for k != nil {
		r := v.(*lr.Rule)
		if r.IsSuffixOf(stack) {
			return r, true
		}
		k, v = rules.Ceiling(k.(int) + 1)
	}
	return nil, false
}
