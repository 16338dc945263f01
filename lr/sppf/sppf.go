/*
Package sppf implements a "Shared Packed Parse Forest" for derivations.

A packed parse forest re-uses existing parse tree nodes between different
parse trees. A derivation reported by a parser of this module describes
exactly one parse, so a forest built from it degrades to a single tree.
Nodes are nevertheless identified by a signature of their symbol, their
span and the rule which produced them, so that forests built by clients from
more than one derivation share identical sub-trees.

Replaying Derivations

FromDerivation replays a bottom-up derivation against the input it was
found for. Bottom-up parsers produce a rightmost derivation in reverse:
starting with the start symbol and applying the rules of the derivation from
last to first, every rule has to expand the rightmost non-terminal of the
current sentential form, and the final sentential form has to equal the
input. If replay succeeds, the resulting tree is returned; otherwise an
error wrapping ErrDerivation tells where the derivation went astray.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sppf

import (
	"errors"
	"fmt"

	"github.com/cnf/structhash"
	"github.com/npillmayer/nondet"
	"github.com/npillmayer/nondet/lr"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'backtrack.lr'.
func tracer() tracing.Trace {
	return tracing.Select("backtrack.lr")
}

// ErrDerivation is reported for derivations which do not reproduce their input.
var ErrDerivation = errors.New("derivation does not reproduce input")

// SymbolNode is a node of the forest: an occurence of a grammar symbol,
// covering a span of input positions. For terminals, Rule is -1.
type SymbolNode struct {
	Symbol   *lr.Symbol
	Extent   nondet.Span
	Rule     int
	Children []*SymbolNode
	sig      string
}

func (sn *SymbolNode) String() string {
	return fmt.Sprintf("%s%s", sn.Symbol, sn.Extent)
}

// IsTerminal is true for leaf nodes.
func (sn *SymbolNode) IsTerminal() bool {
	return sn.Symbol.IsTerminal()
}

// Forest is a parse forest. Create one with NewForest or FromDerivation.
type Forest struct {
	root  *SymbolNode
	nodes map[string]*SymbolNode // nodes by signature
}

// NewForest creates an empty parse forest.
func NewForest() *Forest {
	return &Forest{nodes: make(map[string]*SymbolNode)}
}

// Root returns the root node of a parse forest, which is the node added last.
func (f *Forest) Root() *SymbolNode {
	if f == nil {
		return nil
	}
	return f.root
}

// Size returns the number of distinct nodes in the forest.
func (f *Forest) Size() int {
	return len(f.nodes)
}

// AddTerminal adds a leaf node for a terminal at input position pos.
func (f *Forest) AddTerminal(A *lr.Symbol, pos uint64) *SymbolNode {
	return f.add(&SymbolNode{
		Symbol: A,
		Extent: nondet.Span{pos, pos + 1},
		Rule:   -1,
	})
}

// AddReduction adds a node for the left-hand side of a rule, with children
// nodes for the right-hand side. If an identical node is already part of the
// forest, the existing node is returned.
func (f *Forest) AddReduction(r *lr.Rule, children []*SymbolNode) (*SymbolNode, error) {
	if len(children) != r.Len() {
		return nil, fmt.Errorf("%w: rule %v has %d children, expected %d", ErrDerivation,
			r, len(children), r.Len())
	}
	var extent nondet.Span
	for i, child := range children {
		if child.Symbol != r.RHS()[i] {
			return nil, fmt.Errorf("%w: child #%d of rule %v is %v", ErrDerivation, i, r, child)
		}
		extent = extent.Extend(child.Extent)
	}
	return f.add(&SymbolNode{
		Symbol:   r.LHS,
		Extent:   extent,
		Rule:     r.Serial,
		Children: children,
	}), nil
}

// nodeKey is the hashed content of a node signature.
type nodeKey struct {
	Symbol   int
	From, To uint64
	Rule     int
	Children []string
}

func (f *Forest) add(node *SymbolNode) *SymbolNode {
	key := nodeKey{
		Symbol: node.Symbol.Value,
		From:   node.Extent.From(),
		To:     node.Extent.To(),
		Rule:   node.Rule,
	}
	for _, child := range node.Children {
		key.Children = append(key.Children, child.sig)
	}
	sig, err := structhash.Hash(key, 1)
	if err != nil { // cannot happen for plain structs
		panic(fmt.Sprintf("sppf: cannot create node signature: %v", err))
	}
	if existing, ok := f.nodes[sig]; ok {
		tracer().Debugf("sharing node %v", existing)
		f.root = existing
		return existing
	}
	node.sig = sig
	f.nodes[sig] = node
	f.root = node
	return node
}

// --- Derivation replay -----------------------------------------------------

// pnode is a provisional node used while expanding a derivation top-down.
type pnode struct {
	sym      *lr.Symbol
	rule     *lr.Rule
	children []*pnode
}

// FromDerivation replays a bottom-up derivation (rule numbers in order of
// reduction) for an input and builds the corresponding parse tree.
func FromDerivation(g *lr.Grammar, input []*lr.Symbol, derivation []int) (*Forest, error) {
	if len(derivation) == 0 {
		return nil, fmt.Errorf("%w: empty derivation", ErrDerivation)
	}
	root := &pnode{sym: g.Start()}
	form := []*pnode{root}
	for i := len(derivation) - 1; i >= 0; i-- {
		r := g.Rule(derivation[i])
		if r == nil {
			return nil, fmt.Errorf("%w: no rule %d in grammar %s", ErrDerivation, derivation[i], g.Name)
		}
		k := rightmostNonterminal(form)
		if k < 0 {
			return nil, fmt.Errorf("%w: no non-terminal left for rule %v", ErrDerivation, r)
		}
		if form[k].sym != r.LHS {
			return nil, fmt.Errorf("%w: rule %v cannot expand %v", ErrDerivation, r, form[k].sym)
		}
		form[k].rule = r
		expansion := make([]*pnode, r.Len())
		for j, A := range r.RHS() {
			expansion[j] = &pnode{sym: A}
		}
		form[k].children = expansion
		form = append(form[:k], append(expansion, form[k+1:]...)...)
	}
	if k := rightmostNonterminal(form); k >= 0 {
		return nil, fmt.Errorf("%w: non-terminal %v not expanded", ErrDerivation, form[k].sym)
	}
	if len(form) != len(input) {
		return nil, fmt.Errorf("%w: derivation yields %d terminals, input has %d", ErrDerivation,
			len(form), len(input))
	}
	for i, n := range form {
		if n.sym != input[i] {
			return nil, fmt.Errorf("%w: derivation yields %v at position %d, input has %v",
				ErrDerivation, n.sym, i, input[i])
		}
	}
	f := NewForest()
	var pos uint64
	if _, err := f.build(root, &pos); err != nil {
		return nil, err
	}
	tracer().Debugf("derivation replayed, forest has %d nodes", f.Size())
	return f, nil
}

func rightmostNonterminal(form []*pnode) int {
	for k := len(form) - 1; k >= 0; k-- {
		if !form[k].sym.IsTerminal() {
			return k
		}
	}
	return -1
}

// build adds nodes bottom-up, numbering terminals from left to right.
func (f *Forest) build(n *pnode, pos *uint64) (*SymbolNode, error) {
	if n.sym.IsTerminal() {
		leaf := f.AddTerminal(n.sym, *pos)
		*pos++
		return leaf, nil
	}
	children := make([]*SymbolNode, len(n.children))
	for i, c := range n.children {
		child, err := f.build(c, pos)
		if err != nil {
			return nil, err
		}
		children[i] = child
	}
	return f.AddReduction(n.rule, children)
}
