package sppf

import (
	"github.com/npillmayer/nondet"
	"github.com/npillmayer/nondet/lr"
)

// RuleNode represents a node occuring during a parse tree walk.
type RuleNode struct {
	symbol *SymbolNode
	Value  interface{} // user-defined value of a node
}

// Symbol returns the grammar symbol a RuleNode refers to.
// It is either a terminal or the LHS of a reduced rule.
func (rnode *RuleNode) Symbol() *lr.Symbol {
	return rnode.symbol.Symbol
}

// Span returns the span of input symbols this rule covers.
func (rnode *RuleNode) Span() nondet.Span {
	return rnode.symbol.Extent
}

// Listener is a type for walking a parse tree.
//
// EnterRule returns a boolean value indicating if the traversal should continue to
// the children of this node. ExitRule and Terminal may return user-defined values
// to be propagated upwards of the tree. Values of children nodes are available
// to ExitRule as RuleNode.Value.
type Listener interface {
	EnterRule(*lr.Symbol, []*RuleNode, RuleCtxt) bool
	ExitRule(*lr.Symbol, []*RuleNode, RuleCtxt) interface{}
	Terminal(*lr.Symbol, RuleCtxt) interface{}
}

// RuleCtxt is a context structure for Listeners.
type RuleCtxt struct {
	Span      nondet.Span // span of input symbols covered by this rule
	Level     int         // nesting level
	RuleIndex int         // -1 for terminals
}

// TopDown traverses the forest from its root, left to right, calling listener
// methods for every node. It returns the value of the root node.
func (f *Forest) TopDown(listener Listener) interface{} {
	if f.Root() == nil {
		return nil
	}
	return walk(f.root, listener, 0)
}

func walk(node *SymbolNode, listener Listener, level int) interface{} {
	ctxt := RuleCtxt{Span: node.Extent, Level: level, RuleIndex: node.Rule}
	if node.IsTerminal() {
		return listener.Terminal(node.Symbol, ctxt)
	}
	rhs := make([]*RuleNode, len(node.Children))
	for i, child := range node.Children {
		rhs[i] = &RuleNode{symbol: child}
	}
	tracer().Debugf(">>> %s", node)
	if listener.EnterRule(node.Symbol, rhs, ctxt) {
		for i, child := range node.Children {
			rhs[i].Value = walk(child, listener, level+1)
		}
	}
	value := listener.ExitRule(node.Symbol, rhs, ctxt)
	tracer().Debugf("<<< %s", node)
	return value
}
