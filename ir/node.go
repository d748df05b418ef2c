package ir

// ID is an opaque identity handle for an inspected object.  It is
// derived from the object's address when one exists and synthesized
// otherwise, so it distinguishes "the same object" from "an
// equal-looking object".  IDs are only meaningful within the traversal
// that produced them.
type ID uint64

// Node is one classified value in an inspection tree.
//
// Children is nil for leaf kinds and for container kinds that were not
// expanded (depth budget exhausted).  An expanded container with zero
// entries has a non-nil empty Children slice; renderers must keep the
// two states apart.
type Node struct {
	Kind  Kind
	ID    ID
	Title string
	Type  string

	Value           string
	Prefix, Postfix string

	// Total is the true child count of a container, independent of
	// how many children were expanded under the breadth budget.
	// It is zero for leaf kinds.
	Total int

	// LinkTo is set only on Duplicate nodes and names the ID under
	// which the object was first shown.
	LinkTo *ID

	Children []*Node
}

// Expanded reports whether the node's children were materialized.
// False for leaves and for containers cut off by the depth budget.
func (n *Node) Expanded() bool {
	return n.Children != nil
}

// Truncated reports whether the breadth budget dropped entries.
func (n *Node) Truncated() bool {
	return n.Children != nil && len(n.Children) < n.Total
}

// Walk visits n and every expanded descendant in depth-first order.
// The walk stops early if f returns false.
func (n *Node) Walk(f func(*Node) bool) bool {
	if !f(n) {
		return false
	}
	for _, c := range n.Children {
		if !c.Walk(f) {
			return false
		}
	}
	return true
}

// Depth returns the number of generations of expanded children below n.
func (n *Node) Depth() int {
	max := 0
	for _, c := range n.Children {
		if d := c.Depth() + 1; d > max {
			max = d
		}
	}
	return max
}
