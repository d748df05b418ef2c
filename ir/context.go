package ir

// Context is the flat, render-engine-agnostic projection of a Node.
// It carries exactly the node's display fields plus InspectKind, a
// diagnostic tag naming the variant for troubleshooting the engine
// itself.  All recursion-control decisions were made while building
// the Node tree; projecting is a pure allocation-only transform.
type Context struct {
	Title   string `json:"title" yaml:"title"`
	ID      ID     `json:"id" yaml:"id"`
	Type    string `json:"type" yaml:"type"`
	Prefix  string `json:"prefix" yaml:"prefix"`
	Value   string `json:"value" yaml:"value"`
	Postfix string `json:"postfix" yaml:"postfix"`
	LinkTo  *ID    `json:"link_to" yaml:"link_to"`

	// TotalChildren is nil for leaf variants, mirroring the
	// Children nil/empty distinction on Node.
	TotalChildren *int `json:"total_children" yaml:"total_children"`

	InspectKind string `json:"inspect_kind" yaml:"inspect_kind"`

	Children []*Context `json:"children" yaml:"children"`
}

// Project flattens a Node tree into its render projection.
func Project(n *Node) *Context {
	ctx := &Context{
		Title:       n.Title,
		ID:          n.ID,
		Type:        n.Type,
		Prefix:      n.Prefix,
		Value:       n.Value,
		Postfix:     n.Postfix,
		LinkTo:      n.LinkTo,
		InspectKind: n.Kind.String(),
	}
	if !n.Kind.IsLeaf() {
		total := n.Total
		ctx.TotalChildren = &total
	}
	if n.Children != nil {
		ctx.Children = make([]*Context, 0, len(n.Children))
		for _, c := range n.Children {
			ctx.Children = append(ctx.Children, Project(c))
		}
	}
	return ctx
}
