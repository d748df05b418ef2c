package inspect

import (
	"fmt"
	"strconv"

	"github.com/signadot/go-inspect/ir"
)

// lazy expands a deferred collection with one count query plus at most
// one bounded fetch; it never materializes the full collection.  A
// failing backing store degrades the node to an error value rather
// than failing the inspection.
func (m *manager) lazy(path, name string, l Lazy, v any, id ir.ID, depth int) (*ir.Node, error) {
	node := &ir.Node{
		Kind:    ir.LazyKind,
		ID:      id,
		Title:   name,
		Type:    typeName(v),
		Prefix:  "[",
		Postfix: "]",
	}
	total, err := l.Count()
	if err != nil {
		node.Value = fmt.Sprintf("(error: %v)", err)
		return node, nil
	}
	node.Total = total

	childDepth := depth - 1
	if childDepth <= 0 {
		return node, nil
	}
	node.Children = []*ir.Node{}
	if total == 0 || m.maxItems == 0 {
		return node, nil
	}
	items, err := l.Take(m.maxItems)
	if err != nil {
		node.Children = nil
		node.Value = fmt.Sprintf("(error: %v)", err)
		return node, nil
	}
	for i, item := range items {
		if i >= m.maxItems {
			break
		}
		title := strconv.Itoa(i)
		child, cerr := m.classify(path+"."+title, title, item, childDepth)
		if cerr != nil {
			return nil, cerr
		}
		node.Children = append(node.Children, child)
	}
	return node, nil
}
