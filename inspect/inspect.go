package inspect

import (
	"reflect"

	"github.com/signadot/go-inspect/debug"
	"github.com/signadot/go-inspect/ir"
)

// Inspect classifies v and its reachable structure into a display
// tree.  The traversal is read-only with respect to v; the only side
// effect is a bounded fetch against Lazy collections.  Each call owns
// a private visited set, so the returned tree is self-contained and
// the call is safe to repeat, but a single call must not be shared
// across goroutines.
func Inspect(name string, v any, opts ...Option) (*ir.Node, error) {
	o := &options{maxDepth: DefaultMaxDepth, maxItems: DefaultMaxItems}
	for _, opt := range opts {
		opt(o)
	}
	if o.maxDepth < 0 {
		return nil, &InspectError{FieldPath: name, Message: "max depth must be non-negative"}
	}
	if o.maxItems < 0 {
		return nil, &InspectError{FieldPath: name, Message: "max items must be non-negative"}
	}
	m := &manager{
		maxItems: o.maxItems,
		filter:   o.filter,
		visited:  newVisited(),
	}
	// Depth counts generations of children, so classifying the root
	// itself consumes no budget.
	return m.classify(name, name, v, o.maxDepth+1)
}

type manager struct {
	maxItems int
	filter   FilterFunc
	visited  *visited
}

// classify maps v to exactly one variant, first match wins.  depth is
// the remaining budget including the node under classification;
// children are classified with depth-1 and only when that leaves room.
func (m *manager) classify(path, name string, v any, depth int) (*ir.Node, error) {
	if depth <= 0 {
		return nil, &InspectError{
			FieldPath: path,
			Message:   "classification driven with no remaining depth",
			Err:       ErrInternal,
		}
	}
	if isScalar(v) {
		return m.scalar(name, v), nil
	}
	rv := reflect.ValueOf(v)
	if isNilish(rv) {
		return m.scalar(name, nil), nil
	}

	// Non-scalars register before their children are classified so a
	// self-referencing child resolves to a Duplicate.
	id, seen := m.visited.identify(rv)
	if seen {
		if debug.Visited() {
			debug.Logf("inspect: %s already seen (#%x)\n", path, uint64(id))
		}
		return m.duplicate(name, v, id), nil
	}

	// pointers classify by what they point at; identity stays with
	// the pointer itself
	shape := rv
	for shape.Kind() == reflect.Pointer && !shape.IsNil() {
		shape = shape.Elem()
	}

	var (
		node *ir.Node
		err  error
	)
	switch {
	case shape.Kind() == reflect.Func:
		node = m.method(name, shape, id)
	case isPartial(v):
		node = m.partial(name, asPartial(v), id)
	case shape.Kind() == reflect.Map:
		node, err = m.mapping(path, name, shape, v, id, depth)
	case shape.Kind() == reflect.Slice || shape.Kind() == reflect.Array:
		node, err = m.sequence(path, name, shape, v, id, depth)
	case isLazy(v):
		node, err = m.lazy(path, name, v.(Lazy), v, id, depth)
	default:
		node, err = m.composite(path, name, rv, v, id, depth)
	}
	if err != nil {
		return nil, err
	}
	if debug.Classify() {
		debug.Logf("inspect: classify %s as %s\n", path, node.Kind)
	}
	return node, nil
}

func (m *manager) duplicate(name string, v any, id ir.ID) *ir.Node {
	link := id
	return &ir.Node{
		Kind:   ir.DuplicateKind,
		ID:     id,
		Title:  name,
		Type:   typeName(v),
		Value:  "(duplicated)",
		LinkTo: &link,
	}
}

func isLazy(v any) bool {
	_, ok := v.(Lazy)
	return ok
}

func isNilish(rv reflect.Value) bool {
	if !rv.IsValid() {
		return true
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func,
		reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

func typeName(v any) string {
	t := reflect.TypeOf(v)
	if t == nil {
		return "nil"
	}
	return t.String()
}
