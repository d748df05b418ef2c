package inspect

const (
	DefaultMaxDepth = 2
	DefaultMaxItems = 5
)

type Option func(*options)

type options struct {
	maxDepth int
	maxItems int
	filter   FilterFunc
}

// FilterFunc decides whether a composite attribute is included.  It
// receives the attribute name and its value.
type FilterFunc func(name string, v any) bool

// MaxDepth sets how many generations of children are expanded below
// the root.  Containers reached with no remaining depth keep their
// kind, title and total child count but stay unexpanded.
func MaxDepth(n int) Option {
	return func(o *options) { o.maxDepth = n }
}

// MaxItems caps how many entries a single mapping, sequence or lazy
// collection expands.  Excess entries are omitted but still counted
// in the node's total.
func MaxItems(n int) Option {
	return func(o *options) { o.maxItems = n }
}

// Filter restricts composite attribute expansion to attributes f
// accepts.  Filtered attributes are omitted entirely, as if they were
// not public.
func Filter(f FilterFunc) Option {
	return func(o *options) { o.filter = f }
}
