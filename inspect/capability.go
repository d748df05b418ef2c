package inspect

// Field is one named attribute reported by a FieldEnumerator.  Value
// holds the attribute's value directly; when fetching it can fail, set
// Get instead and leave Value nil.  A Get error is shown on that
// attribute's node without affecting its siblings.
type Field struct {
	Name  string
	Value any
	Get   func() (any, error)
}

// FieldEnumerator lets a type declare its composite display attributes
// explicitly instead of being enumerated through reflection.  The
// reported order is preserved in the tree.
type FieldEnumerator interface {
	InspectFields() []Field
}

// Lazy is a deferred collection whose size is known without full
// materialization, such as a query cursor.  Inspection issues one
// Count call plus a single bounded Take; it never scans the whole
// collection and must not observe mutation.
type Lazy interface {
	Count() (int, error)
	Take(n int) ([]any, error)
}

// TemplateOptOut marks values that must not be surfaced in template
// display contexts.  Attributes whose value implements it are dropped
// from composite expansion.
type TemplateOptOut interface {
	DoNotCallInTemplates()
}

// Partial is a callable with some arguments pre-bound.  Params names
// the formal parameters of Func in order; Args binds them
// positionally and Keywords by name.  When Params is empty the
// parameter type names of Func are used instead.
type Partial struct {
	Name     string // display name of Func; derived from Func when empty
	Func     any
	Params   []string
	Args     []any
	Keywords map[string]any
}
