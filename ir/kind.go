package ir

import "fmt"

// Kind classifies a value into one of the fixed display variants.
type Kind int

const (
	ScalarKind Kind = iota
	MethodKind
	PartialKind
	MappingKind
	SequenceKind
	LazyKind
	CompositeKind
	DuplicateKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		ScalarKind:    "Scalar",
		MethodKind:    "Method",
		PartialKind:   "Partial",
		MappingKind:   "Mapping",
		SequenceKind:  "Sequence",
		LazyKind:      "Lazy",
		CompositeKind: "Composite",
		DuplicateKind: "Duplicate",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Scalar":    ScalarKind,
		"Method":    MethodKind,
		"Partial":   PartialKind,
		"Mapping":   MappingKind,
		"Sequence":  SequenceKind,
		"Lazy":      LazyKind,
		"Composite": CompositeKind,
		"Duplicate": DuplicateKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{
		ScalarKind,
		MethodKind,
		PartialKind,
		MappingKind,
		SequenceKind,
		LazyKind,
		CompositeKind,
		DuplicateKind,
	}
}

// IsLeaf reports whether the kind never carries children.  Container
// kinds may still have nil Children when they were not expanded.
func (k Kind) IsLeaf() bool {
	switch k {
	case MappingKind, SequenceKind, LazyKind, CompositeKind:
		return false
	default:
		return true
	}
}
