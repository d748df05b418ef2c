package inspect

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/signadot/go-inspect/ir"
)

// attr is one resolved composite attribute.  err records a fetch
// failure; the attribute still appears in the tree with the error as
// its value.
type attr struct {
	name  string
	value any
	err   error
}

// composite is the fallback variant: a best-effort dump of public
// attributes, so inspection always returns a node.  No breadth budget
// applies; the depth budget still does.
func (m *manager) composite(path, name string, rv reflect.Value, v any, id ir.ID, depth int) (*ir.Node, error) {
	node := &ir.Node{
		Kind:    ir.CompositeKind,
		ID:      id,
		Title:   name,
		Type:    typeName(v),
		Prefix:  "{",
		Postfix: "}",
	}
	attrs := m.attrs(v, rv)
	node.Total = len(attrs)

	childDepth := depth - 1
	if childDepth <= 0 {
		return node, nil
	}
	node.Children = make([]*ir.Node, 0, len(attrs))
	for _, a := range attrs {
		if a.err != nil {
			node.Children = append(node.Children, m.errorLeaf(a.name, a.err))
			continue
		}
		child, err := m.classify(path+"."+a.name, a.name, a.value, childDepth)
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, child)
	}
	return node, nil
}

func (m *manager) errorLeaf(name string, err error) *ir.Node {
	return &ir.Node{
		Kind:   ir.ScalarKind,
		ID:     m.visited.synth(),
		Title:  name,
		Type:   "error",
		Value:  fmt.Sprintf("(error: %v)", err),
		Prefix: "=",
	}
}

// attrs enumerates the public attributes of v, already filtered.  A
// FieldEnumerator takes precedence over reflection and its order is
// preserved; reflected fields and methods are merged alphabetically.
func (m *manager) attrs(v any, rv reflect.Value) []attr {
	if fe, ok := v.(FieldEnumerator); ok {
		return m.enumerated(fe)
	}
	return m.reflected(rv)
}

func (m *manager) enumerated(fe FieldEnumerator) []attr {
	var attrs []attr
	for _, f := range fe.InspectFields() {
		if strings.HasPrefix(f.Name, "_") {
			continue
		}
		val, err := fetchField(f)
		if err != nil {
			attrs = append(attrs, attr{name: f.Name, err: err})
			continue
		}
		if m.skipAttr(f.Name, val) {
			continue
		}
		attrs = append(attrs, attr{name: f.Name, value: val})
	}
	return attrs
}

func (m *manager) reflected(rv reflect.Value) []attr {
	var attrs []attr

	elem := rv
	for elem.Kind() == reflect.Pointer {
		elem = elem.Elem()
	}
	if elem.Kind() == reflect.Struct {
		t := elem.Type()
		for i := 0; i < t.NumField(); i++ {
			sf := t.Field(i)
			if !sf.IsExported() {
				continue
			}
			val := elem.Field(i).Interface()
			if m.skipAttr(sf.Name, val) {
				continue
			}
			attrs = append(attrs, attr{name: sf.Name, value: val})
		}
	}

	// Bound methods show alongside fields, as the original attribute
	// dump did.  The method set of rv keeps pointer receivers when v
	// was a pointer.
	t := rv.Type()
	for i := 0; i < t.NumMethod(); i++ {
		mt := t.Method(i)
		if !mt.IsExported() {
			continue
		}
		val := rv.Method(i).Interface()
		if m.skipAttr(mt.Name, val) {
			continue
		}
		attrs = append(attrs, attr{name: mt.Name, value: val})
	}

	sort.Slice(attrs, func(i, j int) bool { return attrs[i].name < attrs[j].name })
	return attrs
}

// skipAttr applies the composite exclusion rules: type descriptors,
// values opting out of template display, and anything rejected by the
// caller's filter.
func (m *manager) skipAttr(name string, v any) bool {
	if _, ok := v.(reflect.Type); ok {
		return true
	}
	if _, ok := v.(TemplateOptOut); ok {
		return true
	}
	if m.filter != nil && !m.filter(name, v) {
		return true
	}
	return false
}

func fetchField(f Field) (v any, err error) {
	if f.Get == nil {
		return f.Value, nil
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("attribute getter panicked: %v", r)
		}
	}()
	return f.Get()
}
