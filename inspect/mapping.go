package inspect

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"

	"github.com/signadot/go-inspect/ir"
)

func (m *manager) mapping(path, name string, rv reflect.Value, v any, id ir.ID, depth int) (*ir.Node, error) {
	node := &ir.Node{
		Kind:    ir.MappingKind,
		ID:      id,
		Title:   name,
		Type:    typeName(v),
		Prefix:  "{",
		Postfix: "}",
		Total:   rv.Len(),
	}
	childDepth := depth - 1
	if childDepth <= 0 {
		return node, nil
	}

	// Go map iteration order is randomized; sort by key string form
	// so the same value always renders the same tree.
	keys := rv.MapKeys()
	titles := make([]string, len(keys))
	for i, k := range keys {
		titles[i] = keyString(k)
	}
	sort.Sort(&byTitle{titles: titles, keys: keys})

	node.Children = []*ir.Node{}
	for i, k := range keys {
		if len(node.Children) >= m.maxItems {
			break
		}
		child, err := m.classify(path+"."+titles[i], titles[i], rv.MapIndex(k).Interface(), childDepth)
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, child)
	}
	return node, nil
}

func (m *manager) sequence(path, name string, rv reflect.Value, v any, id ir.ID, depth int) (*ir.Node, error) {
	node := &ir.Node{
		Kind:    ir.SequenceKind,
		ID:      id,
		Title:   name,
		Type:    typeName(v),
		Prefix:  "[",
		Postfix: "]",
		Total:   rv.Len(),
	}
	childDepth := depth - 1
	if childDepth <= 0 {
		return node, nil
	}
	node.Children = []*ir.Node{}
	for i := 0; i < rv.Len() && i < m.maxItems; i++ {
		title := strconv.Itoa(i)
		child, err := m.classify(path+"."+title, title, rv.Index(i).Interface(), childDepth)
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, child)
	}
	return node, nil
}

func keyString(k reflect.Value) string {
	return fmt.Sprint(k.Interface())
}

type byTitle struct {
	titles []string
	keys   []reflect.Value
}

func (s *byTitle) Len() int           { return len(s.titles) }
func (s *byTitle) Less(i, j int) bool { return s.titles[i] < s.titles[j] }
func (s *byTitle) Swap(i, j int) {
	s.titles[i], s.titles[j] = s.titles[j], s.titles[i]
	s.keys[i], s.keys[j] = s.keys[j], s.keys[i]
}
