package inspect

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/signadot/go-inspect/ir"
)

type widget struct {
	Name    string
	Size    int
	hidden  string
	TypeRef reflect.Type
	OptOut  optedOut
}

func (w *widget) Describe(prefix string) string { return prefix + w.Name }

type optedOut struct{}

func (optedOut) DoNotCallInTemplates() {}

func TestCompositeAttributeFiltering(t *testing.T) {
	w := &widget{Name: "gear", Size: 3, hidden: "x", TypeRef: reflect.TypeOf(0)}
	node, err := Inspect("w", w, MaxDepth(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if node.Kind != ir.CompositeKind {
		t.Fatalf("expected Composite, got %s", node.Kind)
	}
	got := map[string]*ir.Node{}
	for _, c := range node.Children {
		got[c.Title] = c
	}
	if _, ok := got["hidden"]; ok {
		t.Fatal("unexported field must not appear")
	}
	if _, ok := got["TypeRef"]; ok {
		t.Fatal("type-valued attribute must not appear")
	}
	if _, ok := got["OptOut"]; ok {
		t.Fatal("opted-out attribute must not appear")
	}
	if _, ok := got["Name"]; !ok {
		t.Fatal("expected Name field")
	}
	d, ok := got["Describe"]
	if !ok {
		t.Fatal("expected Describe method as child")
	}
	if d.Kind != ir.MethodKind {
		t.Fatalf("expected Describe to be Method, got %s", d.Kind)
	}
	if d.Value != "string" {
		t.Fatalf("expected receiver-free params, got %q", d.Value)
	}
	if node.Total != len(node.Children) {
		t.Fatalf("composite total %d != children %d", node.Total, len(node.Children))
	}
}

func TestCompositeAlphabeticalOrder(t *testing.T) {
	w := &widget{Name: "gear", Size: 3}
	node, err := Inspect("w", w, MaxDepth(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var names []string
	for _, c := range node.Children {
		names = append(names, c.Title)
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Fatalf("attributes out of order: %v", names)
		}
	}
}

func TestCompositeIgnoresBreadthBudget(t *testing.T) {
	type wide struct {
		A, B, C, D, E, F, G, H int
	}
	node, err := Inspect("w", &wide{}, MaxDepth(1), MaxItems(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(node.Children) != 8 {
		t.Fatalf("expected all 8 attributes despite MaxItems(2), got %d", len(node.Children))
	}
}

func TestCompositeFilterOption(t *testing.T) {
	w := &widget{Name: "gear", Size: 3}
	node, err := Inspect("w", w, MaxDepth(1), Filter(func(name string, v any) bool {
		return name != "Size"
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, c := range node.Children {
		if c.Title == "Size" {
			t.Fatal("filtered attribute must not appear")
		}
	}
}

type enumerated struct{}

func (enumerated) InspectFields() []Field {
	return []Field{
		{Name: "zeta", Value: 1},
		{Name: "alpha", Value: 2},
		{Name: "_private", Value: 3},
		{Name: "broken", Get: func() (any, error) {
			return nil, errors.New("backing store gone")
		}},
		{Name: "panicky", Get: func() (any, error) {
			panic("boom")
		}},
		{Name: "ok", Value: "fine"},
	}
}

func TestFieldEnumerator(t *testing.T) {
	node, err := Inspect("e", enumerated{}, MaxDepth(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var names []string
	for _, c := range node.Children {
		names = append(names, c.Title)
	}
	// declared order preserved, privacy-marked name dropped
	want := []string{"zeta", "alpha", "broken", "panicky", "ok"}
	if len(names) != len(want) {
		t.Fatalf("expected %v, got %v", want, names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, names)
		}
	}
}

func TestAttributeErrorRecovery(t *testing.T) {
	node, err := Inspect("e", enumerated{}, MaxDepth(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	byName := map[string]*ir.Node{}
	for _, c := range node.Children {
		byName[c.Title] = c
	}
	broken := byName["broken"]
	if !strings.Contains(broken.Value, "backing store gone") {
		t.Fatalf("expected error text on broken attribute, got %q", broken.Value)
	}
	panicky := byName["panicky"]
	if !strings.Contains(panicky.Value, "boom") {
		t.Fatalf("expected recovered panic text, got %q", panicky.Value)
	}
	// siblings unaffected
	if byName["ok"].Value != `"fine"` {
		t.Fatalf("expected sibling to survive, got %q", byName["ok"].Value)
	}
}
