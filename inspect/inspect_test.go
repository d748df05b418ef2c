package inspect

import (
	"errors"
	"strings"
	"testing"

	"github.com/signadot/go-inspect/ir"
)

func TestMappingExample(t *testing.T) {
	v := map[string]any{
		"a": 1,
		"b": map[string]any{"c": 2, "d": 3},
	}
	node, err := Inspect("root", v, MaxDepth(2), MaxItems(10))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if node.Kind != ir.MappingKind {
		t.Fatalf("expected Mapping root, got %s", node.Kind)
	}
	if node.Total != 2 || len(node.Children) != 2 {
		t.Fatalf("expected 2 children with total 2, got %d children total %d",
			len(node.Children), node.Total)
	}
	a, b := node.Children[0], node.Children[1]
	if a.Title != "a" || a.Kind != ir.ScalarKind || a.Value != "1" {
		t.Fatalf("expected a=Scalar 1, got %s %s %q", a.Title, a.Kind, a.Value)
	}
	if b.Title != "b" || b.Kind != ir.MappingKind {
		t.Fatalf("expected b=Mapping, got %s %s", b.Title, b.Kind)
	}
	if len(b.Children) != 2 {
		t.Fatalf("expected b to expand 2 children, got %d", len(b.Children))
	}
	if b.Children[0].Value != "2" || b.Children[1].Value != "3" {
		t.Fatalf("expected c=2 d=3, got %q %q", b.Children[0].Value, b.Children[1].Value)
	}
}

func TestMappingExampleDepthOne(t *testing.T) {
	v := map[string]any{
		"a": 1,
		"b": map[string]any{"c": 2, "d": 3},
	}
	node, err := Inspect("root", v, MaxDepth(1), MaxItems(10))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b := node.Children[1]
	if b.Kind != ir.MappingKind {
		t.Fatalf("expected b=Mapping, got %s", b.Kind)
	}
	if b.Total != 2 {
		t.Fatalf("expected b total 2, got %d", b.Total)
	}
	if b.Children != nil {
		t.Fatalf("expected b unexpanded (nil children), got %d children", len(b.Children))
	}
}

func TestSelfReference(t *testing.T) {
	x := map[string]any{}
	x["self"] = x
	node, err := Inspect("x", x, MaxDepth(5), MaxItems(5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(node.Children) != 1 {
		t.Fatalf("expected 1 child, got %d", len(node.Children))
	}
	self := node.Children[0]
	if self.Kind != ir.DuplicateKind {
		t.Fatalf("expected Duplicate child, got %s", self.Kind)
	}
	if self.LinkTo == nil || *self.LinkTo != node.ID {
		t.Fatalf("expected link to root id %v, got %v", node.ID, self.LinkTo)
	}
	if self.Children != nil {
		t.Fatal("Duplicate must not carry children")
	}
}

func TestBreadthTruncation(t *testing.T) {
	v := map[string]any{}
	for _, k := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		v[k] = k
	}
	node, err := Inspect("m", v, MaxDepth(1), MaxItems(3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(node.Children) != 3 {
		t.Fatalf("expected 3 expanded children, got %d", len(node.Children))
	}
	if node.Total != 7 {
		t.Fatalf("expected total 7, got %d", node.Total)
	}
	if !node.Truncated() {
		t.Fatal("expected node to report truncation")
	}

	seq := []int{1, 2, 3, 4, 5}
	sNode, err := Inspect("s", seq, MaxDepth(1), MaxItems(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sNode.Kind != ir.SequenceKind {
		t.Fatalf("expected Sequence, got %s", sNode.Kind)
	}
	if len(sNode.Children) != 2 || sNode.Total != 5 {
		t.Fatalf("expected 2 of 5, got %d of %d", len(sNode.Children), sNode.Total)
	}
	if sNode.Children[0].Title != "0" || sNode.Children[1].Title != "1" {
		t.Fatalf("expected index titles, got %q %q", sNode.Children[0].Title, sNode.Children[1].Title)
	}
}

func TestDepthExhaustedContainer(t *testing.T) {
	v := map[string]any{"a": 1, "b": 2}
	node, err := Inspect("m", v, MaxDepth(0), MaxItems(5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if node.Kind != ir.MappingKind || node.Title != "m" {
		t.Fatalf("expected Mapping m, got %s %s", node.Kind, node.Title)
	}
	if node.Total != 2 {
		t.Fatalf("expected total 2, got %d", node.Total)
	}
	if node.Children != nil {
		t.Fatal("expected nil children at depth 0")
	}
}

func TestExpandedEmptyDistinctFromUnexpanded(t *testing.T) {
	empty := map[string]any{}
	node, err := Inspect("m", empty, MaxDepth(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if node.Children == nil || len(node.Children) != 0 {
		t.Fatalf("expected expanded empty children, got %v", node.Children)
	}
	if node.Expanded() != true {
		t.Fatal("expected Expanded() for empty expanded mapping")
	}
}

func TestPasswordMasking(t *testing.T) {
	node, err := Inspect("user_Password", "hunter2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if node.Value != `"*******"` {
		t.Fatalf("expected masked value, got %s", node.Value)
	}
	if strings.Contains(node.Value, "hunter2") {
		t.Fatal("real value leaked through mask")
	}

	// masking applies by name inside containers too
	m := map[string]any{"db_password": "secret"}
	mNode, err := Inspect("cfg", m, MaxDepth(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := mNode.Children[0].Value; got != `"******"` {
		t.Fatalf("expected 6-star mask, got %s", got)
	}
}

func TestScalarQuoting(t *testing.T) {
	sNode, err := Inspect("s", "hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sNode.Value != `"hello"` {
		t.Fatalf("expected quoted string, got %s", sNode.Value)
	}
	if sNode.Prefix != "=" {
		t.Fatalf("expected '=' prefix, got %q", sNode.Prefix)
	}
	iNode, err := Inspect("i", 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if iNode.Value != "42" {
		t.Fatalf("expected bare int, got %s", iNode.Value)
	}
	nNode, err := Inspect("n", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if nNode.Kind != ir.ScalarKind || nNode.Value != "nil" {
		t.Fatalf("expected nil scalar, got %s %s", nNode.Kind, nNode.Value)
	}
}

func TestDepthMonotonicity(t *testing.T) {
	v := map[string]any{
		"a": map[string]any{
			"b": map[string]any{
				"c": map[string]any{"d": 1},
			},
		},
	}
	prev := -1
	for depth := 0; depth <= 4; depth++ {
		node, err := Inspect("root", v, MaxDepth(depth), MaxItems(10))
		if err != nil {
			t.Fatalf("depth %d: unexpected error: %v", depth, err)
		}
		d := node.Depth()
		if d < prev {
			t.Fatalf("depth %d: tree depth decreased from %d to %d", depth, prev, d)
		}
		prev = d
	}
}

func TestNegativeBudgetsRejected(t *testing.T) {
	if _, err := Inspect("v", 1, MaxDepth(-1)); err == nil {
		t.Fatal("expected error for negative max depth")
	}
	if _, err := Inspect("v", 1, MaxItems(-1)); err == nil {
		t.Fatal("expected error for negative max items")
	}
}

func TestInternalDepthViolation(t *testing.T) {
	m := &manager{maxItems: 5, visited: newVisited()}
	_, err := m.classify("v", "v", 1, 0)
	if err == nil {
		t.Fatal("expected internal error")
	}
	if !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}
