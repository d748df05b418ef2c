package encode

import (
	"fmt"
	"io"
	"strings"

	"github.com/signadot/go-inspect/debug"
	"github.com/signadot/go-inspect/ir"
)

type EncState struct {
	depth, indent int
	wire          bool
	showTypes     bool

	Color func(ir.Kind, ColorAttr, string) string
}

// Encode renders an inspection tree as indented text.  Containers
// whose children were never expanded render a "{...}" placeholder with
// their true item count, distinct from an expanded-but-empty "{}";
// truncated containers report how many entries the breadth budget
// dropped.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	if debug.Encode() {
		debug.Logf("encode: root %s kind %s\n", node.Title, node.Kind)
	}
	if err := encode(node, w, es); err != nil {
		return err
	}
	return writeString(w, "\n")
}

func encode(n *ir.Node, w io.Writer, es *EncState) error {
	title := n.Title
	if err := writeString(w, es.color(n.Kind, TitleColor, title)); err != nil {
		return err
	}
	if es.showTypes && n.Type != "" {
		if err := writeString(w, " "+es.color(n.Kind, TypeColor, "<"+n.Type+">")); err != nil {
			return err
		}
	}
	if n.Kind.IsLeaf() || n.Value != "" {
		return encodeValue(n, w, es)
	}
	return encodeContainer(n, w, es)
}

func encodeValue(n *ir.Node, w io.Writer, es *EncState) error {
	var s string
	switch n.Prefix {
	case "=":
		s = " " + es.color(n.Kind, SepColor, "=") + " " + es.color(n.Kind, ValueColor, n.Value)
	case "":
		s = " " + es.color(n.Kind, ValueColor, n.Value)
	default:
		s = es.color(n.Kind, SepColor, n.Prefix) +
			es.color(n.Kind, ValueColor, n.Value) +
			es.color(n.Kind, SepColor, n.Postfix)
	}
	if err := writeString(w, s); err != nil {
		return err
	}
	if n.LinkTo != nil {
		link := fmt.Sprintf("#%x", uint64(*n.LinkTo))
		if err := writeString(w, " "+es.color(n.Kind, LinkColor, link)); err != nil {
			return err
		}
	}
	return nil
}

func encodeContainer(n *ir.Node, w io.Writer, es *EncState) error {
	open := es.color(n.Kind, SepColor, n.Prefix)
	close := es.color(n.Kind, SepColor, n.Postfix)

	if n.Children == nil {
		// depth budget cut this container off before expansion
		note := fmt.Sprintf("(%d %s)", n.Total, plural(n.Total))
		return writeString(w, " "+open+"..."+close+" "+es.color(n.Kind, TotalColor, note))
	}
	if len(n.Children) == 0 {
		if err := writeString(w, " "+open+close); err != nil {
			return err
		}
		return encodeTruncation(n, w, es)
	}
	if err := writeString(w, " "+open); err != nil {
		return err
	}
	es.depth++
	for i, c := range n.Children {
		if err := writeSep(w, es, i == 0); err != nil {
			return err
		}
		if err := encode(c, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeSep(w, es, true); err != nil {
		return err
	}
	if err := writeString(w, close); err != nil {
		return err
	}
	return encodeTruncation(n, w, es)
}

func encodeTruncation(n *ir.Node, w io.Writer, es *EncState) error {
	dropped := n.Total - len(n.Children)
	if dropped <= 0 {
		return nil
	}
	note := fmt.Sprintf("(+%d more)", dropped)
	return writeString(w, " "+es.color(n.Kind, TotalColor, note))
}

func writeSep(w io.Writer, es *EncState, first bool) error {
	if es.wire {
		if first {
			return writeString(w, " ")
		}
		return writeString(w, ", ")
	}
	return writeString(w, "\n"+strings.Repeat(strings.Repeat(" ", es.indent), es.depth))
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func plural(n int) string {
	if n == 1 {
		return "item"
	}
	return "items"
}

func (es *EncState) color(k ir.Kind, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(k, a, s)
}
