package encode

import (
	"strings"

	"github.com/signadot/go-inspect/ir"

	"github.com/fatih/color"
)

type Colorable struct {
	Kind ir.Kind
	Attr ColorAttr
}

type ColorAttr int

const (
	TitleColor ColorAttr = iota
	TypeColor
	ValueColor
	SepColor
	LinkColor
	TotalColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, k := range ir.Kinds() {
		able := Colorable{
			Kind: k,
			Attr: TitleColor,
		}
		colors.Map[able] = color.RGB(196, 96, 16).SprintfFunc()
		able.Attr = TypeColor
		colors.Map[able] = color.RGB(96, 96, 96).SprintfFunc()
		able.Attr = SepColor
		colors.Map[able] = color.RGB(255, 0, 196).SprintfFunc()
		able.Attr = TotalColor
		colors.Map[able] = color.RGB(74, 92, 138).SprintfFunc()
	}
	able := Colorable{Attr: ValueColor}

	able.Kind = ir.ScalarKind
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()

	able.Kind = ir.MethodKind
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()

	able.Kind = ir.PartialKind
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()

	able.Kind = ir.DuplicateKind
	colors.Map[able] = color.RGB(168, 0, 196).SprintfFunc()
	able.Attr = LinkColor
	colors.Map[able] = color.BlueString

	able = Colorable{Kind: ir.LazyKind, Attr: ValueColor}
	colors.Map[able] = color.RGB(196, 0, 0).SprintfFunc()

	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(k ir.Kind, a ColorAttr, s string) string {
	return c.Get(k, a)(s)
}

func (c *Colors) Get(k ir.Kind, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Kind: k, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
