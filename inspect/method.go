package inspect

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"

	"github.com/signadot/go-inspect/ir"
)

func (m *manager) method(name string, rv reflect.Value, id ir.ID) *ir.Node {
	return &ir.Node{
		Kind:    ir.MethodKind,
		ID:      id,
		Title:   name,
		Type:    rv.Type().String(),
		Value:   strings.Join(funcParams(rv.Type()), ", "),
		Prefix:  "(",
		Postfix: ")",
	}
}

// funcParams lists a callable's formal parameters.  Go reflection
// exposes parameter types, not names, so the type names stand in.
func funcParams(t reflect.Type) []string {
	params := make([]string, 0, t.NumIn())
	for i := 0; i < t.NumIn(); i++ {
		if t.IsVariadic() && i == t.NumIn()-1 {
			params = append(params, "..."+t.In(i).Elem().String())
			continue
		}
		params = append(params, t.In(i).String())
	}
	return params
}

func isPartial(v any) bool {
	switch v.(type) {
	case *Partial, Partial:
		return true
	}
	return false
}

func asPartial(v any) *Partial {
	switch p := v.(type) {
	case *Partial:
		return p
	case Partial:
		return &p
	}
	return nil
}

func (m *manager) partial(name string, p *Partial, id ir.ID) *ir.Node {
	params := p.Params
	var ft reflect.Type
	if p.Func != nil && reflect.TypeOf(p.Func).Kind() == reflect.Func {
		ft = reflect.TypeOf(p.Func)
	}
	if len(params) == 0 && ft != nil {
		params = funcParams(ft)
	}

	frags := make([]string, 0, len(params))
	for i, pn := range params {
		val, bound := p.bound(i, pn)
		switch {
		case !bound:
			frags = append(frags, pn)
		case isScalar(val):
			frags = append(frags, fmt.Sprintf("%s=%v", pn, val))
		default:
			frags = append(frags, pn+"=(complex)")
		}
	}

	return &ir.Node{
		Kind:    ir.PartialKind,
		ID:      id,
		Title:   fmt.Sprintf("%s(...) -> %s", name, p.funcName()),
		Type:    typeName(p),
		Value:   strings.Join(frags, ", "),
		Prefix:  "(",
		Postfix: ")",
	}
}

// bound resolves the pre-bound argument for formal parameter i, first
// positionally and then by keyword.
func (p *Partial) bound(i int, name string) (any, bool) {
	if i < len(p.Args) {
		return p.Args[i], true
	}
	if v, ok := p.Keywords[name]; ok {
		return v, true
	}
	return nil, false
}

func (p *Partial) funcName() string {
	if p.Name != "" {
		return p.Name
	}
	if p.Func == nil {
		return "func"
	}
	rv := reflect.ValueOf(p.Func)
	if rv.Kind() != reflect.Func {
		return typeName(p.Func)
	}
	fn := runtime.FuncForPC(rv.Pointer())
	if fn == nil {
		return "func"
	}
	full := fn.Name()
	if i := strings.LastIndex(full, "/"); i >= 0 {
		full = full[i+1:]
	}
	if i := strings.Index(full, "."); i >= 0 {
		full = full[i+1:]
	}
	// method values carry a -fm suffix
	return strings.TrimSuffix(full, "-fm")
}
