package inspect

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/signadot/go-inspect/ir"
)

// isScalar is the first and highest-priority shape predicate, so types
// that also satisfy a broader protocol (a compiled pattern, say) are
// never misclassified as composites.
func isScalar(v any) bool {
	switch v.(type) {
	case nil, time.Time, *time.Time, *regexp.Regexp, regexp.Regexp:
		return true
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return true
	}
	return false
}

func (m *manager) scalar(name string, v any) *ir.Node {
	return &ir.Node{
		Kind:   ir.ScalarKind,
		ID:     m.visited.synth(),
		Title:  name,
		Type:   typeName(v),
		Value:  scalarText(name, v),
		Prefix: "=",
	}
}

// scalarText renders the value's string form, quoting strings and
// masking anything whose field name mentions a password.
func scalarText(name string, v any) string {
	if v == nil {
		return "nil"
	}
	text := fmt.Sprint(v)
	if strings.Contains(strings.ToLower(name), "password") {
		return `"` + strings.Repeat("*", utf8.RuneCountInString(text)) + `"`
	}
	if s, ok := v.(string); ok {
		return strconv.Quote(s)
	}
	if reflect.ValueOf(v).Kind() == reflect.String {
		return strconv.Quote(text)
	}
	return text
}
