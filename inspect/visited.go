package inspect

import (
	"reflect"

	"github.com/signadot/go-inspect/ir"
)

// synthBit tags identities synthesized for values without a stable
// address, keeping them disjoint from pointer-derived identities.
const synthBit = ir.ID(1) << 63

// visited is the traversal-scoped identity set.  It lives exactly as
// long as one Inspect call and is keyed by object address, never by
// value equality.
type visited struct {
	seen map[uintptr]ir.ID
	next uint64
}

func newVisited() *visited {
	return &visited{seen: map[uintptr]ir.ID{}}
}

// identify returns the identity of rv and whether it was already
// registered in this traversal.  Values with a stable address (maps,
// slices, pointers, funcs, channels) are registered on first sight;
// unaddressable values get a fresh synthetic identity and are never
// reported as seen, since no cycle can pass through them.
func (s *visited) identify(rv reflect.Value) (ir.ID, bool) {
	if !rv.IsValid() {
		return s.synth(), false
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func,
		reflect.Chan, reflect.UnsafePointer:
		addr := rv.Pointer()
		if id, ok := s.seen[addr]; ok {
			return id, true
		}
		id := ir.ID(addr)
		s.seen[addr] = id
		return id, false
	default:
		return s.synth(), false
	}
}

func (s *visited) synth() ir.ID {
	s.next++
	return synthBit | ir.ID(s.next)
}
