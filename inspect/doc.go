// Package inspect builds a bounded, cycle-safe display tree for an
// arbitrary runtime value.
//
// # Usage
//
//	node, err := inspect.Inspect("part", value,
//	    inspect.MaxDepth(3), inspect.MaxItems(10))
//	if err != nil {
//	    return err
//	}
//	if err := encode.Encode(node, os.Stdout); err != nil {
//	    return err
//	}
//
// Each value is classified into exactly one ir.Kind, in a fixed
// priority order: scalars first, then callables, then containers, with
// a composite attribute dump as the fallback, so inspection always
// produces a tree rather than failing.  A per-call visited set keyed
// by object identity turns re-encountered objects into Duplicate
// nodes, guaranteeing termination on cyclic graphs.
//
// # Related Packages
//
//   - github.com/signadot/go-inspect/ir - result tree and render projection
//   - github.com/signadot/go-inspect/encode - text and HTML styles
package inspect
