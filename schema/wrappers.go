package schema

import (
	"context"

	argskema "github.com/reoring/argskema"
)

// Optional marks a field as not required. A missing value is simply omitted
// from the validated result.
func Optional(elem argskema.Node) argskema.Node { return optionalNode{elem: elem} }

// Default supplies a value when the field is missing. The default is parsed
// through the wrapped node at validation time, so a misconfigured default
// surfaces as an issue on the field instead of leaking through.
func Default(elem argskema.Node, value any) argskema.Node {
	return defaultNode{elem: elem, value: value}
}

// Refine attaches a named predicate evaluated after the wrapped node
// accepts the value. Refinements never change the derived option shape.
func Refine(elem argskema.Node, name string, fn func(context.Context, any) error) argskema.Node {
	return refineNode{elem: elem, name: name, fn: fn}
}

// Intersect wraps two nodes; at most one is a real constraint, the other an
// Annotation marker carrying side metadata. Validation and derivation both
// follow the constraint child.
func Intersect(left, right argskema.Node) argskema.Node {
	return intersectNode{left: left, right: right}
}

// Annotation returns the no-op marker node. It validates nothing.
func Annotation(note string) argskema.Node { return annotationNode{note: note} }
