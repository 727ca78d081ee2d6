package schema

import (
	"context"

	argskema "github.com/reoring/argskema"
)

// Leaf nodes.

type stringNode struct{}

func (stringNode) Kind() argskema.Kind { return argskema.KindString }

type numberNode struct{}

func (numberNode) Kind() argskema.Kind { return argskema.KindNumber }

type boolNode struct{}

func (boolNode) Kind() argskema.Kind { return argskema.KindBool }

type enumNode struct{ values []string }

func (*enumNode) Kind() argskema.Kind { return argskema.KindEnum }

// Values returns the permitted values in declared order.
func (e *enumNode) Values() []string { return e.values }

// Member is one name/value pair of a native enum.
type Member struct {
	Name  string
	Value any
}

type nativeEnumNode struct {
	names  []string
	byName map[string]any
}

func (*nativeEnumNode) Kind() argskema.Kind { return argskema.KindNativeEnum }

// Names returns the declared member names in declaration order. The CLI
// surface works in names; values only appear in the validated result.
func (e *nativeEnumNode) Names() []string { return e.names }

// Wrapper nodes.

type optionalNode struct{ elem argskema.Node }

func (optionalNode) Kind() argskema.Kind { return argskema.KindOptional }
func (n optionalNode) Elem() argskema.Node {
	return n.elem
}

type defaultNode struct {
	elem  argskema.Node
	value any
}

func (defaultNode) Kind() argskema.Kind   { return argskema.KindDefault }
func (n defaultNode) Elem() argskema.Node { return n.elem }

// DefaultValue exposes the wrapped default for introspection.
func (n defaultNode) DefaultValue() any { return n.value }

type refineNode struct {
	elem argskema.Node
	name string
	fn   func(context.Context, any) error
}

func (refineNode) Kind() argskema.Kind   { return argskema.KindRefine }
func (n refineNode) Elem() argskema.Node { return n.elem }

type intersectNode struct{ left, right argskema.Node }

func (intersectNode) Kind() argskema.Kind { return argskema.KindIntersect }
func (n intersectNode) Pair() (argskema.Node, argskema.Node) {
	return n.left, n.right
}

// constraint returns the non-annotation child, or nil when both or neither
// children are markers.
func (n intersectNode) constraint() argskema.Node {
	lm := n.left != nil && n.left.Kind() == argskema.KindAnnotation
	rm := n.right != nil && n.right.Kind() == argskema.KindAnnotation
	switch {
	case lm && !rm:
		return n.right
	case rm && !lm:
		return n.left
	default:
		return nil
	}
}

// annotationNode is the no-op marker type: it validates nothing and exists
// purely to carry side metadata through an intersection.
type annotationNode struct{ note string }

func (annotationNode) Kind() argskema.Kind { return argskema.KindAnnotation }

// Note returns the carried metadata string.
func (n annotationNode) Note() string { return n.note }
