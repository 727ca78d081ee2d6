package argskema

import "context"

// Kind identifies which variant a schema node is. The set is closed so the
// resolver can match exhaustively; see Derive.
type Kind int

const (
	KindInvalid Kind = iota
	KindString
	KindNumber
	KindBool
	KindEnum
	KindNativeEnum
	KindObject
	KindOptional
	KindDefault
	KindRefine
	KindIntersect
	KindAnnotation
)

// Node is the minimal surface the resolver reads from a schema tree: the
// discriminant plus, via the narrower interfaces below, children and payload.
// Nodes are never mutated here.
type Node interface {
	Kind() Kind
}

// Field pairs a field name with its node. Object field order is declaration
// order and is preserved end to end.
type Field struct {
	Name string
	Node Node
}

// Object is a node holding an ordered field map.
type Object interface {
	Node
	Fields() []Field
}

// Wrapper is a single-child modifier node (Optional, Default, Refine).
type Wrapper interface {
	Node
	Elem() Node
}

// Intersection is the two-child wrapper used to attach side metadata without
// changing the validated type. At most one child is a real constraint; the
// other is an Annotation marker.
type Intersection interface {
	Node
	Pair() (left, right Node)
}

// Enum is a leaf with an ordered set of permitted string values.
type Enum interface {
	Node
	Values() []string
}

// NamedEnum is a leaf with a name->value mapping; the CLI surface works in
// declared names, not values.
type NamedEnum interface {
	Node
	Names() []string
}

// Validator is an object schema that can also re-validate a tokenized
// key->value map. The schema package's object nodes implement it.
type Validator interface {
	Object
	ParseValues(ctx context.Context, values map[string]any) (map[string]any, error)
}
