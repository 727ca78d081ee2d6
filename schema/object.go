package schema

import (
	"context"
	"sort"

	argskema "github.com/reoring/argskema"
)

type objRefine struct {
	name string
	fn   func(context.Context, map[string]any) error
}

// ObjectNode is an object schema with an ordered field map. It implements
// argskema.Validator: Derive reads its fields, ParseValues re-validates a
// tokenized key->value map against the original tree.
type ObjectNode struct {
	fields  []argskema.Field
	refines []objRefine
}

var _ argskema.Validator = (*ObjectNode)(nil)

func (*ObjectNode) Kind() argskema.Kind { return argskema.KindObject }

// Fields returns the field map in declaration order.
func (o *ObjectNode) Fields() []argskema.Field {
	return append([]argskema.Field(nil), o.fields...)
}

// Builder accumulates fields and refinements for an object schema.
type Builder struct {
	fields  []argskema.Field
	refines []objRefine
	dup     string
}

// Object creates a new object builder. Field declaration order is preserved
// into the derived option table.
func Object() *Builder { return &Builder{} }

// Field registers a field with its node.
func (b *Builder) Field(name string, n argskema.Node) *Builder {
	for _, f := range b.fields {
		if f.Name == name && b.dup == "" {
			b.dup = name
		}
	}
	b.fields = append(b.fields, argskema.Field{Name: name, Node: n})
	return b
}

// Refine adds an object-level refinement, executed after all fields
// validated cleanly. Refinements run in registration order; the first
// failing one reports and stops the tier.
func (b *Builder) Refine(name string, fn func(context.Context, map[string]any) error) *Builder {
	if fn == nil {
		return b
	}
	b.refines = append(b.refines, objRefine{name: name, fn: fn})
	return b
}

// Build validates the builder and returns the object node.
func (b *Builder) Build() (*ObjectNode, error) {
	if b.dup != "" {
		return nil, argskema.Issues{{Path: "/" + b.dup, Code: argskema.CodeParseError, Message: "duplicate field name"}}
	}
	return &ObjectNode{fields: b.fields, refines: b.refines}, nil
}

// MustBuild is like Build but panics on error.
func (b *Builder) MustBuild() *ObjectNode {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}

// ParseValues validates a key->value map against the schema. Field issues
// are collected in declaration order, unknown keys after that in sorted
// order; refinements only run on a clean field pass.
func (o *ObjectNode) ParseValues(ctx context.Context, values map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(values))
	var iss argskema.Issues
	for _, f := range o.fields {
		v, present := values[f.Name]
		val, keep, i2 := parseField(ctx, "/"+f.Name, f.Node, v, present, 0)
		if len(i2) > 0 {
			iss = argskema.AppendIssues(iss, i2...)
			continue
		}
		if keep {
			out[f.Name] = val
		}
	}
	iss = argskema.AppendIssues(iss, o.unknownKeys(values)...)
	if len(iss) > 0 {
		return nil, iss
	}
	for _, r := range o.refines {
		if err := r.fn(ctx, out); err != nil {
			return nil, refineIssues("/", r.name, err)
		}
	}
	return out, nil
}

// unknownKeys reports keys outside the field map, in sorted order for a
// deterministic first violation.
func (o *ObjectNode) unknownKeys(values map[string]any) argskema.Issues {
	known := make(map[string]struct{}, len(o.fields))
	for _, f := range o.fields {
		known[f.Name] = struct{}{}
	}
	var uks []string
	for k := range values {
		if _, ok := known[k]; !ok {
			uks = append(uks, k)
		}
	}
	sort.Strings(uks)
	var iss argskema.Issues
	for _, k := range uks {
		iss = argskema.AppendIssues(iss, argskema.Issue{Path: "/" + k, Code: argskema.CodeUnknownKey, Message: "unknown option"})
	}
	return iss
}

// parseField walks one field's modifier chain. It returns the validated
// value, whether the field should appear in the result at all, and any
// issues. The depth bound mirrors the resolver's guard.
func parseField(ctx context.Context, path string, n argskema.Node, v any, present bool, depth int) (any, bool, argskema.Issues) {
	if depth >= argskema.DefaultMaxDepth {
		return nil, false, argskema.Issues{{Path: path, Code: argskema.CodeSchemaTooDeep, Message: "modifier chain exceeds the maximum unwrap depth"}}
	}
	switch node := n.(type) {
	case optionalNode:
		if !present {
			return nil, false, nil
		}
		return parseField(ctx, path, node.elem, v, true, depth+1)
	case defaultNode:
		if !present {
			return parseField(ctx, path, node.elem, node.value, true, depth+1)
		}
		return parseField(ctx, path, node.elem, v, true, depth+1)
	case refineNode:
		val, keep, iss := parseField(ctx, path, node.elem, v, present, depth+1)
		if len(iss) > 0 || !keep {
			return val, keep, iss
		}
		if node.fn != nil {
			if err := node.fn(ctx, val); err != nil {
				return nil, false, refineIssues(path, node.name, err)
			}
		}
		return val, true, nil
	case intersectNode:
		c := node.constraint()
		if c == nil {
			// degenerate intersection: nothing left to check
			return v, present, nil
		}
		return parseField(ctx, path, c, v, present, depth+1)
	case annotationNode:
		return v, present, nil
	case *ObjectNode:
		if !present {
			return nil, false, requiredIssue(path)
		}
		m, ok := v.(map[string]any)
		if !ok {
			return nil, false, invalidType(path, "object", v)
		}
		out, err := node.ParseValues(ctx, m)
		if err != nil {
			return nil, false, rebaseIssues(path, err)
		}
		return out, true, nil
	default:
		if !present {
			return nil, false, requiredIssue(path)
		}
		val, iss := checkLeaf(path, n, v)
		if len(iss) > 0 {
			return nil, false, iss
		}
		return val, true, nil
	}
}

func requiredIssue(path string) argskema.Issues {
	return argskema.Issues{{Path: path, Code: argskema.CodeRequired, Message: "required option missing"}}
}

// refineIssues converts a refinement error into Issues, stamping the rule
// name and rebasing root-level paths under the field.
func refineIssues(path, rule string, err error) argskema.Issues {
	iss, ok := argskema.AsIssues(err)
	if !ok {
		return argskema.Issues{{Path: path, Code: argskema.CodeBusinessRule, Message: err.Error(), Cause: err, Rule: rule}}
	}
	out := make(argskema.Issues, 0, len(iss))
	for _, it := range iss {
		if it.Rule == "" {
			it.Rule = rule
		}
		if it.Path == "" || it.Path == "/" {
			it.Path = path
		}
		out = append(out, it)
	}
	return out
}

// rebaseIssues prefixes child issue paths with the field path.
func rebaseIssues(base string, err error) argskema.Issues {
	iss, ok := argskema.AsIssues(err)
	if !ok {
		return argskema.Issues{{Path: base, Code: argskema.CodeParseError, Message: err.Error(), Cause: err}}
	}
	out := make(argskema.Issues, 0, len(iss))
	for _, it := range iss {
		p := it.Path
		switch {
		case p == "" || p == "/":
			p = base
		case p[0] == '/':
			p = base + p
		default:
			p = base + "/" + p
		}
		it.Path = p
		out = append(out, it)
	}
	return out
}
