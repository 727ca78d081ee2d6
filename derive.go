package argskema

import "strconv"

// Derive projects each top-level field of the root object into one
// OptionSpec, in declaration order. Aliases seed the short names; the
// modifier chain of each field is unwrapped by resolveInto. A derivation
// failure aborts the whole table: no partial OptionSet is returned.
func Derive(root Object, aliases Aliases, opts ...DeriveOpt) (OptionSet, error) {
	if root == nil {
		return nil, singleIssue(CodeParseError, "nil schema")
	}
	var opt DeriveOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	maxDepth := opt.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	fields := root.Fields()
	set := make(OptionSet, 0, len(fields))
	for _, f := range fields {
		spec := OptionSpec{
			Name:     f.Name,
			Alias:    aliases[f.Name],
			Kind:     ValueString,
			Required: true,
		}
		if iss := resolveInto(f.Node, &spec, maxDepth); len(iss) > 0 {
			return nil, iss
		}
		set = append(set, spec)
	}
	return set, nil
}

// resolveInto reduces a field's node chain to terminal leaf information
// written into spec. Each iteration either unwraps one modifier layer or
// terminates; the depth bound turns a malformed unbounded chain into a
// schema_too_deep failure instead of a hang.
func resolveInto(n Node, spec *OptionSpec, maxDepth int) Issues {
	for depth := 0; n != nil; depth++ {
		if depth >= maxDepth {
			return Issues{{
				Path:    "/" + spec.Name,
				Code:    CodeSchemaTooDeep,
				Message: "modifier chain exceeds the maximum unwrap depth",
				Params:  map[string]string{"max": strconv.Itoa(maxDepth)},
			}}
		}
		switch n.Kind() {
		case KindOptional:
			spec.Required = false
			n = elemOf(n)
		case KindDefault:
			// The validation layer supplies the value when the flag is
			// absent, so a defaulted option is not user-required.
			spec.Required = false
			n = elemOf(n)
		case KindRefine:
			// Refinements run at validation time; option shape is unchanged.
			n = elemOf(n)
		case KindIntersect:
			// Follow the real constraint; annotation markers only carry
			// metadata. Two markers (or two constraints) terminate here.
			n = constraintOf(n)
		case KindString:
			spec.Kind = ValueString
			return nil
		case KindNumber:
			spec.Kind = ValueNumber
			return nil
		case KindBool:
			spec.Kind = ValueBool
			return nil
		case KindEnum:
			spec.Kind = ValueString
			if e, ok := n.(Enum); ok {
				spec.Autocomplete = append([]string(nil), e.Values()...)
			}
			return nil
		case KindNativeEnum:
			spec.Kind = ValueString
			if e, ok := n.(NamedEnum); ok {
				spec.Autocomplete = append([]string(nil), e.Names()...)
			}
			return nil
		default:
			// KindObject (only projected at the root), KindAnnotation, and
			// any future kind: terminal, keep whatever the spec holds.
			return nil
		}
	}
	return nil
}

func elemOf(n Node) Node {
	if w, ok := n.(Wrapper); ok {
		return w.Elem()
	}
	return nil
}

// constraintOf selects whichever intersection child is not an annotation
// marker. When both or neither qualify there is nothing left to follow.
func constraintOf(n Node) Node {
	p, ok := n.(Intersection)
	if !ok {
		return nil
	}
	l, r := p.Pair()
	lm := l != nil && l.Kind() == KindAnnotation
	rm := r != nil && r.Kind() == KindAnnotation
	switch {
	case lm && !rm:
		return r
	case rm && !lm:
		return l
	default:
		return nil
	}
}
