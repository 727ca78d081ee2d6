package schema

import (
	"strconv"
	"strings"

	argskema "github.com/reoring/argskema"
)

// String returns the minimal string leaf.
func String() argskema.Node { return stringNode{} }

// Number returns the minimal number leaf. Validation accepts float64 and int
// directly and coerces numeric strings, because the tokenizer is configured
// not to guess numeric typing on its own.
func Number() argskema.Node { return numberNode{} }

// Bool returns the minimal boolean leaf.
func Bool() argskema.Node { return boolNode{} }

// Enum returns a string leaf restricted to the given values. Order is
// preserved; it becomes the option's autocomplete list.
func Enum(values ...string) argskema.Node {
	return &enumNode{values: append([]string(nil), values...)}
}

// NativeEnum returns a leaf validated against member NAMES; the validated
// result carries the member's value.
func NativeEnum(members ...Member) argskema.Node {
	n := &nativeEnumNode{byName: make(map[string]any, len(members))}
	for _, m := range members {
		if _, dup := n.byName[m.Name]; dup {
			continue
		}
		n.names = append(n.names, m.Name)
		n.byName[m.Name] = m.Value
	}
	return n
}

// checkLeaf validates a present value against a leaf node and returns the
// canonical value. Unknown leaves pass through unchecked so a future kind
// degrades instead of rejecting everything.
func checkLeaf(path string, n argskema.Node, v any) (any, argskema.Issues) {
	switch node := n.(type) {
	case stringNode:
		s, ok := v.(string)
		if !ok {
			return nil, invalidType(path, "string", v)
		}
		return s, nil
	case numberNode:
		switch t := v.(type) {
		case float64:
			return t, nil
		case int:
			return float64(t), nil
		case int64:
			return float64(t), nil
		case string:
			f, err := strconv.ParseFloat(t, 64)
			if err != nil {
				return nil, argskema.Issues{{Path: path, Code: argskema.CodeInvalidType, Message: "expected a number", Cause: err, Params: map[string]string{"got": t}}}
			}
			return f, nil
		default:
			return nil, invalidType(path, "number", v)
		}
	case boolNode:
		switch t := v.(type) {
		case bool:
			return t, nil
		case string:
			if t == "true" || t == "false" {
				return t == "true", nil
			}
			return nil, invalidType(path, "boolean", v)
		default:
			return nil, invalidType(path, "boolean", v)
		}
	case *enumNode:
		s, ok := v.(string)
		if !ok {
			return nil, invalidType(path, "string", v)
		}
		for _, want := range node.values {
			if s == want {
				return s, nil
			}
		}
		return nil, invalidEnum(path, s, node.values)
	case *nativeEnumNode:
		s, ok := v.(string)
		if !ok {
			return nil, invalidType(path, "string", v)
		}
		val, member := node.byName[s]
		if !member {
			return nil, invalidEnum(path, s, node.names)
		}
		return val, nil
	default:
		return v, nil
	}
}

func invalidType(path, want string, got any) argskema.Issues {
	return argskema.Issues{{
		Path:    path,
		Code:    argskema.CodeInvalidType,
		Message: "expected a " + want,
		Params:  map[string]string{"want": want, "got": typeName(got)},
	}}
}

func invalidEnum(path, got string, allowed []string) argskema.Issues {
	joined := strings.Join(allowed, ", ")
	return argskema.Issues{{
		Path:    path,
		Code:    argskema.CodeInvalidEnum,
		Message: "value not in the permitted set",
		Hint:    "allowed: " + joined,
		Params:  map[string]string{"allowed": joined, "got": got},
	}}
}

func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64, int, int64:
		return "number"
	case map[string]any:
		return "object"
	default:
		return "unknown"
	}
}
