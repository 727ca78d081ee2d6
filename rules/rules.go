// Package rules provides reusable cross-field refinements for object
// schemas: combinators over the validated option map, returning Issues with
// field paths. Universal rules (mutual exclusion of global flags) and
// command-specific rules (conditional requiredness) compose the same way.
package rules

import (
	"context"
	"fmt"
	"os"

	argskema "github.com/reoring/argskema"
)

// Rule is an object-level refinement over the validated option map.
type Rule = func(context.Context, map[string]any) error

// MutuallyExclusive fails when more than one of the named options is set.
// The reported path is the second option encountered, in the order given.
func MutuallyExclusive(names ...string) Rule {
	return func(_ context.Context, v map[string]any) error {
		var set []string
		for _, n := range names {
			if truthy(v[n]) {
				set = append(set, n)
			}
		}
		if len(set) < 2 {
			return nil
		}
		return argskema.Issues{{
			Path:    "/" + set[1],
			Code:    argskema.CodeConflict,
			Message: fmt.Sprintf("%s cannot be combined with %s", set[1], set[0]),
			Params:  map[string]string{"option": set[1], "conflictsWith": set[0]},
		}}
	}
}

// RequiredWhen requires the listed options whenever the discriminator option
// equals want. Missing options are reported in the order given, so the first
// violation is deterministic.
func RequiredWhen(field string, want any, then ...string) Rule {
	return func(_ context.Context, v map[string]any) error {
		got, ok := v[field]
		if !ok || got != want {
			return nil
		}
		var iss argskema.Issues
		for _, n := range then {
			if val, present := v[n]; !present || val == nil {
				iss = argskema.AppendIssues(iss, argskema.Issue{
					Path:    "/" + n,
					Code:    argskema.CodeRequired,
					Message: fmt.Sprintf("%s is required when %s is %v", n, field, want),
					Params:  map[string]string{"when": field, "equals": fmt.Sprint(want)},
				})
			}
		}
		if len(iss) > 0 {
			return iss
		}
		return nil
	}
}

// FileExists reports a missing referenced file as a validation issue on the
// field. Unset or non-string values are left to other rules.
func FileExists(field string) Rule {
	return func(_ context.Context, v map[string]any) error {
		p, ok := v[field].(string)
		if !ok || p == "" {
			return nil
		}
		if _, err := os.Stat(p); err != nil {
			return argskema.Issues{{
				Path:    "/" + field,
				Code:    argskema.CodeResourceMissing,
				Message: "referenced file does not exist",
				Cause:   err,
				Params:  map[string]string{"path": p},
			}}
		}
		return nil
	}
}

// truthy mirrors flag presence semantics: booleans must be true, strings
// non-empty, numbers non-zero; any other present value counts as set.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0
	default:
		return true
	}
}
