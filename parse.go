package argskema

import (
	"context"

	"github.com/reoring/argskema/argv"
)

// ParseArgs is the primary entry point. It derives the option table for s,
// tokenizes args with the derived configuration, and re-validates the result
// against the original schema. Derivation failures abort before any parsing
// is attempted; validation failures come back as Issues with one entry per
// violated rule, first violation deterministic.
//
// Positional arguments are ignored here; callers that need them should run
// the pipeline pieces (Derive, TokenizerOptions, argv.Parse, ParseValues)
// themselves.
func ParseArgs(ctx context.Context, s Validator, aliases Aliases, args []string, opts ...DeriveOpt) (map[string]any, error) {
	if s == nil {
		return nil, singleIssue(CodeParseError, "nil schema")
	}
	set, err := Derive(s, aliases, opts...)
	if err != nil {
		return nil, toIssues(err)
	}
	values, _ := argv.Parse(args, TokenizerOptions(set))
	return s.ParseValues(ctx, values)
}
