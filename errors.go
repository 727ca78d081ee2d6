package argskema

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType = "invalid_type"
	CodeRequired    = "required"
	CodeUnknownKey  = "unknown_key"
	CodeInvalidEnum = "invalid_enum"
	CodeParseError  = "parse_error"
	// Derivation failures (fatal: no option table is produced)
	CodeSchemaTooDeep = "schema_too_deep"
	// Cross-field rule violations (business semantics)
	CodeConflict     = "conflict"
	CodeBusinessRule = "business_rule"
	// Referenced resources (missing files etc.), surfaced per field
	CodeResourceMissing = "resource_missing"
)

// Issue represents a single validation or derivation entry.
type Issue struct {
	Path    string // JSON Pointer into the option map (for example: /userName).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: remediation hints, permitted values, etc.
	Cause   error  // Optional: underlying error.
	// Params carries structured parameters (e.g., {"allowed":"a, b", "got":"c"})
	// for rendering and observability.
	Params map[string]string
	// Rule optionally records the rule name that produced this issue.
	Rule string
}

// Issues is a collection of validation errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. invalid_enum at /authType
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}
