package argskema

import (
	json "github.com/goccy/go-json"
)

// IssueAt creates an Issue at the given path with provided code, message and
// params. Convenience for call sites with many parameters.
func IssueAt(path, code, msg string, params map[string]string) Issue {
	return Issue{Path: path, Code: code, Message: msg, Params: params}
}

// FirstIssue returns the first issue carried by err, if any. The pipeline
// guarantees a deterministic first violation, so this is the one a CLI should
// print on the failure path.
func FirstIssue(err error) (Issue, bool) {
	iss, ok := AsIssues(err)
	if !ok || len(iss) == 0 {
		return Issue{}, false
	}
	return iss[0], true
}

// issueJSON is the wire shape for EncodeIssues; Cause is flattened to text.
type issueJSON struct {
	Path    string            `json:"path"`
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Hint    string            `json:"hint,omitempty"`
	Cause   string            `json:"cause,omitempty"`
	Params  map[string]string `json:"params,omitempty"`
	Rule    string            `json:"rule,omitempty"`
}

// EncodeIssues renders issues as a JSON array for tooling output.
func EncodeIssues(iss Issues) ([]byte, error) {
	out := make([]issueJSON, 0, len(iss))
	for _, it := range iss {
		j := issueJSON{Path: it.Path, Code: it.Code, Message: it.Message, Hint: it.Hint, Params: it.Params, Rule: it.Rule}
		if it.Cause != nil {
			j.Cause = it.Cause.Error()
		}
		out = append(out, j)
	}
	return json.Marshal(out)
}

// singleIssue wraps one root-level issue as Issues.
func singleIssue(code, msg string) Issues {
	return Issues{Issue{Path: "/", Code: code, Message: msg}}
}

// toIssues converts an error into Issues, wrapping foreign errors with
// CodeParseError.
func toIssues(err error) Issues {
	if err == nil {
		return nil
	}
	if iss, ok := AsIssues(err); ok {
		return iss
	}
	return Issues{Issue{Path: "/", Code: CodeParseError, Message: err.Error(), Cause: err}}
}
