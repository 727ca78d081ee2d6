package argskema_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	json "github.com/goccy/go-json"

	argskema "github.com/reoring/argskema"
)

// TestIssues_ErrorSummary: the error string shows the first few issues and a
// total for the rest.
func TestIssues_ErrorSummary(t *testing.T) {
	iss := argskema.Issues{
		{Path: "/a", Code: argskema.CodeRequired},
		{Path: "/b", Code: argskema.CodeInvalidType},
	}
	got := iss.Error()
	if got != "required at /a; invalid_type at /b" {
		t.Fatalf("unexpected summary: %q", got)
	}

	for i := 0; i < 5; i++ {
		iss = argskema.AppendIssues(iss, argskema.Issue{Path: fmt.Sprintf("/x%d", i), Code: argskema.CodeUnknownKey})
	}
	got = iss.Error()
	if !strings.Contains(got, "(total 7)") {
		t.Fatalf("expected total suffix, got %q", got)
	}
}

// TestAsIssues unwraps through error wrapping and rejects foreign errors.
func TestAsIssues(t *testing.T) {
	iss := argskema.Issues{{Path: "/f", Code: argskema.CodeRequired}}
	wrapped := fmt.Errorf("login failed: %w", iss)
	got, ok := argskema.AsIssues(wrapped)
	if !ok || len(got) != 1 || got[0].Path != "/f" {
		t.Fatalf("expected unwrap, got %v ok=%v", got, ok)
	}
	if _, ok := argskema.AsIssues(errors.New("plain")); ok {
		t.Fatalf("plain errors are not Issues")
	}
	if _, ok := argskema.AsIssues(nil); ok {
		t.Fatalf("nil is not Issues")
	}
}

// TestFirstIssue returns the deterministic first violation.
func TestFirstIssue(t *testing.T) {
	iss := argskema.Issues{
		{Path: "/userName", Code: argskema.CodeRequired},
		{Path: "/password", Code: argskema.CodeRequired},
	}
	it, ok := argskema.FirstIssue(iss)
	if !ok || it.Path != "/userName" {
		t.Fatalf("expected /userName first, got %+v", it)
	}
	if _, ok := argskema.FirstIssue(errors.New("plain")); ok {
		t.Fatalf("plain errors carry no first issue")
	}
}

// TestEncodeIssues renders the structured fields and flattens the cause.
func TestEncodeIssues(t *testing.T) {
	iss := argskema.Issues{{
		Path:    "/identityFile",
		Code:    argskema.CodeResourceMissing,
		Message: "referenced file does not exist",
		Cause:   errors.New("stat: no such file"),
		Params:  map[string]string{"path": "/tmp/nope"},
		Rule:    "identityFileExists",
	}}
	b, err := argskema.EncodeIssues(iss)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	var out []map[string]any
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("round-trip: %v", err)
	}
	if len(out) != 1 || out[0]["path"] != "/identityFile" || out[0]["code"] != "resource_missing" {
		t.Fatalf("unexpected encoding: %s", b)
	}
	if out[0]["cause"] != "stat: no such file" || out[0]["rule"] != "identityFileExists" {
		t.Fatalf("cause/rule missing: %s", b)
	}
}

// TestIssueAt is a thin constructor check.
func TestIssueAt(t *testing.T) {
	it := argskema.IssueAt("/port", argskema.CodeInvalidType, "expected a number", map[string]string{"got": "high"})
	if it.Path != "/port" || it.Params["got"] != "high" {
		t.Fatalf("unexpected issue: %+v", it)
	}
}
