package rules_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	argskema "github.com/reoring/argskema"
	"github.com/reoring/argskema/rules"
)

// TestMutuallyExclusive reports a conflict only when two or more options are
// actually set, pointing at the later one.
func TestMutuallyExclusive(t *testing.T) {
	ctx := context.Background()
	rule := rules.MutuallyExclusive("debug", "verbose")

	if err := rule(ctx, map[string]any{"debug": true}); err != nil {
		t.Fatalf("single flag should pass: %v", err)
	}
	if err := rule(ctx, map[string]any{"debug": false, "verbose": true}); err != nil {
		t.Fatalf("false booleans are not set: %v", err)
	}
	err := rule(ctx, map[string]any{"debug": true, "verbose": true})
	iss, ok := argskema.AsIssues(err)
	if !ok || iss[0].Code != argskema.CodeConflict || iss[0].Path != "/verbose" {
		t.Fatalf("expected conflict at /verbose, got %v", err)
	}
}

// TestRequiredWhen only fires on the matching discriminator value and
// reports missing options in the declared order.
func TestRequiredWhen(t *testing.T) {
	ctx := context.Background()
	rule := rules.RequiredWhen("authType", "password", "userName", "password")

	if err := rule(ctx, map[string]any{"authType": "identityFile"}); err != nil {
		t.Fatalf("non-matching discriminator should pass: %v", err)
	}
	if err := rule(ctx, map[string]any{"authType": "password", "userName": "u", "password": "p"}); err != nil {
		t.Fatalf("satisfied rule should pass: %v", err)
	}
	err := rule(ctx, map[string]any{"authType": "password"})
	iss, ok := argskema.AsIssues(err)
	if !ok || len(iss) != 2 {
		t.Fatalf("expected two issues, got %v", err)
	}
	if iss[0].Path != "/userName" || iss[1].Path != "/password" {
		t.Fatalf("issue order should follow declaration: %v", iss)
	}
	if iss[0].Code != argskema.CodeRequired {
		t.Fatalf("expected required, got %s", iss[0].Code)
	}
}

// TestFileExists treats a missing referenced file as a field-level issue and
// ignores unset values.
func TestFileExists(t *testing.T) {
	ctx := context.Background()
	rule := rules.FileExists("identityFile")

	if err := rule(ctx, map[string]any{}); err != nil {
		t.Fatalf("unset field should pass: %v", err)
	}

	missing := filepath.Join(t.TempDir(), "nope")
	err := rule(ctx, map[string]any{"identityFile": missing})
	iss, ok := argskema.AsIssues(err)
	if !ok || iss[0].Code != argskema.CodeResourceMissing || iss[0].Path != "/identityFile" {
		t.Fatalf("expected resource_missing at /identityFile, got %v", err)
	}
	if iss[0].Params["path"] != missing {
		t.Fatalf("expected path param, got %v", iss[0].Params)
	}

	real := filepath.Join(t.TempDir(), "key")
	if werr := os.WriteFile(real, []byte("k"), 0o600); werr != nil {
		t.Fatalf("fixture: %v", werr)
	}
	if err := rule(ctx, map[string]any{"identityFile": real}); err != nil {
		t.Fatalf("existing file should pass: %v", err)
	}
}
