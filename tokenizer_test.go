package argskema_test

import (
	"testing"

	argskema "github.com/reoring/argskema"
	g "github.com/reoring/argskema/schema"
)

// TestTokenizerOptions_Partitioning: every option name lands in exactly one
// per-kind list, and only aliased options enter the alias map.
func TestTokenizerOptions_Partitioning(t *testing.T) {
	s := g.Object().
		Field("authType", g.Enum("password", "identityFile")).
		Field("userName", g.Optional(g.String())).
		Field("port", g.Default(g.Number(), float64(22))).
		Field("debug", g.Optional(g.Bool())).
		MustBuild()

	al := argskema.Aliases{}.With("userName", "u")
	set, err := argskema.Derive(s, al)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	opt := argskema.TokenizerOptions(set)

	if len(opt.Alias) != 1 || opt.Alias["userName"] != "u" {
		t.Fatalf("alias map mismatch: %v", opt.Alias)
	}
	seen := map[string]int{}
	for _, k := range opt.StringKeys {
		seen[k]++
	}
	for _, k := range opt.NumberKeys {
		seen[k]++
	}
	for _, k := range opt.BoolKeys {
		seen[k]++
	}
	for _, name := range set.Names() {
		if seen[name] != 1 {
			t.Fatalf("option %s should appear in exactly one list, got %d", name, seen[name])
		}
	}
	if len(opt.NumberKeys) != 1 || opt.NumberKeys[0] != "port" {
		t.Fatalf("number list mismatch: %v", opt.NumberKeys)
	}
	if len(opt.BoolKeys) != 1 || opt.BoolKeys[0] != "debug" {
		t.Fatalf("bool list mismatch: %v", opt.BoolKeys)
	}
	// enums are string options
	if len(opt.StringKeys) != 2 {
		t.Fatalf("string list mismatch: %v", opt.StringKeys)
	}
	if !opt.StripAliased || !opt.StripDashed || opt.ParseNumbers {
		t.Fatalf("derived tokenizer flags mismatch: %+v", opt)
	}
}
