package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	argskema "github.com/reoring/argskema"
	"github.com/reoring/argskema/argv"
	"github.com/reoring/argskema/rules"
	"github.com/reoring/argskema/schema"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "login":
		loginCmd(os.Args[2:])
	case "options":
		optionsCmd()
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "argskema demo CLI\n\nUsage:\n  argskema login [--config file.yaml] --authType password --userName u --password p\n  argskema login --authType identityFile -i ~/.ssh/id_ed25519\n  argskema options\n\nNotes:\n  - `options` prints the option table derived from the login schema.\n  - `--config` preloads defaults from a YAML file; flags win over the file.")
}

// loginSchema is the example command schema: an auth-type discriminator with
// conditional requiredness, a defaulted port, and mutually exclusive global
// flags.
func loginSchema() *schema.ObjectNode {
	return schema.Object().
		Field("authType", schema.Default(schema.Enum("password", "identityFile"), "password")).
		Field("userName", schema.Optional(schema.String())).
		Field("password", schema.Optional(schema.String())).
		Field("identityFile", schema.Optional(schema.String())).
		Field("port", schema.Default(schema.Number(), float64(22))).
		Field("output", schema.Default(schema.Enum("text", "json"), "text")).
		Field("debug", schema.Optional(schema.Bool())).
		Field("verbose", schema.Optional(schema.Bool())).
		Refine("debugVerboseExclusive", rules.MutuallyExclusive("debug", "verbose")).
		Refine("passwordAuth", rules.RequiredWhen("authType", "password", "userName", "password")).
		Refine("identityFileAuth", rules.RequiredWhen("authType", "identityFile", "identityFile")).
		Refine("identityFileExists", rules.FileExists("identityFile")).
		MustBuild()
}

func loginAliases() argskema.Aliases {
	return argskema.Aliases{}.
		With("userName", "u").
		With("password", "p").
		With("identityFile", "i")
}

func loginCmd(args []string) {
	ctx := context.Background()
	s := loginSchema()

	cfgPath, args := popConfigFlag(args)

	set, err := argskema.Derive(s, loginAliases())
	if err != nil {
		fatalIssues(err)
	}
	values, _ := argv.Parse(args, argskema.TokenizerOptions(set))
	if cfgPath != "" {
		if err := preloadYAML(cfgPath, values); err != nil {
			fatalIssues(err)
		}
	}

	cfg, err := s.ParseValues(ctx, values)
	if err != nil {
		fatalIssues(err)
	}

	if cfg["output"] == "json" {
		b, jerr := json.MarshalIndent(cfg, "", "  ")
		if jerr != nil {
			fatalf("encode: %v", jerr)
		}
		fmt.Println(string(b))
		return
	}
	green := color.New(color.FgGreen)
	green.Fprintf(os.Stdout, "login validated (authType=%v, port=%v)\n", cfg["authType"], cfg["port"])
	for _, o := range set {
		if v, ok := cfg[o.Name]; ok {
			fmt.Printf("  %s: %v\n", o.Name, v)
		}
	}
}

func optionsCmd() {
	set, err := argskema.Derive(loginSchema(), loginAliases())
	if err != nil {
		fatalIssues(err)
	}
	b, jerr := json.MarshalIndent(set, "", "  ")
	if jerr != nil {
		fatalf("encode: %v", jerr)
	}
	fmt.Println(string(b))
}

// popConfigFlag removes "--config <path>" (or --config=<path>) from args
// before the schema-driven parse; the config file is this CLI's concern, not
// the login schema's.
func popConfigFlag(args []string) (string, []string) {
	out := make([]string, 0, len(args))
	var path string
	for i := 0; i < len(args); i++ {
		a := args[i]
		if a == "--config" && i+1 < len(args) {
			i++
			path = args[i]
			continue
		}
		if len(a) > len("--config=") && a[:len("--config=")] == "--config=" {
			path = a[len("--config="):]
			continue
		}
		out = append(out, a)
	}
	return path, out
}

// preloadYAML merges defaults from a YAML mapping under the parsed values;
// explicit flags win.
func preloadYAML(path string, values map[string]any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return argskema.Issues{{Path: "/config", Code: argskema.CodeResourceMissing, Message: "config file not readable", Cause: err, Params: map[string]string{"path": path}}}
	}
	var doc map[string]any
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return argskema.Issues{{Path: "/config", Code: argskema.CodeParseError, Message: "config file is not a YAML mapping", Cause: err}}
	}
	for k, v := range doc {
		if _, set := values[k]; !set {
			values[k] = v
		}
	}
	return nil
}

// fatalIssues prints a single-line diagnostic for the first violation (plus
// any remaining ones dimmed) and exits without proceeding.
func fatalIssues(err error) {
	red := color.New(color.FgRed, color.Bold)
	iss, ok := argskema.AsIssues(err)
	if !ok || len(iss) == 0 {
		red.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	first := iss[0]
	red.Fprintf(os.Stderr, "error: %s at %s: %s\n", first.Code, first.Path, first.Message)
	dim := color.New(color.Faint)
	for _, it := range iss[1:] {
		dim.Fprintf(os.Stderr, "  also: %s at %s: %s\n", it.Code, it.Path, it.Message)
	}
	os.Exit(1)
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
