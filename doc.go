package argskema

// Package argskema derives command-line option metadata from a declarative
// validation schema and re-validates the parsed result against it.
//
// - Derive walks a schema tree and projects each top-level field into a flat
//   OptionSpec (name, short alias, value kind, required flag, permitted
//   values), unwrapping Optional/Default/Refine/Intersect layers.
// - TokenizerOptions turns the derived OptionSet into argv.Options (alias
//   table plus per-kind key lists) for the minimist-style tokenizer.
// - ParseArgs runs the whole pipeline: derive -> tokenize -> validate, and
//   reports failures through the Issues error model (path, code, message).
//
// Design policy:
// - Keep only public APIs in the root package; the schema DSL lives under
//   schema/, cross-field rule combinators under rules/, the tokenizer under
//   argv/, and the demo CLI under cmd/argskema.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//  s := buildLoginSchema()
//  al := argskema.Aliases{}.With("identityFile", "i")
//  cfg, err := argskema.ParseArgs(ctx, s, al, os.Args[1:])
//
