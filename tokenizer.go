package argskema

import "github.com/reoring/argskema/argv"

// TokenizerOptions maps the derived option table onto the argv tokenizer
// configuration: one alias entry per aliased option, and every option name in
// exactly one of the three per-kind key lists. Numeric coercion is left to
// the schema (ParseNumbers false), so the tokenizer never guesses types the
// validation layer did not ask for.
func TokenizerOptions(set OptionSet) argv.Options {
	opt := argv.Options{
		Alias:        make(map[string]string),
		StripAliased: true,
		StripDashed:  true,
		ParseNumbers: false,
	}
	for _, o := range set {
		if o.Alias != "" {
			opt.Alias[o.Name] = o.Alias
		}
		switch o.Kind {
		case ValueBool:
			opt.BoolKeys = append(opt.BoolKeys, o.Name)
		case ValueNumber:
			opt.NumberKeys = append(opt.NumberKeys, o.Name)
		default:
			opt.StringKeys = append(opt.StringKeys, o.Name)
		}
	}
	return opt
}
