// Package argv is a minimist-style argument tokenizer: it turns a raw token
// sequence into a flat key->value map plus positional rest, guided only by
// the configuration handed to it. It knows nothing about schemas; typing
// decisions beyond the configured key lists belong to the caller.
package argv

import (
	"strconv"
	"strings"
)

// Options configures the tokenizer.
type Options struct {
	// Alias maps a primary option name to its short form.
	Alias map[string]string
	// Key lists partition option names by the value shape they expect.
	// BoolKeys never consume the following token; NumberKeys are coerced to
	// float64 best-effort.
	BoolKeys   []string
	NumberKeys []string
	StringKeys []string
	// StripAliased removes short keys from the result once canonicalized to
	// the primary name.
	StripAliased bool
	// StripDashed folds dashed keys (auth-type) into camel form (authType).
	StripDashed bool
	// ParseNumbers coerces numeric-looking values for keys not listed in any
	// key list. Off by default so unlisted keys stay strings.
	ParseNumbers bool
}

// Parse tokenizes args into a key->value map and the positional rest.
// Unknown keys are recorded as-is; rejecting them is the validator's job.
// Repeated keys keep the last value.
func Parse(args []string, opt Options) (map[string]any, []string) {
	out := make(map[string]any)
	var rest []string

	short := make(map[string]string, len(opt.Alias)) // short form -> primary
	for name, al := range opt.Alias {
		short[al] = name
	}
	bools := toSet(opt.BoolKeys)
	numbers := toSet(opt.NumberKeys)
	strs := toSet(opt.StringKeys)

	for i := 0; i < len(args); i++ {
		a := args[i]
		switch {
		case a == "--":
			rest = append(rest, args[i+1:]...)
			return out, rest
		case strings.HasPrefix(a, "--"):
			key, val, hasVal := strings.Cut(a[2:], "=")
			if opt.StripDashed {
				key = camelize(key)
			}
			i = assign(out, key, val, hasVal, args, i, opt, bools, numbers, strs)
		case strings.HasPrefix(a, "-") && len(a) > 1 && !isNumeric(a[1:]):
			raw, val, hasVal := strings.Cut(a[1:], "=")
			key := raw
			if primary, ok := short[raw]; ok {
				key = primary
			}
			i = assign(out, key, val, hasVal, args, i, opt, bools, numbers, strs)
			if key != raw && !opt.StripAliased {
				out[raw] = out[key]
			}
		default:
			rest = append(rest, a)
		}
	}
	return out, rest
}

// assign records one key, consuming the next token as its value when the key
// is not boolean and no inline =value was given. A non-boolean flag at the
// end of the line (or followed by another flag) records true, minimist-style.
func assign(out map[string]any, key, val string, hasVal bool, args []string, i int, opt Options, bools, numbers, strs map[string]struct{}) int {
	if _, ok := bools[key]; ok {
		if hasVal {
			out[key] = val == "true"
		} else {
			out[key] = true
		}
		return i
	}
	if !hasVal {
		if i+1 < len(args) && !looksLikeFlag(args[i+1]) {
			i++
			val = args[i]
		} else {
			out[key] = true
			return i
		}
	}
	out[key] = coerce(key, val, opt, numbers, strs)
	return i
}

func coerce(key, val string, opt Options, numbers, strs map[string]struct{}) any {
	if _, ok := numbers[key]; ok {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
		return val // leave it for the validator to reject
	}
	if _, ok := strs[key]; ok {
		return val
	}
	if opt.ParseNumbers && isNumeric(val) {
		f, _ := strconv.ParseFloat(val, 64)
		return f
	}
	return val
}

func toSet(keys []string) map[string]struct{} {
	m := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		m[k] = struct{}{}
	}
	return m
}

func looksLikeFlag(s string) bool {
	return len(s) > 1 && s[0] == '-' && !isNumeric(s[1:])
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

// camelize folds "auth-type" into "authType". Already-camel keys pass
// through untouched.
func camelize(key string) string {
	if !strings.Contains(key, "-") {
		return key
	}
	parts := strings.Split(key, "-")
	b := &strings.Builder{}
	for i, p := range parts {
		if p == "" {
			continue
		}
		if b.Len() == 0 && i == 0 {
			b.WriteString(p)
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	return b.String()
}
