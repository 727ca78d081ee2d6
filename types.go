package argskema

import "strconv"

// ValueKind partitions option values for the tokenizer.
type ValueKind int

const (
	ValueString ValueKind = iota // default; enum-backed options are strings too
	ValueNumber
	ValueBool
)

func (k ValueKind) String() string {
	switch k {
	case ValueNumber:
		return "number"
	case ValueBool:
		return "boolean"
	default:
		return "string"
	}
}

// MarshalJSON renders the kind as its name so derived tables read naturally
// in tooling output.
func (k ValueKind) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(k.String())), nil
}

// OptionSpec is the flattened per-field CLI metadata derived from one schema
// field. It is created with seeded defaults, mutated in place while the
// field's modifier chain is unwrapped, and frozen once resolution terminates.
type OptionSpec struct {
	Name         string    `json:"name"`
	Alias        string    `json:"alias,omitempty"` // short form; empty when unset
	Kind         ValueKind `json:"type"`
	Required     bool      `json:"required"`
	Autocomplete []string  `json:"autocomplete,omitempty"` // permitted values for enum-backed options
}

// OptionSet is the ordered option descriptor table. Order mirrors field
// declaration order in the root object; names are unique by construction.
type OptionSet []OptionSpec

// Lookup returns the descriptor for name, if present.
func (s OptionSet) Lookup(name string) (OptionSpec, bool) {
	for _, o := range s {
		if o.Name == name {
			return o, true
		}
	}
	return OptionSpec{}, false
}

// Names lists option names in table order.
func (s OptionSet) Names() []string {
	out := make([]string, 0, len(s))
	for _, o := range s {
		out = append(out, o.Name)
	}
	return out
}

// Aliases pairs field names with short option names. It is built alongside
// the schema and passed into Derive explicitly; nodes are never annotated in
// place.
type Aliases map[string]string

// With returns a copy of the set with one more pairing, so alias sets can be
// shared across derivations without aliasing surprises.
func (a Aliases) With(field, short string) Aliases {
	out := make(Aliases, len(a)+1)
	for k, v := range a {
		out[k] = v
	}
	out[field] = short
	return out
}

// DeriveOpt bundles derivation options.
type DeriveOpt struct {
	// MaxDepth bounds how many modifier layers a single field may stack
	// before derivation fails with schema_too_deep. 0 means DefaultMaxDepth.
	MaxDepth int
}

// DefaultMaxDepth is the unwrap bound applied when DeriveOpt.MaxDepth is
// unset. Real schemas stack a handful of modifiers; anything deeper is a
// malformed or hostile tree.
const DefaultMaxDepth = 32
