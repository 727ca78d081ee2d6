// Package schema is the declarative field-schema DSL. It builds the node
// trees consumed by argskema.Derive and re-validates tokenized argument maps
// against them.
//
//	s := schema.Object().
//		Field("authType", schema.Enum("password", "identityFile")).
//		Field("userName", schema.Optional(schema.String())).
//		MustBuild()
//
// Trees are finite, acyclic, and immutable once built. Validation collects
// issues per tier: field-level problems first (declaration order, then
// unknown keys), object-level refinements after, stopping at the first
// failing refinement.
package schema
