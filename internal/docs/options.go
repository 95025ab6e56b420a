package docs

// Options holds the scaffold variant knobs. The observed setups differ in
// these values only, so they are configuration rather than contract.
type Options struct {
	// Theme forced into html_theme regardless of the generated value.
	Theme string
	// MemberOrder is substituted into autoapi_member_order.
	MemberOrder string
	// InsertPreamble controls the import-preamble insertion before the
	// general configuration section.
	InsertPreamble bool
	// Python is the interpreter used for pip invocations.
	Python string
}

// DefaultOptions returns the default variant.
func DefaultOptions() Options {
	return Options{
		Theme:          "furo",
		MemberOrder:    "groupwise",
		InsertPreamble: true,
		Python:         "python3",
	}
}
