// SPDX-License-Identifier: MIT

package winrate

// Default separators for the serialized grid: "r0c0,r0c1;r1c0,r1c1".
const (
	DefaultRowSeparator   = ";"
	DefaultValueSeparator = ","
)

// Option customizes Parse.
type Option func(*parseOptions)

type parseOptions struct {
	rowSep   string
	valueSep string
}

func defaultParseOptions() parseOptions {
	return parseOptions{rowSep: DefaultRowSeparator, valueSep: DefaultValueSeparator}
}

// WithRowSeparator sets the separator between grid rows. Empty keeps the default.
func WithRowSeparator(sep string) Option {
	return func(o *parseOptions) {
		if sep != "" {
			o.rowSep = sep
		}
	}
}

// WithValueSeparator sets the separator between values of one row. Empty keeps the default.
func WithValueSeparator(sep string) Option {
	return func(o *parseOptions) {
		if sep != "" {
			o.valueSep = sep
		}
	}
}
