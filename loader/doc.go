// Package loader reads subset collections from the plain-text input format.
//
// Format:
//
//   - One subset per line, elements as whitespace-separated non-negative
//     integers. A blank line is an empty subset. The trailing newline of the
//     last line does not add a subset.
//   - Legacy files start with two header lines, each holding a single
//     token: the largest element ID and the number of subsets.
//
// Load sniffs the legacy header with IsLegacyHeader and strips it unless
// WithForceNewFormat is given, in which case those lines are read as
// single-element subsets. The header values are reported in Instance.
//
// Errors (wrapped with the offending line number):
//
//   - ErrMalformedLine  a token is not a non-negative integer.
//   - ErrBadHeader      a legacy header value is not a non-negative integer.
package loader
