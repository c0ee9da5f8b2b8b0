// Package diagnostic provides structured errors, warnings and notes
// collected while checking shape declaration files.
//
// Key capabilities:
//   - Unknown shape references with "did you mean" suggestions
//   - Duplicate and reserved names
//   - Nesting cycles
package diagnostic
