// Package match provides name normalization, Levenshtein distance and
// candidate ranking used to suggest declared names for misspelled ones.
//
// Key functions:
//   - NormalizeIdent: normalizes identifiers for fuzzy matching
//   - Levenshtein: computes edit distance between strings
//   - Rank / Suggest: rank declared names against a misspelled one
package match
