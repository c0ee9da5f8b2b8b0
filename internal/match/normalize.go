package match

import (
	"strings"
	"unicode"
)

// NormalizeIdent normalizes an identifier for fuzzy matching.
// CamelCase is split into tokens, the tokens are joined and lowercased, and
// separators (_, -, space) are dropped, so "zipCode", "zip_code" and "ZipCode"
// all normalize to "zipcode".
func NormalizeIdent(s string) string {
	return strings.Join(TokenizeIdent(s), "")
}

// TokenizeIdent splits an identifier into lowercase tokens.
func TokenizeIdent(s string) []string {
	tokens := tokenizeCamelCase(s)
	for i, t := range tokens {
		tokens[i] = strings.ToLower(t)
	}

	return tokens
}

// tokenizeCamelCase splits a CamelCase, camelCase or separated identifier into tokens.
// Examples:
//   - "postalCode" -> ["postal", "Code"]
//   - "HTTPProxy" -> ["HTTP", "Proxy"]
//   - "first_name" -> ["first", "name"]
func tokenizeCamelCase(s string) []string {
	var tokens []string

	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			flush()
			continue
		}

		if i > 0 && startsToken(runes, i) {
			flush()
		}

		current.WriteRune(r)
	}

	flush()

	return tokens
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}

// startsToken reports whether runes[i] opens a new CamelCase token.
func startsToken(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]

	if !unicode.IsUpper(r) || isSeparator(prev) {
		return false
	}

	// "postalCode": lower -> upper
	if !unicode.IsUpper(prev) {
		return true
	}

	// "HTTPProxy": last upper of an acronym followed by lower
	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
