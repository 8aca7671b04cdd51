package synonomous

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Sentinel is prepended to generated identifier-style keys that would
// otherwise begin with a digit, keeping them usable as property accessors
// and distinct from positional index slots.
const Sentinel = '$'

// Names of the built-in transformers as registered in every new Registry.
const (
	TransformVerbatim  = "verbatim"
	TransformCamelCase = "toCamelCase"
	TransformAllCaps   = "toAllCaps"
	TransformTitle     = "toTitle"
)

var (
	// A maximal run of separators, optionally capturing the single
	// alphanumeric character that follows it.
	camelSeparators = regexp.MustCompile(`[^A-Za-z0-9]+[A-Za-z0-9]?`)

	capsSeparators = regexp.MustCompile(`[^A-Za-z0-9]+`)
	capsBoundary   = regexp.MustCompile(`([^_A-Z])([A-Z])`)

	titleSeparators = regexp.MustCompile(`[\s\-_]+`)
	titleBoundary   = regexp.MustCompile(`([^\sA-Z])([A-Z])`)
	titleAcronym    = regexp.MustCompile(`([A-Z]+)([A-Z][a-z])`)

	lowerLetters = regexp.MustCompile(`[a-z]`)
)

// Verbatim returns the label unaltered.
func Verbatim(s string) string {
	return s
}

// ToCamelCase rewrites a label as a camelCase identifier. Each run of
// separator characters is collapsed, capitalizing the character that follows
// it; the first letter is forced lower. A result that begins with a digit is
// prefixed with the sentinel so it remains accessor-safe.
//
//	ToCamelCase("background-color") == "backgroundColor"
//	ToCamelCase("1st-place") == "$1stPlace"
func ToCamelCase(s string) string {
	out := camelSeparators.ReplaceAllStringFunc(s, func(m string) string {
		last := m[len(m)-1]
		if isAlnum(last) {
			return strings.ToUpper(string(last))
		}
		return ""
	})
	switch {
	case out == "":
		return out
	case isDigit(out[0]):
		return string(Sentinel) + out
	case out[0] >= 'A' && out[0] <= 'Z':
		return strings.ToLower(out[:1]) + out[1:]
	}
	return out
}

// ToAllCaps rewrites a label as an ALL_CAPS identifier. Separator runs
// become single underscores, camelCase boundaries gain an underscore, and
// digit-initial results take the sentinel prefix before upper-casing.
//
//	ToAllCaps("background-color") == "BACKGROUND_COLOR"
//	ToAllCaps("borderLeft") == "BORDER_LEFT"
func ToAllCaps(s string) string {
	out := capsSeparators.ReplaceAllString(s, "_")
	out = capsBoundary.ReplaceAllString(out, "${1}_${2}")
	if out != "" && isDigit(out[0]) {
		out = string(Sentinel) + out
	}
	return strings.ToUpper(out)
}

// ToTitle rewrites a label as a human-readable, space-separated phrase with
// each word capitalized. Input with no lower-case letters at all is treated
// as uncased and lowered first. The result is not identifier-safe.
//
//	ToTitle("background-color") == "Background Color"
//	ToTitle("HTTPRequest") == "HTTP Request"
func ToTitle(s string) string {
	if !lowerLetters.MatchString(s) {
		s = strings.ToLower(s)
	}
	words := titleSeparators.Split(s, -1)
	for i, w := range words {
		if w == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	out := strings.Join(words, " ")
	out = titleAcronym.ReplaceAllString(out, "$1 $2")
	out = titleBoundary.ReplaceAllString(out, "$1 $2")
	return strings.TrimSpace(out)
}

func isAlnum(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
