package amplience

import (
	"regexp"
	"strings"
)

var splitWordsPattern = regexp.MustCompile(`[_\-\s]+`)

// KebabCase converts a GraphQL type or field name into the lowercase
// dash-separated form used in schema URIs and file names. It splits on
// underscores/dashes and camelCase boundaries.
func KebabCase(name string) string {
	segments := splitWords(name)
	for i, segment := range segments {
		segments[i] = strings.ToLower(segment)
	}
	return strings.Join(segments, "-")
}

// CapitalCase converts a name into a human-friendly label, splitting the same
// boundaries as KebabCase and title-casing each word.
func CapitalCase(name string) string {
	segments := splitWords(name)
	for i, segment := range segments {
		segments[i] = titleCase(segment)
	}
	return strings.Join(segments, " ")
}

func splitWords(name string) []string {
	if name == "" {
		return nil
	}

	words := splitWordsPattern.Split(name, -1)
	var segments []string
	for _, word := range words {
		if word == "" {
			continue
		}
		for _, part := range strings.Fields(splitCamel(word)) {
			segments = append(segments, part)
		}
	}
	return segments
}

func splitCamel(input string) string {
	var out strings.Builder
	for i, r := range input {
		if i > 0 && isBoundary(input, i, r) {
			out.WriteRune(' ')
		}
		out.WriteRune(r)
	}
	return out.String()
}

// isBoundary marks word breaks inside camelCase names. Digits stick to the
// word before them so names like PageV2 keep their version suffix intact.
func isBoundary(input string, index int, r rune) bool {
	prev := rune(input[index-1])
	return (isLower(prev) && isUpper(r)) || (isDigit(prev) && isLetter(r))
}

func isUpper(r rune) bool  { return r >= 'A' && r <= 'Z' }
func isLower(r rune) bool  { return r >= 'a' && r <= 'z' }
func isDigit(r rune) bool  { return r >= '0' && r <= '9' }
func isLetter(r rune) bool { return isUpper(r) || isLower(r) }

func titleCase(word string) string {
	if word == "" {
		return ""
	}
	lower := strings.ToLower(word)
	return strings.ToUpper(lower[:1]) + lower[1:]
}
