package utils

import "strings"

func StringInSlice(a string, list []string) bool {
	for _, b := range list {
		if b == a {
			return true
		}
	}
	return false
}

// SplitAny splits s on every rune of separators, trimming and dropping empty parts.
func SplitAny(s string, separators string) []string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return strings.ContainsRune(separators, r)
	})

	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// Intersects reports whether a and b share at least one element.
func Intersects(a, b []string) bool {
	for _, item := range a {
		if StringInSlice(item, b) {
			return true
		}
	}
	return false
}

// Union returns the elements of a followed by those of b not already present.
func Union(a, b []string) []string {
	result := append([]string{}, a...)
	for _, item := range b {
		if !StringInSlice(item, result) {
			result = append(result, item)
		}
	}
	return result
}

func GetLeadingStringInBetweenSquareBrackets(str string) (bracketString string, theRestString string) {
	var (
		start = "["
		end   = "]"
	)
	s := strings.Index(str, start)
	if s == -1 {
		return
	}

	// Assume that if the open bracket is not at index 0,
	// it's an open bracket for an array of some sort within the string rather
	// than a marker for a prepended status code (i.e. elasticsearch)
	if s != 0 {
		return
	}

	e := strings.Index(str[s:], end)
	if e == -1 {
		return
	}

	return strings.Trim(str[s:e+1], " "), strings.Trim(str[e+1:], " ")
}
