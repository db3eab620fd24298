// Package pkg provides small string helpers shared by the arlsp packages.
package pkg

import "strings"

// whitespace is the set of characters removed by the Trim helpers.
const whitespace = " \n\r\t"

// StartsWith reports whether s begins with prefix.
func StartsWith(s, prefix string) bool {
	return strings.HasPrefix(s, prefix)
}

// EndsWith reports whether s ends with suffix.
func EndsWith(s, suffix string) bool {
	return strings.HasSuffix(s, suffix)
}

// RemovePrefix returns s without prefix, or s unchanged if it does not start
// with prefix.
func RemovePrefix(s, prefix string) string {
	if StartsWith(s, prefix) {
		return s[len(prefix):]
	}

	return s
}

// TrimStart removes leading spaces, tabs, carriage returns and newlines.
func TrimStart(s string) string {
	return strings.TrimLeft(s, whitespace)
}

// TrimEnd removes trailing spaces, tabs, carriage returns and newlines.
func TrimEnd(s string) string {
	return strings.TrimRight(s, whitespace)
}

// Trim removes leading and trailing whitespace. Only space, tab, CR and LF
// count as whitespace.
func Trim(s string) string {
	return TrimEnd(TrimStart(s))
}

// TrimInPlace trims the string pointed to by s.
func TrimInPlace(s *string) {
	if s == nil {
		return
	}

	*s = Trim(*s)
}

// ToLower lower-cases ASCII letters only; other bytes are left untouched.
func ToLower(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' {
			return r + ('a' - 'A')
		}

		return r
	}, s)
}

// ToUpper upper-cases ASCII letters only; other bytes are left untouched.
func ToUpper(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' {
			return r - ('a' - 'A')
		}

		return r
	}, s)
}

// FirstLine returns s up to, but excluding, the first newline.
func FirstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}

	return s
}

// Replace replaces the first occurrence of from with to. The boolean reports
// whether a replacement happened.
func Replace(s, from, to string) (string, bool) {
	i := strings.Index(s, from)
	if i < 0 {
		return s, false
	}

	return s[:i] + to + s[i+len(from):], true
}

// ReplaceAll replaces every non-overlapping occurrence of from, scanning left
// to right and resuming after the inserted text. An empty from is a no-op.
func ReplaceAll(s, from, to string) string {
	if from == "" {
		return s
	}

	return strings.ReplaceAll(s, from, to)
}

// CodeBlock wraps code in a fenced markdown block tagged with language.
func CodeBlock(language, code string) string {
	return "```" + language + "\n" + code + "\n```"
}
