package util

import "strings"

// Trim strips leading and trailing spaces. Only ' ' is treated as whitespace.
func Trim(s string) string {
	start := strings.IndexFunc(s, notSpace)
	if start == -1 {
		return ""
	}
	end := strings.LastIndexFunc(s, notSpace)

	return s[start : end+1]
}

// Split breaks s on delim and returns the trimmed, non-empty tokens
func Split(s string, delim byte) []string {
	var tokens []string

	pos := 0
	for pos < len(s) {
		// skip runs of spaces before the token
		if s[pos] == ' ' {
			pos++
			continue
		}

		delimPos := strings.IndexByte(s[pos:], delim)
		if delimPos == -1 {
			delimPos = len(s)
		} else {
			delimPos += pos
		}

		if token := Trim(s[pos:delimPos]); token != "" {
			tokens = append(tokens, token)
		}

		pos = delimPos + 1
	}

	return tokens
}

func ContainsString(s []string, str string) bool {
	for _, v := range s {
		if v == str {
			return true
		}
	}

	return false
}

func notSpace(r rune) bool {
	return r != ' '
}
