package conf

import "strings"

// trimEnds removes leading and trailing ASCII blanks. Tabs and spaces
// only; no Unicode awareness.
func trimEnds(s string) string {
	return strings.Trim(s, " \t")
}

// findUnquoted returns the index of the first occurrence of target that
// is neither backslash-escaped nor inside a double-quoted region, or -1.
// A backslash toggles the escape flag; any other character resets it.
func findUnquoted(s string, target byte) int {
	escaped := false
	quoted := false
	for i := 0; i < len(s); i++ {
		switch ch := s[i]; {
		case ch == '\\':
			escaped = !escaped
		case ch == '"':
			if !escaped {
				quoted = !quoted
			}
			escaped = false
		default:
			if ch == target && !escaped && !quoted {
				return i
			}
			escaped = false
		}
	}
	return -1
}

// stripComment truncates s at the first unquoted '#' or "//". The scan
// shares the quoting rules of findUnquoted. A lone '/' is data, not a
// comment marker, and ends the scan: markers after it are kept as-is.
func stripComment(s string) string {
	escaped := false
	quoted := false
	for i := 0; i < len(s); i++ {
		switch ch := s[i]; {
		case ch == '\\':
			escaped = !escaped
		case ch == '"':
			if !escaped {
				quoted = !quoted
			}
			escaped = false
		default:
			if !escaped && !quoted {
				if ch == '#' {
					return s[:i]
				}
				if ch == '/' {
					if i+1 < len(s) && s[i+1] == '/' {
						return s[:i]
					}
					return s
				}
			}
			escaped = false
		}
	}
	return s
}

// stripQuotes removes a front/back wrapping pair. If s does not start
// with front it is returned unchanged; if it does, s must be non-empty
// after the front char and end with back, else the input is malformed.
// Only the first and last characters are examined.
func stripQuotes(s string, front, back byte, line int) (string, error) {
	if len(s) == 0 || s[0] != front {
		return s, nil
	}
	s = s[1:]
	if len(s) == 0 || s[len(s)-1] != back {
		return "", malformedf(line, s, "missing closing %c", back)
	}
	return s[:len(s)-1], nil
}

// unquote strips an optional double-quote wrap and, when one was
// present, decodes the \" and \\ escapes of the inner text. Other
// backslash sequences pass through untouched.
func unquote(s string, line int) (string, error) {
	if len(s) == 0 || s[0] != '"' {
		return s, nil
	}
	inner, err := stripQuotes(s, '"', '"', line)
	if err != nil {
		return "", err
	}
	return unescape(inner), nil
}

func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) && (s[i+1] == '"' || s[i+1] == '\\') {
			i++
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
