package entities

import (
	"io"
	"strings"
)

const upperHex = "0123456789ABCDEF"

// needsPercent reports whether b is escaped in link targets. '/' and ",-."
// are kept so encoded names still work as path segments.
func needsPercent(b byte) bool {
	return b < ',' || b >= 127 || (b >= ':' && b <= '@') || b == '[' || b == ']'
}

// markupEntity returns the character reference for a reserved byte.
func markupEntity(b byte) (string, bool) {
	switch b {
	case '<':
		return "&lt;", true
	case '>':
		return "&gt;", true
	case '\'':
		return "&#39;", true
	case '&':
		return "&amp;", true
	case '"':
		return "&quot;", true
	}
	return "", false
}

// scanLimit returns how many bytes of s an encoder consumes: at most limit
// bytes, stopping before the first NUL byte. A negative limit means no limit.
func scanLimit(s string, limit int) int {
	n := len(s)
	if limit >= 0 && limit < n {
		n = limit
	}
	if idx := strings.IndexByte(s[:n], 0); idx >= 0 {
		n = idx
	}
	return n
}

// AppendPercentEncoded appends the percent-encoded form of the first
// limit bytes of s to dst.
func AppendPercentEncoded(dst []byte, s string, limit int) []byte {
	n := scanLimit(s, limit)
	for i := range n {
		b := s[i]
		if needsPercent(b) {
			dst = append(dst, '%', upperHex[b>>4], upperHex[b&0x0f])
			continue
		}
		dst = append(dst, b)
	}
	return dst
}

// AppendMarkupEscaped appends the markup-escaped form of the first limit
// bytes of s to dst.
func AppendMarkupEscaped(dst []byte, s string, limit int) []byte {
	n := scanLimit(s, limit)
	for i := range n {
		if entity, ok := markupEntity(s[i]); ok {
			dst = append(dst, entity...)
			continue
		}
		dst = append(dst, s[i])
	}
	return dst
}

// PercentEncode escapes s for use in a link path.
func PercentEncode(s string) string {
	return string(AppendPercentEncoded(make([]byte, 0, len(s)), s, -1))
}

// MarkupEscape escapes the five reserved HTML/XML characters of s.
func MarkupEscape(s string) string {
	return string(AppendMarkupEscaped(make([]byte, 0, len(s)), s, -1))
}

// WritePercentEncoded streams the percent-encoded form of s[:limit] to w.
func WritePercentEncoded(w io.Writer, s string, limit int) error {
	_, err := w.Write(AppendPercentEncoded(nil, s, limit))
	return err
}

// WriteMarkupEscaped streams the markup-escaped form of s[:limit] to w.
func WriteMarkupEscaped(w io.Writer, s string, limit int) error {
	_, err := w.Write(AppendMarkupEscaped(nil, s, limit))
	return err
}
