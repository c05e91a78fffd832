package render

import "strings"

// escape replaces the HTML special characters in s. In attribute mode,
// newlines, carriage returns and tabs are also written as character
// references so the value survives on one line.
func escape(s string, attr bool) string {
	if !strings.ContainsAny(s, "&<>\"'\n\r\t") {
		return s
	}

	var buf strings.Builder
	buf.Grow(len(s) + 8)
	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '"':
			buf.WriteString("&quot;")
		case '\'':
			buf.WriteString("&#39;")
		case '\n', '\r', '\t':
			if attr {
				switch r {
				case '\n':
					buf.WriteString("&#10;")
				case '\r':
					buf.WriteString("&#13;")
				default:
					buf.WriteString("&#9;")
				}
				continue
			}
			buf.WriteRune(r)
		default:
			buf.WriteRune(r)
		}
	}
	return buf.String()
}
