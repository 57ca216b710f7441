package render

import "strings"

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// attrEscaper also escapes whitespace characters that could break attribute parsing.
var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
	"\n", "&#10;",
	"\r", "&#13;",
	"\t", "&#9;",
)

// escapeHTML escapes text for safe inclusion in HTML content.
func escapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// escapeAttr escapes text for safe inclusion in HTML attribute values.
func escapeAttr(s string) string {
	return attrEscaper.Replace(s)
}

// escapeRawText keeps a raw text element from being closed early by its
// content. Matching is ASCII case-insensitive on the original bytes, since tag
// names are ASCII. "</STYLE" becomes "<\/STYLE", keeping the content's case.
func escapeRawText(tag, s string) string {
	i := indexClosing(s, tag)
	if i < 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 1)
	for i >= 0 {
		b.WriteString(s[:i])
		b.WriteString(`<\/`)
		s = s[i+2:]
		i = indexClosing(s, tag)
	}
	b.WriteString(s)
	return b.String()
}

// indexClosing returns the byte index of the first "</tag" in s, comparing
// the tag name ASCII case-insensitively, or -1.
func indexClosing(s, tag string) int {
	n := len(tag) + 2
	for i := 0; i+n <= len(s); i++ {
		if s[i] == '<' && s[i+1] == '/' && asciiEqualFold(s[i+2:i+n], tag) {
			return i
		}
	}
	return -1
}

func asciiEqualFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		x, y := a[i], b[i]
		if 'A' <= x && x <= 'Z' {
			x += 'a' - 'A'
		}
		if 'A' <= y && y <= 'Z' {
			y += 'a' - 'A'
		}
		if x != y {
			return false
		}
	}
	return true
}
