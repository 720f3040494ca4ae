package beastxml

import "strings"

// CommentSafe reports whether text can appear verbatim inside an XML
// comment. The grammar forbids "--" anywhere in the body and a "-" as the
// final character, which would produce a "--->" terminator.
func CommentSafe(text string) bool {
	return !strings.Contains(text, "--") && !strings.HasSuffix(text, "-")
}

// EscapeAttr escapes text for use inside a double-quoted attribute value.
// Beyond the mandatory markup characters it escapes tabs, carriage returns
// and newlines, which an XML parser would otherwise normalise to spaces.
func EscapeAttr(text string) string {
	return attrEscaper.Replace(text)
}

var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"\t", "&#09;",
	"\n", "&#10;",
	"\r", "&#13;",
)
