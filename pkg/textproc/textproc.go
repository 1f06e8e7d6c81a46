package textproc

import (
	"html"
	"regexp"
	"strings"
)

var (
	reBoldStars   = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	reBoldUnder   = regexp.MustCompile(`__([^_]+)__`)
	reItalicStars = regexp.MustCompile(`\*([^*\n]+)\*`)
	// Underscore italics only when the markers sit on word boundaries,
	// so snake_case identifiers survive.
	reItalicUnder = regexp.MustCompile(`(^|[^\w])_([^_\n]+)_($|[^\w])`)
	reInlineCode  = regexp.MustCompile("`([^`\n]+)`")
	reHeading     = regexp.MustCompile(`(?m)^#{1,6}[ \t]+`)
	reBlankRuns   = regexp.MustCompile(`\n{3,}`)
)

// StripEmphasis removes markdown emphasis markers (bold, italics, inline
// code, heading hashes) while keeping the wrapped text.
func StripEmphasis(s string) string {
	s = reBoldStars.ReplaceAllString(s, "$1")
	s = reBoldUnder.ReplaceAllString(s, "$1")
	s = reItalicStars.ReplaceAllString(s, "$1")
	// The boundary groups consume the separator between adjacent spans,
	// so one pass can miss every other span. Each replacement removes a
	// marker pair and keeps the boundaries, so iterating converges.
	for {
		out := reItalicUnder.ReplaceAllString(s, "${1}${2}${3}")
		if out == s {
			break
		}
		s = out
	}
	s = reInlineCode.ReplaceAllString(s, "$1")
	s = reHeading.ReplaceAllString(s, "")
	return s
}

// DecodeEntities resolves HTML entities the model may have produced
// (&amp;, &quot;, &#39;, ...).
func DecodeEntities(s string) string {
	return html.UnescapeString(s)
}

// EscapeAngles re-escapes angle brackets so decoded output stays safe to
// embed in an HTML context.
func EscapeAngles(s string) string {
	s = strings.ReplaceAll(s, "<", "&lt;")
	return strings.ReplaceAll(s, ">", "&gt;")
}

// Clean runs the full post-processing chain over a model reply:
// strip emphasis, decode entities, escape angle brackets, collapse
// runs of blank lines and trim surrounding whitespace.
func Clean(s string) string {
	s = StripEmphasis(s)
	s = DecodeEntities(s)
	s = EscapeAngles(s)
	s = reBlankRuns.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
