package bot

import (
	"fmt"
	"html"
	"regexp"
	"strings"
)

// Handlers author replies in a small markdown dialect (bold, italic,
// strikethrough, inline code). renderMarkdown converts that to the HTML
// subset Telegram accepts, escaping everything else.

var (
	codeSpanPattern         = regexp.MustCompile("`([^`\n]+)`")
	boldPattern             = regexp.MustCompile(`\*\*(.+?)\*\*`)
	strikethroughPattern    = regexp.MustCompile(`~~([^~\n]+)~~`)
	italicUnderscorePattern = regexp.MustCompile(`_([^_\n]+)_`)
	italicStarPattern       = regexp.MustCompile(`\*([^*\n]+)\*`)
)

// Code spans are lifted out before the inline patterns run; Telegram rejects
// entities nested inside <code>, so stars and underscores in an expression or
// task id must never turn into tags. NUL cannot occur in message text, which
// makes it a safe placeholder delimiter.
func renderMarkdown(text string) string {
	out := html.EscapeString(text)

	var codeSpans []string
	out = codeSpanPattern.ReplaceAllStringFunc(out, func(match string) string {
		codeSpans = append(codeSpans, "<code>"+match[1:len(match)-1]+"</code>")
		return fmt.Sprintf("\x00%d\x00", len(codeSpans)-1)
	})

	out = boldPattern.ReplaceAllString(out, "<b>$1</b>")
	out = strikethroughPattern.ReplaceAllString(out, "<s>$1</s>")
	out = italicUnderscorePattern.ReplaceAllString(out, "<i>$1</i>")
	out = italicStarPattern.ReplaceAllString(out, "<i>$1</i>")

	for i, span := range codeSpans {
		out = strings.Replace(out, fmt.Sprintf("\x00%d\x00", i), span, 1)
	}
	return out
}
