package parser

import (
	"regexp"
	"strings"
)

// MaxTextLen is the ceiling applied to cleaned text. The downstream speech
// synthesis stage has practical input-length limits, so anything longer is
// truncated with a trailing marker.
const MaxTextLen = 5000

var (
	mdBold      = regexp.MustCompile(`\*\*([^*]+?)\*\*`)
	mdItalic    = regexp.MustCompile(`\*([^*]+?)\*`)
	mdUnder     = regexp.MustCompile(`_([^_]+?)_`)
	mdHeader    = regexp.MustCompile(`#+\s*`)
	mdLink      = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)
	mdBracket   = regexp.MustCompile(`\[([^\]]+)\]`)
	mdCode      = regexp.MustCompile("`([^`]+)`")
	mdQuote     = regexp.MustCompile(`(?m)^\s*>\s*`)
	mdListItem  = regexp.MustCompile(`(?m)^\s*[-*+•]\s*`)
	mdNumItem   = regexp.MustCompile(`(?m)^\s*\d+\.\s*`)
	whitespace  = regexp.MustCompile(`\s+`)
	parenSpaces = regexp.MustCompile(`\(\s+|\s+\)`)
)

// CleanText strips markdown decoration from model output and normalizes it
// into a single line of plain text suitable for display or speech synthesis.
// Parenthetical remarks are kept, with their inner padding removed.
func CleanText(text string) string {
	if text == "" {
		return ""
	}

	cleaned := mdBold.ReplaceAllString(text, "$1")
	cleaned = mdItalic.ReplaceAllString(cleaned, "$1")
	cleaned = mdUnder.ReplaceAllString(cleaned, "$1")
	cleaned = mdHeader.ReplaceAllString(cleaned, "")
	cleaned = mdLink.ReplaceAllString(cleaned, "$1")
	cleaned = mdBracket.ReplaceAllString(cleaned, "$1")
	cleaned = mdCode.ReplaceAllString(cleaned, "$1")
	cleaned = mdQuote.ReplaceAllString(cleaned, "")
	cleaned = mdListItem.ReplaceAllString(cleaned, "")
	cleaned = mdNumItem.ReplaceAllString(cleaned, "")

	cleaned = whitespace.ReplaceAllString(cleaned, " ")
	cleaned = parenSpaces.ReplaceAllStringFunc(cleaned, func(s string) string {
		return strings.Trim(s, " \t")
	})
	cleaned = strings.TrimSpace(cleaned)

	if runes := []rune(cleaned); len(runes) > MaxTextLen {
		cleaned = string(runes[:MaxTextLen]) + "..."
	}
	return cleaned
}
