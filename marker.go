package pagebreaks

import (
	"regexp"
)

// Marker is the page-break directive recognized in chapter content.
const Marker = "{{---}}"

// HTMLBreak is the fragment that replaces a marker for the HTML renderer.
const HTMLBreak = `<div class="mdbook_pagebreak">&nbsp;</div>`

// Precompiled regex patterns for performance.
var (
	// Marker at the start of any line. The marker is quoted so its braces
	// are matched literally.
	pageBreakPattern = regexp.MustCompile(`(?m)^` + regexp.QuoteMeta(Marker))
)

// ReplacePageBreaks replaces every marker that starts a line with replacement.
// Anything after the marker on the same line is kept. Markers preceded by
// other text on their line are not touched. The replacement is inserted
// literally.
func ReplacePageBreaks(content, replacement string) string {
	return pageBreakPattern.ReplaceAllLiteralString(content, replacement)
}

// ReplaceHTMLPageBreaks replaces line-anchored markers with HTMLBreak.
func ReplaceHTMLPageBreaks(content string) string {
	return ReplacePageBreaks(content, HTMLBreak)
}

// RemovePageBreaks deletes line-anchored markers.
func RemovePageBreaks(content string) string {
	return ReplacePageBreaks(content, "")
}

// CountPageBreaks returns the number of markers ReplacePageBreaks would replace.
func CountPageBreaks(content string) int {
	return len(pageBreakPattern.FindAllStringIndex(content, -1))
}
