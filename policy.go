package pagebreaks

// HTMLRenderer is the mdBook renderer name that receives rendered page breaks.
const HTMLRenderer = "html"

// Policy decides what a page-break marker becomes.
type Policy int

// Supported policies. The zero value strips markers.
const (
	StripOnly Policy = iota
	RenderAsHTML
)

// PolicyFor maps a renderer name to its policy.
// Returns StripOnly for any renderer other than "html", including "".
func PolicyFor(renderer string) Policy {
	if renderer == HTMLRenderer {
		return RenderAsHTML
	}
	return StripOnly
}

// Replacement returns the text that substitutes each marker under p.
func (p Policy) Replacement() string {
	switch p {
	case RenderAsHTML:
		return HTMLBreak
	default:
		return ""
	}
}

// Apply rewrites content according to p.
func (p Policy) Apply(content string) string {
	return ReplacePageBreaks(content, p.Replacement())
}

func (p Policy) String() string {
	switch p {
	case RenderAsHTML:
		return "render-as-html"
	case StripOnly:
		return "strip-only"
	default:
		return "unknown"
	}
}
