// Package pagebreaks is an mdBook preprocessor that turns page-break markers
// into renderer-specific output.
//
// # Quick Start
//
// Rewrite a single chapter body:
//
//	html := pagebreaks.ReplaceHTMLPageBreaks("# Intro\n{{---}}\nNext page")
//	// "# Intro\n<div class=\"mdbook_pagebreak\">&nbsp;</div>\nNext page"
//
// Process a whole book for a renderer:
//
//	ctx, book, err := pagebreaks.ParseInput(os.Stdin)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	book, err = pagebreaks.New().Run(ctx, book)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_ = pagebreaks.WriteOutput(os.Stdout, book)
//
// # Marker Semantics
//
// The marker is the literal token {{---}}. Only occurrences that start a line
// are replaced; a marker preceded by other text on its line is left as is.
// Text following a line-anchored marker is kept after the replacement.
//
// # Policies
//
// The renderer name selects one of two policies:
//
//   - RenderAsHTML for the "html" renderer: markers become
//     <div class="mdbook_pagebreak">&nbsp;</div>
//   - StripOnly for every other renderer: markers are removed
//
// Every renderer is supported; unknown renderers fall back to StripOnly.
//
// # Host Protocol
//
// mdBook writes a JSON array [context, book] to the preprocessor's stdin and
// reads the processed book back from stdout. ParseInput and WriteOutput
// implement that framing; CheckVersion compares the host's mdBook version
// with SupportedMDBookVersion.
package pagebreaks
