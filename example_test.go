package pagebreaks_test

import (
	"fmt"
	"os"
	"strings"

	pagebreaks "github.com/alnah/mdbook-pagebreaks"
)

func ExampleReplaceHTMLPageBreaks() {
	fmt.Println(pagebreaks.ReplaceHTMLPageBreaks("# Title\n{{---}}\nNext"))
	// Output:
	// # Title
	// <div class="mdbook_pagebreak">&nbsp;</div>
	// Next
}

func ExampleRemovePageBreaks() {
	fmt.Printf("%q\n", pagebreaks.RemovePageBreaks("Hello {{---}} World\n{{---}}"))
	// Output:
	// "Hello {{---}} World\n"
}

func ExamplePolicyFor() {
	for _, r := range []string{"html", "pdf"} {
		fmt.Printf("%s: %s\n", r, pagebreaks.PolicyFor(r))
	}
	// Output:
	// html: render-as-html
	// pdf: strip-only
}

func ExamplePreprocessor_Run() {
	input := `[{"root": "/book", "config": {}, "renderer": "epub", "mdbook_version": "0.4.21"},
		{"sections": [{"Chapter": {"name": "One", "content": "A\n{{---}}\nB", "number": [1],
		"sub_items": [], "path": "one.md", "source_path": "one.md", "parent_names": []}}],
		"__non_exhaustive": null}]`

	ctx, book, err := pagebreaks.ParseInput(strings.NewReader(input))
	if err != nil {
		fmt.Println(err)
		return
	}
	book, err = pagebreaks.New().Run(ctx, book)
	if err != nil {
		fmt.Println(err)
		return
	}
	_ = pagebreaks.WriteOutput(os.Stdout, book)
	// Output:
	// {"sections":[{"Chapter":{"name":"One","content":"A\n\nB","number":[1],"sub_items":[],"path":"one.md","source_path":"one.md","parent_names":[]}}],"__non_exhaustive":null}
}
