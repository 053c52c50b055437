package pagebreaks

// Name identifies the preprocessor in book.toml ([preprocessor.pagebreaks]).
const Name = "pagebreaks"

// Process rewrites the content of every chapter in book according to the
// policy selected by renderer. Structure and metadata are left untouched.
// The book is modified in place and returned; a nil book yields nil.
func Process(book *Book, renderer string) *Book {
	policy := PolicyFor(renderer)
	book.ForEachChapter(func(ch *Chapter) {
		ch.Content = policy.Apply(ch.Content)
	})
	return book
}

// Preprocessor adapts Process to mdBook's preprocessor contract.
type Preprocessor struct{}

// New creates a Preprocessor.
func New() *Preprocessor {
	return &Preprocessor{}
}

// Name returns the preprocessor name.
func (p *Preprocessor) Name() string {
	return Name
}

// Run processes book for the renderer named in ctx.
func (p *Preprocessor) Run(ctx *Context, book *Book) (*Book, error) {
	if ctx == nil {
		return nil, ErrNilContext
	}
	if book == nil {
		return nil, ErrNilBook
	}
	return Process(book, ctx.Renderer), nil
}

// SupportsRenderer reports whether the preprocessor handles renderer.
// Always true: unknown renderers get markers stripped.
func (p *Preprocessor) SupportsRenderer(_ string) bool {
	return true
}
