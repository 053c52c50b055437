package pagebreaks

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// Context is the first element of mdBook's preprocessor input.
// Config is the book's configuration tree, kept verbatim.
type Context struct {
	Root          string          `json:"root"`
	Config        json.RawMessage `json:"config"`
	Renderer      string          `json:"renderer"`
	MDBookVersion string          `json:"mdbook_version"`
}

// ParseInput reads the [context, book] pair mdBook writes to a preprocessor.
func ParseInput(r io.Reader) (*Context, *Book, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrReadInput, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil, ErrEmptyInput
	}

	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if len(pair) != 2 {
		return nil, nil, fmt.Errorf("%w: expected [context, book], got %d elements", ErrInvalidInput, len(pair))
	}

	var ctx Context
	if err := json.Unmarshal(pair[0], &ctx); err != nil {
		return nil, nil, fmt.Errorf("%w: context: %w", ErrInvalidInput, err)
	}

	var book Book
	if err := json.Unmarshal(pair[1], &book); err != nil {
		return nil, nil, fmt.Errorf("%w: book: %w", ErrInvalidInput, err)
	}

	return &ctx, &book, nil
}

// WriteOutput writes book as the JSON document mdBook expects on stdout.
// HTML in chapter content is written unescaped.
func WriteOutput(w io.Writer, book *Book) error {
	if book == nil {
		return ErrNilBook
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(book); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}
