package pagebreaks

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// Variant names used by mdBook's externally tagged BookItem encoding.
const (
	chapterVariant   = "Chapter"
	separatorVariant = "Separator"
	partTitleVariant = "PartTitle"
)

// Book is the document tree mdBook hands to preprocessors.
type Book struct {
	Sections []BookItem
}

// bookJSON mirrors mdBook's serialized Book.
type bookJSON struct {
	Sections      []BookItem      `json:"sections"`
	NonExhaustive json.RawMessage `json:"__non_exhaustive"`
}

// MarshalJSON encodes the book as mdBook expects it back on stdout.
func (b Book) MarshalJSON() ([]byte, error) {
	sections := b.Sections
	if sections == nil {
		sections = []BookItem{}
	}
	return marshalUnescaped(bookJSON{
		Sections:      sections,
		NonExhaustive: json.RawMessage("null"),
	})
}

// UnmarshalJSON decodes mdBook's serialized Book.
func (b *Book) UnmarshalJSON(data []byte) error {
	var raw bookJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	b.Sections = raw.Sections
	return nil
}

// ForEachChapter calls fn for every chapter in the book, depth first, in
// document order. Separators and part titles are skipped.
func (b *Book) ForEachChapter(fn func(*Chapter)) {
	if b == nil {
		return
	}
	forEachChapter(b.Sections, fn)
}

func forEachChapter(items []BookItem, fn func(*Chapter)) {
	for i := range items {
		ch := items[i].Chapter
		if items[i].Kind != KindChapter || ch == nil {
			continue
		}
		fn(ch)
		forEachChapter(ch.SubItems, fn)
	}
}

// ItemKind distinguishes the variants of a BookItem.
type ItemKind int

// Book item variants.
const (
	KindChapter ItemKind = iota
	KindSeparator
	KindPartTitle
)

func (k ItemKind) String() string {
	switch k {
	case KindChapter:
		return chapterVariant
	case KindSeparator:
		return separatorVariant
	case KindPartTitle:
		return partTitleVariant
	default:
		return "Unknown"
	}
}

// BookItem is one entry of the table of contents. Chapter is set only for
// KindChapter, PartTitle only for KindPartTitle.
type BookItem struct {
	Kind      ItemKind
	Chapter   *Chapter
	PartTitle string
}

// NewChapterItem wraps ch in a BookItem.
func NewChapterItem(ch *Chapter) BookItem {
	return BookItem{Kind: KindChapter, Chapter: ch}
}

// NewSeparator returns a separator item.
func NewSeparator() BookItem {
	return BookItem{Kind: KindSeparator}
}

// NewPartTitle returns a part title item.
func NewPartTitle(title string) BookItem {
	return BookItem{Kind: KindPartTitle, PartTitle: title}
}

// MarshalJSON encodes the item using mdBook's variant tags:
// {"Chapter": {...}}, "Separator" or {"PartTitle": "..."}.
func (it BookItem) MarshalJSON() ([]byte, error) {
	switch it.Kind {
	case KindChapter:
		ch := it.Chapter
		if ch == nil {
			ch = &Chapter{}
		}
		return marshalUnescaped(map[string]*Chapter{chapterVariant: ch})
	case KindSeparator:
		return marshalUnescaped(separatorVariant)
	case KindPartTitle:
		return marshalUnescaped(map[string]string{partTitleVariant: it.PartTitle})
	default:
		return nil, fmt.Errorf("%w: kind %d", ErrUnknownBookItem, int(it.Kind))
	}
}

// UnmarshalJSON decodes one of mdBook's BookItem variants.
// Returns ErrUnknownBookItem for any other variant.
func (it *BookItem) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	// Unit variants are encoded as a bare string
	if len(data) > 0 && data[0] == '"' {
		var tag string
		if err := json.Unmarshal(data, &tag); err != nil {
			return err
		}
		if tag != separatorVariant {
			return fmt.Errorf("%w: %q", ErrUnknownBookItem, tag)
		}
		*it = NewSeparator()
		return nil
	}

	var variants map[string]json.RawMessage
	if err := json.Unmarshal(data, &variants); err != nil {
		return err
	}
	if len(variants) != 1 {
		return fmt.Errorf("%w: expected exactly one variant, got %s", ErrUnknownBookItem, variantNames(variants))
	}

	if raw, ok := variants[chapterVariant]; ok {
		var ch Chapter
		if err := json.Unmarshal(raw, &ch); err != nil {
			return fmt.Errorf("decoding chapter: %w", err)
		}
		*it = NewChapterItem(&ch)
		return nil
	}
	if raw, ok := variants[partTitleVariant]; ok {
		var title string
		if err := json.Unmarshal(raw, &title); err != nil {
			return fmt.Errorf("decoding part title: %w", err)
		}
		*it = NewPartTitle(title)
		return nil
	}

	return fmt.Errorf("%w: %s", ErrUnknownBookItem, variantNames(variants))
}

// variantNames lists the keys of a decoded variant object, sorted.
func variantNames(variants map[string]json.RawMessage) string {
	names := make([]string, 0, len(variants))
	for name := range variants {
		names = append(names, name)
	}
	sort.Strings(names)
	return fmt.Sprintf("%q", names)
}

// Chapter is a content-bearing node. Only Content is rewritten by the
// preprocessor; every other field round-trips unchanged.
type Chapter struct {
	Name    string `json:"name"`
	Content string `json:"content"`
	// Number is nil for unnumbered chapters.
	Number   []int      `json:"number"`
	SubItems []BookItem `json:"sub_items"`
	// Path is nil for draft chapters, SourcePath for generated ones.
	Path        *string  `json:"path"`
	SourcePath  *string  `json:"source_path"`
	ParentNames []string `json:"parent_names"`
}

// MarshalJSON encodes empty lists as [] since mdBook rejects null there.
func (c Chapter) MarshalJSON() ([]byte, error) {
	type chapterJSON Chapter
	out := chapterJSON(c)
	if out.SubItems == nil {
		out.SubItems = []BookItem{}
	}
	if out.ParentNames == nil {
		out.ParentNames = []string{}
	}
	return marshalUnescaped(out)
}

// marshalUnescaped is json.Marshal without HTML escaping. Nested marshalers
// must use it too: an outer encoder does not unescape their output.
func marshalUnescaped(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
