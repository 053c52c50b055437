package assets

// DefaultStyle is the stylesheet written when no style is configured.
const DefaultStyle = "pagebreaks"

// defaultLoader is the package-level embedded loader.
var defaultLoader = NewEmbeddedLoader()

// LoadStyle loads a CSS file by name using the default embedded loader.
// The name should not include the .css extension or path components.
// Returns ErrStyleNotFound if the style does not exist.
// Returns ErrInvalidAssetName if the name contains path separators or dots.
func LoadStyle(name string) (string, error) {
	return defaultLoader.LoadStyle(name)
}

// AvailableStyles lists the names of the embedded styles.
func AvailableStyles() []string {
	return defaultLoader.ListStyles()
}
