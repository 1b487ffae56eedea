package assets

// AssetLoader defines the contract for loading stylesheets and shortcode templates.
// Implementations may load from embedded assets, filesystem, a database, etc.
type AssetLoader interface {
	// LoadStyle loads a CSS style by name (without .css extension).
	// Returns ErrStyleNotFound if the style doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadStyle(name string) (string, error)

	// LoadTemplateSet loads the shortcode templates of a set by name.
	// Returns ErrTemplateSetNotFound if the set doesn't exist.
	// Returns ErrIncompleteTemplateSet if a kind's template is missing.
	LoadTemplateSet(name string) (*TemplateSet, error)
}
