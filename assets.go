package bento

import (
	"errors"

	"github.com/alnah/go-bento/internal/assets"
)

// Asset name constants for built-in styles and templates.
const (
	// DefaultStyle is the name of the built-in module stylesheet.
	DefaultStyle = "default"

	// DefaultTemplateSet is the name of the built-in shortcode template set.
	DefaultTemplateSet = "default"
)

// AssetLoader defines the contract for loading module stylesheets and
// shortcode templates. Implementations may load from filesystem, embedded
// assets, a database, etc.
//
// The library provides NewAssetLoader() for filesystem-based loading with
// fallback to embedded defaults. Implement this interface for custom backends.
type AssetLoader interface {
	// LoadStyle loads a CSS style by name (without .css extension).
	// Returns ErrStyleNotFound if the style doesn't exist.
	LoadStyle(name string) (string, error)

	// LoadTemplateSet loads the shortcode templates of a set by name.
	// Returns ErrTemplateSetNotFound if the template set doesn't exist.
	// Returns ErrIncompleteTemplateSet if a kind's template is missing.
	LoadTemplateSet(name string) (*TemplateSet, error)
}

// TemplateSet holds one html/template source per shortcode kind.
// Templates receive the decoded shortcode: Project{Title, Desc, Link, Image,
// HasLink}, Metric{Label, Value, Unit}, Badge{Text, Color, Classes},
// Tip{Count, Label}.
type TemplateSet struct {
	Name    string // Identifier (name or path)
	Project string
	Metric  string
	Badge   string
	Tip     string
}

// NewTemplateSet creates a TemplateSet from template sources.
// This is a convenience constructor for users providing templates directly.
func NewTemplateSet(name, project, metric, badge, tip string) *TemplateSet {
	return &TemplateSet{
		Name:    name,
		Project: project,
		Metric:  metric,
		Badge:   badge,
		Tip:     tip,
	}
}

// NewAssetLoader creates an AssetLoader for the given base path.
// If basePath is empty, returns a loader using only embedded assets.
// If basePath is set, custom assets take precedence with fallback to embedded.
//
// The basePath directory should contain:
//   - styles/{name}.css for module stylesheets
//   - templates/{name}/project.html, metric.html, badge.html and tip.html
//
// Returns ErrInvalidAssetPath if basePath is set but not a valid, readable directory.
func NewAssetLoader(basePath string) (AssetLoader, error) {
	resolver, err := assets.NewAssetResolver(basePath)
	if err != nil {
		return nil, convertAssetError(err)
	}
	return &assetLoaderAdapter{resolver: resolver}, nil
}

// assetLoaderAdapter wraps internal AssetResolver to return public types.
type assetLoaderAdapter struct {
	resolver *assets.AssetResolver
}

func (a *assetLoaderAdapter) LoadStyle(name string) (string, error) {
	content, err := a.resolver.LoadStyle(name)
	if err != nil {
		return "", convertAssetError(err)
	}
	return content, nil
}

func (a *assetLoaderAdapter) LoadTemplateSet(name string) (*TemplateSet, error) {
	ts, err := a.resolver.LoadTemplateSet(name)
	if err != nil {
		return nil, convertTemplateSetError(err)
	}
	return fromInternalTemplateSet(ts), nil
}

// publicToInternalAdapter wraps a public AssetLoader as an internal one.
type publicToInternalAdapter struct {
	pub AssetLoader
}

func (a *publicToInternalAdapter) LoadStyle(name string) (string, error) {
	return a.pub.LoadStyle(name)
}

func (a *publicToInternalAdapter) LoadTemplateSet(name string) (*assets.TemplateSet, error) {
	ts, err := a.pub.LoadTemplateSet(name)
	if err != nil {
		return nil, err
	}
	return ts.toInternal(), nil
}

func (ts *TemplateSet) toInternal() *assets.TemplateSet {
	return &assets.TemplateSet{
		Name:    ts.Name,
		Project: ts.Project,
		Metric:  ts.Metric,
		Badge:   ts.Badge,
		Tip:     ts.Tip,
	}
}

func fromInternalTemplateSet(ts *assets.TemplateSet) *TemplateSet {
	return NewTemplateSet(ts.Name, ts.Project, ts.Metric, ts.Badge, ts.Tip)
}

// convertAssetError maps internal asset errors to public errors.
func convertAssetError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, assets.ErrStyleNotFound):
		return wrapError(ErrStyleNotFound, err)
	case errors.Is(err, assets.ErrTemplateSetNotFound):
		return wrapError(ErrTemplateSetNotFound, err)
	case errors.Is(err, assets.ErrIncompleteTemplateSet):
		return wrapError(ErrIncompleteTemplateSet, err)
	case errors.Is(err, assets.ErrInvalidBasePath):
		return wrapError(ErrInvalidAssetPath, err)
	case errors.Is(err, assets.ErrPathTraversal):
		return wrapError(ErrInvalidAssetPath, err)
	case errors.Is(err, assets.ErrInvalidAssetName):
		return wrapError(ErrStyleNotFound, err) // Invalid name means not found
	default:
		return err
	}
}

// convertTemplateSetError is convertAssetError for template set lookups,
// where an invalid name means the set does not exist.
func convertTemplateSetError(err error) error {
	if errors.Is(err, assets.ErrInvalidAssetName) {
		return wrapError(ErrTemplateSetNotFound, err)
	}
	return convertAssetError(err)
}

// wrapError creates a new error that wraps the original with a public sentinel.
// The resulting error preserves the original message via Error() and supports
// errors.Is() matching against the public sentinel via Unwrap().
func wrapError(sentinel, original error) error {
	return &wrappedAssetError{sentinel: sentinel, original: original}
}

type wrappedAssetError struct {
	sentinel error
	original error
}

func (e *wrappedAssetError) Error() string {
	return e.original.Error()
}

// Unwrap returns the public sentinel for errors.Is() matching.
func (e *wrappedAssetError) Unwrap() error {
	return e.sentinel
}
