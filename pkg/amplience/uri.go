package amplience

import "strings"

// Canonical schema URIs published by Dynamic Content. Content links and
// localized values reference these fixed fragments instead of generated ones.
const (
	// SchemaMetaURI is the $schema value every generated schema body declares.
	SchemaMetaURI = "http://bigcontent.io/cms/schema/v1/schema#"

	// CoreContentURI is the base definition every content type composes via allOf.
	CoreContentURI = "http://bigcontent.io/cms/schema/v1/core#/definitions/content"

	// ContentLinkURI marks a property as a reference to another content item.
	ContentLinkURI = "http://bigcontent.io/cms/schema/v1/core#/definitions/content-link"

	ImageLinkURI = "http://bigcontent.io/cms/schema/v1/core#/definitions/image-link"
	VideoLinkURI = "http://bigcontent.io/cms/schema/v1/core#/definitions/video-link"

	LocalizedStringURI = "http://bigcontent.io/cms/schema/v1/localization#/definitions/localized-string"
	LocalizedValueURI  = "http://bigcontent.io/cms/schema/v1/localization#/definitions/localized-value"
	LocalizedImageURI  = "http://bigcontent.io/cms/schema/v1/localization#/definitions/localized-image"
	LocalizedVideoURI  = "http://bigcontent.io/cms/schema/v1/localization#/definitions/localized-video"
)

// DefaultIconURL is used for content type settings when no icon is configured.
const DefaultIconURL = "https://bigcontent.io/cms/icons/ca-types-page.png"

// TypeURI derives the canonical identifier for a named type:
// host + "/" + kebab-case(name). Callers supply the host without a trailing
// slash; one is tolerated and collapsed so repeated calls stay deterministic.
func TypeURI(host, name string) string {
	return strings.TrimSuffix(host, "/") + "/" + KebabCase(name)
}

// DefinitionURI derives the identifier for an inline schema fragment by
// appending a definitions pointer to the type URI.
func DefinitionURI(host, name string) string {
	return TypeURI(host, name) + "#/definitions/" + KebabCase(name)
}
