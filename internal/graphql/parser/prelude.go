package parser

// preludeSourceName tags the built-in declarations so their definitions can be
// filtered back out of the converted schema.
const preludeSourceName = "ampgen/prelude.graphql"

// preludeSDL declares the mapping directives and media scalars so annotated
// schemas validate without the caller having to repeat the boilerplate in
// every document. Kept in sync with the annotation decoder in pkg/graphql.
const preludeSDL = `directive @text(format: String, minLength: Int, maxLength: Int) on FIELD_DEFINITION
directive @number(minimum: Float, maximum: Float) on FIELD_DEFINITION
directive @list(minItems: Int, maxItems: Int) on FIELD_DEFINITION
directive @const(item: String, items: [String!]) on FIELD_DEFINITION
directive @example(items: [String!]) on FIELD_DEFINITION
directive @localized on FIELD_DEFINITION
directive @link on FIELD_DEFINITION
directive @ignore on FIELD_DEFINITION
directive @children on FIELD_DEFINITION
directive @sortable on FIELD_DEFINITION
directive @filterable on FIELD_DEFINITION

scalar AmplienceImage
scalar AmplienceVideo
`
