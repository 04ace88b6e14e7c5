// Package mapper exposes the transformation from annotated GraphQL object
// types to Amplience Dynamic Content documents. A Builder produces, per
// object type, the JSON schema body, the content type schema registration,
// and the content type settings document, plus the individual trait
// fragments (sortable, hierarchy, filterable) for callers that assemble
// documents themselves. The implementation lives in internal/mapper and is
// stateless: identical inputs always produce identical documents, and a
// single Builder is safe to share across goroutines.
package mapper
