package mapper

import internalmapper "github.com/goliatone/go-ampgen/internal/mapper"

// Bundle re-exports the per-type document bundle produced by Build.
type Bundle = internalmapper.Bundle

// FilterLimitError re-exports the error returned when a type declares more
// filterable fields than the CMS supports.
type FilterLimitError = internalmapper.FilterLimitError

// CycleError re-exports the error returned when inline object embedding
// recurses into a type already on the embedding path.
type CycleError = internalmapper.CycleError
