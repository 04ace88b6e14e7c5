package mapper

import (
	"github.com/goliatone/go-ampgen/pkg/amplience"
	pkggraphql "github.com/goliatone/go-ampgen/pkg/graphql"
)

// Sortable collects the sortable-tagged fields into a single "default" sort
// order. Types without sortable fields produce nil, not an empty trait.
func (m *Mapper) Sortable(def pkggraphql.TypeDefinition) *amplience.SortableTrait {
	var paths []string
	for _, field := range def.Fields {
		if field.Annotations.Sortable {
			paths = append(paths, "/"+field.Name)
		}
	}
	if len(paths) == 0 {
		return nil
	}
	return &amplience.SortableTrait{
		SortBy: []amplience.SortKey{{Key: "default", Paths: paths}},
	}
}

// Hierarchy lists the type's own URI followed by one URI per children-tagged
// field, derived from the field name. The trait always contains at least the
// type's own URI.
func (m *Mapper) Hierarchy(def pkggraphql.TypeDefinition) *amplience.HierarchyTrait {
	uris := []string{amplience.TypeURI(m.opts.Host, def.Name)}
	for _, field := range def.Fields {
		if field.Annotations.Children {
			uris = append(uris, amplience.TypeURI(m.opts.Host, field.Name))
		}
	}
	return &amplience.HierarchyTrait{ChildContentTypes: uris}
}

// Filterable expands the filterable-tagged fields into every non-empty path
// combination, ordered by combination size and then declaration order. Types
// without filterable fields produce nil; more than maxFilterablePaths fields
// is a configuration error.
func (m *Mapper) Filterable(def pkggraphql.TypeDefinition) (*amplience.FilterableTrait, error) {
	var names []string
	for _, field := range def.Fields {
		if field.Annotations.Filterable {
			names = append(names, field.Name)
		}
	}
	if len(names) == 0 {
		return nil, nil
	}
	if len(names) > maxFilterablePaths {
		return nil, &FilterLimitError{TypeName: def.Name, Count: len(names)}
	}

	var entries []amplience.FilterPath
	for _, combo := range combinations(names) {
		paths := make([]string, len(combo))
		for i, name := range combo {
			paths[i] = "/" + name
		}
		entries = append(entries, amplience.FilterPath{Paths: paths})
	}

	return &amplience.FilterableTrait{FilterBy: entries}, nil
}

func hasChildren(def pkggraphql.TypeDefinition) bool {
	for _, field := range def.Fields {
		if field.Annotations.Children {
			return true
		}
	}
	return false
}

// combinations returns every non-empty subset of items, smallest subsets
// first, preserving item order within each subset.
func combinations(items []string) [][]string {
	n := len(items)
	var out [][]string

	for size := 1; size <= n; size++ {
		idx := make([]int, size)
		for i := range idx {
			idx[i] = i
		}
		for {
			combo := make([]string, size)
			for i, j := range idx {
				combo[i] = items[j]
			}
			out = append(out, combo)

			i := size - 1
			for i >= 0 && idx[i] == n-size+i {
				i--
			}
			if i < 0 {
				break
			}
			idx[i]++
			for j := i + 1; j < size; j++ {
				idx[j] = idx[j-1] + 1
			}
		}
	}

	return out
}
