package mapper

import (
	"fmt"
	"strings"
)

// maxFilterablePaths is the number of simultaneous filter paths Dynamic
// Content accepts on a single content type.
const maxFilterablePaths = 5

// FilterLimitError reports a type declaring more filterable fields than the
// CMS accepts. This is a configuration error: the schema has to change.
type FilterLimitError struct {
	TypeName string
	Count    int
}

func (e *FilterLimitError) Error() string {
	return fmt.Sprintf("mapper: type %q declares %d filterable fields, the CMS supports at most %d", e.TypeName, e.Count, maxFilterablePaths)
}

// CycleError reports an object type reachable from itself through inline
// embedding. Without a link directive on some field along the way the
// expansion would never terminate.
type CycleError struct {
	TypeName string
	Path     []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("mapper: inline object cycle at %q (%s); break the cycle with a link directive", e.TypeName, strings.Join(e.Path, " -> "))
}
