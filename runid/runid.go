// Package runid mints per-invocation identifiers used only for log
// correlation. A run ID never influences
// automaton construction, DFS exploration order, or the returned
// lasso — it is deliberately kept off the data path.
package runid

import "github.com/google/uuid"

// ID correlates one modelcheck.Check invocation's log lines.
type ID string

// New mints a fresh run ID.
func New() ID {
	return ID(uuid.New().String())
}

func (id ID) String() string { return string(id) }
