package node

import (
	"errors"
	"fmt"
	"sync"
)

// ErrFragmentNotFound is returned (wrapped with the offending id) when
// an include references a Sql fragment id the Registry never registered.
// Callers match it with errors.Is; dynasql.ErrFragmentNotFound is the
// same sentinel re-exported from the root package.
var ErrFragmentNotFound = errors.New("dynasql: sql fragment not found")

// Registry resolves a Sql fragment's ID to its Node, letting an
// IncludeNode reference a fragment declared elsewhere in the same
// compiled template (§3's Sql row: "referenced elsewhere by include").
type Registry interface {
	SQLNodeByID(id string) (Node, bool)
}

// IncludeNode splices in the Sql fragment named RefID, resolved against
// ctx's Registry no more than once. Resolution is guarded by a
// sync.Once rather than a bare nil-check: the containing node tree is
// held by a *Template that may sit in a shared, concurrently-read
// compiled-template cache, so two Executor.Query/Exec calls can reach
// the same IncludeNode's first Accept at the same time.
type IncludeNode struct {
	RefID string

	once       sync.Once
	resolved   Node
	resolveErr error
}

func (i *IncludeNode) Accept(ctx *Context) (query string, args []any, err error) {
	i.once.Do(func() { i.resolve(ctx) })
	if i.resolveErr != nil {
		return "", nil, i.resolveErr
	}
	return i.resolved.Accept(ctx)
}

func (i *IncludeNode) resolve(ctx *Context) {
	if ctx.Registry == nil {
		i.resolveErr = fmt.Errorf("include %q: no fragment registry configured", i.RefID)
		return
	}
	n, ok := ctx.Registry.SQLNodeByID(i.RefID)
	if !ok {
		i.resolveErr = fmt.Errorf("include %q: %w", i.RefID, ErrFragmentNotFound)
		return
	}
	i.resolved = n
}
