package node

import (
	"strings"
	"sync"
)

// stringBuilderPool reduces allocation pressure across the many small
// strings.Builder instances created while emitting a single statement.
var stringBuilderPool = sync.Pool{
	New: func() any {
		return &strings.Builder{}
	},
}

// maxPooledBuilderCap bounds how large a strings.Builder this pool will
// hold onto. A template whose Foreach/Trim emission happens to grow one
// builder very large (a bulk-insert with thousands of rows, say) would
// otherwise pin that backing array in the pool indefinitely, inflating
// every later, ordinary-sized emission's memory footprint for no benefit
// — discarding it instead and letting New allocate a fresh small one is
// cheaper over the pool's lifetime than keeping an oversized buffer warm.
const maxPooledBuilderCap = 64 << 10

func getStringBuilder() *strings.Builder {
	return stringBuilderPool.Get().(*strings.Builder)
}

func putStringBuilder(builder *strings.Builder) {
	if builder.Cap() > maxPooledBuilderCap {
		return
	}
	builder.Reset()
	stringBuilderPool.Put(builder)
}
