package node

import (
	"testing"

	"github.com/dynasql/dynasql/value"
)

func TestWhenNodeMatch(t *testing.T) {
	body, _ := NewStringNode("status = 'active'")
	w := &WhenNode{Test: mustParse(t, "status == 'active'"), Nodes: NodeGroup{body}}
	ctx := newTestContext(mapRoot(entry("status", value.StringValue("active"))))
	matched, err := w.Match(ctx.Scope)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !matched {
		t.Fatalf("expected when to match")
	}
}
