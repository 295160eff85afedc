package node

import (
	"testing"

	"github.com/dynasql/dynasql/value"
)

// Seed scenario 3: choose/when/otherwise.
func TestChooseFirstMatchWins(t *testing.T) {
	activeBody, _ := NewStringNode("where status = 'active'")
	fallbackBody, _ := NewStringNode("where status is not null")

	c := &ChooseNode{
		WhenNodes: []Node{
			&WhenNode{Test: mustParse(t, "status == 'active'"), Nodes: NodeGroup{activeBody}},
		},
		OtherwiseNode: &OtherwiseNode{Nodes: NodeGroup{fallbackBody}},
	}

	ctx := newTestContext(mapRoot(entry("status", value.StringValue("other"))))
	q, _, err := c.Accept(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q != "where status is not null" {
		t.Fatalf("expected otherwise branch, got %q", q)
	}
}

func TestChooseStopsAtFirstTruthyWhen(t *testing.T) {
	first, _ := NewStringNode("first")
	second, _ := NewStringNode("second")

	c := &ChooseNode{
		WhenNodes: []Node{
			&WhenNode{Test: mustParse(t, "true"), Nodes: NodeGroup{first}},
			&WhenNode{Test: mustParse(t, "true"), Nodes: NodeGroup{second}},
		},
	}
	ctx := newTestContext(mapRoot())
	q, _, err := c.Accept(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q != "first" {
		t.Fatalf("expected only the first matching branch to emit, got %q", q)
	}
}
