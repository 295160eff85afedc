package node

import "testing"

func TestSQLNodeAccept(t *testing.T) {
	body, _ := NewStringNode("id, name, status")
	s := &SQLNode{ID: "columns", Nodes: NodeGroup{body}}
	ctx := newTestContext(mapRoot())
	q, _, err := s.Accept(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q != "id, name, status" {
		t.Fatalf("unexpected query %q", q)
	}
}
