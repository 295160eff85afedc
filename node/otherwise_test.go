package node

import "testing"

func TestOtherwiseNodeAccept(t *testing.T) {
	body, _ := NewStringNode("and status = 'ACTIVE'")
	o := &OtherwiseNode{Nodes: NodeGroup{body}}
	ctx := newTestContext(mapRoot())
	q, _, err := o.Accept(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q != "and status = 'ACTIVE'" {
		t.Fatalf("unexpected query %q", q)
	}
}

func TestOtherwiseNodeEmpty(t *testing.T) {
	o := &OtherwiseNode{Nodes: NodeGroup{}}
	ctx := newTestContext(mapRoot())
	q, args, err := o.Accept(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q != "" || args != nil {
		t.Fatalf("expected empty emission, got %q %v", q, args)
	}
}
