package node

import "testing"

// Seed scenario 1.
func TestWhereNodeStripsLeadingAndOverride(t *testing.T) {
	cond, _ := NewStringNode(" and id = ?")
	w := NewWhereNode(NodeGroup{cond})
	ctx := newTestContext(mapRoot())
	q, _, err := w.Accept(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q != " where  id = ?" {
		t.Fatalf("unexpected query %q", q)
	}
}

func TestWhereNodeEmptyBodyEmitsNothing(t *testing.T) {
	w := NewWhereNode(NodeGroup{})
	ctx := newTestContext(mapRoot())
	q, args, err := w.Accept(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q != "" || args != nil {
		t.Fatalf("expected empty emission, got %q %v", q, args)
	}
}

func TestWhereNodeStripsUppercaseOrOverride(t *testing.T) {
	cond, _ := NewStringNode("OR status = 'x'")
	w := NewWhereNode(NodeGroup{cond})
	ctx := newTestContext(mapRoot())
	q, _, err := w.Accept(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q != " where status = 'x'" {
		t.Fatalf("unexpected query %q", q)
	}
}
