package node

import "testing"

type fakeRegistry map[string]Node

func (r fakeRegistry) SQLNodeByID(id string) (Node, bool) {
	n, ok := r[id]
	return n, ok
}

func TestIncludeNodeResolvesAndSplices(t *testing.T) {
	frag, _ := NewStringNode("id, name")
	ctx := newTestContext(mapRoot())
	ctx.Registry = fakeRegistry{"columns": &SQLNode{ID: "columns", Nodes: NodeGroup{frag}}}

	inc := &IncludeNode{RefID: "columns"}
	q, _, err := inc.Accept(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q != "id, name" {
		t.Fatalf("unexpected query %q", q)
	}
}

func TestIncludeNodeMissingFragmentErrors(t *testing.T) {
	ctx := newTestContext(mapRoot())
	ctx.Registry = fakeRegistry{}

	inc := &IncludeNode{RefID: "missing"}
	if _, _, err := inc.Accept(ctx); err == nil {
		t.Fatalf("expected an error for an unresolved fragment")
	}
}

func TestIncludeNodeNoRegistryErrors(t *testing.T) {
	ctx := newTestContext(mapRoot())

	inc := &IncludeNode{RefID: "columns"}
	if _, _, err := inc.Accept(ctx); err == nil {
		t.Fatalf("expected an error when no registry is configured")
	}
}
