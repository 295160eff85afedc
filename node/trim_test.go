package node

import "testing"

func TestTrimNodeStripsLeadingOverridePreservingWhitespace(t *testing.T) {
	body, _ := NewStringNode(" and id = ?")
	trim := &TrimNode{
		Nodes:           NodeGroup{body},
		Prefix:          " where ",
		PrefixOverrides: []string{"and ", "AND ", "or ", "OR "},
	}
	ctx := newTestContext(mapRoot())
	q, _, err := trim.Accept(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q != " where  id = ?" {
		t.Fatalf("unexpected query %q", q)
	}
}

func TestTrimNodeLongestOverrideWins(t *testing.T) {
	body, _ := NewStringNode("AND id = ?")
	trim := &TrimNode{
		Nodes:           NodeGroup{body},
		Prefix:          " where ",
		PrefixOverrides: []string{"A", "AND "},
	}
	ctx := newTestContext(mapRoot())
	q, _, err := trim.Accept(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q != " where id = ?" {
		t.Fatalf("unexpected query %q", q)
	}
}

func TestTrimNodeNoOverrideMatchLeavesBodyIntact(t *testing.T) {
	body, _ := NewStringNode("id = ?")
	trim := &TrimNode{
		Nodes:           NodeGroup{body},
		Prefix:          " where ",
		PrefixOverrides: []string{"and ", "or "},
	}
	ctx := newTestContext(mapRoot())
	q, _, err := trim.Accept(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q != " where id = ?" {
		t.Fatalf("unexpected query %q", q)
	}
}

func TestTrimNodeEmptyBodyEmitsNothing(t *testing.T) {
	trim := &TrimNode{Nodes: NodeGroup{}, Prefix: " where "}
	ctx := newTestContext(mapRoot())
	q, args, err := trim.Accept(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q != "" || args != nil {
		t.Fatalf("expected empty emission, got %q %v", q, args)
	}
}

func TestTrimNodeSuffixOverride(t *testing.T) {
	body, _ := NewStringNode("id = ?, ")
	trim := &TrimNode{
		Nodes:           NodeGroup{body},
		Prefix:          " set ",
		SuffixOverrides: []string{","},
	}
	ctx := newTestContext(mapRoot())
	q, _, err := trim.Accept(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q != " set id = ? " {
		t.Fatalf("unexpected query %q", q)
	}
}
