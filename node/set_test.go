package node

import (
	"testing"

	"github.com/dynasql/dynasql/value"
)

func TestSetNodeLiteralTrimsCommaAndSpace(t *testing.T) {
	a, _ := NewStringNode("id = #{id},")
	b, _ := NewStringNode("name = #{name}")
	s := &SetNode{Nodes: NodeGroup{a, b}}
	ctx := newTestContext(mapRoot(entry("id", value.I64Value(1)), entry("name", value.StringValue("a"))))
	q, args, err := s.Accept(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q != " set id = ?,name = ?" {
		t.Fatalf("unexpected query %q", q)
	}
	if len(args) != 2 || args[0] != int64(1) || args[1] != "a" {
		t.Fatalf("unexpected args %v", args)
	}
}

func TestSetNodeLiteralEmpty(t *testing.T) {
	s := &SetNode{Nodes: NodeGroup{}}
	ctx := newTestContext(mapRoot())
	q, args, err := s.Accept(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q != "" || args != nil {
		t.Fatalf("expected empty emission, got %q %v", q, args)
	}
}

// Seed scenario 4: Set with a bound collection, a skipped key and
// SkipNull dropping a null-valued entry.
func TestSetNodeCollectionSkipsAndSkipNull(t *testing.T) {
	coll := value.MapValue([]value.Entry{
		{Key: value.StringValue("id"), Value: value.I64Value(7)},
		{Key: value.StringValue("name"), Value: value.StringValue("a")},
		{Key: value.StringValue("ghost"), Value: value.NullValue()},
		{Key: value.StringValue("version"), Value: value.I64Value(1)},
	})
	s := &SetNode{
		Collection: "fields",
		Skips:      map[string]bool{"version": true},
		SkipNull:   true,
	}
	ctx := newTestContext(mapRoot(entry("fields", coll)))
	q, args, err := s.Accept(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q != " set id=?,name=?" {
		t.Fatalf("unexpected query %q", q)
	}
	if len(args) != 2 || args[0] != int64(7) || args[1] != "a" {
		t.Fatalf("unexpected args %v", args)
	}
}

func TestSetNodeCollectionAllSkipped(t *testing.T) {
	coll := value.MapValue([]value.Entry{
		{Key: value.StringValue("version"), Value: value.I64Value(1)},
	})
	s := &SetNode{Collection: "fields", Skips: map[string]bool{"version": true}}
	ctx := newTestContext(mapRoot(entry("fields", coll)))
	q, args, err := s.Accept(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q != "" || args != nil {
		t.Fatalf("expected empty emission when every entry is skipped, got %q %v", q, args)
	}
}
