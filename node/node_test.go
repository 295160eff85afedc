package node

import (
	"testing"

	"github.com/dynasql/dynasql/driver"
	"github.com/dynasql/dynasql/expr"
	"github.com/dynasql/dynasql/value"
)

func newTestContext(root value.Value) *Context {
	return NewContext(driver.QuestionTranslator, expr.NewScope(root))
}

func mustParse(t *testing.T, src string) *expr.AST {
	t.Helper()
	ast, err := expr.Parse(src)
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	return ast
}

func mapRoot(entries ...value.Entry) value.Value {
	return value.MapValue(entries)
}

func entry(k string, v value.Value) value.Entry {
	return value.Entry{Key: value.StringValue(k), Value: v}
}

func TestNodeGroupNoIdentifierGlue(t *testing.T) {
	sA, _ := NewStringNode("table")
	sB, _ := NewStringNode("where")
	g := NodeGroup{sA, sB}
	ctx := newTestContext(value.NullValue())
	q, _, err := g.Accept(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q != "table where" {
		t.Fatalf("expected glued fragments to gain a separating space, got %q", q)
	}
}

func TestNodeGroupNoSpaceWhenNotIdentifierBoundary(t *testing.T) {
	sA, _ := NewStringNode("select *")
	sB, _ := NewStringNode(" from t")
	g := NodeGroup{sA, sB}
	ctx := newTestContext(value.NullValue())
	q, _, err := g.Accept(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q != "select * from t" {
		t.Fatalf("expected no extra space inserted, got %q", q)
	}
}

func TestNodeGroupEmpty(t *testing.T) {
	g := NodeGroup{}
	ctx := newTestContext(value.NullValue())
	q, args, err := g.Accept(ctx)
	if err != nil || q != "" || args != nil {
		t.Fatalf("expected empty result, got %q %v %v", q, args, err)
	}
}
