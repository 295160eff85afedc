package dynasql

import (
	"testing"

	"github.com/dynasql/dynasql/driver"
	"github.com/dynasql/dynasql/expr"
	"github.com/dynasql/dynasql/node"
	"github.com/dynasql/dynasql/value"
)

func TestCompileSniffsDSLByDefault(t *testing.T) {
	tpl, err := Compile("select * from users where id = #{id}\n")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if len(tpl.Nodes()) == 0 {
		t.Fatalf("expected a non-empty node tree")
	}
}

func TestCompileSniffsTagFormOnLeadingAngleBracket(t *testing.T) {
	tpl, err := Compile(`<if test="id != null"> and id = #{id}</if>`)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if len(tpl.Nodes()) != 1 {
		t.Fatalf("expected exactly one top-level node, got %d", len(tpl.Nodes()))
	}
	if _, ok := tpl.Nodes()[0].(*node.ConditionNode); !ok {
		t.Fatalf("expected the top-level node to be a ConditionNode, got %T", tpl.Nodes()[0])
	}
}

func TestCompileRejectsMalformedSource(t *testing.T) {
	if _, err := Compile(`<if test="id != (">broken</if>`); err == nil {
		t.Fatalf("expected a CompileError for malformed tag-form source")
	}
}

func TestCompileRegistersSQLFragmentsForInclude(t *testing.T) {
	// The <sql> declaration is tucked inside a <choose> branch that never
	// matches, so it registers without also rendering inline — a bare
	// top-level <sql> sibling would render itself AND be reachable via
	// <include>, double-emitting its text.
	src := `<choose><when test="1 == 2"><sql id="cols">id, name</sql></when></choose>select <include refid="cols"/> from users`
	tpl, err := Compile(src)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if _, ok := tpl.SQLNodeByID("cols"); !ok {
		t.Fatalf("expected fragment %q to be registered", "cols")
	}

	ctx := &node.Context{
		Translator: driver.QuestionTranslator,
		Scope:      expr.NewScope(value.MapValue(nil)),
		Registry:   tpl,
	}
	query, _, err := tpl.Nodes().Accept(ctx)
	if err != nil {
		t.Fatalf("Accept: %v", err)
	}
	if want := "select id, name from users"; query != want {
		t.Fatalf("got query %q, want %q", query, want)
	}
}
