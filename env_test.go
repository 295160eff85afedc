package dynasql

import (
	"os"
	"testing"
)

func TestEnvProviderGetFallsBackToProcessEnv(t *testing.T) {
	t.Setenv("DYNASQL_TEST_VAR", "hello")
	p := NewEnvProvider(os.DevNull)
	if got := p.Get("DYNASQL_TEST_VAR"); got != "hello" {
		t.Fatalf("got %q, want %q", got, "hello")
	}
}

func TestEnvProviderExpandReplacesEveryPlaceholder(t *testing.T) {
	t.Setenv("DYNASQL_HOST", "db.example.com")
	t.Setenv("DYNASQL_PORT", "5432")
	p := NewEnvProvider(os.DevNull)

	got := p.Expand("postgres://${DYNASQL_HOST}:${DYNASQL_PORT}/app")
	want := "postgres://db.example.com:5432/app"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestEnvProviderExpandLeavesUnmatchedTextAlone(t *testing.T) {
	p := NewEnvProvider(os.DevNull)
	got := p.Expand("no placeholders here")
	if got != "no placeholders here" {
		t.Fatalf("got %q", got)
	}
}

func TestEnvProviderExpandUnsetVariableIsEmpty(t *testing.T) {
	p := NewEnvProvider(os.DevNull)
	got := p.Expand("value=${DYNASQL_DEFINITELY_UNSET}")
	if got != "value=" {
		t.Fatalf("got %q, want %q", got, "value=")
	}
}
