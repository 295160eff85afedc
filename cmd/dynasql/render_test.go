package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderCommandEmitsQueryAndParams(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "select.sql")
	require.NoError(t, os.WriteFile(path, []byte("select * from users where id = #{id}\n"), 0o600))

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"render", path, "--args", `{"id": 7}`})

	require.NoError(t, root.Execute())
	require.Contains(t, out.String(), "select * from users where id = ?")
	require.Contains(t, out.String(), "$1 = 7")
}

func TestRenderCommandRejectsUnknownStyle(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "select.sql")
	require.NoError(t, os.WriteFile(path, []byte("select 1\n"), 0o600))

	root := newRootCmd()
	root.SilenceUsage = true
	root.SilenceErrors = true
	root.SetArgs([]string{"render", path, "--style", "bogus"})

	err := root.Execute()
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown --style")
}

func TestRenderCommandDollarStyle(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "select.sql")
	require.NoError(t, os.WriteFile(path, []byte("select * from users where id = #{id}\n"), 0o600))

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"render", path, "--style", "dollar", "--args", `{"id": 7}`})

	require.NoError(t, root.Execute())
	require.Contains(t, out.String(), "select * from users where id = $1")
}
