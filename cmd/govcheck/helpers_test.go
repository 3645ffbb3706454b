package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func testApp() *AppContext {
	return &AppContext{}
}

// stubExit replaces the process exit hook for the duration of a test and
// records the codes passed to it.
func stubExit(t *testing.T) *[]int {
	t.Helper()

	var codes []int
	original := exitFunc
	exitFunc = func(code int) { codes = append(codes, code) }
	t.Cleanup(func() { exitFunc = original })
	return &codes
}

func writeTempFile(t *testing.T, name, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

// execute runs the root command with the given args and captures combined
// output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := newRootCmd(testApp())
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)

	err := root.Execute()
	return buf.String(), err
}
