package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_InvalidConfig(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// An HCL file with a syntax error must fail during loading.
	invalidHCL := `
		employee "CEO" {
			id = 1
		// Missing closing brace here
	`
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "main.hcl")
	err := os.WriteFile(filePath, []byte(invalidHCL), 0600)
	require.NoError(t, err, "failed to set up test file")

	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	// --- Act ---
	runErr := run(context.Background(), out, errOut, []string{filePath})

	// --- Assert ---
	require.Error(t, runErr, "run() should fail on an unparsable file")
	require.Contains(t, runErr.Error(), "failed to load configuration")
	require.Contains(t, runErr.Error(), "failed to parse")
	require.Empty(t, out.String())
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), out, errOut, []string{"-h"})

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, errOut.String(), "Usage:", "Expected help text on the diagnostic stream")
	require.Empty(t, out.String())
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	err := run(context.Background(), out, errOut, []string{"--this-is-not-a-valid-flag"})

	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "unknown flag: --this-is-not-a-valid-flag")
}

func TestRun_ReplaysScript(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	tempDir := t.TempDir()
	seed := `
employee "CEO" {
  id = 1
  employee "CTO" {
    id = 2
    employee "Engineer" {
      id = 3
    }
  }
  employee "CFO" {
    id = 4
  }
}

move {
  employee   = 3
  supervisor = 4
}
`
	filePath := filepath.Join(tempDir, "org.hcl")
	require.NoError(t, os.WriteFile(filePath, []byte(seed), 0600))

	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), out, errOut, []string{"-o", "yaml", "--log-format", "json", filePath})

	// --- Assert ---
	require.NoError(t, err)
	want := `root:
  id: 1
  name: CEO
  reports:
    - id: 2
      name: CTO
    - id: 4
      name: CFO
      reports:
        - id: 3
          name: Engineer
`
	require.Equal(t, want, out.String())
	require.Contains(t, errOut.String(), `"msg":"Move applied."`)
}
