package testutil

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/orgchart/internal/hcl"
	"github.com/specialistvlad/orgchart/internal/node"
	"github.com/stretchr/testify/require"
)

// AssertOutcomeLogged checks that an operation with the given outcome was
// logged. It matches on the structured attribute rather than the message so
// wording changes do not break tests.
func AssertOutcomeLogged(t *testing.T, result *HarnessResult, outcome string) {
	t.Helper()

	expected := fmt.Sprintf("outcome=%s", outcome)
	require.True(t,
		strings.Contains(result.LogOutput, expected),
		"expected an operation with outcome %q in the logs", outcome,
	)
}

// RequireHierarchy parses the HCL printed by the run and compares it with want.
func RequireHierarchy(t *testing.T, result *HarnessResult, want *node.Node) {
	t.Helper()

	model, err := hcl.NewLoader().Parse(context.Background(), []byte(result.Output), "output.hcl")
	require.NoError(t, err, "output is not valid HCL:\n%s", result.Output)
	if diff := cmp.Diff(want, model.Root.ToNode()); diff != "" {
		t.Fatalf("unexpected hierarchy (-want +got):\n%s", diff)
	}
}
