package preflight_test

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/temirov/gitgate/internal/preflight"
)

func TestRequirePreflightAnnotatesCommand(testInstance *testing.T) {
	testCases := []struct {
		name           string
		command        *cobra.Command
		annotate       bool
		expectRequired bool
	}{
		{name: "unannotated", command: &cobra.Command{Use: "help"}, annotate: false, expectRequired: false},
		{name: "annotated", command: &cobra.Command{Use: "init"}, annotate: true, expectRequired: true},
		{name: "existing_annotations_kept", command: &cobra.Command{Use: "switch", Annotations: map[string]string{"group": "branch"}}, annotate: true, expectRequired: true},
		{name: "nil_command", command: nil, annotate: true, expectRequired: false},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			if testCase.annotate {
				preflight.RequirePreflight(testCase.command)
			}
			require.Equal(testInstance, testCase.expectRequired, preflight.RequiresPreflight(testCase.command))
		})
	}
}
