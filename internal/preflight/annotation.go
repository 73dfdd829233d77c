package preflight

import "github.com/spf13/cobra"

const (
	annotationKeyConstant     = "gitgate/preflight"
	annotationEnabledConstant = "true"
)

// RequirePreflight marks command so the root runs the git gates before its handler.
func RequirePreflight(command *cobra.Command) {
	if command == nil {
		return
	}
	if command.Annotations == nil {
		command.Annotations = map[string]string{}
	}
	command.Annotations[annotationKeyConstant] = annotationEnabledConstant
}

// RequiresPreflight reports whether command was marked with RequirePreflight.
func RequiresPreflight(command *cobra.Command) bool {
	if command == nil {
		return false
	}
	return command.Annotations[annotationKeyConstant] == annotationEnabledConstant
}
