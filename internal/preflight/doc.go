// Package preflight verifies the environment before any gitgate subcommand runs.
//
// Gate.Verify first requires an installed git of at least MinimumGitVersion and
// then requires the working directory to be inside a git work tree, returning
// the first failure as a typed error.
package preflight
