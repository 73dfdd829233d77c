// Package execshell provides structured helpers for invoking external tools.
//
// It wraps os/exec via OSCommandRunner, classifies invocation failures into
// ExecutableNotFoundError and SpawnFailedError, and layers logging and command
// lifecycle notifications on top through ShellExecutor so that callers such as
// the preflight gate depend on the CommandRunner abstraction rather than on the
// operating system directly.
package execshell
