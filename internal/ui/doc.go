// Package ui renders gitgate's human-facing output: console progress for git
// checks and the single error line printed when a command fails.
package ui
