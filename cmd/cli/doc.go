// Package cli builds the gitgate command-line interface. The root command
// loads configuration and loggers, runs the git preflight gate for commands
// that require it, and then dispatches to init or switch.
package cli
