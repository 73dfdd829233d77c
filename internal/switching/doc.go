// Package switching provides the gitgate switch command.
package switching
