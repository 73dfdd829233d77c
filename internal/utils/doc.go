// Package utils holds the configuration loader, logger factory and command
// context accessor shared by the gitgate commands.
package utils
