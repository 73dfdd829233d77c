// Package initialize provides the gitgate init command.
package initialize
