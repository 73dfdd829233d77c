// Package flags defines the global gitgate flags and the yes/no and choice helpers used to register them.
package flags
