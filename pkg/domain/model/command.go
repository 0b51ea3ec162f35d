package model

import "time"

// Command is an external program invocation
type Command struct {
	Path string
	Args []string
	Dir  string

	// Timeout of zero means no limit
	Timeout time.Duration
}

// CommandResult is the outcome of a finished command
type CommandResult struct {
	ExitCode int
	Output   []string
}
