package ports

import (
	"context"
	"errors"
)

// ErrProcessDone reports that a process had already exited when it was signalled.
var ErrProcessDone = errors.New("process already exited")

type ExitStatus struct {
	Code int
}

// Process is a handle on a spawned OS process.
type Process interface {
	PID() int
	// Kill terminates the process. It returns an error matching ErrProcessDone
	// when the process exited before the signal was delivered.
	Kill() error
	// TryWait polls the exit status without blocking. A nil status means the
	// process is still running.
	TryWait() (*ExitStatus, error)
}

type SpawnRequest struct {
	Path string
	Args []string
	// Dir is the working directory, usually the tool's own directory so it can
	// resolve its shared libraries.
	Dir string
	// PathPrepend is prepended to PATH in the child environment.
	PathPrepend string
}

type Spawner interface {
	Spawn(ctx context.Context, req SpawnRequest) (Process, error)
	// Output runs a short-lived command to completion and returns its stdout.
	Output(ctx context.Context, req SpawnRequest) (string, error)
}
