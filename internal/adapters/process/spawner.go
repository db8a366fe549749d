package process

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bnema/droidmirror/internal/domain"
	"github.com/bnema/droidmirror/internal/ports"
)

type Spawner struct{}

var _ ports.Spawner = Spawner{}

func NewSpawner() Spawner {
	return Spawner{}
}

// Spawn starts the process detached from ctx: a mirroring window outlives the
// request that opened it and is stopped through Kill.
func (Spawner) Spawn(ctx context.Context, req ports.SpawnRequest) (ports.Process, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cmd := prepare(exec.Command(req.Path, req.Args...), req)
	if err := cmd.Start(); err != nil {
		return nil, domain.NewError(domain.KindExec, fmt.Sprintf("failed to start %s: %v", filepath.Base(req.Path), err), err)
	}

	return watch(cmd), nil
}

func (Spawner) Output(ctx context.Context, req ports.SpawnRequest) (string, error) {
	cmd := prepare(exec.CommandContext(ctx, req.Path, req.Args...), req)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", domain.NewError(domain.KindExec, msg, err)
		}
		return "", domain.NewError(domain.KindExec, fmt.Sprintf("failed to execute %s: %v", filepath.Base(req.Path), err), err)
	}

	return strings.TrimSpace(stdout.String()), nil
}

func prepare(cmd *exec.Cmd, req ports.SpawnRequest) *exec.Cmd {
	cmd.Dir = req.Dir
	if req.PathPrepend != "" {
		cmd.Env = prependPath(os.Environ(), req.PathPrepend)
	}
	configure(cmd)
	return cmd
}

// prependPath puts dir in front of PATH, adding PATH when the environment lacks it.
func prependPath(env []string, dir string) []string {
	out := make([]string, 0, len(env)+1)
	found := false
	for _, kv := range env {
		key, value, ok := strings.Cut(kv, "=")
		if ok && strings.EqualFold(key, "PATH") && !found {
			found = true
			if value == "" {
				out = append(out, key+"="+dir)
			} else {
				out = append(out, key+"="+dir+string(os.PathListSeparator)+value)
			}
			continue
		}
		out = append(out, kv)
	}
	if !found {
		out = append(out, "PATH="+dir)
	}
	return out
}

// handle reaps its process in the background so TryWait never blocks.
type handle struct {
	cmd  *exec.Cmd
	done chan struct{}

	mu     sync.Mutex
	status *ports.ExitStatus
}

var _ ports.Process = (*handle)(nil)

func watch(cmd *exec.Cmd) *handle {
	h := &handle{cmd: cmd, done: make(chan struct{})}
	go func() {
		err := cmd.Wait()
		code := 0
		if cmd.ProcessState != nil {
			code = cmd.ProcessState.ExitCode()
		} else if err != nil {
			code = -1
		}

		h.mu.Lock()
		h.status = &ports.ExitStatus{Code: code}
		h.mu.Unlock()
		close(h.done)
	}()
	return h
}

func (h *handle) PID() int {
	return h.cmd.Process.Pid
}

func (h *handle) Kill() error {
	select {
	case <-h.done:
		return ports.ErrProcessDone
	default:
	}

	if err := h.cmd.Process.Kill(); err != nil {
		if errors.Is(err, os.ErrProcessDone) {
			return ports.ErrProcessDone
		}
		return fmt.Errorf("kill pid %d: %w", h.PID(), err)
	}

	return nil
}

func (h *handle) TryWait() (*ports.ExitStatus, error) {
	select {
	case <-h.done:
	default:
		return nil, nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	status := *h.status
	return &status, nil
}

// Wait blocks until the process has been reaped.
func (h *handle) Wait(ctx context.Context) (*ports.ExitStatus, error) {
	select {
	case <-h.done:
		return h.TryWait()
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
