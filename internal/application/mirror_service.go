package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/bnema/droidmirror/internal/domain"
	"github.com/bnema/droidmirror/internal/logging"
	"github.com/bnema/droidmirror/internal/ports"
	"github.com/sourcegraph/conc/pool"
)

// MirrorTool locates the mirroring executable and the environment it runs in.
type MirrorTool struct {
	Path string
	// Dir is the working directory, normally the tool's own directory.
	Dir string
	// PathPrepend is put in front of PATH so the tool finds the bridge.
	PathPrepend string
}

type StartResult struct {
	DeviceID  string
	SessionID domain.SessionID
	Err       error
}

// MirrorService starts mirroring processes and keeps them in a SessionRegistry.
type MirrorService struct {
	spawner  ports.Spawner
	registry *SessionRegistry
	clock    ports.Clock
	tool     MirrorTool
	logger   *slog.Logger
	workers  int
}

func NewMirrorService(spawner ports.Spawner, registry *SessionRegistry, tool MirrorTool, clock ports.Clock, logger *slog.Logger, workers int) *MirrorService {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = logging.Discard()
	}
	if workers <= 0 {
		workers = defaultWorkers
	}

	return &MirrorService{
		spawner:  spawner,
		registry: registry,
		clock:    clock,
		tool:     tool,
		logger:   logger,
		workers:  workers,
	}
}

func (s *MirrorService) Start(ctx context.Context, deviceID string, opts domain.MirrorOptions) (domain.SessionID, error) {
	deviceID = strings.TrimSpace(deviceID)
	if deviceID == "" {
		return "", domain.NewError(domain.KindNotFound, "device id is required", nil)
	}

	proc, err := s.spawner.Spawn(ctx, s.request(opts.Args(deviceID)))
	if err != nil {
		return "", err
	}

	id := domain.NewSessionID(deviceID, proc.PID())
	session := &Session{ID: id, DeviceID: deviceID, Process: proc, StartedAt: s.clock.Now()}
	if err := s.registry.Add(id, session); err != nil {
		if killErr := proc.Kill(); killErr != nil && !errors.Is(killErr, ports.ErrProcessDone) {
			return "", errors.Join(err, fmt.Errorf("kill untracked process %d: %w", proc.PID(), killErr))
		}
		return "", err
	}

	s.logger.Info("mirroring started", "session_id", id, "device_id", deviceID, "pid", proc.PID())
	return id, nil
}

// StartMany starts one session per device. Results keep the order of deviceIDs;
// the returned error joins every failure.
func (s *MirrorService) StartMany(ctx context.Context, deviceIDs []string, opts domain.MirrorOptions) ([]StartResult, error) {
	results := make([]StartResult, len(deviceIDs))

	p := pool.New().WithMaxGoroutines(s.workers)
	for i, deviceID := range deviceIDs {
		p.Go(func() {
			id, err := s.Start(ctx, deviceID, opts)
			if err != nil {
				err = fmt.Errorf("start %s: %w", deviceID, err)
			}
			results[i] = StartResult{DeviceID: deviceID, SessionID: id, Err: err}
		})
	}
	p.Wait()

	var errs []error
	for _, result := range results {
		if result.Err != nil {
			errs = append(errs, result.Err)
		}
	}
	return results, errors.Join(errs...)
}

func (s *MirrorService) Stop(id domain.SessionID) error {
	return s.registry.Stop(id)
}

func (s *MirrorService) Cleanup() []domain.SessionID {
	return s.registry.Cleanup()
}

func (s *MirrorService) StopAll() int {
	return s.registry.StopAll()
}

func (s *MirrorService) Sessions() []domain.SessionInfo {
	return s.registry.Snapshot()
}

func (s *MirrorService) ActiveCount() int {
	return s.registry.ActiveCount()
}

// Supervise reaps exited sessions every interval until none are left or ctx
// ends. Sessions still running when ctx ends are stopped.
func (s *MirrorService) Supervise(ctx context.Context, interval time.Duration, onExit func(domain.SessionID)) {
	if interval <= 0 {
		interval = time.Second
	}

	for s.registry.ActiveCount() > 0 {
		select {
		case <-ctx.Done():
			stopped := s.registry.StopAll()
			s.logger.Info("supervisor stopped", "stopped_sessions", stopped)
			return
		case <-s.clock.After(interval):
		}

		for _, id := range s.registry.Cleanup() {
			if onExit != nil {
				onExit(id)
			}
		}
	}
}

// ToolVersion returns the first line of the mirroring tool's --version output.
func (s *MirrorService) ToolVersion(ctx context.Context) (string, error) {
	out, err := s.spawner.Output(ctx, s.request([]string{"--version"}))
	if err != nil {
		return "", err
	}
	line, _, _ := strings.Cut(out, "\n")
	return strings.TrimSpace(line), nil
}

func (s *MirrorService) request(args []string) ports.SpawnRequest {
	return ports.SpawnRequest{
		Path:        s.tool.Path,
		Args:        args,
		Dir:         s.tool.Dir,
		PathPrepend: s.tool.PathPrepend,
	}
}
