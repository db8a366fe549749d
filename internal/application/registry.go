package application

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/bnema/droidmirror/internal/domain"
	"github.com/bnema/droidmirror/internal/logging"
	"github.com/bnema/droidmirror/internal/ports"
	"github.com/sourcegraph/conc/pool"
)

const defaultWorkers = 4

// Session is a running mirroring process owned by a SessionRegistry.
type Session struct {
	ID        domain.SessionID
	DeviceID  string
	Process   ports.Process
	StartedAt time.Time
}

func (s *Session) Info() domain.SessionInfo {
	info := domain.SessionInfo{ID: s.ID, DeviceID: s.DeviceID, StartedAt: s.StartedAt}
	if s.Process != nil {
		info.PID = s.Process.PID()
	}
	return info
}

// SessionRegistry tracks live mirroring processes. The lock only guards the
// map; kills and exit polls always run outside it.
type SessionRegistry struct {
	mu       sync.Mutex
	sessions map[domain.SessionID]*Session

	logger  *slog.Logger
	workers int
}

func NewSessionRegistry(logger *slog.Logger, workers int) *SessionRegistry {
	if logger == nil {
		logger = logging.Discard()
	}
	if workers <= 0 {
		workers = defaultWorkers
	}

	return &SessionRegistry{
		sessions: map[domain.SessionID]*Session{},
		logger:   logger,
		workers:  workers,
	}
}

// Add registers session under id. An existing entry with the same id is replaced.
func (r *SessionRegistry) Add(id domain.SessionID, session *Session) error {
	switch {
	case id == "":
		return domain.NewError(domain.KindConflict, "session id is required", nil)
	case session == nil || session.Process == nil:
		return domain.Errorf(domain.KindConflict, "session %s has no process", id)
	case session.ID != "" && session.ID != id:
		return domain.Errorf(domain.KindConflict, "session registered as %s but carries id %s", id, session.ID)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if previous, ok := r.sessions[id]; ok && previous != session {
		r.logger.Warn("replacing tracked session", "session_id", id, "pid", previous.Process.PID())
	}
	r.sessions[id] = session
	return nil
}

// Remove detaches the session. The caller owns the process afterwards.
func (r *SessionRegistry) Remove(id domain.SessionID) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[id]
	if ok {
		delete(r.sessions, id)
	}
	return session, ok
}

// IsRunning reports whether id is tracked. It does not probe the process.
func (r *SessionRegistry) IsRunning(id domain.SessionID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.sessions[id]
	return ok
}

// Cleanup drops sessions whose process has exited or cannot be polled and
// returns their ids.
func (r *SessionRegistry) Cleanup() []domain.SessionID {
	tracked := r.snapshot()

	dead := make([]*Session, 0, len(tracked))
	for _, session := range tracked {
		status, err := session.Process.TryWait()
		switch {
		case err != nil:
			r.logger.Warn("session status unavailable, dropping", "session_id", session.ID, "error", err)
			dead = append(dead, session)
		case status != nil:
			r.logger.Info("session exited", "session_id", session.ID, "device_id", session.DeviceID, "exit_code", status.Code)
			dead = append(dead, session)
		}
	}
	if len(dead) == 0 {
		return nil
	}

	r.mu.Lock()
	removed := make([]domain.SessionID, 0, len(dead))
	for _, session := range dead {
		// The id may have been removed or re-added while we were polling.
		if current, ok := r.sessions[session.ID]; ok && current == session {
			delete(r.sessions, session.ID)
			removed = append(removed, session.ID)
		}
	}
	r.mu.Unlock()

	sort.Slice(removed, func(i, j int) bool { return removed[i] < removed[j] })
	return removed
}

// Stop removes and kills one session. A process that already exited counts as
// stopped; any other kill failure puts the session back before returning.
func (r *SessionRegistry) Stop(id domain.SessionID) error {
	session, ok := r.Remove(id)
	if !ok {
		return fmt.Errorf("stop %s: %w", id, domain.ErrSessionNotFound)
	}

	err := session.Process.Kill()
	if err == nil || errors.Is(err, ports.ErrProcessDone) {
		r.logger.Info("session stopped", "session_id", id, "device_id", session.DeviceID)
		return nil
	}

	r.mu.Lock()
	if _, taken := r.sessions[id]; !taken {
		r.sessions[id] = session
	}
	r.mu.Unlock()

	r.logger.Error("failed to stop session", "session_id", id, "pid", session.Process.PID(), "error", err)
	return domain.NewError(domain.KindExec, fmt.Sprintf("failed to stop session %s: %v", id, err), err)
}

// StopAll drains the registry and kills every process. Kill failures are
// logged; the registry is empty afterwards either way.
func (r *SessionRegistry) StopAll() int {
	r.mu.Lock()
	drained := r.sessions
	r.sessions = map[domain.SessionID]*Session{}
	r.mu.Unlock()

	p := pool.New().WithMaxGoroutines(r.workers)
	for _, session := range drained {
		p.Go(func() {
			err := session.Process.Kill()
			switch {
			case err == nil:
				r.logger.Info("session stopped", "session_id", session.ID, "device_id", session.DeviceID)
			case errors.Is(err, ports.ErrProcessDone):
				r.logger.Debug("session already exited", "session_id", session.ID)
			default:
				r.logger.Error("failed to stop session", "session_id", session.ID, "pid", session.Process.PID(), "error", err)
			}
		})
	}
	p.Wait()

	return len(drained)
}

func (r *SessionRegistry) ActiveCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

func (r *SessionRegistry) ListSessionIDs() []domain.SessionID {
	r.mu.Lock()
	ids := make([]domain.SessionID, 0, len(r.sessions))
	for id := range r.sessions {
		ids = append(ids, id)
	}
	r.mu.Unlock()

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (r *SessionRegistry) Describe(id domain.SessionID) (domain.SessionInfo, bool) {
	r.mu.Lock()
	session, ok := r.sessions[id]
	r.mu.Unlock()

	if !ok {
		return domain.SessionInfo{}, false
	}
	return session.Info(), true
}

// Snapshot lists tracked sessions ordered by start time, then id.
func (r *SessionRegistry) Snapshot() []domain.SessionInfo {
	tracked := r.snapshot()

	infos := make([]domain.SessionInfo, 0, len(tracked))
	for _, session := range tracked {
		infos = append(infos, session.Info())
	}
	sort.Slice(infos, func(i, j int) bool {
		if !infos[i].StartedAt.Equal(infos[j].StartedAt) {
			return infos[i].StartedAt.Before(infos[j].StartedAt)
		}
		return infos[i].ID < infos[j].ID
	})
	return infos
}

func (r *SessionRegistry) snapshot() []*Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*Session, 0, len(r.sessions))
	for _, session := range r.sessions {
		out = append(out, session)
	}
	return out
}
