package domain

import (
	"fmt"
	"strings"
	"time"
)

type SessionID string

// NewSessionID derives a session id from the device and the OS process id.
// A pid is not reused while its process is tracked, so neither is the id.
func NewSessionID(deviceID string, pid int) SessionID {
	device := strings.TrimSpace(deviceID)
	if device == "" {
		return SessionID(fmt.Sprintf("session_%d", pid))
	}
	return SessionID(fmt.Sprintf("session_%d_%s", pid, device))
}

// SessionInfo is a read-only view of a tracked mirroring session.
type SessionInfo struct {
	ID        SessionID
	DeviceID  string
	PID       int
	StartedAt time.Time
}
