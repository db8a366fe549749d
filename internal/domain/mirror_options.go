package domain

import (
	"strconv"
	"strings"
)

const (
	DefaultMaxSize = 1920
	DefaultBitRate = 8_000_000
	DefaultMaxFPS  = 60
)

// MirrorOptions configures one mirroring process. Zero numeric values leave the
// corresponding flag off so the mirroring tool applies its own default.
type MirrorOptions struct {
	MaxSize       int
	BitRate       int
	MaxFPS        int
	AlwaysOnTop   bool
	StayAwake     bool
	TurnScreenOff bool
}

func DefaultMirrorOptions() MirrorOptions {
	return MirrorOptions{
		MaxSize:   DefaultMaxSize,
		BitRate:   DefaultBitRate,
		MaxFPS:    DefaultMaxFPS,
		StayAwake: true,
	}
}

// Args renders the mirroring tool command line for deviceID.
func (o MirrorOptions) Args(deviceID string) []string {
	args := make([]string, 0, 12)

	if id := strings.TrimSpace(deviceID); id != "" {
		args = append(args, "-s", id)
	}
	if o.MaxSize > 0 {
		args = append(args, "--max-size", strconv.Itoa(o.MaxSize))
	}
	if o.BitRate > 0 {
		args = append(args, "--video-bit-rate", strconv.Itoa(o.BitRate))
	}
	if o.MaxFPS > 0 {
		args = append(args, "--max-fps", strconv.Itoa(o.MaxFPS))
	}
	if o.AlwaysOnTop {
		args = append(args, "--always-on-top")
	}
	if o.StayAwake {
		args = append(args, "--stay-awake")
	}
	if o.TurnScreenOff {
		args = append(args, "--turn-screen-off")
	}

	return args
}
