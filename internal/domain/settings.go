package domain

import (
	"fmt"
	"strconv"
	"strings"
)

const ResolutionDefault = "default"

type Settings struct {
	Resolution    string
	Bitrate       int
	MaxFPS        int
	AlwaysOnTop   bool
	StayAwake     bool
	TurnScreenOff bool
}

func DefaultSettings() Settings {
	return Settings{
		Resolution: ResolutionDefault,
		Bitrate:    DefaultBitRate,
		MaxFPS:     DefaultMaxFPS,
		StayAwake:  true,
	}
}

func (s Settings) Validate() error {
	if _, err := parseResolution(s.Resolution); err != nil {
		return err
	}
	if s.Bitrate < 0 {
		return fmt.Errorf("bitrate must not be negative")
	}
	if s.MaxFPS < 0 {
		return fmt.Errorf("max fps must not be negative")
	}
	return nil
}

// MirrorOptions converts persisted settings into launch options.
// "default" and unparsable resolutions fall back to DefaultMaxSize.
func (s Settings) MirrorOptions() MirrorOptions {
	maxSize, err := parseResolution(s.Resolution)
	if err != nil {
		maxSize = DefaultMaxSize
	}

	return MirrorOptions{
		MaxSize:       maxSize,
		BitRate:       s.Bitrate,
		MaxFPS:        s.MaxFPS,
		AlwaysOnTop:   s.AlwaysOnTop,
		StayAwake:     s.StayAwake,
		TurnScreenOff: s.TurnScreenOff,
	}
}

func parseResolution(raw string) (int, error) {
	trimmed := strings.ToLower(strings.TrimSpace(raw))
	if trimmed == "" || trimmed == ResolutionDefault {
		return DefaultMaxSize, nil
	}

	value, err := strconv.Atoi(trimmed)
	if err != nil || value < 0 {
		return 0, fmt.Errorf("invalid resolution %q: want %q or a pixel count", raw, ResolutionDefault)
	}

	return value, nil
}
