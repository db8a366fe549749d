package toml

import "fmt"

const currentSchemaVersion = 1

type devicesFileSchema struct {
	Version int                 `toml:"version"`
	Devices []savedDeviceSchema `toml:"devices"`
}

type savedDeviceSchema struct {
	ID            string `toml:"id"`
	Name          string `toml:"name"`
	Model         string `toml:"model,omitempty"`
	Address       string `toml:"address,omitempty"`
	Port          int    `toml:"port,omitempty"`
	Transport     string `toml:"transport,omitempty"`
	LastConnected string `toml:"last_connected,omitempty"`
}

type settingsFileSchema struct {
	Version int           `toml:"version"`
	Mirror  *mirrorSchema `toml:"mirror,omitempty"`
}

// mirrorSchema uses pointers so keys missing from the file keep their defaults.
type mirrorSchema struct {
	Resolution    *string `toml:"resolution,omitempty"`
	Bitrate       *int    `toml:"bitrate,omitempty"`
	MaxFPS        *int    `toml:"max_fps,omitempty"`
	AlwaysOnTop   *bool   `toml:"always_on_top,omitempty"`
	StayAwake     *bool   `toml:"stay_awake,omitempty"`
	TurnScreenOff *bool   `toml:"turn_screen_off,omitempty"`
}

func applyVersionDefault(version *int) {
	if *version == 0 {
		*version = currentSchemaVersion
	}
}

func validateVersion(label string, version int) error {
	if version > currentSchemaVersion {
		return fmt.Errorf("unsupported %s schema version %d (current %d)", label, version, currentSchemaVersion)
	}
	return nil
}
