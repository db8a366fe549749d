package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeviceStateFromBridge(t *testing.T) {
	tests := []struct {
		raw  string
		want DeviceState
	}{
		{raw: "device", want: DeviceStateConnected},
		{raw: "unauthorized", want: DeviceStateUnauthorized},
		{raw: "offline", want: DeviceStateOffline},
		{raw: "recovery", want: DeviceStateDisconnected},
		{raw: "", want: DeviceStateDisconnected},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, DeviceStateFromBridge(tt.raw))
		})
	}
}

func TestDeviceTransportAndIPAddress(t *testing.T) {
	wireless := Device{Serial: "198.51.100.7:5555"}
	assert.Equal(t, TransportWireless, wireless.Transport())
	assert.Equal(t, "198.51.100.7", wireless.IPAddress())

	usb := Device{Serial: "R3CN70ABCDE"}
	assert.Equal(t, TransportUSB, usb.Transport())
	assert.Empty(t, usb.IPAddress())
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name     string
		model    string
		codename string
		want     string
	}{
		{name: "model wins", model: "Pixel_6", codename: "oriole", want: "Pixel 6"},
		{name: "codename fallback", codename: "emu64a", want: "emu64a"},
		{name: "placeholder", want: UnknownDeviceName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DisplayName(tt.model, tt.codename))
		})
	}
}

func TestSameModel(t *testing.T) {
	assert.True(t, SameModel("Pixel_6", "Pixel 6"))
	assert.True(t, SameModel("LE2115", "le2115"))
	assert.False(t, SameModel("", ""))
	assert.False(t, SameModel("Pixel_6", "Pixel_7"))
}

func TestMirrorOptionsArgs(t *testing.T) {
	args := DefaultMirrorOptions().Args("R3CN70ABCDE")
	assert.Equal(t, []string{
		"-s", "R3CN70ABCDE",
		"--max-size", "1920",
		"--video-bit-rate", "8000000",
		"--max-fps", "60",
		"--stay-awake",
	}, args)

	all := MirrorOptions{AlwaysOnTop: true, TurnScreenOff: true}
	assert.Equal(t, []string{"--always-on-top", "--turn-screen-off"}, all.Args(""))
}

func TestSettingsMirrorOptions(t *testing.T) {
	assert.Equal(t, DefaultMirrorOptions(), DefaultSettings().MirrorOptions())

	custom := Settings{Resolution: "1280", Bitrate: 4_000_000, MaxFPS: 30, AlwaysOnTop: true}
	assert.Equal(t, MirrorOptions{MaxSize: 1280, BitRate: 4_000_000, MaxFPS: 30, AlwaysOnTop: true}, custom.MirrorOptions())

	require.NoError(t, DefaultSettings().Validate())
	assert.ErrorContains(t, Settings{Resolution: "big"}.Validate(), "invalid resolution")
	assert.ErrorContains(t, Settings{Bitrate: -1}.Validate(), "bitrate")
}

func TestNewSessionID(t *testing.T) {
	assert.Equal(t, SessionID("session_4242_R3CN70ABCDE"), NewSessionID("R3CN70ABCDE", 4242))
	assert.Equal(t, SessionID("session_7"), NewSessionID(" ", 7))
}

func TestErrorKindMatching(t *testing.T) {
	err := fmt.Errorf("wrap: %w", Errorf(KindUnreachable, "cannot reach %s", "10.0.0.2"))

	assert.True(t, errors.Is(err, ErrUnreachable))
	assert.False(t, errors.Is(err, ErrTimeout))
	assert.Equal(t, KindUnreachable, KindOf(err))
	assert.Equal(t, "wrap: cannot reach 10.0.0.2", err.Error())

	assert.True(t, errors.Is(ErrSessionNotFound, ErrNotFound))
	assert.True(t, errors.Is(fmt.Errorf("stop: %w", ErrSessionNotFound), ErrSessionNotFound))
	assert.False(t, errors.Is(ErrSavedDeviceNotFound, ErrSessionNotFound))
	assert.Equal(t, KindUnknown, KindOf(errors.New("plain")))
}
