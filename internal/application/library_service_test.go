package application

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/bnema/droidmirror/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLibraryRememberDeviceKeepsCustomName(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)
	repo := &inMemorySavedDeviceRepo{devices: map[string]domain.SavedDevice{
		"192.168.1.100:5555": {ID: "192.168.1.100:5555", Name: "Living room tablet", Transport: domain.TransportWireless},
	}}
	svc := NewLibraryService(repo, &inMemorySettingsRepo{}, &instantClock{now: now})

	saved, err := svc.RememberDevice(context.Background(), domain.Device{
		Serial:    "192.168.1.100:5555",
		State:     domain.DeviceStateConnected,
		Model:     "SM_X200",
		ModelName: "SM_X200",
	})
	require.NoError(t, err)

	assert.Equal(t, "Living room tablet", saved.Name)
	assert.Equal(t, "192.168.1.100", saved.Address)
	assert.Equal(t, 5555, saved.Port)
	assert.Equal(t, now, saved.LastConnected)
	assert.Equal(t, saved, repo.devices["192.168.1.100:5555"])
}

func TestLibrarySaveDeviceFillsDefaults(t *testing.T) {
	t.Parallel()

	repo := &inMemorySavedDeviceRepo{}
	svc := NewLibraryService(repo, &inMemorySettingsRepo{}, nil)

	require.NoError(t, svc.SaveDevice(context.Background(), domain.SavedDevice{ID: " R3CN70ABCDE ", Model: "Pixel_6"}))

	saved := repo.devices["R3CN70ABCDE"]
	assert.Equal(t, domain.TransportUSB, saved.Transport)
	assert.Equal(t, "Pixel 6", saved.Name)

	err := svc.SaveDevice(context.Background(), domain.SavedDevice{ID: ""})
	require.Error(t, err)
	assert.ErrorContains(t, err, "id is required")
}

func TestLibraryRenameTouchRemove(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	repo := &inMemorySavedDeviceRepo{devices: map[string]domain.SavedDevice{
		"A": {ID: "A", Name: "A"},
	}}
	svc := NewLibraryService(repo, &inMemorySettingsRepo{}, &instantClock{now: now})
	ctx := context.Background()

	require.NoError(t, svc.RenameDevice(ctx, "A", "Work phone"))
	assert.Equal(t, "Work phone", repo.devices["A"].Name)

	require.NoError(t, svc.TouchDevice(ctx, "A"))
	assert.Equal(t, now, repo.devices["A"].LastConnected)
	require.NoError(t, svc.TouchDevice(ctx, "unknown"))

	err := svc.RenameDevice(ctx, "missing", "x")
	assert.ErrorIs(t, err, domain.ErrSavedDeviceNotFound)

	require.NoError(t, svc.RemoveDevice(ctx, "A"))
	devices, err := svc.SavedDevices(ctx)
	require.NoError(t, err)
	assert.Empty(t, devices)
	assert.ErrorIs(t, svc.RemoveDevice(ctx, "A"), domain.ErrSavedDeviceNotFound)
}

func TestLibraryUpdateSettingsValidates(t *testing.T) {
	t.Parallel()

	settingsRepo := &inMemorySettingsRepo{settings: domain.DefaultSettings()}
	svc := NewLibraryService(&inMemorySavedDeviceRepo{}, settingsRepo, nil)
	ctx := context.Background()

	updated, err := svc.UpdateSettings(ctx, func(s *domain.Settings) error {
		s.Resolution = "1280"
		s.TurnScreenOff = true
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1280, updated.MirrorOptions().MaxSize)
	assert.True(t, settingsRepo.settings.TurnScreenOff)

	_, err = svc.UpdateSettings(ctx, func(s *domain.Settings) error {
		s.Resolution = "huge"
		return nil
	})
	require.Error(t, err)
	assert.Equal(t, "1280", settingsRepo.settings.Resolution)

	mutateErr := errors.New("unknown key")
	_, err = svc.UpdateSettings(ctx, func(*domain.Settings) error { return mutateErr })
	assert.ErrorIs(t, err, mutateErr)

	reset, err := svc.ResetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), reset)
	assert.Equal(t, domain.DefaultSettings(), settingsRepo.settings)
}

type inMemorySavedDeviceRepo struct {
	devices map[string]domain.SavedDevice
}

func (r *inMemorySavedDeviceRepo) GetByID(_ context.Context, id string) (domain.SavedDevice, error) {
	device, ok := r.devices[id]
	if !ok {
		return domain.SavedDevice{}, domain.ErrSavedDeviceNotFound
	}
	return device, nil
}

func (r *inMemorySavedDeviceRepo) List(_ context.Context) ([]domain.SavedDevice, error) {
	out := make([]domain.SavedDevice, 0, len(r.devices))
	for _, device := range r.devices {
		out = append(out, device)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *inMemorySavedDeviceRepo) Save(_ context.Context, device domain.SavedDevice) error {
	if r.devices == nil {
		r.devices = map[string]domain.SavedDevice{}
	}
	r.devices[device.ID] = device
	return nil
}

func (r *inMemorySavedDeviceRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.devices[id]; !ok {
		return domain.ErrSavedDeviceNotFound
	}
	delete(r.devices, id)
	return nil
}

type inMemorySettingsRepo struct {
	settings domain.Settings
}

func (r *inMemorySettingsRepo) Load(context.Context) (domain.Settings, error) {
	return r.settings, nil
}

func (r *inMemorySettingsRepo) Save(_ context.Context, settings domain.Settings) error {
	r.settings = settings
	return nil
}
