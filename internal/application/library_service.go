package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/droidmirror/internal/domain"
	"github.com/bnema/droidmirror/internal/ports"
)

// LibraryService manages saved devices and mirroring settings.
type LibraryService struct {
	devices  ports.SavedDeviceRepository
	settings ports.SettingsRepository
	clock    ports.Clock
}

func NewLibraryService(devices ports.SavedDeviceRepository, settings ports.SettingsRepository, clock ports.Clock) *LibraryService {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &LibraryService{
		devices:  devices,
		settings: settings,
		clock:    clock,
	}
}

func (s *LibraryService) SavedDevices(ctx context.Context) ([]domain.SavedDevice, error) {
	devices, err := s.devices.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list saved devices: %w", err)
	}
	return devices, nil
}

// SaveDevice adds device or replaces the saved device with the same id.
func (s *LibraryService) SaveDevice(ctx context.Context, device domain.SavedDevice) error {
	device.ID = strings.TrimSpace(device.ID)
	if device.Transport == "" {
		device.Transport = domain.TransportFromSerial(device.ID)
	}
	if device.Name == "" {
		device.Name = domain.DisplayName(device.Model, "")
	}
	if err := device.Validate(); err != nil {
		return fmt.Errorf("validate saved device: %w", err)
	}

	if err := s.devices.Save(ctx, device); err != nil {
		return fmt.Errorf("save device %s: %w", device.ID, err)
	}
	return nil
}

// RememberDevice saves a discovered device, stamped as connected now.
func (s *LibraryService) RememberDevice(ctx context.Context, device domain.Device) (domain.SavedDevice, error) {
	saved := domain.SavedDeviceFromDevice(device, s.clock.Now())

	existing, err := s.devices.GetByID(ctx, saved.ID)
	switch {
	case err == nil:
		if existing.Name != "" && existing.Name != existing.ID {
			saved.Name = existing.Name
		}
	case !errors.Is(err, domain.ErrSavedDeviceNotFound):
		return domain.SavedDevice{}, fmt.Errorf("get saved device: %w", err)
	}

	if err := s.SaveDevice(ctx, saved); err != nil {
		return domain.SavedDevice{}, err
	}
	return saved, nil
}

// RenameDevice changes the display name of a saved device.
func (s *LibraryService) RenameDevice(ctx context.Context, id, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("name is required")
	}

	device, err := s.devices.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get saved device: %w", err)
	}
	device.Name = name
	return s.SaveDevice(ctx, device)
}

// TouchDevice records a successful connection to a saved device. Unknown ids
// are ignored.
func (s *LibraryService) TouchDevice(ctx context.Context, id string) error {
	device, err := s.devices.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrSavedDeviceNotFound) {
			return nil
		}
		return fmt.Errorf("get saved device: %w", err)
	}

	device.LastConnected = s.clock.Now()
	return s.SaveDevice(ctx, device)
}

func (s *LibraryService) RemoveDevice(ctx context.Context, id string) error {
	if err := s.devices.Delete(ctx, strings.TrimSpace(id)); err != nil {
		return fmt.Errorf("remove saved device: %w", err)
	}
	return nil
}

func (s *LibraryService) Settings(ctx context.Context) (domain.Settings, error) {
	settings, err := s.settings.Load(ctx)
	if err != nil {
		return domain.Settings{}, fmt.Errorf("load settings: %w", err)
	}
	return settings, nil
}

// UpdateSettings applies mutate to the stored settings and persists the result.
func (s *LibraryService) UpdateSettings(ctx context.Context, mutate func(*domain.Settings) error) (domain.Settings, error) {
	settings, err := s.Settings(ctx)
	if err != nil {
		return domain.Settings{}, err
	}
	if err := mutate(&settings); err != nil {
		return domain.Settings{}, err
	}
	if err := settings.Validate(); err != nil {
		return domain.Settings{}, fmt.Errorf("validate settings: %w", err)
	}
	if err := s.settings.Save(ctx, settings); err != nil {
		return domain.Settings{}, fmt.Errorf("save settings: %w", err)
	}
	return settings, nil
}

func (s *LibraryService) ResetSettings(ctx context.Context) (domain.Settings, error) {
	settings := domain.DefaultSettings()
	if err := s.settings.Save(ctx, settings); err != nil {
		return domain.Settings{}, fmt.Errorf("save settings: %w", err)
	}
	return settings, nil
}
