package toml

import (
	"context"
	"sort"
	"sync"

	"github.com/bnema/droidmirror/internal/domain"
	"github.com/bnema/droidmirror/internal/ports"
	"github.com/spf13/viper"
)

const (
	DevicesPathKey  = "devices.path"
	devicesFileName = "devices.toml"
	devicesLabel    = "devices"
)

// DeviceRepository stores saved devices in a TOML file keyed by device id.
type DeviceRepository struct {
	path string
	mu   *sync.RWMutex
}

var _ ports.SavedDeviceRepository = (*DeviceRepository)(nil)

func NewDeviceRepository(cfg *viper.Viper) (*DeviceRepository, error) {
	path, err := resolvePath(cfg, DevicesPathKey, devicesFileName)
	if err != nil {
		return nil, err
	}

	return &DeviceRepository{path: path, mu: lockForPath(path)}, nil
}

func (r *DeviceRepository) Path() string {
	return r.path
}

// Save adds device or replaces the entry with the same id.
func (r *DeviceRepository) Save(ctx context.Context, device domain.SavedDevice) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	encoded := toDeviceSchema(device)
	updated := false
	for i := range file.Devices {
		if file.Devices[i].ID == encoded.ID {
			file.Devices[i] = encoded
			updated = true
			break
		}
	}
	if !updated {
		file.Devices = append(file.Devices, encoded)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	return writeTOMLFile(r.path, devicesLabel, file)
}

func (r *DeviceRepository) GetByID(ctx context.Context, id string) (domain.SavedDevice, error) {
	if err := ctx.Err(); err != nil {
		return domain.SavedDevice{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return domain.SavedDevice{}, err
	}

	for _, entry := range file.Devices {
		if entry.ID == id {
			return fromDeviceSchema(entry), nil
		}
	}

	return domain.SavedDevice{}, domain.ErrSavedDeviceNotFound
}

// List returns saved devices, most recently connected first.
func (r *DeviceRepository) List(ctx context.Context) ([]domain.SavedDevice, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}

	devices := make([]domain.SavedDevice, 0, len(file.Devices))
	for _, entry := range file.Devices {
		devices = append(devices, fromDeviceSchema(entry))
	}
	sort.SliceStable(devices, func(i, j int) bool {
		return devices[i].LastConnected.After(devices[j].LastConnected)
	})

	return devices, nil
}

func (r *DeviceRepository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	kept := file.Devices[:0]
	for _, entry := range file.Devices {
		if entry.ID != id {
			kept = append(kept, entry)
		}
	}
	if len(kept) == len(file.Devices) {
		return domain.ErrSavedDeviceNotFound
	}
	file.Devices = kept

	return writeTOMLFile(r.path, devicesLabel, file)
}

func (r *DeviceRepository) readSchema() (devicesFileSchema, error) {
	var file devicesFileSchema
	if _, err := readTOMLFile(r.path, devicesLabel, &file); err != nil {
		return devicesFileSchema{}, err
	}
	if err := validateVersion(devicesLabel, file.Version); err != nil {
		return devicesFileSchema{}, err
	}
	applyVersionDefault(&file.Version)

	return file, nil
}

func toDeviceSchema(device domain.SavedDevice) savedDeviceSchema {
	return savedDeviceSchema{
		ID:            device.ID,
		Name:          device.Name,
		Model:         device.Model,
		Address:       device.Address,
		Port:          device.Port,
		Transport:     string(device.Transport),
		LastConnected: formatTime(device.LastConnected),
	}
}

func fromDeviceSchema(entry savedDeviceSchema) domain.SavedDevice {
	transport := domain.TransportKind(entry.Transport)
	if transport == "" {
		transport = domain.TransportFromSerial(entry.ID)
	}

	return domain.SavedDevice{
		ID:            entry.ID,
		Name:          entry.Name,
		Model:         entry.Model,
		Address:       entry.Address,
		Port:          entry.Port,
		Transport:     transport,
		LastConnected: parseTime(entry.LastConnected),
	}
}
