package application

import (
	"context"
	"log/slog"
	"strings"

	"github.com/bnema/droidmirror/internal/domain"
	"github.com/bnema/droidmirror/internal/logging"
	"github.com/bnema/droidmirror/internal/ports"
	"github.com/sourcegraph/conc/pool"
)

const modelProperty = "ro.product.model"

// DeviceCatalog turns bridge listings into devices.
type DeviceCatalog struct {
	bridge  ports.BridgeClient
	logger  *slog.Logger
	workers int
}

func NewDeviceCatalog(bridge ports.BridgeClient, logger *slog.Logger, workers int) *DeviceCatalog {
	if logger == nil {
		logger = logging.Discard()
	}
	if workers <= 0 {
		workers = defaultWorkers
	}

	return &DeviceCatalog{bridge: bridge, logger: logger, workers: workers}
}

// Enumerate lists devices in bridge order. Connected devices whose listing
// lacks a model may cost one property lookup each; those run concurrently.
func (c *DeviceCatalog) Enumerate(ctx context.Context) ([]domain.Device, error) {
	records, err := c.bridge.ListDevices(ctx)
	if err != nil {
		return nil, err
	}

	devices := make([]domain.Device, len(records))
	p := pool.New().WithMaxGoroutines(c.workers)
	for i, record := range records {
		p.Go(func() {
			devices[i] = c.device(ctx, record)
		})
	}
	p.Wait()

	return devices, nil
}

func (c *DeviceCatalog) device(ctx context.Context, record ports.DeviceRecord) domain.Device {
	device := domain.Device{
		Serial:      record.Serial,
		State:       domain.DeviceStateFromBridge(record.State),
		Product:     record.Product,
		Model:       record.Model,
		Codename:    record.Device,
		TransportID: record.TransportID,
	}
	device.ModelName = c.modelName(ctx, device)
	return device
}

// modelName resolves a model for devices the listing left without one:
// product, then codename, then a getprop lookup. Devices that are not
// connected cannot answer a lookup and are never asked.
func (c *DeviceCatalog) modelName(ctx context.Context, device domain.Device) string {
	if device.Model != "" {
		return device.Model
	}
	if !device.IsConnected() {
		return domain.UnknownDeviceName
	}
	if device.Product != "" {
		return device.Product
	}
	if device.Codename != "" {
		return device.Codename
	}

	model, err := c.bridge.ShellProperty(ctx, device.Serial, modelProperty)
	if err != nil {
		c.logger.Debug("model lookup failed", "device_id", device.Serial, "error", err)
		return domain.UnknownModel
	}
	if model = strings.TrimSpace(model); model == "" {
		return domain.UnknownModel
	}
	return model
}
