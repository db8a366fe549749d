package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/bnema/droidmirror/internal/domain"
	"github.com/bnema/droidmirror/internal/logging"
	"github.com/bnema/droidmirror/internal/ports"
)

const (
	reconnectAttempts = 5
	// The first switch to TCP mode drops the device off the bus and it takes
	// longer to re-enumerate than later probes need.
	firstProbeDelay = 1500 * time.Millisecond
	probeDelay      = 500 * time.Millisecond
)

// ReconnectCoordinator moves devices from USB to wireless transport and finds
// them again under their new serial.
type ReconnectCoordinator struct {
	bridge  ports.BridgeClient
	catalog *DeviceCatalog
	clock   ports.Clock
	logger  *slog.Logger

	attempts   int
	firstDelay time.Duration
	delay      time.Duration
}

func NewReconnectCoordinator(bridge ports.BridgeClient, catalog *DeviceCatalog, clock ports.Clock, logger *slog.Logger) *ReconnectCoordinator {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = logging.Discard()
	}

	return &ReconnectCoordinator{
		bridge:     bridge,
		catalog:    catalog,
		clock:      clock,
		logger:     logger,
		attempts:   reconnectAttempts,
		firstDelay: firstProbeDelay,
		delay:      probeDelay,
	}
}

// EnableWireless switches deviceID to TCP mode on the default wireless port
// and returns the device's WiFi address.
//
// The transport switch is issued once. Afterwards the device is searched for
// among USB devices by its old serial, its model, or as the only USB device
// left. Canceling ctx stops the search but does not undo the switch.
func (c *ReconnectCoordinator) EnableWireless(ctx context.Context, deviceID string) (string, error) {
	model, err := c.bridge.ShellProperty(ctx, deviceID, modelProperty)
	if err != nil {
		c.logger.Debug("model snapshot failed", "device_id", deviceID, "error", err)
		model = ""
	}

	if _, err := c.bridge.SetTransportMode(ctx, deviceID, domain.DefaultWirelessPort); err != nil {
		if isUnknownDevice(err) {
			return "", domain.NewError(domain.KindNotFound, fmt.Sprintf(
				"Device %s was not found. Refresh the device list and make sure USB debugging is enabled.", deviceID), err)
		}
		return "", err
	}

	for attempt := 0; attempt < c.attempts; attempt++ {
		wait := c.delay
		if attempt == 0 {
			wait = c.firstDelay
		}
		if err := c.sleep(ctx, wait); err != nil {
			return "", err
		}

		devices, err := c.catalog.Enumerate(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return "", ctx.Err()
			}
			c.logger.Debug("device probe failed", "device_id", deviceID, "attempt", attempt, "error", err)
			continue
		}

		target, ok := matchReconnected(devices, deviceID, model)
		if !ok {
			c.logger.Debug("device not back yet", "device_id", deviceID, "attempt", attempt)
			continue
		}

		ip, err := c.bridge.DeviceIP(ctx, target.Serial)
		if err != nil {
			if ctx.Err() != nil {
				return "", ctx.Err()
			}
			c.logger.Debug("address lookup failed", "device_id", target.Serial, "attempt", attempt, "error", err)
			continue
		}

		c.logger.Info("wireless mode enabled", "device_id", deviceID, "ip", ip, "attempt", attempt)
		return ip, nil
	}

	return "", domain.NewError(domain.KindNotFound,
		"Wireless mode was enabled but the device address could not be determined. "+
			"Find the IP address in the device's WiFi settings and connect to it directly.", nil)
}

// matchReconnected picks the USB device that is most likely deviceID after the
// switch. With several USB devices attached and no serial or model match it
// gives up; with exactly one it assumes that is the one.
func matchReconnected(devices []domain.Device, deviceID, model string) (domain.Device, bool) {
	usb := make([]domain.Device, 0, len(devices))
	for _, device := range devices {
		if device.Transport() == domain.TransportUSB {
			usb = append(usb, device)
		}
	}

	for _, device := range usb {
		if device.Serial == deviceID || domain.SameModel(device.Model, model) {
			return device, true
		}
	}
	if len(usb) == 1 {
		return usb[0], true
	}

	return domain.Device{}, false
}

func isUnknownDevice(err error) bool {
	return strings.Contains(strings.ToLower(err.Error()), "not found")
}

func (c *ReconnectCoordinator) sleep(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-c.clock.After(d):
		return nil
	}
}
