package domain

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

const DefaultWirelessPort = 5555

type SavedDevice struct {
	ID            string
	Name          string
	Model         string
	Address       string
	Port          int
	Transport     TransportKind
	LastConnected time.Time
}

func (d SavedDevice) Validate() error {
	if strings.TrimSpace(d.ID) == "" {
		return fmt.Errorf("id is required")
	}
	if d.Port < 0 || d.Port > 65535 {
		return fmt.Errorf("port %d out of range", d.Port)
	}
	if d.Transport != "" && d.Transport != TransportUSB && d.Transport != TransportWireless {
		return fmt.Errorf("unsupported transport %q", d.Transport)
	}
	return nil
}

// Endpoint is the host:port a wireless saved device is reached at.
func (d SavedDevice) Endpoint() string {
	if d.Address == "" {
		return ""
	}
	port := d.Port
	if port == 0 {
		port = DefaultWirelessPort
	}
	return net.JoinHostPort(d.Address, strconv.Itoa(port))
}

// SavedDeviceFromDevice captures a discovered device for the saved list.
func SavedDeviceFromDevice(device Device, at time.Time) SavedDevice {
	saved := SavedDevice{
		ID:            device.Serial,
		Name:          device.DisplayName(),
		Model:         device.ModelName,
		Transport:     device.Transport(),
		LastConnected: at,
	}

	if saved.Transport == TransportWireless {
		saved.Address = device.IPAddress()
		if _, rawPort, err := net.SplitHostPort(device.Serial); err == nil {
			if port, err := strconv.Atoi(rawPort); err == nil {
				saved.Port = port
			}
		}
	}

	return saved
}
