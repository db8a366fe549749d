package domain

import (
	"net"
	"strings"
)

type DeviceState string

const (
	DeviceStateConnected    DeviceState = "Connected"
	DeviceStateUnauthorized DeviceState = "Unauthorized"
	DeviceStateOffline      DeviceState = "Offline"
	DeviceStateDisconnected DeviceState = "Disconnected"
)

// DeviceStateFromBridge maps the state column of a bridge listing.
// Unrecognized values are reported as disconnected.
func DeviceStateFromBridge(raw string) DeviceState {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "device":
		return DeviceStateConnected
	case "unauthorized":
		return DeviceStateUnauthorized
	case "offline":
		return DeviceStateOffline
	default:
		return DeviceStateDisconnected
	}
}

type TransportKind string

const (
	TransportUSB      TransportKind = "USB"
	TransportWireless TransportKind = "Wireless"
)

// TransportFromSerial reports Wireless for host:port serials and USB for everything else.
func TransportFromSerial(serial string) TransportKind {
	if strings.Contains(serial, ":") {
		return TransportWireless
	}
	return TransportUSB
}

const (
	UnknownDeviceName = "Unknown Device"
	UnknownModel      = "Unknown"
)

type Device struct {
	Serial      string
	State       DeviceState
	Product     string
	Model       string
	Codename    string
	TransportID string
	// ModelName is Model, or the best available substitute when the listing omitted it.
	ModelName string
}

func (d Device) Transport() TransportKind {
	return TransportFromSerial(d.Serial)
}

// IPAddress returns the host part of a wireless serial and "" for USB devices.
func (d Device) IPAddress() string {
	if d.Transport() != TransportWireless {
		return ""
	}

	host, _, err := net.SplitHostPort(d.Serial)
	if err == nil {
		return host
	}

	return d.Serial[:strings.LastIndex(d.Serial, ":")]
}

func (d Device) DisplayName() string {
	return DisplayName(d.Model, d.Codename)
}

func (d Device) IsConnected() bool {
	return d.State == DeviceStateConnected
}

// DisplayName picks model, then codename, then a placeholder.
func DisplayName(model, codename string) string {
	name := strings.TrimSpace(model)
	if name == "" {
		name = strings.TrimSpace(codename)
	}
	if name == "" {
		return UnknownDeviceName
	}
	return strings.ReplaceAll(name, "_", " ")
}

// SameModel compares model names the way a listing and a property lookup report
// them: the listing uses underscores where getprop uses spaces.
func SameModel(a, b string) bool {
	na := strings.TrimSpace(strings.ReplaceAll(a, "_", " "))
	nb := strings.TrimSpace(strings.ReplaceAll(b, "_", " "))
	if na == "" || nb == "" {
		return false
	}
	return strings.EqualFold(na, nb)
}
