package adb

import (
	"strings"

	"github.com/bnema/droidmirror/internal/domain"
	"github.com/bnema/droidmirror/internal/ports"
)

// ParseDevices parses `adb devices -l`. The first line is the
// "List of devices attached" header; lines with fewer than two fields are skipped.
func ParseDevices(output string) []ports.DeviceRecord {
	lines := strings.Split(output, "\n")
	if len(lines) > 0 {
		lines = lines[1:]
	}

	records := make([]ports.DeviceRecord, 0, len(lines))
	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}

		record := ports.DeviceRecord{Serial: fields[0], State: fields[1]}
		for _, field := range fields[2:] {
			key, value, ok := strings.Cut(field, ":")
			if !ok {
				continue
			}
			switch key {
			case "product":
				record.Product = value
			case "model":
				record.Model = value
			case "device":
				record.Device = value
			case "transport_id":
				record.TransportID = value
			}
		}

		records = append(records, record)
	}

	return records
}

var errNoWiFiAddress = domain.NewError(domain.KindNotFound,
	"Could not determine device IP address. Make sure the device is connected to WiFi.", nil)

// ParseRouteIP extracts the device address from `ip route` output. A WiFi
// interface line wins; otherwise the first routable source address on a
// non-wired interface is used.
func ParseRouteIP(output string) (string, error) {
	lines := strings.Split(output, "\n")

	for _, line := range lines {
		lower := strings.ToLower(line)
		if !strings.Contains(lower, "wlan") && !strings.Contains(lower, "wifi") {
			continue
		}
		if ip, ok := srcIP(line); ok {
			return ip, nil
		}
	}

	for _, line := range lines {
		ip, ok := srcIP(line)
		if !ok {
			continue
		}
		if strings.HasPrefix(ip, "127.") || strings.HasPrefix(ip, "169.254.") {
			continue
		}
		if isWiredInterface(routeDevice(line)) {
			continue
		}
		return ip, nil
	}

	return "", errNoWiFiAddress
}

func srcIP(line string) (string, bool) {
	idx := strings.Index(line, "src ")
	if idx < 0 {
		return "", false
	}

	rest := line[idx+len("src "):]
	if end := strings.IndexByte(rest, ' '); end >= 0 {
		rest = rest[:end]
	}

	ip := strings.TrimSpace(rest)
	if ip == "" {
		return "", false
	}
	return ip, true
}

func routeDevice(line string) string {
	fields := strings.Fields(line)
	for i := 0; i < len(fields)-1; i++ {
		if fields[i] == "dev" {
			return fields[i+1]
		}
	}
	return ""
}

func isWiredInterface(name string) bool {
	lower := strings.ToLower(name)
	for _, prefix := range []string{"eth", "usb", "rndis", "lo"} {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return false
}
