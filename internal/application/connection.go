package application

import (
	"context"
	"net"
	"strconv"
	"strings"

	"github.com/bnema/droidmirror/internal/domain"
)

const (
	unreachableGuidance = "Could not reach the device. Check that:\n" +
		"  - the device and this computer are on the same WiFi network\n" +
		"  - the router does not isolate wireless clients (AP isolation)\n" +
		"  - USB debugging is still enabled on the device"
	timeoutGuidance = "Connection timed out. The router may be blocking connections between devices; " +
		"check its firewall settings or try another network."
)

// ClassifyConnect interprets the text the bridge prints for a connect request.
// A nil result means the device is connected.
func ClassifyConnect(output string) error {
	text := strings.TrimSpace(output)
	lower := strings.ToLower(text)

	switch {
	case strings.Contains(lower, "connected"): // also "already connected to ..."
		return nil
	case strings.Contains(lower, "unable to connect"), strings.Contains(lower, "connection refused"):
		return domain.NewError(domain.KindUnreachable, unreachableGuidance+"\n\n"+text, nil)
	case strings.Contains(lower, "timeout"):
		return domain.NewError(domain.KindTimeout, timeoutGuidance+"\n\n"+text, nil)
	default:
		return domain.NewError(domain.KindUnknown, text, nil)
	}
}

// Connect attaches to a device over the network and returns its bridge serial.
// A port of 0 selects the default wireless port.
func (c *ReconnectCoordinator) Connect(ctx context.Context, host string, port int) (string, error) {
	host = strings.TrimSpace(host)
	if host == "" {
		return "", domain.NewError(domain.KindNotFound, "host is required", nil)
	}
	if port <= 0 {
		port = domain.DefaultWirelessPort
	}

	output, err := c.bridge.Connect(ctx, host, port)
	if err != nil {
		return "", err
	}
	if err := ClassifyConnect(output); err != nil {
		c.logger.Warn("connect failed", "host", host, "port", port, "kind", domain.KindOf(err))
		return "", err
	}

	address := net.JoinHostPort(host, strconv.Itoa(port))
	c.logger.Info("device connected", "device_id", address)
	return address, nil
}

func (c *ReconnectCoordinator) Disconnect(ctx context.Context, address string) (string, error) {
	output, err := c.bridge.Disconnect(ctx, strings.TrimSpace(address))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(output), nil
}

// EnableAndConnect switches deviceID to wireless mode and connects to it.
func (c *ReconnectCoordinator) EnableAndConnect(ctx context.Context, deviceID string) (string, error) {
	ip, err := c.EnableWireless(ctx, deviceID)
	if err != nil {
		return "", err
	}
	return c.Connect(ctx, ip, domain.DefaultWirelessPort)
}
