package ports

import "context"

// DeviceRecord is one parsed line of the bridge device listing.
type DeviceRecord struct {
	Serial      string
	State       string
	Product     string
	Model       string
	Device      string
	TransportID string
}

// BridgeClient wraps the device-bridge executable. An empty serial targets the
// bridge's default device.
type BridgeClient interface {
	ListDevices(ctx context.Context) ([]DeviceRecord, error)
	RouteTable(ctx context.Context, serial string) (string, error)
	DeviceIP(ctx context.Context, serial string) (string, error)
	ShellProperty(ctx context.Context, serial string, key string) (string, error)
	SetTransportMode(ctx context.Context, serial string, port int) (string, error)
	Connect(ctx context.Context, host string, port int) (string, error)
	Disconnect(ctx context.Context, address string) (string, error)
	Version(ctx context.Context) (string, error)
	StartServer(ctx context.Context) error
}
