package adb

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/droidmirror/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeClient(run runFunc) *Client {
	return &Client{path: "adb", run: run}
}

func TestClientListDevicesUsesLongListing(t *testing.T) {
	t.Parallel()

	client := fakeClient(func(ctx context.Context, args ...string) (string, string, error) {
		assert.Equal(t, []string{"devices", "-l"}, args)
		return "List of devices attached\nR3CN70ABCDE\tdevice model:SM_G991B\n", "", nil
	})

	records, err := client.ListDevices(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "SM_G991B", records[0].Model)
}

func TestClientTargetsSerialWhenGiven(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		call     func(c *Client) error
		wantArgs []string
	}{
		{
			name: "route table with serial",
			call: func(c *Client) error {
				_, err := c.RouteTable(context.Background(), "R3CN70ABCDE")
				return err
			},
			wantArgs: []string{"-s", "R3CN70ABCDE", "shell", "ip", "route"},
		},
		{
			name: "route table without serial",
			call: func(c *Client) error {
				_, err := c.RouteTable(context.Background(), "")
				return err
			},
			wantArgs: []string{"shell", "ip", "route"},
		},
		{
			name: "tcpip",
			call: func(c *Client) error {
				_, err := c.SetTransportMode(context.Background(), "R3CN70ABCDE", 5555)
				return err
			},
			wantArgs: []string{"-s", "R3CN70ABCDE", "tcpip", "5555"},
		},
		{
			name: "getprop",
			call: func(c *Client) error {
				_, err := c.ShellProperty(context.Background(), "R3CN70ABCDE", "ro.product.model")
				return err
			},
			wantArgs: []string{"-s", "R3CN70ABCDE", "shell", "getprop ro.product.model"},
		},
		{
			name: "connect",
			call: func(c *Client) error {
				_, err := c.Connect(context.Background(), "192.168.1.5", 5555)
				return err
			},
			wantArgs: []string{"connect", "192.168.1.5:5555"},
		},
		{
			name: "disconnect",
			call: func(c *Client) error {
				_, err := c.Disconnect(context.Background(), "192.168.1.5:5555")
				return err
			},
			wantArgs: []string{"disconnect", "192.168.1.5:5555"},
		},
		{
			name:     "start server",
			call:     func(c *Client) error { return c.StartServer(context.Background()) },
			wantArgs: []string{"start-server"},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var got []string
			client := fakeClient(func(ctx context.Context, args ...string) (string, string, error) {
				got = args
				return "", "", nil
			})

			require.NoError(t, tc.call(client))
			assert.Equal(t, tc.wantArgs, got)
		})
	}
}

func TestClientShellPropertyTrimsOutput(t *testing.T) {
	t.Parallel()

	client := fakeClient(func(ctx context.Context, args ...string) (string, string, error) {
		return "Pixel 6\r\n", "", nil
	})

	model, err := client.Model(context.Background(), "R3CN70ABCDE")
	require.NoError(t, err)
	assert.Equal(t, "Pixel 6", model)
}

func TestClientDeviceIPParsesRouteTable(t *testing.T) {
	t.Parallel()

	client := fakeClient(func(ctx context.Context, args ...string) (string, string, error) {
		return "192.168.1.0/24 dev wlan0 proto kernel scope link src 192.168.1.100\n", "", nil
	})

	ip, err := client.DeviceIP(context.Background(), "R3CN70ABCDE")
	require.NoError(t, err)
	assert.Equal(t, "192.168.1.100", ip)
}

func TestClientSurfacesStderrVerbatim(t *testing.T) {
	t.Parallel()

	client := fakeClient(func(ctx context.Context, args ...string) (string, string, error) {
		return "", "error: device 'ABC' not found", errors.New("exit status 1")
	})

	_, err := client.SetTransportMode(context.Background(), "ABC", 5555)
	require.Error(t, err)
	assert.Equal(t, "error: device 'ABC' not found", err.Error())
	assert.True(t, errors.Is(err, domain.ErrExec))
}

func TestClientMissingExecutable(t *testing.T) {
	t.Parallel()

	client := NewClient("/nonexistent/droidmirror-test/adb")

	_, err := client.Version(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrExec))
	assert.ErrorContains(t, err, "failed to execute adb")
}

func TestClientHonoursCanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := fakeClient(func(ctx context.Context, args ...string) (string, string, error) {
		t.Fatal("run must not be called with a canceled context")
		return "", "", nil
	})

	_, err := client.ListDevices(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
