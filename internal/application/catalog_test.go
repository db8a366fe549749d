package application

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/bnema/droidmirror/internal/adapters/bridge/adb"
	"github.com/bnema/droidmirror/internal/domain"
	"github.com/bnema/droidmirror/internal/ports"
	"github.com/bnema/droidmirror/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCatalogEnumerateModelResolution(t *testing.T) {
	t.Parallel()

	bridge := mocks.NewMockBridgeClient(t)
	bridge.EXPECT().ListDevices(mock.Anything).Return([]ports.DeviceRecord{
		{Serial: "WITHMODEL", State: "device", Model: "Pixel_6"},
		{Serial: "PRODUCT", State: "device", Product: "oriole"},
		{Serial: "CODENAME", State: "device", Device: "raven"},
		{Serial: "LOOKUP", State: "device"},
		{Serial: "LOOKUPFAIL", State: "device"},
		{Serial: "LOCKED", State: "unauthorized", TransportID: "7"},
		{Serial: "192.168.1.20:5555", State: "offline"},
	}, nil).Once()
	bridge.EXPECT().ShellProperty(mock.Anything, "LOOKUP", "ro.product.model").Return("Pixel 8\n", nil).Once()
	bridge.EXPECT().ShellProperty(mock.Anything, "LOOKUPFAIL", "ro.product.model").Return("", errors.New("device offline")).Once()

	devices, err := NewDeviceCatalog(bridge, nil, 2).Enumerate(context.Background())
	require.NoError(t, err)
	require.Len(t, devices, 7)

	names := make([]string, 0, len(devices))
	for _, device := range devices {
		names = append(names, device.ModelName)
	}
	assert.Equal(t, []string{"Pixel_6", "oriole", "raven", "Pixel 8", "Unknown", "Unknown Device", "Unknown Device"}, names)

	assert.Equal(t, domain.DeviceStateUnauthorized, devices[5].State)
	assert.Equal(t, "7", devices[5].TransportID)
	assert.Equal(t, domain.TransportWireless, devices[6].Transport())
	assert.Equal(t, domain.DeviceStateOffline, devices[6].State)
	assert.Equal(t, "Pixel 6", devices[0].DisplayName())
}

func TestCatalogUnauthorizedSkipsPropertyLookup(t *testing.T) {
	t.Parallel()

	bridge := mocks.NewMockBridgeClient(t)
	bridge.EXPECT().ListDevices(mock.Anything).Return(
		adb.ParseDevices("List of devices attached\nSERIAL123\tunauthorized transport_id:1"), nil).Once()

	devices, err := NewDeviceCatalog(bridge, nil, 0).Enumerate(context.Background())
	require.NoError(t, err)
	require.Len(t, devices, 1)
	assert.Equal(t, domain.DeviceStateUnauthorized, devices[0].State)
	assert.Equal(t, domain.UnknownDeviceName, devices[0].ModelName)
	bridge.AssertNotCalled(t, "ShellProperty", mock.Anything, mock.Anything, mock.Anything)
}

func TestCatalogEnumerateIsIdempotent(t *testing.T) {
	t.Parallel()

	output := "List of devices attached\n"
	for i := 0; i < 50; i++ {
		output += fmt.Sprintf("dev-%02d device product:p model:m%d device:d transport_id:%d\n", i, i, i)
	}
	output += "\nshort\n"

	bridge := mocks.NewMockBridgeClient(t)
	bridge.EXPECT().ListDevices(mock.Anything).RunAndReturn(func(context.Context) ([]ports.DeviceRecord, error) {
		return adb.ParseDevices(output), nil
	}).Twice()

	catalog := NewDeviceCatalog(bridge, nil, 8)
	first, err := catalog.Enumerate(context.Background())
	require.NoError(t, err)
	second, err := catalog.Enumerate(context.Background())
	require.NoError(t, err)

	assert.Len(t, first, 50)
	assert.Equal(t, first, second)
	for i, device := range first {
		assert.Equal(t, fmt.Sprintf("dev-%02d", i), device.Serial)
	}
}

func TestCatalogPropagatesBridgeError(t *testing.T) {
	t.Parallel()

	bridge := mocks.NewMockBridgeClient(t)
	bridge.EXPECT().ListDevices(mock.Anything).Return(nil, domain.NewError(domain.KindExec, "adb server version mismatch", nil)).Once()

	_, err := NewDeviceCatalog(bridge, nil, 0).Enumerate(context.Background())
	require.Error(t, err)
	assert.Equal(t, "adb server version mismatch", err.Error())
}
