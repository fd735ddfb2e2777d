package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	hidapi "github.com/ruabmbua/hidapi-go"
)

func TestParseHexID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    uint16
		wantErr bool
	}{
		{name: "plain hex", input: "05ac", want: 0x05ac},
		{name: "0x prefix", input: "0x1114", want: 0x1114},
		{name: "uppercase", input: "0X05AC", want: 0x05ac},
		{name: "max value", input: "ffff", want: 0xffff},
		{name: "too large", input: "10000", wantErr: true},
		{name: "not hex", input: "widget", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseHexID(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatDeviceInfo(t *testing.T) {
	info := hidapi.DeviceInfo{
		Path:            "/dev/hidraw0",
		VendorID:        0x05ac,
		ProductID:       0x1114,
		BusType:         hidapi.BusUSB,
		ProductString:   "Widget",
		SerialNumber:    "SN-42",
		UsagePage:       0x0001,
		Usage:           0x0006,
		InterfaceNumber: 2,
	}

	out := formatDeviceInfo(info)
	assert.Contains(t, out, "05ac:1114")
	assert.Contains(t, out, "bus=USB")
	assert.Contains(t, out, "if=2")
	assert.Contains(t, out, `"Widget"`)
	assert.Contains(t, out, "serial=SN-42")
	assert.Contains(t, out, "/dev/hidraw0")
}

func TestFormatDeviceInfo_OmitsInterfaceForNonUSB(t *testing.T) {
	info := hidapi.DeviceInfo{
		Path:            "/dev/hidraw1",
		VendorID:        0x046d,
		ProductID:       0xb369,
		BusType:         hidapi.BusBluetooth,
		InterfaceNumber: -1,
	}

	out := formatDeviceInfo(info)
	assert.Contains(t, out, "bus=Bluetooth")
	assert.NotContains(t, out, "if=")
}
