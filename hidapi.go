// Package hidapi provides cross-platform access to USB, Bluetooth, I2C and SPI
// HID devices: enumeration of attached devices and read/write/feature-report
// I/O against open handles.
//
// The backend is platform-native: Apple's IOKit HID manager on macOS, raw
// hidraw character devices plus udev on Linux, and the vendored hidapi C
// library (via github.com/karalabe/hid) elsewhere.
package hidapi

import (
	"time"
)

// BusType identifies the transport a HID device is attached through.
type BusType int

const (
	BusUnknown BusType = iota
	BusUSB
	BusBluetooth
	BusI2C
	BusSPI
)

// String returns a human readable transport name.
func (b BusType) String() string {
	switch b {
	case BusUSB:
		return "USB"
	case BusBluetooth:
		return "Bluetooth"
	case BusI2C:
		return "I2C"
	case BusSPI:
		return "SPI"
	default:
		return "Unknown"
	}
}

// busTypeFromTransport maps a native transport property string to a BusType.
func busTypeFromTransport(transport string) BusType {
	switch transport {
	case "USB":
		return BusUSB
	case "Bluetooth":
		return BusBluetooth
	case "I2C":
		return BusI2C
	case "SPI":
		return BusSPI
	default:
		return BusUnknown
	}
}

// DeviceInfo describes one usage-page/usage pair exposed by a connected HID
// device. Devices exposing multiple usage pairs yield one DeviceInfo per pair,
// all sharing the same path token.
type DeviceInfo struct {
	// Path is a stable token that can be passed to OpenPath.
	Path string

	VendorID  uint16
	ProductID uint16
	BusType   BusType

	SerialNumber       string
	ManufacturerString string
	ProductString      string
	ReleaseNumber      uint16

	UsagePage uint16
	Usage     uint16

	// InterfaceNumber is the USB interface number, or -1 when the device is
	// not attached over USB or the number could not be determined.
	InterfaceNumber int
}

// Device is an open HID device handle.
//
// All methods are safe for concurrent use. Read and ReadTimeout deliver
// device-initiated input reports in arrival order; Write sends output reports;
// feature reports follow the numbered-report convention where the first byte
// of every buffer is the report ID (0 when the device does not use numbered
// reports).
type Device interface {
	// Write sends an output report. The first byte of data is the report ID.
	// It returns the number of bytes sent, counting the report ID byte.
	Write(data []byte) (int, error)

	// Read reads the next input report into buf. It blocks when the handle is
	// in blocking mode (the default), otherwise it polls.
	Read(buf []byte) (int, error)

	// ReadTimeout reads the next input report into buf. A negative timeout
	// blocks until a report arrives, zero polls without waiting, and a
	// positive timeout waits at most that long. An expired timeout returns
	// (0, nil).
	ReadTimeout(buf []byte, timeout time.Duration) (int, error)

	// SendFeatureReport sends a feature report. The first byte of data is the
	// report ID.
	SendFeatureReport(data []byte) (int, error)

	// GetFeatureReport requests a feature report. The caller sets the first
	// byte of buf to the report ID before the call.
	GetFeatureReport(buf []byte) (int, error)

	// GetInputReport requests an input report synchronously, bypassing the
	// asynchronous report queue. The caller sets the first byte of buf to the
	// report ID before the call.
	GetInputReport(buf []byte) (int, error)

	// SetBlockingMode switches Read between blocking and polling behavior.
	SetBlockingMode(blocking bool) error

	// Info returns the DeviceInfo this handle was opened from.
	Info() (DeviceInfo, error)

	// ManufacturerString, ProductString and SerialNumberString return the
	// corresponding device string, or "" when the device does not provide it.
	ManufacturerString() (string, error)
	ProductString() (string, error)
	SerialNumberString() (string, error)

	// ReportDescriptor copies the raw HID report descriptor into buf and
	// returns the number of bytes copied.
	ReportDescriptor(buf []byte) (int, error)

	// Close releases the device. Reads blocked on other goroutines return
	// promptly. Close is idempotent.
	Close() error
}

// matches reports whether info matches the given vendor/product pair and,
// when serial is non-empty, the serial number.
func (info *DeviceInfo) matches(vendorID, productID uint16, serial string) bool {
	if info.VendorID != vendorID || info.ProductID != productID {
		return false
	}
	return serial == "" || info.SerialNumber == serial
}
