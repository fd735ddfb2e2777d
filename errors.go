package hidapi

import (
	"errors"
	"fmt"
)

var (
	// ErrDeviceDisconnected is returned by I/O operations after the device
	// has been physically removed.
	ErrDeviceDisconnected = errors.New("device disconnected")

	// ErrThreadShutdown is returned by reads that were blocked while the
	// handle was being closed from another goroutine.
	ErrThreadShutdown = errors.New("device reader shut down")

	// ErrDeviceNotFound is returned by Open/OpenSerial when no attached
	// device matches, and by OpenPath when the path token does not resolve
	// to a live device.
	ErrDeviceNotFound = errors.New("device not found")

	// ErrInvalidInput is returned when a report buffer is empty.
	ErrInvalidInput = errors.New("invalid input: report buffer must not be empty")
)

// NativeAPIError reports a native HID call that returned a non-success
// status. Code carries the raw platform status for diagnostics.
type NativeAPIError struct {
	Code int32
	Op   string
}

func (e *NativeAPIError) Error() string {
	return fmt.Sprintf("native HID call %s failed: %#x", e.Op, uint32(e.Code))
}

// nativeErr wraps a nonzero native status code.
func nativeErr(op string, code int32) error {
	return &NativeAPIError{Code: code, Op: op}
}
