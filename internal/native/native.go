// Package native defines the contracts the HID core consumes from the
// platform layer: a device manager, device objects, and the run-loop
// primitives the asynchronous report pump is built on.
//
// Operations are split by thread affinity. Device scheduling and callback
// registration, RunLoop.RunInMode and source management belong to the thread
// that owns the run loop. LoopWaker and WakeSource.Signal are the only
// operations asserted safe from a non-owning thread.
package native

//go:generate mockgen -source=native.go -destination=mocks/native_mock.go -package=mocks

import "time"

// ReportType selects which report pipe a synchronous transfer uses.
type ReportType int

const (
	ReportInput ReportType = iota
	ReportOutput
	ReportFeature
)

// OpenOptions is the platform open/close option bitmask.
type OpenOptions uint32

const (
	// OpenNone opens the device with shared access.
	OpenNone OpenOptions = 0
	// OpenSeizeDevice requests exclusive access.
	OpenSeizeDevice OpenOptions = 1
)

// StatusOK is the success value of native status codes.
const StatusOK int32 = 0

// RunResult is the outcome of one bounded run-loop slice.
type RunResult int

const (
	// RunFinished means the loop has no live sources left; for a loop driving
	// a single HID device this means the device vanished.
	RunFinished RunResult = iota
	// RunStopped means the loop was stopped explicitly.
	RunStopped
	// RunTimedOut means the slice elapsed without events.
	RunTimedOut
	// RunHandledSource means at least one source fired.
	RunHandledSource
)

// DefaultRunLoopMode is the platform default run-loop mode.
const DefaultRunLoopMode = "kCFRunLoopDefaultMode"

// UsagePair is one usage-page/usage combination a device exposes.
type UsagePair struct {
	Page  uint16
	Usage uint16
}

// ReportCallback receives one input report. It is invoked on the run-loop
// thread and report is only valid for the duration of the call; the receiver
// must copy it before returning.
type ReportCallback func(report []byte)

// CallbackGuard unregisters an input-report callback when released.
type CallbackGuard interface {
	Unregister()
}

// DeviceManager wraps the system HID manager. Create one, optionally restrict
// it with a matching filter, copy the current device set, then Close it.
// Every Device returned by Devices must be Released exactly once.
type DeviceManager interface {
	// SetMatchingAll removes any device-matching filter.
	SetMatchingAll()
	// Devices copies the currently attached device set.
	Devices() []Device
	Close()
}

// Device wraps one native HID device object.
//
// Property lookups and RegistryEntryID are safe before the device is opened.
// SetReport/GetReport return the raw native status code and must be
// serialized by the caller; the scheduling and callback-registration methods
// must only be called from the thread owning the target run loop (scheduling
// onto the main loop during teardown is the documented exception).
type Device interface {
	IntProperty(key string) (int32, bool)
	StringProperty(key string) (string, bool)
	DataProperty(key string) ([]byte, bool)
	// UsagePairs returns the additional usage pairs from the device's
	// usage-pairs property, in property order.
	UsagePairs() []UsagePair
	// AncestorIntProperty searches the device's ancestor chain in the service
	// plane for an integer property.
	AncestorIntProperty(key string) (int32, bool)

	// RegistryEntryID returns the stable system identifier used to build
	// "DevSrvsID:<id>" path tokens.
	RegistryEntryID() (uint64, bool)

	// Addr returns the address of the underlying native object. Used to
	// derive a run-loop mode string unique to this device.
	Addr() uintptr

	Open(opts OpenOptions) int32
	Close(opts OpenOptions) int32

	SetReport(typ ReportType, reportID int32, data []byte) int32
	GetReport(typ ReportType, reportID int32, buf []byte) (int, int32)

	ScheduleWithRunLoop(loop RunLoop, mode string)
	UnscheduleFromRunLoop(loop RunLoop, mode string)

	// RegisterInputReportCallback installs cb bound to buf. buf must stay
	// alive until the returned guard is released.
	RegisterInputReportCallback(buf []byte, cb ReportCallback) CallbackGuard
	// RegisterRemovalCallback installs cb, invoked on the scheduled run-loop
	// thread when the device is physically removed.
	RegisterRemovalCallback(cb func())
	UnregisterRemovalCallback()

	// Release drops the reference obtained from enumeration or path
	// resolution. Balanced create/release is the caller's responsibility.
	Release()
}

// RunLoop is a thread-owned cooperative event loop. All methods except Waker
// must be called from the owning thread.
type RunLoop interface {
	// RunInMode drives the loop in the given mode for at most timeout.
	RunInMode(mode string, timeout time.Duration) RunResult
	AddSource(src WakeSource, mode string)
	RemoveSource(src WakeSource, mode string)
	// Waker returns the cross-thread-safe view of this loop.
	Waker() LoopWaker
}

// LoopWaker is the subset of run-loop operations documented as safe from any
// thread.
type LoopWaker interface {
	WakeUp()
	Stop()
}

// WakeSource is a custom run-loop source with no associated I/O, used to
// force a blocked RunInMode call to return. Signal is safe from any thread;
// Invalidate must happen on the owning thread.
type WakeSource interface {
	Signal()
	Invalidate()
}

// System is the platform entry point handed to the core.
type System interface {
	// NewDeviceManager creates a device manager, or returns a nonzero native
	// status on failure.
	NewDeviceManager() (DeviceManager, int32)
	// ResolvePath resolves a path token to a live device object. The boolean
	// is false when the token does not resolve.
	ResolvePath(path string) (Device, bool)
	// CurrentRunLoop returns the run loop owned by the calling thread.
	CurrentRunLoop() RunLoop
	// MainRunLoop returns the process main run loop.
	MainRunLoop() RunLoop
	NewWakeSource() WakeSource
}

// Property keys shared by the registry and the device handle. The values are
// the native IOHIDDeviceKeys strings.
const (
	KeyVendorID           = "VendorID"
	KeyProductID          = "ProductID"
	KeySerialNumber       = "SerialNumber"
	KeyManufacturer       = "Manufacturer"
	KeyProduct            = "Product"
	KeyVersionNumber      = "VersionNumber"
	KeyTransport          = "Transport"
	KeyPrimaryUsagePage   = "PrimaryUsagePage"
	KeyPrimaryUsage       = "PrimaryUsage"
	KeyDeviceUsagePairs   = "DeviceUsagePairs"
	KeyMaxInputReportSize = "MaxInputReportSize"
	KeyReportDescriptor   = "ReportDescriptor"
	KeyInterfaceNumber    = "bInterfaceNumber"
)
