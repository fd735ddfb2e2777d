// Package iokit implements the native platform contracts on top of Apple's
// IOKit HID manager and CoreFoundation run loops.
package iokit

/*
#cgo LDFLAGS: -framework CoreFoundation -framework IOKit

#include <CoreFoundation/CoreFoundation.h>
#include <IOKit/hid/IOHIDManager.h>
#include <IOKit/IOKitLib.h>
#include <stdlib.h>

extern void hidapigoReportCallback(void *context, IOReturn result, void *sender,
	IOHIDReportType type, uint32_t report_id, uint8_t *report, CFIndex report_length);

extern void hidapigoRemovalCallback(void *context, IOReturn result, void *sender);

// No-op perform routine for the wake-up source: its only job is to make a
// blocked CFRunLoopRunInMode call return.
static void hidapigo_wakeup_perform(void *info) {}

static CFRunLoopSourceRef hidapigo_create_wakeup_source(void) {
	CFRunLoopSourceContext ctx;
	memset(&ctx, 0, sizeof(ctx));
	ctx.perform = hidapigo_wakeup_perform;
	return CFRunLoopSourceCreate(kCFAllocatorDefault, 0, &ctx);
}
*/
import "C"

import (
	"strconv"
	"strings"
	"sync"
	"unsafe"

	"github.com/ruabmbua/hidapi-go/internal/native"
)

const devSrvsIDPrefix = "DevSrvsID:"

// system implements native.System. It is stateless; IOKit global state lives
// in the kernel connection.
type system struct{}

// Sys returns the IOKit implementation of the platform contracts.
func Sys() native.System { return system{} }

func (system) NewDeviceManager() (native.DeviceManager, int32) {
	ref := C.IOHIDManagerCreate(C.kCFAllocatorDefault, C.kIOHIDOptionsTypeNone)
	if ref == nil {
		return nil, -1
	}
	return &manager{ref: ref}, native.StatusOK
}

func (system) ResolvePath(path string) (native.Device, bool) {
	var service C.io_service_t

	if id, ok := strings.CutPrefix(path, devSrvsIDPrefix); ok {
		entryID, err := strconv.ParseUint(id, 10, 64)
		if err != nil {
			return nil, false
		}
		// IOServiceGetMatchingService consumes one reference to the matching
		// dictionary, no release needed.
		service = C.IOServiceGetMatchingService(0, C.IORegistryEntryIDMatching(C.uint64_t(entryID)))
	} else {
		// Legacy IORegistry path form.
		cpath := C.CString(path)
		defer C.free(unsafe.Pointer(cpath))
		service = C.io_registry_entry_t(C.IORegistryEntryFromPath(0, (*C.char)(cpath)))
	}

	if service == 0 {
		return nil, false
	}
	defer C.IOObjectRelease(C.io_object_t(service))

	ref := C.IOHIDDeviceCreate(C.kCFAllocatorDefault, service)
	if ref == nil {
		return nil, false
	}
	return newDevice(ref), true
}

func (system) CurrentRunLoop() native.RunLoop {
	return &runLoop{ref: C.CFRunLoopGetCurrent()}
}

func (system) MainRunLoop() native.RunLoop {
	return &runLoop{ref: C.CFRunLoopGetMain()}
}

func (system) NewWakeSource() native.WakeSource {
	return &wakeSource{ref: C.hidapigo_create_wakeup_source()}
}

// manager wraps an IOHIDManagerRef.
type manager struct {
	ref C.IOHIDManagerRef
}

func (m *manager) SetMatchingAll() {
	// A NULL matching dictionary means "all devices".
	C.IOHIDManagerSetDeviceMatching(m.ref, nil)
}

func (m *manager) Devices() []native.Device {
	set := C.IOHIDManagerCopyDevices(m.ref)
	if set == nil {
		return nil
	}
	defer C.CFRelease(C.CFTypeRef(set))

	count := int(C.CFSetGetCount(set))
	if count == 0 {
		return nil
	}

	refs := make([]unsafe.Pointer, count)
	C.CFSetGetValues(set, &refs[0])

	devices := make([]native.Device, 0, count)
	for _, p := range refs {
		if p == nil {
			continue
		}
		ref := C.IOHIDDeviceRef(p)
		// The set owns the only reference; retain before the set is released
		// so the device objects stay valid.
		C.CFRetain(C.CFTypeRef(ref))
		devices = append(devices, newDevice(ref))
	}
	return devices
}

func (m *manager) Close() {
	C.CFRelease(C.CFTypeRef(m.ref))
	m.ref = nil
}

// device wraps an IOHIDDeviceRef and routes its asynchronous callbacks back
// into Go through the context registry below.
type device struct {
	ref C.IOHIDDeviceRef
	ctx uintptr

	cbMu      sync.Mutex
	reportCb  native.ReportCallback
	removalCb func()
}

// deviceCtx maps opaque context values handed to IOKit back to devices. cgo
// forbids passing Go pointers through C callbacks, so an integer key stands
// in for the device.
var deviceCtx struct {
	sync.Mutex
	next    uintptr
	devices map[uintptr]*device
}

func newDevice(ref C.IOHIDDeviceRef) *device {
	deviceCtx.Lock()
	defer deviceCtx.Unlock()

	if deviceCtx.devices == nil {
		deviceCtx.devices = make(map[uintptr]*device)
	}
	deviceCtx.next++
	d := &device{ref: ref, ctx: deviceCtx.next}
	deviceCtx.devices[d.ctx] = d
	return d
}

func lookupDevice(ctx uintptr) *device {
	deviceCtx.Lock()
	defer deviceCtx.Unlock()
	return deviceCtx.devices[ctx]
}

func (d *device) Release() {
	deviceCtx.Lock()
	delete(deviceCtx.devices, d.ctx)
	deviceCtx.Unlock()

	C.CFRelease(C.CFTypeRef(d.ref))
	d.ref = nil
}

func (d *device) Addr() uintptr {
	return uintptr(unsafe.Pointer(d.ref))
}

func (d *device) Open(opts native.OpenOptions) int32 {
	return int32(C.IOHIDDeviceOpen(d.ref, C.IOOptionBits(opts)))
}

func (d *device) Close(opts native.OpenOptions) int32 {
	return int32(C.IOHIDDeviceClose(d.ref, C.IOOptionBits(opts)))
}

func (d *device) RegistryEntryID() (uint64, bool) {
	service := C.IOHIDDeviceGetService(d.ref)
	if service == 0 {
		return 0, false
	}
	var entryID C.uint64_t
	if C.IORegistryEntryGetRegistryEntryID(C.io_registry_entry_t(service), &entryID) != C.KERN_SUCCESS {
		return 0, false
	}
	return uint64(entryID), true
}

func (d *device) SetReport(typ native.ReportType, reportID int32, data []byte) int32 {
	// Stripping a zero report ID can leave an empty payload; the native call
	// still needs a valid pointer.
	var zero C.uint8_t
	p := &zero
	if len(data) > 0 {
		p = (*C.uint8_t)(&data[0])
	}
	return int32(C.IOHIDDeviceSetReport(d.ref, reportType(typ), C.CFIndex(reportID), p,
		C.CFIndex(len(data))))
}

func (d *device) GetReport(typ native.ReportType, reportID int32, buf []byte) (int, int32) {
	var zero C.uint8_t
	p := &zero
	if len(buf) > 0 {
		p = (*C.uint8_t)(&buf[0])
	}
	length := C.CFIndex(len(buf))
	status := C.IOHIDDeviceGetReport(d.ref, reportType(typ), C.CFIndex(reportID), p, &length)
	return int(length), int32(status)
}

func (d *device) ScheduleWithRunLoop(loop native.RunLoop, mode string) {
	cmode := cfstr(mode)
	defer C.CFRelease(C.CFTypeRef(cmode))
	C.IOHIDDeviceScheduleWithRunLoop(d.ref, loop.(*runLoop).ref, cmode)
}

func (d *device) UnscheduleFromRunLoop(loop native.RunLoop, mode string) {
	cmode := cfstr(mode)
	defer C.CFRelease(C.CFTypeRef(cmode))
	C.IOHIDDeviceUnscheduleFromRunLoop(d.ref, loop.(*runLoop).ref, cmode)
}

func (d *device) RegisterInputReportCallback(buf []byte, cb native.ReportCallback) native.CallbackGuard {
	d.cbMu.Lock()
	d.reportCb = cb
	d.cbMu.Unlock()

	C.IOHIDDeviceRegisterInputReportCallback(d.ref, (*C.uint8_t)(&buf[0]), C.CFIndex(len(buf)),
		(C.IOHIDReportCallback)(unsafe.Pointer(C.hidapigoReportCallback)), unsafe.Pointer(d.ctx))

	return &reportGuard{dev: d, buf: buf}
}

// reportGuard keeps the report buffer alive for the registration lifetime.
type reportGuard struct {
	dev *device
	buf []byte
}

func (g *reportGuard) Unregister() {
	C.IOHIDDeviceRegisterInputReportCallback(g.dev.ref, nil, 0, nil, unsafe.Pointer(g.dev.ctx))

	g.dev.cbMu.Lock()
	g.dev.reportCb = nil
	g.dev.cbMu.Unlock()
	g.buf = nil
}

func (d *device) RegisterRemovalCallback(cb func()) {
	d.cbMu.Lock()
	d.removalCb = cb
	d.cbMu.Unlock()

	C.IOHIDDeviceRegisterRemovalCallback(d.ref,
		(C.IOHIDCallback)(unsafe.Pointer(C.hidapigoRemovalCallback)), unsafe.Pointer(d.ctx))
}

func (d *device) UnregisterRemovalCallback() {
	C.IOHIDDeviceRegisterRemovalCallback(d.ref, nil, unsafe.Pointer(d.ctx))

	d.cbMu.Lock()
	d.removalCb = nil
	d.cbMu.Unlock()
}

func reportType(typ native.ReportType) C.IOHIDReportType {
	switch typ {
	case native.ReportOutput:
		return C.kIOHIDReportTypeOutput
	case native.ReportFeature:
		return C.kIOHIDReportTypeFeature
	default:
		return C.kIOHIDReportTypeInput
	}
}
