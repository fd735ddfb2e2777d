package iokit

/*
#include <CoreFoundation/CoreFoundation.h>
#include <IOKit/hid/IOHIDManager.h>
*/
import "C"

import "unsafe"

// The exported callbacks live in their own file: cgo forbids C definitions in
// the preamble of a file using //export.

//export hidapigoReportCallback
func hidapigoReportCallback(context unsafe.Pointer, result C.IOReturn, sender unsafe.Pointer,
	typ C.IOHIDReportType, reportID C.uint32_t, report *C.uint8_t, reportLength C.CFIndex) {
	if result != C.kIOReturnSuccess || reportLength <= 0 {
		return
	}
	d := lookupDevice(uintptr(context))
	if d == nil {
		return
	}
	d.cbMu.Lock()
	cb := d.reportCb
	d.cbMu.Unlock()
	if cb != nil {
		cb(unsafe.Slice((*byte)(report), int(reportLength)))
	}
}

//export hidapigoRemovalCallback
func hidapigoRemovalCallback(context unsafe.Pointer, result C.IOReturn, sender unsafe.Pointer) {
	d := lookupDevice(uintptr(context))
	if d == nil {
		return
	}
	d.cbMu.Lock()
	cb := d.removalCb
	d.cbMu.Unlock()
	if cb != nil {
		cb()
	}
}
