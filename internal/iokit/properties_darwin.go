package iokit

/*
#include <CoreFoundation/CoreFoundation.h>
#include <IOKit/hid/IOHIDManager.h>
#include <IOKit/IOKitLib.h>
#include <stdlib.h>
*/
import "C"

import (
	"unsafe"

	"github.com/ruabmbua/hidapi-go/internal/native"
)

// cfstr creates a CFString the caller must release.
func cfstr(s string) C.CFStringRef {
	return C.CFStringCreateWithBytes(C.kCFAllocatorDefault,
		(*C.UInt8)(unsafe.Pointer(unsafe.StringData(s))), C.CFIndex(len(s)),
		C.kCFStringEncodingUTF8, 0)
}

// gostr converts a CFString without taking ownership.
func gostr(ref C.CFStringRef) string {
	if ref == nil {
		return ""
	}
	length := C.CFStringGetLength(ref)
	if length == 0 {
		return ""
	}
	bufLen := C.CFStringGetMaximumSizeForEncoding(length, C.kCFStringEncodingUTF8) + 1
	buf := make([]byte, int(bufLen))
	if C.CFStringGetCString(ref, (*C.char)(unsafe.Pointer(&buf[0])), bufLen, C.kCFStringEncodingUTF8) == 0 {
		return ""
	}
	n := 0
	for n < len(buf) && buf[n] != 0 {
		n++
	}
	return string(buf[:n])
}

func (d *device) IntProperty(key string) (int32, bool) {
	ckey := cfstr(key)
	defer C.CFRelease(C.CFTypeRef(ckey))

	ref := C.IOHIDDeviceGetProperty(d.ref, ckey)
	return cfNumberInt32(ref)
}

func (d *device) StringProperty(key string) (string, bool) {
	ckey := cfstr(key)
	defer C.CFRelease(C.CFTypeRef(ckey))

	ref := C.IOHIDDeviceGetProperty(d.ref, ckey)
	if ref == nil || C.CFGetTypeID(ref) != C.CFStringGetTypeID() {
		return "", false
	}
	return gostr(C.CFStringRef(ref)), true
}

func (d *device) DataProperty(key string) ([]byte, bool) {
	ckey := cfstr(key)
	defer C.CFRelease(C.CFTypeRef(ckey))

	ref := C.IOHIDDeviceGetProperty(d.ref, ckey)
	if ref == nil || C.CFGetTypeID(ref) != C.CFDataGetTypeID() {
		return nil, false
	}
	data := C.CFDataRef(ref)
	length := int(C.CFDataGetLength(data))
	if length == 0 {
		return nil, true
	}
	return C.GoBytes(unsafe.Pointer(C.CFDataGetBytePtr(data)), C.int(length)), true
}

// UsagePairs reads the additional usage pairs from the DeviceUsagePairs
// property: an array of dictionaries each holding a DeviceUsagePage and
// DeviceUsage number. Malformed entries are skipped.
func (d *device) UsagePairs() []native.UsagePair {
	ckey := cfstr(native.KeyDeviceUsagePairs)
	defer C.CFRelease(C.CFTypeRef(ckey))

	ref := C.IOHIDDeviceGetProperty(d.ref, ckey)
	if ref == nil || C.CFGetTypeID(ref) != C.CFArrayGetTypeID() {
		return nil
	}
	array := C.CFArrayRef(ref)
	count := int(C.CFArrayGetCount(array))

	pageKey := cfstr("DeviceUsagePage")
	usageKey := cfstr("DeviceUsage")
	defer C.CFRelease(C.CFTypeRef(pageKey))
	defer C.CFRelease(C.CFTypeRef(usageKey))

	pairs := make([]native.UsagePair, 0, count)
	for i := 0; i < count; i++ {
		entry := C.CFArrayGetValueAtIndex(array, C.CFIndex(i))
		if entry == nil || C.CFGetTypeID(C.CFTypeRef(entry)) != C.CFDictionaryGetTypeID() {
			continue
		}
		dict := C.CFDictionaryRef(entry)

		page, ok := cfNumberInt32(C.CFTypeRef(C.CFDictionaryGetValue(dict, unsafe.Pointer(pageKey))))
		if !ok {
			continue
		}
		usage, ok := cfNumberInt32(C.CFTypeRef(C.CFDictionaryGetValue(dict, unsafe.Pointer(usageKey))))
		if !ok {
			continue
		}
		pairs = append(pairs, native.UsagePair{Page: uint16(page), Usage: uint16(usage)})
	}
	return pairs
}

// AncestorIntProperty searches the IOService registry plane upward from the
// device's service entry.
func (d *device) AncestorIntProperty(key string) (int32, bool) {
	service := C.IOHIDDeviceGetService(d.ref)
	if service == 0 {
		return 0, false
	}

	ckey := cfstr(key)
	defer C.CFRelease(C.CFTypeRef(ckey))

	plane := C.CString("IOService")
	defer C.free(unsafe.Pointer(plane))

	ref := C.IORegistryEntrySearchCFProperty(C.io_registry_entry_t(service), plane, ckey,
		C.kCFAllocatorDefault, C.kIORegistryIterateRecursively|C.kIORegistryIterateParents)
	if ref == nil {
		return 0, false
	}
	defer C.CFRelease(ref)
	return cfNumberInt32(ref)
}

func cfNumberInt32(ref C.CFTypeRef) (int32, bool) {
	if ref == nil || C.CFGetTypeID(ref) != C.CFNumberGetTypeID() {
		return 0, false
	}
	var value C.int32_t
	if C.CFNumberGetValue(C.CFNumberRef(ref), C.kCFNumberSInt32Type, unsafe.Pointer(&value)) == 0 {
		return 0, false
	}
	return int32(value), true
}
