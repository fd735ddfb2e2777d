package hidapi

import (
	"github.com/rs/zerolog/log"

	"github.com/ruabmbua/hidapi-go/internal/iokit"
	"github.com/ruabmbua/hidapi-go/internal/native"
)

// Enumerate lists every usage pair of every HID device attached to the host.
func Enumerate() ([]DeviceInfo, error) {
	sys := iokit.Sys()

	mgr, status := sys.NewDeviceManager()
	if status != native.StatusOK {
		return nil, nativeErr("create device manager", status)
	}
	defer mgr.Close()

	return enumerateWith(mgr), nil
}

// Open opens the first device matching the vendor/product pair.
func Open(vendorID, productID uint16) (Device, error) {
	return openMatching(vendorID, productID, "")
}

// OpenSerial opens the device matching the vendor/product pair and serial
// number.
func OpenSerial(vendorID, productID uint16, serial string) (Device, error) {
	return openMatching(vendorID, productID, serial)
}

func openMatching(vendorID, productID uint16, serial string) (Device, error) {
	infos, err := Enumerate()
	if err != nil {
		return nil, err
	}
	for i := range infos {
		if infos[i].matches(vendorID, productID, serial) {
			return OpenPath(infos[i].Path)
		}
	}
	return nil, ErrDeviceNotFound
}

// OpenPath opens a device by the path token reported by Enumerate.
func OpenPath(path string) (Device, error) {
	sys := iokit.Sys()

	dev, ok := sys.ResolvePath(path)
	if !ok {
		return nil, ErrDeviceNotFound
	}

	info := deviceInfos(dev)[0]

	logger := log.With().Str("component", "hid").Str("path", path).Logger()
	return openPumpDevice(sys, dev, info, native.OpenNone, logger)
}
