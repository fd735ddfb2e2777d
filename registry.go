package hidapi

import (
	"fmt"

	"github.com/ruabmbua/hidapi-go/internal/native"
)

// enumerateWith lists every usage pair of every device visible through mgr.
// Each enumerated device object is released before returning.
func enumerateWith(mgr native.DeviceManager) []DeviceInfo {
	mgr.SetMatchingAll()
	devices := mgr.Devices()

	infos := make([]DeviceInfo, 0, len(devices))
	for _, dev := range devices {
		infos = append(infos, deviceInfos(dev)...)
		dev.Release()
	}
	return infos
}

// deviceInfos builds one DeviceInfo per usage pair exposed by dev, primary
// pair first. A device without a primary usage pair still yields one record
// with zero usage fields.
func deviceInfos(dev native.Device) []DeviceInfo {
	primaryPage, _ := dev.IntProperty(native.KeyPrimaryUsagePage)
	primaryUsage, _ := dev.IntProperty(native.KeyPrimaryUsage)

	infos := []DeviceInfo{
		deviceInfoWithUsage(dev, uint16(primaryPage), uint16(primaryUsage)),
	}

	for _, pair := range dev.UsagePairs() {
		if int32(pair.Page) == primaryPage && int32(pair.Usage) == primaryUsage {
			continue
		}
		infos = append(infos, deviceInfoWithUsage(dev, pair.Page, pair.Usage))
	}
	return infos
}

// deviceInfoWithUsage reads the shared metadata of dev and combines it with
// one usage pair.
func deviceInfoWithUsage(dev native.Device, usagePage, usage uint16) DeviceInfo {
	vendorID, _ := dev.IntProperty(native.KeyVendorID)
	productID, _ := dev.IntProperty(native.KeyProductID)
	releaseNumber, _ := dev.IntProperty(native.KeyVersionNumber)

	serial, _ := dev.StringProperty(native.KeySerialNumber)
	manufacturer, _ := dev.StringProperty(native.KeyManufacturer)
	product, _ := dev.StringProperty(native.KeyProduct)

	var path string
	if entryID, ok := dev.RegistryEntryID(); ok {
		path = fmt.Sprintf("DevSrvsID:%d", entryID)
	}

	transport, _ := dev.StringProperty(native.KeyTransport)
	busType := busTypeFromTransport(transport)

	// The interface number only means something for USB devices; everything
	// else gets the "not applicable" sentinel.
	interfaceNumber := -1
	if busType == BusUSB {
		if num, ok := dev.AncestorIntProperty(native.KeyInterfaceNumber); ok {
			interfaceNumber = int(num)
		}
	}

	return DeviceInfo{
		Path:               path,
		VendorID:           uint16(vendorID),
		ProductID:          uint16(productID),
		BusType:            busType,
		SerialNumber:       serial,
		ManufacturerString: manufacturer,
		ProductString:      product,
		ReleaseNumber:      uint16(releaseNumber),
		UsagePage:          usagePage,
		Usage:              usage,
		InterfaceNumber:    interfaceNumber,
	}
}
