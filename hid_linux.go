package hidapi

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"golang.org/x/sys/unix"

	"github.com/ruabmbua/hidapi-go/internal/hidraw"
	"github.com/ruabmbua/hidapi-go/internal/udevenum"
)

// Enumerate lists every hidraw device attached to the host.
func Enumerate() ([]DeviceInfo, error) {
	devices, err := udevenum.Enumerate()
	if err != nil {
		return nil, fmt.Errorf("enumerate hidraw devices: %w", err)
	}

	infos := make([]DeviceInfo, 0, len(devices))
	for _, dev := range devices {
		infos = append(infos, DeviceInfo{
			Path:            dev.DevNode,
			VendorID:        dev.Attrs.VendorID,
			ProductID:       dev.Attrs.ProductID,
			BusType:         busTypeFromCode(dev.Attrs.BusType),
			SerialNumber:    dev.Attrs.Serial,
			ProductString:   dev.Attrs.Name,
			InterfaceNumber: dev.InterfaceNumber,
		})
	}
	return infos, nil
}

func busTypeFromCode(code uint16) BusType {
	switch code {
	case hidraw.BusUSB:
		return BusUSB
	case hidraw.BusBluetooth:
		return BusBluetooth
	case hidraw.BusI2C:
		return BusI2C
	case hidraw.BusSPI:
		return BusSPI
	default:
		return BusUnknown
	}
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

// OpenPath opens a device by its /dev/hidrawN node path.
func OpenPath(path string) (Device, error) {
	kernel, err := hidraw.DetectKernel()
	if err != nil {
		return nil, err
	}

	raw, err := hidraw.Open(path, kernel)
	if err != nil {
		if errors.Is(err, unix.ENOENT) {
			return nil, ErrDeviceNotFound
		}
		return nil, err
	}

	d := &rawDevice{raw: raw, path: path}
	d.blocking.Store(true)
	return d, nil
}

// rawDevice adapts a hidraw device to the Device interface.
type rawDevice struct {
	raw      *hidraw.Device
	path     string
	blocking atomic.Bool
}

var _ Device = (*rawDevice)(nil)

func (d *rawDevice) Write(data []byte) (int, error) {
	if len(data) == 0 {
		return 0, ErrInvalidInput
	}
	n, err := d.raw.Write(data)
	return n, d.mapErr(err)
}

func (d *rawDevice) Read(buf []byte) (int, error) {
	if d.blocking.Load() {
		return d.ReadTimeout(buf, -1)
	}
	return d.ReadTimeout(buf, 0)
}

func (d *rawDevice) ReadTimeout(buf []byte, timeout time.Duration) (int, error) {
	n, err := d.raw.Read(buf, timeout)
	return n, d.mapErr(err)
}

func (d *rawDevice) SendFeatureReport(data []byte) (int, error) {
	if len(data) == 0 {
		return 0, ErrInvalidInput
	}
	n, err := d.raw.SendFeatureReport(data)
	return n, d.mapErr(err)
}

func (d *rawDevice) GetFeatureReport(buf []byte) (int, error) {
	if len(buf) == 0 {
		return 0, ErrInvalidInput
	}
	n, err := d.raw.GetFeatureReport(buf)
	return n, d.mapErr(err)
}

func (d *rawDevice) GetInputReport(buf []byte) (int, error) {
	if len(buf) == 0 {
		return 0, ErrInvalidInput
	}
	n, err := d.raw.GetInputReport(buf)
	return n, d.mapErr(err)
}

func (d *rawDevice) SetBlockingMode(blocking bool) error {
	d.blocking.Store(blocking)
	return nil
}

func (d *rawDevice) Info() (DeviceInfo, error) {
	busType, vendorID, productID, err := d.raw.Info()
	if err != nil {
		return DeviceInfo{}, d.mapErr(err)
	}
	name, _ := d.raw.Name()
	serial, _ := d.raw.Uniq()

	return DeviceInfo{
		Path:            d.path,
		VendorID:        vendorID,
		ProductID:       productID,
		BusType:         busTypeFromCode(uint16(busType)),
		SerialNumber:    serial,
		ProductString:   name,
		InterfaceNumber: -1,
	}, nil
}

func (d *rawDevice) ManufacturerString() (string, error) {
	// hidraw exposes no manufacturer string of its own.
	return "", nil
}

func (d *rawDevice) ProductString() (string, error) {
	name, err := d.raw.Name()
	return name, d.mapErr(err)
}

func (d *rawDevice) SerialNumberString() (string, error) {
	serial, err := d.raw.Uniq()
	return serial, d.mapErr(err)
}

func (d *rawDevice) ReportDescriptor(buf []byte) (int, error) {
	n, err := d.raw.ReportDescriptor(buf)
	return n, d.mapErr(err)
}

func (d *rawDevice) Close() error {
	return d.raw.Close()
}

// mapErr translates a vanished device into the portable disconnect error.
func (d *rawDevice) mapErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, unix.ENODEV) || errors.Is(err, unix.ENXIO) || errors.Is(err, unix.EIO) {
		return ErrDeviceDisconnected
	}
	return err
}
