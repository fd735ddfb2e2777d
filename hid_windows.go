package hidapi

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	karalabehid "github.com/karalabe/hid"
)

// The fallback backend wraps the vendored hidapi C library through
// github.com/karalabe/hid. The C library delivers reads synchronously, so a
// per-device reader goroutine feeds the same bounded queue the native pump
// uses, keeping ReadTimeout semantics identical across backends.

// fallbackReadBufSize bounds one input report; the C library returns at most
// one report per read.
const fallbackReadBufSize = 1024

// Enumerate lists every HID device attached to the host.
func Enumerate() ([]DeviceInfo, error) {
	devices, err := karalabehid.Enumerate(0, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate HID devices: %w", err)
	}

	infos := make([]DeviceInfo, 0, len(devices))
	for _, dev := range devices {
		infos = append(infos, DeviceInfo{
			Path:               dev.Path,
			VendorID:           dev.VendorID,
			ProductID:          dev.ProductID,
			BusType:            BusUSB,
			SerialNumber:       dev.Serial,
			ManufacturerString: dev.Manufacturer,
			ProductString:      dev.Product,
			ReleaseNumber:      dev.Release,
			UsagePage:          dev.UsagePage,
			Usage:              dev.Usage,
			InterfaceNumber:    dev.Interface,
		})
	}
	return infos, nil
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
	devices, err := karalabehid.Enumerate(0, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate HID devices: %w", err)
	}

	for _, devInfo := range devices {
		if devInfo.Path != path {
			continue
		}

		raw, err := devInfo.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", path, err)
		}

		d := &hidapiDevice{
			raw: raw,
			info: DeviceInfo{
				Path:               devInfo.Path,
				VendorID:           devInfo.VendorID,
				ProductID:          devInfo.ProductID,
				BusType:            BusUSB,
				SerialNumber:       devInfo.Serial,
				ManufacturerString: devInfo.Manufacturer,
				ProductString:      devInfo.Product,
				ReleaseNumber:      devInfo.Release,
				UsagePage:          devInfo.UsagePage,
				Usage:              devInfo.Usage,
				InterfaceNumber:    devInfo.Interface,
			},
			queue: newReportQueue(),
		}
		d.blocking.Store(true)

		d.reader.Add(1)
		go func() {
			defer d.reader.Done()
			d.readLoop()
		}()

		return d, nil
	}
	return nil, ErrDeviceNotFound
}

// hidapiDevice adapts a vendored-library device to the Device interface.
type hidapiDevice struct {
	raw  karalabehid.Device
	info DeviceInfo

	queue    *reportQueue
	blocking atomic.Bool
	shutdown atomic.Bool

	reader    sync.WaitGroup
	closeOnce sync.Once
	writeMu   sync.Mutex
}

var _ Device = (*hidapiDevice)(nil)

// readLoop pulls input reports from the C library into the bounded queue
// until the device is closed or fails.
func (d *hidapiDevice) readLoop() {
	buf := make([]byte, fallbackReadBufSize)
	for {
		n, err := d.raw.Read(buf)
		if err != nil || d.shutdown.Load() {
			// Readers blocked past this broadcast must find a terminal flag
			// set when they re-check.
			d.shutdown.Store(true)
			d.queue.broadcast()
			return
		}
		if n > 0 {
			rep := make([]byte, n)
			copy(rep, buf[:n])
			d.queue.push(rep)
		}
	}
}

func (d *hidapiDevice) ReadTimeout(buf []byte, timeout time.Duration) (int, error) {
	q := d.queue

	var deadline time.Time
	if timeout > 0 {
		deadline = time.Now().Add(timeout)
	}

	q.mu.Lock()
	for {
		if len(q.reports) > 0 {
			rep := q.popLocked()
			q.mu.Unlock()
			return copy(buf, rep), nil
		}
		if d.shutdown.Load() {
			q.mu.Unlock()
			return 0, ErrThreadShutdown
		}
		if timeout == 0 {
			q.mu.Unlock()
			return 0, nil
		}

		wake := q.wake
		q.mu.Unlock()

		if timeout < 0 {
			<-wake
		} else {
			remaining := time.Until(deadline)
			if remaining <= 0 {
				return 0, nil
			}
			timer := time.NewTimer(remaining)
			select {
			case <-wake:
				timer.Stop()
			case <-timer.C:
			}
		}

		q.mu.Lock()
	}
}

func (d *hidapiDevice) Read(buf []byte) (int, error) {
	if d.blocking.Load() {
		return d.ReadTimeout(buf, -1)
	}
	return d.ReadTimeout(buf, 0)
}

func (d *hidapiDevice) Write(data []byte) (int, error) {
	if len(data) == 0 {
		return 0, ErrInvalidInput
	}
	d.writeMu.Lock()
	defer d.writeMu.Unlock()
	return d.raw.Write(data)
}

func (d *hidapiDevice) SendFeatureReport(data []byte) (int, error) {
	if len(data) == 0 {
		return 0, ErrInvalidInput
	}
	d.writeMu.Lock()
	defer d.writeMu.Unlock()
	return d.raw.SendFeatureReport(data)
}

func (d *hidapiDevice) GetFeatureReport(buf []byte) (int, error) {
	if len(buf) == 0 {
		return 0, ErrInvalidInput
	}
	d.writeMu.Lock()
	defer d.writeMu.Unlock()
	return d.raw.GetFeatureReport(buf)
}

func (d *hidapiDevice) GetInputReport(buf []byte) (int, error) {
	// The vendored library exposes no synchronous input-report request.
	return 0, ErrInvalidInput
}

func (d *hidapiDevice) SetBlockingMode(blocking bool) error {
	d.blocking.Store(blocking)
	return nil
}

func (d *hidapiDevice) Info() (DeviceInfo, error) {
	return d.info, nil
}

func (d *hidapiDevice) ManufacturerString() (string, error) {
	return d.info.ManufacturerString, nil
}

func (d *hidapiDevice) ProductString() (string, error) {
	return d.info.ProductString, nil
}

func (d *hidapiDevice) SerialNumberString() (string, error) {
	return d.info.SerialNumber, nil
}

func (d *hidapiDevice) ReportDescriptor(buf []byte) (int, error) {
	return 0, ErrInvalidInput
}

func (d *hidapiDevice) Close() error {
	var err error
	d.closeOnce.Do(func() {
		d.shutdown.Store(true)
		// Closing the underlying handle unblocks the reader goroutine.
		err = d.raw.Close()
		d.reader.Wait()
		d.queue.clear()
	})
	return err
}
