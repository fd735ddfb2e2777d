package hidraw

import (
	"fmt"
	"os"
	"time"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Bus type constants from include/uapi/linux/input.h.
const (
	BusUSB       = 0x03
	BusBluetooth = 0x05
	BusI2C       = 0x18
	BusSPI       = 0x1C
)

// Device is an open hidraw character device.
type Device struct {
	f      *os.File
	kernel KernelVersion
}

// Open opens a /dev/hidrawN node. kernel selects version-dependent
// workarounds; use DetectKernel for the running system.
func Open(path string, kernel KernelVersion) (*Device, error) {
	fd, err := unix.Open(path, unix.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return &Device{f: os.NewFile(uintptr(fd), path), kernel: kernel}, nil
}

// DetectKernel reads the running kernel version via uname(2).
func DetectKernel() (KernelVersion, error) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return KernelVersion{}, fmt.Errorf("uname: %w", err)
	}
	return ParseKernelRelease(unix.ByteSliceToString(uts.Release[:]))
}

func (d *Device) Close() error {
	return d.f.Close()
}

// Write sends an output report. The first byte of data is the report ID; for
// devices not using numbered reports it is 0 and still transmitted, matching
// the hidraw write(2) contract.
func (d *Device) Write(data []byte) (int, error) {
	return d.f.Write(data)
}

// Read reads the next input report, blocking until one is available or
// timeout elapses. A negative timeout blocks indefinitely, zero polls.
// An expired timeout returns (0, nil).
func (d *Device) Read(buf []byte, timeout time.Duration) (int, error) {
	fds := []unix.PollFd{{Fd: int32(d.f.Fd()), Events: unix.POLLIN}}
	timeoutMs := pollTimeoutMs(timeout)
	for {
		n, err := unix.Poll(fds, timeoutMs)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return 0, fmt.Errorf("poll %s: %w", d.f.Name(), err)
		}
		if n == 0 {
			return 0, nil
		}
		break
	}
	if fds[0].Revents&(unix.POLLERR|unix.POLLHUP|unix.POLLNVAL) != 0 {
		return 0, unix.ENODEV
	}
	return d.f.Read(buf)
}

// pollTimeoutMs converts a read timeout into the millisecond argument poll(2)
// expects. Positive sub-millisecond timeouts round up to 1 so they stay a
// bounded wait instead of degrading into a pure poll; zero polls and negative
// blocks.
func pollTimeoutMs(timeout time.Duration) int {
	if timeout < 0 {
		return -1
	}
	ms := int(timeout.Milliseconds())
	if ms == 0 && timeout > 0 {
		return 1
	}
	return ms
}

// SendFeatureReport sends a feature report. The first byte of data is the
// report ID, 0 for unnumbered devices.
func (d *Device) SendFeatureReport(data []byte) (int, error) {
	n, err := d.ioctlLen(hidiocsfeature(len(data)), unsafe.Pointer(&data[0]))
	if err != nil {
		return 0, fmt.Errorf("HIDIOCSFEATURE: %w", err)
	}
	return n, nil
}

// GetFeatureReport requests a feature report. The caller sets the first byte
// of buf to the report ID. On kernels predating 2.6.34 the kernel prepends a
// spurious extra byte for numbered reports, which is stripped here.
func (d *Device) GetFeatureReport(buf []byte) (int, error) {
	numbered := buf[0] != 0

	n, err := d.ioctlLen(hidiocgfeature(len(buf)), unsafe.Pointer(&buf[0]))
	if err != nil {
		return 0, fmt.Errorf("HIDIOCGFEATURE: %w", err)
	}

	if numbered && d.kernel.hasFeatureExtraByteBug() {
		copy(buf, buf[1:])
		return n - 1, nil
	}
	return n, nil
}

// GetInputReport requests an input report synchronously.
func (d *Device) GetInputReport(buf []byte) (int, error) {
	n, err := d.ioctlLen(hidiocginput(len(buf)), unsafe.Pointer(&buf[0]))
	if err != nil {
		return 0, fmt.Errorf("HIDIOCGINPUT: %w", err)
	}
	return n, nil
}

// Info returns the bus type and vendor/product IDs via HIDIOCGRAWINFO.
func (d *Device) Info() (busType uint32, vendorID, productID uint16, err error) {
	var info devInfo
	if err := d.ioctl(hidiocgrawinfo(), unsafe.Pointer(&info)); err != nil {
		return 0, 0, 0, fmt.Errorf("HIDIOCGRAWINFO: %w", err)
	}
	return info.busType, uint16(info.vendor), uint16(info.product), nil
}

// Name returns the device name string via HIDIOCGRAWNAME.
func (d *Device) Name() (string, error) {
	return d.stringIoctl(hidiocgrawname)
}

// Phys returns the physical address string via HIDIOCGRAWPHYS.
func (d *Device) Phys() (string, error) {
	return d.stringIoctl(hidiocgrawphys)
}

// Uniq returns the unique identifier (serial number) via HIDIOCGRAWUNIQ.
// Older kernels lack the ioctl; that case reports an empty string.
func (d *Device) Uniq() (string, error) {
	s, err := d.stringIoctl(hidiocgrawuniq)
	if err != nil && unwrapErrno(err) == unix.EINVAL {
		return "", nil
	}
	return s, err
}

// ReportDescriptor copies the raw report descriptor into buf.
func (d *Device) ReportDescriptor(buf []byte) (int, error) {
	var size int32
	if err := d.ioctl(hidiocgrdescsize(), unsafe.Pointer(&size)); err != nil {
		return 0, fmt.Errorf("HIDIOCGRDESCSIZE: %w", err)
	}

	desc := reportDescriptor{size: uint32(size)}
	if err := d.ioctl(hidiocgrdesc(), unsafe.Pointer(&desc)); err != nil {
		return 0, fmt.Errorf("HIDIOCGRDESC: %w", err)
	}
	return copy(buf, desc.value[:desc.size]), nil
}

func (d *Device) stringIoctl(req func(int) uint) (string, error) {
	buf := make([]byte, 256)
	if err := d.ioctl(req(len(buf)), unsafe.Pointer(&buf[0])); err != nil {
		return "", err
	}
	return unix.ByteSliceToString(buf), nil
}

func (d *Device) ioctl(req uint, arg unsafe.Pointer) error {
	_, err := d.ioctlLen(req, arg)
	return err
}

// ioctlLen returns the ioctl result value, which the length-returning hidraw
// requests use for the transferred byte count.
func (d *Device) ioctlLen(req uint, arg unsafe.Pointer) (int, error) {
	res, _, errno := unix.Syscall(unix.SYS_IOCTL, d.f.Fd(), uintptr(req), uintptr(arg))
	if errno != 0 {
		return 0, errno
	}
	return int(res), nil
}

func unwrapErrno(err error) unix.Errno {
	for err != nil {
		if errno, ok := err.(unix.Errno); ok {
			return errno
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			break
		}
		err = u.Unwrap()
	}
	return 0
}
