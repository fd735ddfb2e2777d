package hidraw

import "unsafe"

// hidraw ioctl numbers from include/uapi/linux/hidraw.h. The length-dependent
// requests encode the buffer size in the size field.

const (
	iocNone  = 0
	iocWrite = 1
	iocRead  = 2

	iocNrShift   = 0
	iocTypeShift = 8
	iocSizeShift = 16
	iocDirShift  = 30

	hidiocMagic = 'H'
)

func ioc(dir, nr, size uint) uint {
	return dir<<iocDirShift | size<<iocSizeShift | hidiocMagic<<iocTypeShift | nr<<iocNrShift
}

// hidMaxDescriptorSize is HID_MAX_DESCRIPTOR_SIZE from the kernel headers.
const hidMaxDescriptorSize = 4096

// reportDescriptor mirrors struct hidraw_report_descriptor.
type reportDescriptor struct {
	size  uint32
	value [hidMaxDescriptorSize]byte
}

// devInfo mirrors struct hidraw_devinfo.
type devInfo struct {
	busType uint32
	vendor  int16
	product int16
}

func hidiocgrdescsize() uint { return ioc(iocRead, 0x01, 4) }
func hidiocgrdesc() uint     { return ioc(iocRead, 0x02, uint(unsafe.Sizeof(reportDescriptor{}))) }
func hidiocgrawinfo() uint   { return ioc(iocRead, 0x03, 8) }

func hidiocgrawname(size int) uint { return ioc(iocRead, 0x04, uint(size)) }
func hidiocgrawphys(size int) uint { return ioc(iocRead, 0x05, uint(size)) }
func hidiocgrawuniq(size int) uint { return ioc(iocRead, 0x08, uint(size)) }

func hidiocsfeature(size int) uint { return ioc(iocRead|iocWrite, 0x06, uint(size)) }
func hidiocgfeature(size int) uint { return ioc(iocRead|iocWrite, 0x07, uint(size)) }
func hidiocginput(size int) uint   { return ioc(iocRead|iocWrite, 0x0A, uint(size)) }
