// Package hidraw accesses HID devices through the Linux hidraw character
// device interface.
package hidraw

import (
	"fmt"
	"strconv"
	"strings"
)

// KernelVersion identifies the running kernel. It is detected once when a
// device is opened and passed along explicitly; hidraw behavior differs on
// old kernels.
type KernelVersion struct {
	Major int
	Minor int
	Patch int
}

// featureExtraByteFixed is the first kernel release where HIDIOCGFEATURE no
// longer returns a spurious leading byte for devices using numbered reports.
var featureExtraByteFixed = KernelVersion{2, 6, 34}

// ParseKernelRelease parses a utsname release string such as
// "6.8.0-45-generic". Trailing non-numeric suffixes on each component are
// ignored; missing components default to zero.
func ParseKernelRelease(release string) (KernelVersion, error) {
	var v KernelVersion

	parts := strings.SplitN(release, ".", 3)
	fields := []*int{&v.Major, &v.Minor, &v.Patch}
	for i, part := range parts {
		if cut := strings.IndexFunc(part, func(r rune) bool { return r < '0' || r > '9' }); cut >= 0 {
			part = part[:cut]
		}
		if part == "" {
			if i == 0 {
				return KernelVersion{}, fmt.Errorf("malformed kernel release %q", release)
			}
			break
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return KernelVersion{}, fmt.Errorf("malformed kernel release %q: %w", release, err)
		}
		*fields[i] = n
	}
	return v, nil
}

// Before reports whether v is older than other.
func (v KernelVersion) Before(other KernelVersion) bool {
	if v.Major != other.Major {
		return v.Major < other.Major
	}
	if v.Minor != other.Minor {
		return v.Minor < other.Minor
	}
	return v.Patch < other.Patch
}

// hasFeatureExtraByteBug reports whether HIDIOCGFEATURE on this kernel
// returns one extra byte at the front of the buffer for numbered reports.
func (v KernelVersion) hasFeatureExtraByteBug() bool {
	return v.Before(featureExtraByteFixed)
}

func (v KernelVersion) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}
