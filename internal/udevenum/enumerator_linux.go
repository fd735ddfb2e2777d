package udevenum

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

const sysClassHidraw = "/sys/class/hidraw"

// A HidrawDevice pairs a /dev/hidrawN node with the metadata of the HID
// device behind it.
type HidrawDevice struct {
	// DevNode is the /dev/hidrawN path usable with hidraw.Open.
	DevNode string
	Attrs   HIDAttrs
	// InterfaceNumber is the USB interface number, -1 when not derivable.
	InterfaceNumber int
}

// Enumerate walks /sys/class/hidraw and returns one entry per hidraw node.
// Nodes whose metadata cannot be read are skipped with a debug log rather
// than failing the whole enumeration.
func Enumerate() ([]HidrawDevice, error) {
	entries, err := os.ReadDir(sysClassHidraw)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", sysClassHidraw, err)
	}

	devices := make([]HidrawDevice, 0, len(entries))
	for _, entry := range entries {
		sysDir := filepath.Join(sysClassHidraw, entry.Name())

		content, err := os.ReadFile(filepath.Join(sysDir, "device", "uevent"))
		if err != nil {
			log.Debug().Err(err).Str("node", entry.Name()).Msg("skipping hidraw node without uevent")
			continue
		}
		attrs, err := ParseHIDUevent(string(content))
		if err != nil {
			log.Debug().Err(err).Str("node", entry.Name()).Msg("skipping hidraw node with malformed uevent")
			continue
		}

		devices = append(devices, HidrawDevice{
			DevNode:         "/dev/" + entry.Name(),
			Attrs:           attrs,
			InterfaceNumber: usbInterfaceNumber(sysDir),
		})
	}
	return devices, nil
}

// usbInterfaceNumber resolves the bInterfaceNumber attribute of the USB
// interface the HID device hangs off. Non-USB devices have no such ancestor
// and yield -1.
func usbInterfaceNumber(sysDir string) int {
	// The hidraw class device links to the HID device, whose parent is the
	// USB interface directory carrying bInterfaceNumber.
	raw, err := os.ReadFile(filepath.Join(sysDir, "device", "..", "bInterfaceNumber"))
	if err != nil {
		return -1
	}
	num, err := strconv.ParseInt(strings.TrimSpace(string(raw)), 16, 16)
	if err != nil {
		return -1
	}
	return int(num)
}
