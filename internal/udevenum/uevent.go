// Package udevenum enumerates hidraw devices through sysfs and watches for
// hot-plug events through the udev netlink socket.
package udevenum

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
)

// HIDAttrs is the metadata a HID sysfs uevent file carries.
type HIDAttrs struct {
	BusType   uint16
	VendorID  uint16
	ProductID uint16
	Name      string
	Phys      string
	Serial    string
}

// ParseHIDUevent parses the uevent file of a HID device sysfs node. The
// relevant keys are HID_ID ("bus:vendor:product" in hex), HID_NAME, HID_PHYS
// and HID_UNIQ.
func ParseHIDUevent(content string) (HIDAttrs, error) {
	var attrs HIDAttrs
	sawID := false

	scanner := bufio.NewScanner(strings.NewReader(content))
	for scanner.Scan() {
		key, value, found := strings.Cut(scanner.Text(), "=")
		if !found {
			continue
		}
		switch key {
		case "HID_ID":
			bus, vendor, product, err := parseHIDID(value)
			if err != nil {
				return HIDAttrs{}, err
			}
			attrs.BusType, attrs.VendorID, attrs.ProductID = bus, vendor, product
			sawID = true
		case "HID_NAME":
			attrs.Name = value
		case "HID_PHYS":
			attrs.Phys = value
		case "HID_UNIQ":
			attrs.Serial = value
		}
	}
	if !sawID {
		return HIDAttrs{}, fmt.Errorf("uevent carries no HID_ID")
	}
	return attrs, nil
}

func parseHIDID(value string) (bus, vendor, product uint16, err error) {
	parts := strings.Split(value, ":")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("malformed HID_ID %q", value)
	}

	fields := [3]*uint16{&bus, &vendor, &product}
	for i, part := range parts {
		n, perr := strconv.ParseUint(part, 16, 32)
		if perr != nil {
			return 0, 0, 0, fmt.Errorf("malformed HID_ID %q: %w", value, perr)
		}
		*fields[i] = uint16(n)
	}
	return bus, vendor, product, nil
}
