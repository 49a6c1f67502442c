package hidraw

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sstallion/go-hid"
	"go.uber.org/zap"

	"github.com/gz302-tools/gz302ctl/internal/logging"
	"github.com/gz302-tools/gz302ctl/lights"
)

// Both endpoints hang off the same USB controller; only the port differs.
// The trailing interface number varies across kernel versions, so the
// signatures stop at the stable part of the topology string.
const (
	keyboardPhys        = "usb-0000:c6:00.0-4/input"
	lightbarPhysPrimary = "usb-0000:c6:00.0-5/input0"
	lightbarPhys        = "usb-0000:c6:00.0-5"
)

// Secondary signature for the lightbar (N-KEY Device).
const (
	lightbarVendorID  uint16 = 0x0b05
	lightbarProductID uint16 = 0x18c6
)

// Locator resolves the hidraw device node for a target. It re-enumerates on
// every call: node numbers are reassigned across plug events and reboots, so
// only the bus-path signature is durable.
type Locator struct {
	sysfs     string
	enumerate func(vid, pid uint16, fn hid.EnumFunc) error
	logger    *zap.SugaredLogger
}

// NewLocator returns a Locator backed by the OS HID subsystem.
func NewLocator() *Locator {
	return &Locator{
		sysfs:     "/sys/class/hidraw",
		enumerate: hid.Enumerate,
		logger:    logging.New("hidraw"),
	}
}

type candidate struct {
	path      string
	phys      string
	vendorID  uint16
	productID uint16
}

// Locate returns the device node path for the target, or
// lights.ErrNotFound if no enumerated device matches its signatures.
func (l *Locator) Locate(target lights.Target) (string, error) {
	var found []candidate
	err := l.enumerate(hid.VendorIDAny, hid.ProductIDAny, func(info *hid.DeviceInfo) error {
		found = append(found, candidate{
			path:      info.Path,
			phys:      l.phys(info.Path),
			vendorID:  info.VendorID,
			productID: info.ProductID,
		})
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: enumerating HID devices: %v", lights.ErrDeviceUnavailable, err)
	}

	var signatures []string
	switch target {
	case lights.Keyboard:
		signatures = []string{keyboardPhys}
	case lights.Lightbar:
		signatures = []string{lightbarPhysPrimary, lightbarPhys}
	default:
		return "", fmt.Errorf("%w: unknown target %q", lights.ErrInvalidInput, target)
	}

	for _, sig := range signatures {
		for _, c := range found {
			if c.phys != "" && strings.Contains(c.phys, sig) {
				l.logger.Debugw("matched device by physical path",
					"target", target, "path", c.path, "phys", c.phys)
				return c.path, nil
			}
		}
	}

	// Vendor/product fallback for the lightbar: some kernels report an
	// input-interface number the bus-path signatures miss.
	if target == lights.Lightbar {
		for _, c := range found {
			if c.vendorID == lightbarVendorID && c.productID == lightbarProductID {
				l.logger.Debugw("matched lightbar by vendor/product id", "path", c.path)
				return c.path, nil
			}
		}
	}

	return "", fmt.Errorf("%w: no HID device matches %s", lights.ErrNotFound, target)
}

// phys reads the HID_PHYS attribute for a /dev/hidrawN node from sysfs.
// go-hid does not expose the physical path, so it comes from the uevent
// file, same as the kernel tooling reads it.
func (l *Locator) phys(devicePath string) string {
	name := filepath.Base(devicePath)
	if !strings.HasPrefix(name, "hidraw") {
		return ""
	}
	data, err := os.ReadFile(filepath.Join(l.sysfs, name, "device", "uevent"))
	if err != nil {
		return ""
	}
	for _, line := range strings.Split(string(data), "\n") {
		if v, ok := strings.CutPrefix(line, "HID_PHYS="); ok {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
