package lights

import "errors"

var (
	// ErrNotFound means no HID device matched the target's signatures.
	ErrNotFound = errors.New("device not found")

	// ErrPermissionDenied means the device node exists but the process may
	// not open it. Installing the gz302 udev rule fixes this.
	ErrPermissionDenied = errors.New("permission denied (install the gz302 udev rule or run as root)")

	// ErrDeviceUnavailable covers missing nodes and all other I/O failures.
	// Not retried by this layer.
	ErrDeviceUnavailable = errors.New("device unavailable")

	// ErrInvalidInput is returned for out-of-range colors, levels or speeds
	// before any device access happens.
	ErrInvalidInput = errors.New("invalid input")
)
