package hidraw

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/sstallion/go-hid"

	"github.com/gz302-tools/gz302ctl/lights"
)

// Writer sends single frames to a device node. Each call opens, writes and
// closes; it holds no persistent handle, so there is nothing to invalidate
// when the device is unplugged. Multi-frame sequences (power on, then color
// after a delay) are the caller's responsibility.
type Writer struct {
	open func(path string) (hidDevice, error)
}

type hidDevice interface {
	Write(b []byte) (int, error)
	Close() error
}

// NewWriter returns a Writer backed by hidapi.
func NewWriter() *Writer {
	return &Writer{
		open: func(path string) (hidDevice, error) {
			return hid.OpenPath(path)
		},
	}
}

// Write sends exactly one 64-byte frame. Failures are not retried here;
// retry policy belongs to the caller.
func (w *Writer) Write(path string, f Frame) error {
	dev, err := w.open(path)
	if err != nil {
		return translate(path, err)
	}
	defer dev.Close()

	n, err := dev.Write(f[:])
	if err != nil {
		return translate(path, err)
	}
	if n != FrameSize {
		return fmt.Errorf("%w: short write to %s (%d of %d bytes)", lights.ErrDeviceUnavailable, path, n, FrameSize)
	}
	return nil
}

func translate(path string, err error) error {
	if errors.Is(err, fs.ErrPermission) || strings.Contains(strings.ToLower(err.Error()), "permission denied") {
		return fmt.Errorf("%w: %s", lights.ErrPermissionDenied, path)
	}
	return fmt.Errorf("%w: %s: %v", lights.ErrDeviceUnavailable, path, err)
}
