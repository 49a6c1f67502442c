// Package notify reports command outcomes to the user. The backend is
// picked once at startup: desktop toasts when a session is available, the
// log otherwise.
package notify

import (
	"os"

	"github.com/gen2brain/beeep"

	"github.com/gz302-tools/gz302ctl/internal/logging"
)

// Notifier delivers a short user-facing message.
type Notifier interface {
	Notify(title, message string)
	NotifyError(title, message string)
}

// New selects the backend. Disabled or headless environments get the log
// backend.
func New(enabled bool) Notifier {
	if enabled && (os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != "") {
		return &desktopNotifier{fallback: newLogNotifier()}
	}
	return newLogNotifier()
}

type desktopNotifier struct {
	fallback Notifier
}

func (d *desktopNotifier) Notify(title, message string) {
	if err := beeep.Notify(title, message, ""); err != nil {
		d.fallback.Notify(title, message)
	}
}

func (d *desktopNotifier) NotifyError(title, message string) {
	if err := beeep.Alert(title, message, ""); err != nil {
		d.fallback.NotifyError(title, message)
	}
}

type logNotifier struct {
	logger interface {
		Infow(msg string, kv ...interface{})
		Warnw(msg string, kv ...interface{})
	}
}

func newLogNotifier() *logNotifier {
	return &logNotifier{logger: logging.New("notify")}
}

func (l *logNotifier) Notify(title, message string) {
	l.logger.Infow(message, "title", title)
}

func (l *logNotifier) NotifyError(title, message string) {
	l.logger.Warnw(message, "title", title)
}
