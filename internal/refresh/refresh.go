// Package refresh is the narrow client for the external display
// refresh-rate daemon.
package refresh

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/gz302-tools/gz302ctl/internal/logging"
	"github.com/gz302-tools/gz302ctl/lights"
)

// DefaultBinary is where the installer places rrcfg.
const DefaultBinary = "/usr/local/bin/rrcfg"

// Client invokes rrcfg.
type Client struct {
	binary string
	logger *zap.SugaredLogger
}

// NewClient returns a client for the given binary (DefaultBinary when
// empty).
func NewClient(binary string) *Client {
	if binary == "" {
		binary = DefaultBinary
	}
	return &Client{binary: binary, logger: logging.New("refresh")}
}

// Set asks the daemon to switch the panel to the target rate.
func (c *Client) Set(ctx context.Context, hz int) error {
	if hz <= 0 {
		return fmt.Errorf("%w: refresh rate must be positive, got %d", lights.ErrInvalidInput, hz)
	}
	out, err := exec.CommandContext(ctx, c.binary, strconv.Itoa(hz)).CombinedOutput()
	if err != nil {
		return fmt.Errorf("rrcfg %d: %w: %s", hz, err, strings.TrimSpace(string(out)))
	}
	c.logger.Infow("refresh rate applied", "hz", hz)
	return nil
}
