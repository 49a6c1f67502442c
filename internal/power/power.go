// Package power is the narrow client for the external pwrcfg daemon. TDP
// logic lives in that privileged tool; this package only invokes it and
// reads its human-oriented status output back.
package power

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

// DefaultBinary is where the installer places pwrcfg.
const DefaultBinary = "/usr/local/bin/pwrcfg"

// Profiles the daemon understands, lowest to highest power limit.
var Profiles = []string{
	"emergency", "battery", "efficient", "balanced",
	"performance", "gaming", "maximum",
}

// Status is the parsed result of `pwrcfg status`.
type Status struct {
	Profile        string
	SustainedWatts int // SPL
	SlowWatts      int // sPPT
	FastWatts      int // fPPT
}

// Client invokes pwrcfg.
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
	return &Client{binary: binary, logger: logging.New("power")}
}

// SetProfile switches the TDP profile.
func (c *Client) SetProfile(ctx context.Context, profile string) error {
	known := false
	for _, p := range Profiles {
		if p == profile {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("%w: unknown power profile %q", lights.ErrInvalidInput, profile)
	}

	out, err := exec.CommandContext(ctx, c.binary, profile).CombinedOutput()
	if err != nil {
		return fmt.Errorf("pwrcfg %s: %w: %s", profile, err, strings.TrimSpace(string(out)))
	}
	c.logger.Infow("power profile applied", "profile", profile)
	return nil
}

// Status queries and parses the daemon's status output.
func (c *Client) Status(ctx context.Context) (Status, error) {
	out, err := exec.CommandContext(ctx, c.binary, "status").Output()
	if err != nil {
		return Status{}, fmt.Errorf("pwrcfg status: %w", err)
	}
	return ParseStatus(string(out)), nil
}

// ParseStatus scans the human-readable status lines by substring. The
// daemon's format is loose prose, so anything unrecognized is skipped.
func ParseStatus(out string) Status {
	var st Status
	for _, line := range strings.Split(out, "\n") {
		lower := strings.ToLower(line)
		switch {
		case strings.Contains(lower, "profile"):
			if v := lastField(line); v != "" {
				st.Profile = strings.ToLower(v)
			}
		case strings.Contains(line, "SPL") || strings.Contains(lower, "sustained"):
			st.SustainedWatts = watts(line)
		case strings.Contains(line, "sPPT") || strings.Contains(lower, "slow"):
			st.SlowWatts = watts(line)
		case strings.Contains(line, "fPPT") || strings.Contains(lower, "fast"):
			st.FastWatts = watts(line)
		}
	}
	return st
}

func lastField(line string) string {
	fields := strings.Fields(strings.TrimSpace(line))
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}

// watts pulls the first integer out of a "... 45W ..." style line.
func watts(line string) int {
	for _, f := range strings.Fields(line) {
		f = strings.TrimSuffix(strings.TrimSuffix(f, "W"), "w")
		if v, err := strconv.Atoi(f); err == nil && v > 0 {
			return v
		}
	}
	return 0
}
