package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gz302-tools/gz302ctl/internal/power"
	"github.com/gz302-tools/gz302ctl/lights"
)

func newPowerCmd(deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "power <profile|status>",
		Short: "Switch the TDP profile or show power status (via pwrcfg)",
		Long: "Delegates to the privileged pwrcfg daemon. Profiles: " +
			strings.Join(power.Profiles, ", ") + ".",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == "status" {
				st, err := deps.Power.Status(cmd.Context())
				if err != nil {
					return err
				}
				cmd.Printf("Profile: %s\n", st.Profile)
				cmd.Printf("SPL:  %dW\nsPPT: %dW\nfPPT: %dW\n",
					st.SustainedWatts, st.SlowWatts, st.FastWatts)
				return nil
			}
			return deps.Power.SetProfile(cmd.Context(), args[0])
		},
	}
}

func newRefreshCmd(deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "refresh <hz>",
		Short: "Switch the panel refresh rate (via rrcfg)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hz, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("%w: refresh rate must be an integer, got %q", lights.ErrInvalidInput, args[0])
			}
			return deps.Refresh.Set(cmd.Context(), hz)
		},
	}
}
