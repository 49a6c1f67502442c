// Package cmd builds the gz302ctl command tree over the lighting controller
// and the external daemon clients.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gz302-tools/gz302ctl/internal/power"
	"github.com/gz302-tools/gz302ctl/internal/refresh"
	"github.com/gz302-tools/gz302ctl/internal/settings"
	"github.com/gz302-tools/gz302ctl/lights"
)

// Deps carries the wired services into the command tree.
type Deps struct {
	Controller lights.Controller
	Settings   *settings.Store
	Power      *power.Client
	Refresh    *refresh.Client
}

// New builds the root command.
func New(deps Deps) *cobra.Command {
	root := &cobra.Command{
		Use:           "gz302ctl",
		Short:         "RGB lighting, TDP and refresh-rate control for the ROG Flow Z13 (GZ302)",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringP("target", "t", string(lights.Keyboard),
		"lighting endpoint (keyboard or lightbar)")

	root.AddCommand(
		newColorCmd(deps),
		newBrightnessCmd(deps),
		newAnimateCmd(deps),
		newRestoreCmd(deps),
		newPowerCmd(deps),
		newRefreshCmd(deps),
	)
	return root
}

func targetFlag(cmd *cobra.Command) (lights.Target, error) {
	name, err := cmd.Flags().GetString("target")
	if err != nil {
		return "", err
	}
	return lights.ParseTarget(name)
}
