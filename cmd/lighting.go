package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gz302-tools/gz302ctl/lights"
)

func newColorCmd(deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "color <hex|name>",
		Short: "Set a static color",
		Long:  "Set a static color, e.g. `gz302ctl color FF0000` or `gz302ctl -t lightbar color cyan`.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := targetFlag(cmd)
			if err != nil {
				return err
			}
			c, err := lights.ParseColor(args[0])
			if err != nil {
				return err
			}
			return deps.Controller.SetColor(cmd.Context(), target, c)
		},
	}
}

func newBrightnessCmd(deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "brightness <0-3>",
		Short: "Set the brightness level (0 is off)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := targetFlag(cmd)
			if err != nil {
				return err
			}
			level, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("%w: brightness must be an integer, got %q", lights.ErrInvalidInput, args[0])
			}
			return deps.Controller.SetBrightness(cmd.Context(), target, lights.Level(level))
		},
	}
}

func newAnimateCmd(deps Deps) *cobra.Command {
	animate := &cobra.Command{
		Use:   "animate",
		Short: "Run a lighting animation until interrupted",
	}
	animate.PersistentFlags().StringP("speed", "s", string(lights.Normal),
		"animation speed (slow, normal or fast)")

	animate.AddCommand(
		&cobra.Command{
			Use:   "breathing <color1> <color2>",
			Short: "Crossfade between two colors",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				from, err := lights.ParseColor(args[0])
				if err != nil {
					return err
				}
				to, err := lights.ParseColor(args[1])
				if err != nil {
					return err
				}
				return runAnimation(cmd, deps, lights.Spec{Mode: lights.Breathing, From: from, To: to})
			},
		},
		&cobra.Command{
			Use:   "colorcycle",
			Short: "Step through the fixed palette",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runAnimation(cmd, deps, lights.Spec{Mode: lights.ColorCycle})
			},
		},
		&cobra.Command{
			Use:   "rainbow",
			Short: "Sweep the hue wheel continuously",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runAnimation(cmd, deps, lights.Spec{Mode: lights.Rainbow})
			},
		},
		&cobra.Command{
			Use:   "ambient",
			Short: "Mirror the display's average color",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runAnimation(cmd, deps, lights.Spec{Mode: lights.Ambient})
			},
		},
	)
	return animate
}

// runAnimation starts the task and blocks until the process is interrupted.
// Animations are host-driven; they stop when nothing is left to drive them.
func runAnimation(cmd *cobra.Command, deps Deps, spec lights.Spec) error {
	target, err := targetFlag(cmd)
	if err != nil {
		return err
	}
	speedName, err := cmd.Flags().GetString("speed")
	if err != nil {
		return err
	}
	spec.Speed, err = lights.ParseSpeed(speedName)
	if err != nil {
		return err
	}

	if err := deps.Controller.StartAnimation(cmd.Context(), target, spec); err != nil {
		return err
	}
	cmd.Printf("Running %s on %s. Press Ctrl+C to stop.\n", spec.Mode, target)
	<-cmd.Context().Done()
	return deps.Controller.StopAnimation(target)
}
