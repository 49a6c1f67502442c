package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gz302-tools/gz302ctl/internal/settings"
	"github.com/gz302-tools/gz302ctl/lights"
)

func newRestoreCmd(deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "restore",
		Short: "Re-apply the last persisted lighting settings",
		Long: "Re-apply the settings recorded on the last successful command. " +
			"Static settings apply and exit; restored animations run until interrupted.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			records, err := deps.Settings.Load()
			if err != nil {
				return err
			}
			if len(records) == 0 {
				cmd.Println("Nothing to restore.")
				return nil
			}

			animating := false
			for _, target := range lights.Targets {
				rec, ok := records[target]
				if !ok {
					continue
				}
				started, err := applyRecord(cmd, deps, target, rec)
				if err != nil {
					// Keep going; one missing endpoint must not block the other.
					cmd.PrintErrf("restore %s: %v\n", target, err)
					continue
				}
				animating = animating || started
			}

			if animating {
				cmd.Println("Restored animation running. Press Ctrl+C to stop.")
				<-cmd.Context().Done()
				for _, target := range lights.Targets {
					_ = deps.Controller.StopAnimation(target)
				}
			}
			return nil
		},
	}
}

// applyRecord re-applies one persisted record and reports whether it left an
// animation running.
func applyRecord(cmd *cobra.Command, deps Deps, target lights.Target, rec settings.Record) (bool, error) {
	ctx := cmd.Context()
	switch rec.Kind {
	case settings.KindColor:
		c, err := lights.ParseColor(rec.Color)
		if err != nil {
			return false, err
		}
		return false, deps.Controller.SetColor(ctx, target, c)

	case settings.KindBrightness:
		return false, deps.Controller.SetBrightness(ctx, target, lights.Level(rec.Level))

	case settings.KindAnimation:
		spec := lights.Spec{Mode: lights.Mode(rec.Animation)}
		var err error
		if spec.Speed, err = lights.ParseSpeed(rec.Speed); err != nil {
			return false, err
		}
		if spec.Mode == lights.Breathing {
			if spec.From, err = lights.ParseColor(rec.Color); err != nil {
				return false, err
			}
			if spec.To, err = lights.ParseColor(rec.Color2); err != nil {
				return false, err
			}
		}
		return true, deps.Controller.StartAnimation(ctx, target, spec)
	}
	return false, fmt.Errorf("%w: unknown persisted record kind %q", lights.ErrInvalidInput, rec.Kind)
}
