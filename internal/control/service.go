// Package control implements lights.Controller on top of the device
// locator, the packet encoder, the frame writer and the animation engine.
// It is the only entry point external callers (CLI, tray) use.
package control

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/gz302-tools/gz302ctl/internal/anim"
	"github.com/gz302-tools/gz302ctl/internal/hidraw"
	"github.com/gz302-tools/gz302ctl/internal/logging"
	"github.com/gz302-tools/gz302ctl/internal/notify"
	"github.com/gz302-tools/gz302ctl/internal/settings"
	"github.com/gz302-tools/gz302ctl/lights"
)

// Locator resolves a target to a device node. Re-resolved per operation;
// paths are never cached across commands.
type Locator interface {
	Locate(target lights.Target) (string, error)
}

// FrameWriter sends one frame to a device node.
type FrameWriter interface {
	Write(path string, f hidraw.Frame) error
}

// Store persists the last applied command per target.
type Store interface {
	Save(target lights.Target, rec settings.Record) error
}

// powerOnDelay separates the lightbar power-on frame from the color frame
// that follows it. The controller drops the color frame without it.
const powerOnDelay = 80 * time.Millisecond

// Config wires a Service. Locator and Writer are required; the rest
// defaults to working implementations.
type Config struct {
	Locator  Locator
	Writer   FrameWriter
	Engine   *anim.Engine
	Store    Store
	Notifier notify.Notifier
}

// Service coordinates one command at a time per target: stop the running
// animation, apply, persist, notify.
type Service struct {
	locator  Locator
	writer   FrameWriter
	engine   *anim.Engine
	store    Store
	notifier notify.Notifier
	logger   *zap.SugaredLogger
}

var _ lights.Controller = (*Service)(nil)

// NewService builds the facade.
func NewService(cfg Config) *Service {
	if cfg.Engine == nil {
		cfg.Engine = anim.NewEngine(anim.Config{})
	}
	if cfg.Notifier == nil {
		cfg.Notifier = notify.New(false)
	}
	return &Service{
		locator:  cfg.Locator,
		writer:   cfg.Writer,
		engine:   cfg.Engine,
		store:    cfg.Store,
		notifier: cfg.Notifier,
		logger:   logging.New("control"),
	}
}

// SetColor applies a static color: stop the target's animation, power on
// (lightbar), write the color, persist.
func (s *Service) SetColor(ctx context.Context, target lights.Target, c lights.Color) error {
	if err := s.engine.Stop(target); err != nil {
		return err
	}
	path, err := s.locator.Locate(target)
	if err != nil {
		return s.fail(target, err)
	}
	if err := s.writeColor(ctx, target, path, c, true); err != nil {
		return s.fail(target, err)
	}
	s.persist(target, settings.Record{Kind: settings.KindColor, Color: c.String()})
	s.notifier.Notify(title(target), fmt.Sprintf("Color set to #%s", c))
	return nil
}

// SetBrightness applies a brightness level. Level 0 powers the lightbar off;
// the keyboard endpoint has no power opcode, so level 0 writes black.
func (s *Service) SetBrightness(ctx context.Context, target lights.Target, level lights.Level) error {
	if !level.Valid() {
		return fmt.Errorf("%w: brightness level %d out of range [0,3]", lights.ErrInvalidInput, level)
	}
	if err := s.engine.Stop(target); err != nil {
		return err
	}
	path, err := s.locator.Locate(target)
	if err != nil {
		return s.fail(target, err)
	}

	if target == lights.Lightbar && level == lights.LevelOff {
		if err := s.writer.Write(path, hidraw.LightbarPower(false)); err != nil {
			return s.fail(target, err)
		}
	} else {
		v := level.Intensity()
		if err := s.writeColor(ctx, target, path, lights.Color{Red: v, Green: v, Blue: v}, true); err != nil {
			return s.fail(target, err)
		}
	}
	s.persist(target, settings.Record{Kind: settings.KindBrightness, Level: int(level)})
	s.notifier.Notify(title(target), fmt.Sprintf("Brightness set to level %d", level))
	return nil
}

// StartAnimation hands the target over to a new animation task. The engine
// guarantees the previous task has fully stopped before the new one writes.
func (s *Service) StartAnimation(ctx context.Context, target lights.Target, spec lights.Spec) error {
	if err := spec.Validate(); err != nil {
		return err
	}
	// Stop before the power-on frame below; the old task must never write
	// concurrently with this command.
	if err := s.engine.Stop(target); err != nil {
		return err
	}
	path, err := s.locator.Locate(target)
	if err != nil {
		return s.fail(target, err)
	}
	if target == lights.Lightbar {
		// The bar stays dark during an animation unless powered on first.
		if err := s.writer.Write(path, hidraw.LightbarPower(true)); err != nil {
			return s.fail(target, err)
		}
		if err := sleepCtx(ctx, powerOnDelay); err != nil {
			return err
		}
	}

	// The sample closure outlives this command's ctx; samples are plain
	// color frames with no power sequencing, so no deadline applies.
	err = s.engine.Start(target, spec, func(c lights.Color) error {
		return s.writeColor(context.Background(), target, path, c, false)
	})
	if err != nil {
		return s.fail(target, err)
	}
	s.persist(target, settings.Record{
		Kind:      settings.KindAnimation,
		Animation: string(spec.Mode),
		Color:     spec.From.String(),
		Color2:    spec.To.String(),
		Speed:     string(spec.Speed),
	})
	s.notifier.Notify(title(target), fmt.Sprintf("Animation started: %s", spec.Mode))
	return nil
}

// StopAnimation halts the target's animation. The persisted record is left
// alone; the last applied command remains the boot-restore value.
func (s *Service) StopAnimation(target lights.Target) error {
	return s.engine.Stop(target)
}

// Close stops all animation tasks.
func (s *Service) Close() error {
	return s.engine.Close()
}

// writeColor sends one color to an already-located device. For the lightbar
// a standalone static command is preceded by power-on; animation samples
// skip that (withPower=false) since the bar was powered at start.
func (s *Service) writeColor(ctx context.Context, target lights.Target, path string, c lights.Color, withPower bool) error {
	switch target {
	case lights.Keyboard:
		if err := s.writer.Write(path, hidraw.KeyboardColor(c)); err != nil {
			return err
		}
		return s.writer.Write(path, hidraw.KeyboardCommit())
	case lights.Lightbar:
		if withPower {
			if err := s.writer.Write(path, hidraw.LightbarPower(true)); err != nil {
				return err
			}
			if err := sleepCtx(ctx, powerOnDelay); err != nil {
				return err
			}
		}
		return s.writer.Write(path, hidraw.LightbarColor(c))
	}
	return fmt.Errorf("%w: unknown target %q", lights.ErrInvalidInput, target)
}

// persist is best-effort: a failed save must never mask a hardware change
// that already happened.
func (s *Service) persist(target lights.Target, rec settings.Record) {
	if s.store == nil {
		return
	}
	if err := s.store.Save(target, rec); err != nil {
		s.logger.Warnw("failed to persist setting", "target", target, "error", err)
	}
}

func (s *Service) fail(target lights.Target, err error) error {
	s.notifier.NotifyError(title(target), err.Error())
	return err
}

func title(target lights.Target) string {
	if target == lights.Lightbar {
		return "Rear Window"
	}
	return "Keyboard RGB"
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
