// Package anim runs host-driven lighting animations. The hardware has no
// built-in animation mode; every pattern is a loop of static-color frames
// computed here and pushed through the device writer.
package anim

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/gz302-tools/gz302ctl/internal/logging"
	"github.com/gz302-tools/gz302ctl/lights"
)

// WriteFunc pushes one color sample to the target device.
type WriteFunc func(c lights.Color) error

// CaptureFunc samples the ambient source color (the display average).
type CaptureFunc func() (lights.Color, error)

// errHandoffTimeout means a running task failed to observe cancellation
// within the bound. That is a defect in the loop, not an operational state;
// the replacement task is not started so two writers never overlap.
var errHandoffTimeout = errors.New("animation task did not stop within the handoff deadline")

// Config tunes the engine. Zero values pick the defaults.
type Config struct {
	// Capture backs the ambient mode; ambient starts fail without it.
	Capture CaptureFunc
	// AmbientInterval is the ambient sampling cadence (default 80ms).
	AmbientInterval time.Duration
	// StopTimeout bounds the wait for a cancelled task to exit (default 1s).
	StopTimeout time.Duration
}

// Engine owns at most one running animation task per target. Start replaces
// the target's task with stop-then-start ordering; targets are fully
// independent of each other.
type Engine struct {
	capture         CaptureFunc
	ambientInterval time.Duration
	stopTimeout     time.Duration
	logger          *zap.SugaredLogger

	mu    sync.Mutex
	tasks map[lights.Target]*task
}

type task struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// NewEngine returns an idle engine.
func NewEngine(cfg Config) *Engine {
	if cfg.AmbientInterval <= 0 {
		cfg.AmbientInterval = 80 * time.Millisecond
	}
	if cfg.StopTimeout <= 0 {
		cfg.StopTimeout = time.Second
	}
	return &Engine{
		capture:         cfg.Capture,
		ambientInterval: cfg.AmbientInterval,
		stopTimeout:     cfg.StopTimeout,
		logger:          logging.New("anim"),
		tasks:           make(map[lights.Target]*task),
	}
}

// Start cancels and joins any running task for the target, then spawns the
// new one. The old task is always fully stopped before the new one writes
// its first frame; interleaved frames flicker visibly.
func (e *Engine) Start(target lights.Target, spec lights.Spec, write WriteFunc) error {
	if err := spec.Validate(); err != nil {
		return err
	}
	if spec.Mode == lights.Ambient && e.capture == nil {
		return fmt.Errorf("%w: ambient mode needs a screen capture source", lights.ErrInvalidInput)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.stopLocked(target); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	t := &task{cancel: cancel, done: make(chan struct{})}
	e.tasks[target] = t

	e.logger.Infow("starting animation", "target", target, "spec", spec.String())
	go func() {
		defer close(t.done)
		err := e.run(ctx, spec, write)
		if err != nil && !errors.Is(err, context.Canceled) {
			// Surface a write failure once and stop; re-locating a dead
			// device every tick helps nobody.
			e.logger.Errorw("animation stopped", "target", target, "spec", spec.String(), "error", err)
		}
	}()
	return nil
}

// Stop cancels and joins the target's task. Stopping an idle target is a
// no-op.
func (e *Engine) Stop(target lights.Target) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stopLocked(target)
}

// Close stops every running task. Called on application exit so no writer
// outlives the process teardown.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	var firstErr error
	for target := range e.tasks {
		if err := e.stopLocked(target); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (e *Engine) stopLocked(target lights.Target) error {
	t, ok := e.tasks[target]
	if !ok {
		return nil
	}
	t.cancel()
	select {
	case <-t.done:
	case <-time.After(e.stopTimeout):
		e.logger.Errorw("animation handoff timed out", "target", target, "timeout", e.stopTimeout)
		return errHandoffTimeout
	}
	delete(e.tasks, target)
	return nil
}

// run executes one animation loop until cancelled or a write fails. Every
// loop checks ctx at each iteration boundary, so cancellation latency is
// bounded by one sample interval.
func (e *Engine) run(ctx context.Context, spec lights.Spec, write WriteFunc) error {
	switch spec.Mode {
	case lights.Breathing:
		return e.runBreathing(ctx, spec, write)
	case lights.ColorCycle:
		return e.runColorCycle(ctx, spec, write)
	case lights.Rainbow:
		return e.runRainbow(ctx, spec, write)
	case lights.Ambient:
		return e.runAmbient(ctx, write)
	}
	return fmt.Errorf("%w: unknown animation mode %q", lights.ErrInvalidInput, spec.Mode)
}

func (e *Engine) runBreathing(ctx context.Context, spec lights.Spec, write WriteFunc) error {
	sleep := breathingHalfCycle(spec.Speed) / breathingSteps
	for {
		if err := e.fade(ctx, spec.From, spec.To, sleep, write); err != nil {
			return err
		}
		if err := e.fade(ctx, spec.To, spec.From, sleep, write); err != nil {
			return err
		}
	}
}

func (e *Engine) fade(ctx context.Context, from, to lights.Color, sleep time.Duration, write WriteFunc) error {
	for i := 0; i < breathingSteps; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := write(lerp(from, to, i, breathingSteps)); err != nil {
			return err
		}
		if err := sleepCtx(ctx, sleep); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) runColorCycle(ctx context.Context, spec lights.Spec, write WriteFunc) error {
	interval := cycleInterval(spec.Speed)
	for i := 0; ; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := write(cyclePalette[i%len(cyclePalette)]); err != nil {
			return err
		}
		if err := sleepCtx(ctx, interval); err != nil {
			return err
		}
	}
}

func (e *Engine) runRainbow(ctx context.Context, spec lights.Spec, write WriteFunc) error {
	step := rainbowStep(spec.Speed)
	for hue := 0.0; ; hue += step {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := write(hsvColor(hue)); err != nil {
			return err
		}
		if err := sleepCtx(ctx, rainbowTick); err != nil {
			return err
		}
	}
}

// runAmbient mirrors the display's average color onto the target. A capture
// failure is logged and skipped; a device write failure still terminates
// the loop like every other mode.
func (e *Engine) runAmbient(ctx context.Context, write WriteFunc) error {
	var lastWarning time.Time
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		start := time.Now()
		c, err := e.capture()
		if err != nil {
			if time.Since(lastWarning) > 10*time.Second {
				e.logger.Warnw("failed to capture screen", "error", err)
				lastWarning = time.Now()
			}
		} else if err := write(c); err != nil {
			return err
		}
		if untilNextTick := e.ambientInterval - time.Since(start); untilNextTick > 0 {
			if err := sleepCtx(ctx, untilNextTick); err != nil {
				return err
			}
		}
	}
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
