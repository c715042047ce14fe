package emitter

import (
	"context"
	"math"
	"time"

	"logsurrogate/internal/config"
)

const (
	StartBanner  = "--- Starting Logger Test Surrogate (Go) ---"
	FinishBanner = "--- Logger Test Surrogate (Go) Finished ---"

	progressTick = 20 * time.Millisecond
)

// Pauser blocks while the process is paused.
type Pauser interface {
	Wait(ctx context.Context) error
}

// Sleeper waits for d or until ctx is done.
type Sleeper func(ctx context.Context, d time.Duration) error

// Sleep is the default Sleeper backed by a timer.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Emitter replays the log script and the animations in strict order.
type Emitter struct {
	out    *Printer
	pause  Pauser
	sleep  Sleeper
	speed  float64
	script []Entry
}

// Option configures an Emitter.
type Option func(*Emitter)

// WithSpeed divides every scripted delay by speed; 0 removes delays.
func WithSpeed(speed float64) Option {
	return func(e *Emitter) { e.speed = speed }
}

// WithSleeper replaces the timer-based Sleep.
func WithSleeper(s Sleeper) Option {
	return func(e *Emitter) { e.sleep = s }
}

// WithScript replaces the default script.
func WithScript(entries []Entry) Option {
	return func(e *Emitter) { e.script = entries }
}

// New builds an emitter writing to out and checking pause before each line.
func New(out *Printer, pause Pauser, opts ...Option) *Emitter {
	e := &Emitter{
		out:    out,
		pause:  pause,
		sleep:  Sleep,
		speed:  1,
		script: Script(config.UnknownSelfPath),
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Run emits the start banner, the scripted lines, both animations and the
// finish banner. It stops early only when ctx is cancelled.
func (e *Emitter) Run(ctx context.Context) error {
	e.out.Log("SYSTEM", StartBanner)
	for _, phase := range []func(context.Context) error{e.Replay, e.Spinner, e.Progress} {
		if err := phase(ctx); err != nil {
			return err
		}
	}
	e.out.Log("SYSTEM", FinishBanner)
	return nil
}

// Replay emits the script: pause check, delay, line.
func (e *Emitter) Replay(ctx context.Context) error {
	for _, entry := range e.script {
		if err := e.step(ctx, entry.Delay); err != nil {
			return err
		}
		e.out.Log(entry.Level, entry.Message)
	}
	return nil
}

func (e *Emitter) step(ctx context.Context, d time.Duration) error {
	if err := e.pause.Wait(ctx); err != nil {
		return err
	}
	return e.sleep(ctx, e.scale(d))
}

func (e *Emitter) scale(d time.Duration) time.Duration {
	if math.IsNaN(e.speed) {
		return d
	}
	if e.speed <= 0 {
		return 0
	}
	scaled := float64(d) / e.speed
	if scaled >= math.MaxInt64 {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(scaled)
}
