package emitter

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
)

const (
	// SpinnerTicks is the number of spinner lines per run.
	SpinnerTicks = 40
	// ProgressSteps covers 0..100 percent inclusive.
	ProgressSteps = 101
	// BarWidth is the number of segments in the progress bar.
	BarWidth = 50

	barFilled = "█"
	barEmpty  = "-"
)

// spinnerStyle supplies the | / - \ frames and the 100ms tick.
var spinnerStyle = spinner.Line

// SpinnerLine is the message for spinner tick i.
func SpinnerLine(i int) string {
	frames := spinnerStyle.Frames
	return "Thinking... " + frames[i%len(frames)]
}

// ProgressBar draws the bar for percent i. Filled segments are i/2 with
// integer division, so each segment covers two percent.
func ProgressBar(i int) string {
	filled := min(max(i/2, 0), BarWidth)
	return strings.Repeat(barFilled, filled) + strings.Repeat(barEmpty, BarWidth-filled)
}

// ProgressLine is the message for percent i.
func ProgressLine(i int) string {
	return fmt.Sprintf("Processing batch: |%s| %.1f%% Complete", ProgressBar(i), float64(i))
}

// Spinner runs the spinner animation, one PROGRESS line per tick.
func (e *Emitter) Spinner(ctx context.Context) error {
	e.out.Log("INFO", "Starting a long task with a spinner animation...")
	for i := 0; i < SpinnerTicks; i++ {
		if err := e.step(ctx, spinnerStyle.FPS); err != nil {
			return err
		}
		e.out.Log("PROGRESS", SpinnerLine(i))
	}
	e.out.Log("INFO", "Spinner task complete.")
	return nil
}

// Progress runs the progress bar animation from 0 to 100 percent.
func (e *Emitter) Progress(ctx context.Context) error {
	e.out.Log("INFO", "Starting a task with a progress bar...")
	for i := 0; i < ProgressSteps; i++ {
		if err := e.step(ctx, progressTick); err != nil {
			return err
		}
		e.out.Log("PROGRESS", ProgressLine(i))
	}
	return nil
}
