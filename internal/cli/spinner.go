package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"
)

const spinnerInterval = 90 * time.Millisecond

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// spinner animates a progress indicator on stderr until stopped. The
// animation runs in its own goroutine from the moment of construction and
// also halts when the parent context is cancelled, so an interrupted
// generation never leaves a spinning line behind.
type spinner struct {
	label  string
	cancel context.CancelFunc
	parked chan struct{}
}

// newSpinner starts a spinner showing label.
func newSpinner(ctx context.Context, label string) *spinner {
	ctx, cancel := context.WithCancel(ctx)
	s := &spinner{
		label:  label,
		cancel: cancel,
		parked: make(chan struct{}),
	}
	go s.spin(ctx)
	return s
}

func (s *spinner) spin(ctx context.Context) {
	defer close(s.parked)
	tick := time.NewTicker(spinnerInterval)
	defer tick.Stop()

	for frame := 0; ; frame++ {
		select {
		case <-ctx.Done():
			return
		case <-tick.C:
			glyph := spinnerFrames[frame%len(spinnerFrames)]
			fmt.Fprintf(os.Stderr, "\r%s %s",
				styleIconSpinner.Render(glyph), StyleDim.Render(s.label))
		}
	}
}

// stop halts the animation and erases the spinner line.
func (s *spinner) stop() {
	s.cancel()
	<-s.parked
	fmt.Fprintf(os.Stderr, "\r%s\r", strings.Repeat(" ", len(s.label)+4))
}

// fail halts the animation and prints an error line in its place.
func (s *spinner) fail(message string) {
	s.stop()
	printError("%s", message)
}
