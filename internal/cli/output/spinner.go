package output

import (
	"fmt"
	"io"
	"sync"
	"time"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner shows an animated progress indicator for long operations.
// Only meaningful on a TTY; callers should skip it in other modes.
type Spinner struct {
	w       io.Writer
	msg     string
	styles  *Styles
	ticker  *time.Ticker
	done    chan struct{}
	stopped sync.Once
	wg      sync.WaitGroup
}

// NewSpinner creates a spinner bound to the renderer's output writer.
func (r *Renderer) NewSpinner(msg string) *Spinner {
	return &Spinner{
		w:      r.out,
		msg:    msg,
		styles: r.styles,
		done:   make(chan struct{}),
	}
}

// Start begins the spinner animation.
func (s *Spinner) Start() {
	s.ticker = time.NewTicker(80 * time.Millisecond)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		frame := 0
		for {
			select {
			case <-s.done:
				return
			case <-s.ticker.C:
				fmt.Fprintf(s.w, "\r%s %s", spinnerFrames[frame%len(spinnerFrames)], s.msg)
				frame++
			}
		}
	}()
}

// Success stops the spinner and prints a success line.
func (s *Spinner) Success(msg string) {
	s.stop()
	fmt.Fprintf(s.w, "\r%s %s\n", s.styles.StatusSuccess.String(), msg)
}

// Fail stops the spinner and prints a failure line.
func (s *Spinner) Fail(msg string) {
	s.stop()
	fmt.Fprintf(s.w, "\r%s %s\n", s.styles.StatusFailed.String(), msg)
}

func (s *Spinner) stop() {
	s.stopped.Do(func() {
		close(s.done)
		if s.ticker != nil {
			s.ticker.Stop()
		}
		s.wg.Wait()
		// Clear the spinner line
		fmt.Fprintf(s.w, "\r\033[K")
	})
}
