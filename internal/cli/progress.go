package cli

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/mmarvin/efind/internal/eseries"
)

// SearchSpinner is a ProgressObserver that animates a terminal spinner while
// the series escalation runs, showing which series is being tried.
type SearchSpinner struct {
	mu      sync.Mutex
	spin    *spinner.Spinner
	started bool
}

// NewSearchSpinner creates a spinner writing to w. It stays idle until
// Start is called.
func NewSearchSpinner(w io.Writer) *SearchSpinner {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(w))
	s.Suffix = " searching"
	return &SearchSpinner{spin: s}
}

// Start begins the spinner animation.
func (s *SearchSpinner) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return
	}
	s.spin.Start()
	s.started = true
}

// Stop halts the animation and clears the spinner line.
func (s *SearchSpinner) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started {
		return
	}
	s.spin.Stop()
	s.started = false
}

// Update implements eseries.ProgressObserver. The suffix names the series
// just tried so a long escalation shows where it stands.
func (s *SearchSpinner) Update(series eseries.SeriesIndex, progress float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.spin.Suffix = fmt.Sprintf(" tried E%d (%.0f%%)", series, progress*100)
}

var _ eseries.ProgressObserver = (*SearchSpinner)(nil)
