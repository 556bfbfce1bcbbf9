// Package eseries implements the search for IEC 60063 preferred-value series.
// This file contains the Observer pattern implementation for escalation
// progress reporting.
package eseries

import "sync"

// ProgressObserver receives a notification for every series the searcher
// tries, enabling decoupled handling of escalation events for UI, logging,
// or diagnostics.
type ProgressObserver interface {
	// Update is called after a series has been evaluated.
	//
	// Parameters:
	//   - series: The series index that was just tried.
	//   - progress: The fraction of the progression walked so far (0.0 to 1.0).
	Update(series SeriesIndex, progress float64)
}

// ProgressSubject manages observer registration and notification for
// escalation events. It is safe for concurrent use.
type ProgressSubject struct {
	mu        sync.RWMutex
	observers []ProgressObserver
}

// NewProgressSubject creates a new, empty subject ready to accept observers.
func NewProgressSubject() *ProgressSubject {
	return &ProgressSubject{observers: make([]ProgressObserver, 0)}
}

// Register adds an observer. Observers are notified in registration order.
// A nil observer is ignored.
func (s *ProgressSubject) Register(observer ProgressObserver) {
	if observer == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, observer)
}

// Unregister removes an observer. If it is not registered, this is a no-op.
func (s *ProgressSubject) Unregister(observer ProgressObserver) {
	if observer == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, o := range s.observers {
		if o == observer {
			s.observers = append(s.observers[:i], s.observers[i+1:]...)
			return
		}
	}
}

// Notify sends an escalation event to all registered observers,
// synchronously and in registration order.
func (s *ProgressSubject) Notify(series SeriesIndex, progress float64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, observer := range s.observers {
		observer.Update(series, progress)
	}
}

// ObserverCount returns the number of registered observers. Primarily
// useful for testing and diagnostics.
func (s *ProgressSubject) ObserverCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.observers)
}
