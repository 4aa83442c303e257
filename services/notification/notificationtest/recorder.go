// Package notificationtest provides an in-memory notification.Service for tests.
package notificationtest

import (
	"sync"

	"frontdesk/services/notification"
)

var _ notification.Service = (*Recorder)(nil)

// Recorder keeps published events in memory.
type Recorder struct {
	mu     sync.Mutex
	Events []notification.Event
}

func (r *Recorder) Publish(event notification.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Events = append(r.Events, event)
	return nil
}

// Types lists the recorded event types in order.
func (r *Recorder) Types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	types := make([]string, 0, len(r.Events))
	for _, e := range r.Events {
		types = append(types, e.Type)
	}
	return types
}
