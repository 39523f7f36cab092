package event

import "sync/atomic"

// Subscription represents an active handler registration.
type Subscription interface {
	// ID returns the unique subscription identifier.
	ID() string

	// IsActive returns true until the subscription is cancelled.
	IsActive() bool

	// Cancel permanently removes the subscription from the router.
	Cancel()
}

type subscription struct {
	id        string
	router    *Router
	key       routeKey
	handler   Handler
	cancelled atomic.Bool
}

func (s *subscription) ID() string {
	return s.id
}

func (s *subscription) IsActive() bool {
	return !s.cancelled.Load()
}

func (s *subscription) Cancel() {
	if s.cancelled.CompareAndSwap(false, true) {
		s.router.remove(s)
	}
}
