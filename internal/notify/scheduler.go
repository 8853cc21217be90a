package notify

import (
	"sync"
	"time"
)

// Scheduler runs delayed delivery tasks keyed by notification id. Every task
// is tagged with the generation current at scheduling time; CancelAll stops
// pending timers and bumps the generation so a task that already fired but
// has not run yet can tell it is stale.
type Scheduler struct {
	mu         sync.Mutex
	generation uint64
	tasks      map[string]map[*task]struct{}
	afterFunc  func(d time.Duration, f func()) *time.Timer
}

type task struct {
	timer *time.Timer
	gen   uint64
}

// NewScheduler returns an idle scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{
		tasks:     make(map[string]map[*task]struct{}),
		afterFunc: time.AfterFunc,
	}
}

// Generation returns the current session generation.
func (s *Scheduler) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}

// IsCurrent reports whether gen is still the live generation.
func (s *Scheduler) IsCurrent(gen uint64) bool {
	return s.Generation() == gen
}

// Schedule runs fn(gen) after delay unless the task is cancelled first. The
// callback receives the generation it was scheduled under.
func (s *Scheduler) Schedule(id string, delay time.Duration, fn func(gen uint64)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := &task{gen: s.generation}
	t.timer = s.afterFunc(delay, func() {
		if !s.finish(id, t) {
			return
		}
		fn(t.gen)
	})

	if s.tasks[id] == nil {
		s.tasks[id] = make(map[*task]struct{})
	}
	s.tasks[id][t] = struct{}{}
}

// finish drops a fired timer from the table and reports whether its
// generation is still live.
func (s *Scheduler) finish(id string, t *task) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if set, ok := s.tasks[id]; ok {
		delete(set, t)
		if len(set) == 0 {
			delete(s.tasks, id)
		}
	}
	return t.gen == s.generation
}

// Cancel stops every pending task of one notification.
func (s *Scheduler) Cancel(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for t := range s.tasks[id] {
		t.timer.Stop()
	}
	delete(s.tasks, id)
}

// CancelAll stops every pending task and starts a new generation. It returns
// the number of tasks stopped.
func (s *Scheduler) CancelAll() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	var stopped int
	for id, set := range s.tasks {
		for t := range set {
			if t.timer.Stop() {
				stopped++
			}
		}
		delete(s.tasks, id)
	}
	s.generation++

	return stopped
}

// Pending returns the number of scheduled tasks not yet fired.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int
	for _, set := range s.tasks {
		n += len(set)
	}
	return n
}
