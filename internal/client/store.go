package client

import "sync"

// Store holds the fetched job list and the active filter criteria. It is
// an explicit, injectable container: the UI layer owns one instance and
// passes it around instead of reading module-level state.
type Store struct {
	mu       sync.RWMutex
	jobs     []Job
	criteria Criteria
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) SetJobs(jobs []Job) {
	cp := make([]Job, len(jobs))
	copy(cp, jobs)

	s.mu.Lock()
	s.jobs = cp
	s.mu.Unlock()
}

func (s *Store) Jobs() []Job {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Job, len(s.jobs))
	copy(out, s.jobs)
	return out
}

func (s *Store) SetCriteria(c Criteria) {
	s.mu.Lock()
	s.criteria = c
	s.mu.Unlock()
}

func (s *Store) ResetCriteria() {
	s.SetCriteria(Criteria{})
}

func (s *Store) Criteria() Criteria {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.criteria
}

// Filtered derives the currently visible subset. It re-runs the filter on
// every call; results are never cached.
func (s *Store) Filtered() []Job {
	s.mu.RLock()
	jobs := s.jobs
	criteria := s.criteria
	s.mu.RUnlock()

	return Filter(jobs, criteria)
}
