package client

import "testing"

func TestStore_FilteredTracksCacheAndCriteria(t *testing.T) {
	s := NewStore()

	if out := s.Filtered(); len(out) != 0 {
		t.Fatalf("expected empty store to derive empty view, got %d", len(out))
	}

	s.SetJobs(sampleJobs())
	if out := s.Filtered(); len(out) != 3 {
		t.Fatalf("expected full cache without criteria, got %d", len(out))
	}

	s.SetCriteria(Criteria{Field: "developer"})
	if out := s.Filtered(); len(out) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(out))
	}

	s.SetJobs([]Job{{Title: "DevOps Engineer", Location: "Cần Thơ"}})
	if out := s.Filtered(); len(out) != 0 {
		t.Fatalf("expected refreshed cache to re-derive, got %d", len(out))
	}

	s.ResetCriteria()
	if out := s.Filtered(); len(out) != 1 {
		t.Fatalf("expected reset to show full cache, got %d", len(out))
	}
}

func TestStore_JobsReturnsCopy(t *testing.T) {
	s := NewStore()
	s.SetJobs(sampleJobs())

	snapshot := s.Jobs()
	snapshot[0].Title = "mutated"

	if s.Jobs()[0].Title == "mutated" {
		t.Fatalf("expected snapshot mutation not to reach the store")
	}
}
