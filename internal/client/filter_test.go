package client

import "testing"

func sampleJobs() []Job {
	return []Job{
		{Title: "Backend Developer", Description: "Go services", Location: "Hà Nội"},
		{Title: "Frontend Developer", Description: "React UI", Location: "Hồ Chí Minh"},
		{Title: "Data Analyst", Description: "Dashboards", Location: "Đà Nẵng"},
	}
}

func TestFilter_EmptyCacheYieldsEmptyResult(t *testing.T) {
	out := Filter(nil, Criteria{Location: "Hà Nội"})
	if len(out) != 0 {
		t.Fatalf("expected empty result, got %d", len(out))
	}
}

func TestFilter_NoCriteriaIsIdentity(t *testing.T) {
	jobs := sampleJobs()
	out := Filter(jobs, Criteria{})
	if len(out) != len(jobs) {
		t.Fatalf("expected %d jobs, got %d", len(jobs), len(out))
	}
	for i := range jobs {
		if out[i].Title != jobs[i].Title {
			t.Fatalf("expected order preserved at %d", i)
		}
	}
}

func TestFilter_LocationAndFieldMustBothHold(t *testing.T) {
	jobs := []Job{{Title: "Backend Developer", Location: "Hà Nội"}}

	out := Filter(jobs, Criteria{Location: "hà nội", Field: "backend"})
	if len(out) != 1 {
		t.Fatalf("expected match, got %d", len(out))
	}

	out = Filter(jobs, Criteria{Location: "Đà Nẵng"})
	if len(out) != 0 {
		t.Fatalf("expected exclusion, got %d", len(out))
	}

	out = Filter(jobs, Criteria{Location: "hà nội", Field: "designer"})
	if len(out) != 0 {
		t.Fatalf("expected AND semantics to exclude, got %d", len(out))
	}
}

func TestFilter_SingleKeyConstraints(t *testing.T) {
	jobs := sampleJobs()

	out := Filter(jobs, Criteria{Location: "đà nẵng"})
	if len(out) != 1 || out[0].Title != "Data Analyst" {
		t.Fatalf("unexpected location filter result: %+v", out)
	}

	out = Filter(jobs, Criteria{Field: "developer"})
	if len(out) != 2 {
		t.Fatalf("expected 2 developer roles, got %d", len(out))
	}
}

func TestFilter_NoMatchesIsEmptyNotError(t *testing.T) {
	out := Filter(sampleJobs(), Criteria{Field: "AI/ML Engineer"})
	if out == nil {
		t.Fatalf("expected non-nil empty slice")
	}
	if len(out) != 0 {
		t.Fatalf("expected empty result, got %d", len(out))
	}
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	jobs := sampleJobs()
	_ = Filter(jobs, Criteria{Field: "data"})

	if jobs[0].Title != "Backend Developer" || len(jobs) != 3 {
		t.Fatalf("input slice mutated: %+v", jobs)
	}
}
