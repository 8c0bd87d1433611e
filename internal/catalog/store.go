package catalog

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/jonathan/resume-matcher/internal/types"
)

// MemoryStore is an in-memory job store for running without a database. It
// is safe for concurrent use.
type MemoryStore struct {
	mu   sync.RWMutex
	jobs []types.JobPosting
}

// NewMemoryStore creates a store pre-populated with the given postings.
func NewMemoryStore(jobs []types.JobPosting) *MemoryStore {
	s := &MemoryStore{jobs: make([]types.JobPosting, len(jobs))}
	copy(s.jobs, jobs)
	return s
}

// ListActiveJobPostings returns all active postings in insertion order.
func (s *MemoryStore) ListActiveJobPostings(ctx context.Context) ([]types.JobPosting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	active := make([]types.JobPosting, 0, len(s.jobs))
	for _, job := range s.jobs {
		if job.IsActive {
			active = append(active, job)
		}
	}
	return active, nil
}

// InsertJobPosting appends a posting, assigning an ID when missing.
func (s *MemoryStore) InsertJobPosting(ctx context.Context, job *types.JobPosting) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if job.ID == uuid.Nil {
		job.ID = uuid.New()
	}
	s.jobs = append(s.jobs, *job)
	return nil
}
