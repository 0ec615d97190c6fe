package integration

import (
	"context"
	"sync"

	"traveling-message/internal/core/domain"
	"traveling-message/internal/core/ports"
)

// inMemoryEntryRepo mirrors the Postgres repository's contract, including
// duplicate detection on txid, so the full stack can run without a database.
type inMemoryEntryRepo struct {
	mu      sync.Mutex
	entries []domain.Entry
	nextID  int64
}

func newInMemoryEntryRepo() *inMemoryEntryRepo {
	return &inMemoryEntryRepo{nextID: 1}
}

func (r *inMemoryEntryRepo) Insert(_ context.Context, e *domain.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.entries {
		if existing.TxID == e.TxID {
			return ports.ErrDuplicateEntry
		}
	}
	e.ID = r.nextID
	r.nextID++
	r.entries = append(r.entries, *e)
	return nil
}

func (r *inMemoryEntryRepo) ListAll(_ context.Context) ([]domain.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.Entry, len(r.entries))
	copy(out, r.entries)
	return out, nil
}

type inMemoryProjectRepo struct {
	mu      sync.Mutex
	project *domain.Project
}

func newInMemoryProjectRepo() *inMemoryProjectRepo {
	return &inMemoryProjectRepo{}
}

func (r *inMemoryProjectRepo) Seed(_ context.Context, p domain.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.project == nil {
		r.project = &p
	}
	return nil
}

func (r *inMemoryProjectRepo) Get(_ context.Context) (*domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.project == nil {
		return &domain.Project{}, nil
	}
	p := *r.project
	return &p, nil
}
