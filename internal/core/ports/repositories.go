package ports

import (
	"context"
	"errors"

	"traveling-message/internal/core/domain"
)

// ErrDuplicateEntry is returned by EntryRepository.Insert when an entry with
// the same txid is already committed. Detection happens at the storage layer
// (uniqueness constraint), never as an application-side existence check, so
// concurrent submissions of the same txid commit exactly one row.
var ErrDuplicateEntry = errors.New("entry with this txid already exists")

// EntryRepository defines persistence for the append-only travel ledger.
type EntryRepository interface {
	// Insert commits a fully-populated entry. The insert is durable before
	// Insert returns. Returns ErrDuplicateEntry on a txid collision.
	Insert(ctx context.Context, entry *domain.Entry) error
	// ListAll returns every entry in ascending creation order.
	ListAll(ctx context.Context) ([]domain.Entry, error)
}

// ProjectRepository defines persistence for project metadata, seeded once at
// initialization and never mutated by submissions.
type ProjectRepository interface {
	// Seed stores the project metadata if not already present; existing
	// values win so exports stay reproducible across config changes.
	Seed(ctx context.Context, p domain.Project) error
	Get(ctx context.Context) (*domain.Project, error)
}
