package postgres

import (
	"context"
	"fmt"

	"traveling-message/internal/core/domain"
)

const (
	metaKeyBTCAddress  = "btc_address"
	metaKeyOriginLabel = "origin_label"
)

// ProjectRepo implements ports.ProjectRepository on the project_meta k/v table.
type ProjectRepo struct {
	pool Pool
}

// NewProjectRepo creates a new ProjectRepo.
func NewProjectRepo(pool Pool) *ProjectRepo {
	return &ProjectRepo{pool: pool}
}

// Seed stores the project metadata unless it is already present. Existing
// values win so the exported artifact stays stable across config edits.
func (r *ProjectRepo) Seed(ctx context.Context, p domain.Project) error {
	query := `INSERT INTO project_meta (k, v) VALUES ($1, $2) ON CONFLICT (k) DO NOTHING`

	if _, err := r.pool.Exec(ctx, query, metaKeyBTCAddress, p.BTCAddress); err != nil {
		return fmt.Errorf("seed btc_address: %w", err)
	}
	if _, err := r.pool.Exec(ctx, query, metaKeyOriginLabel, p.OriginLabel); err != nil {
		return fmt.Errorf("seed origin_label: %w", err)
	}
	return nil
}

// Get fetches the seeded project metadata.
func (r *ProjectRepo) Get(ctx context.Context) (*domain.Project, error) {
	query := `SELECT k, v FROM project_meta WHERE k IN ($1, $2)`

	rows, err := r.pool.Query(ctx, query, metaKeyBTCAddress, metaKeyOriginLabel)
	if err != nil {
		return nil, fmt.Errorf("get project meta: %w", err)
	}
	defer rows.Close()

	p := &domain.Project{}
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, fmt.Errorf("scan project meta row: %w", err)
		}
		switch k {
		case metaKeyBTCAddress:
			p.BTCAddress = v
		case metaKeyOriginLabel:
			p.OriginLabel = v
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate project meta rows: %w", err)
	}
	return p, nil
}
