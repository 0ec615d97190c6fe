package postgres

import (
	"context"
	"errors"
	"fmt"

	"traveling-message/internal/core/domain"
	"traveling-message/internal/core/ports"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

// EntryRepo implements ports.EntryRepository.
type EntryRepo struct {
	pool Pool
}

// NewEntryRepo creates a new EntryRepo.
func NewEntryRepo(pool Pool) *EntryRepo {
	return &EntryRepo{pool: pool}
}

// Insert commits a verified entry. The database's UNIQUE constraint on txid
// is the deduplication mechanism; a violation maps to ports.ErrDuplicateEntry.
func (r *EntryRepo) Insert(ctx context.Context, e *domain.Entry) error {
	query := `INSERT INTO entries (txid, alias, city, country, lat, lng, amount_btc, iso_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`

	err := r.pool.QueryRow(ctx, query,
		e.TxID, e.Alias, e.City, e.Country,
		e.Lat, e.Lng, e.AmountBTC, e.ISODate,
	).Scan(&e.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return ports.ErrDuplicateEntry
		}
		return fmt.Errorf("insert entry: %w", err)
	}
	return nil
}

// ListAll returns every entry in ascending insertion order.
func (r *EntryRepo) ListAll(ctx context.Context) ([]domain.Entry, error) {
	query := `SELECT id, txid, alias, city, country, lat, lng, amount_btc, iso_date
		FROM entries ORDER BY id ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.Entry
	for rows.Next() {
		e := domain.Entry{}
		err := rows.Scan(
			&e.ID, &e.TxID, &e.Alias, &e.City, &e.Country,
			&e.Lat, &e.Lng, &e.AmountBTC, &e.ISODate,
		)
		if err != nil {
			return nil, fmt.Errorf("scan entry row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entry rows: %w", err)
	}
	return entries, nil
}
