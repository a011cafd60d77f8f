package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/bizledger/journal_entry_app/internal/core/ports/repositories"
)

type PgxSequenceRepository struct {
	pool *pgxpool.Pool
}

// NewPgxSequenceRepository creates a new repository for entry number sequences.
func NewPgxSequenceRepository(pool *pgxpool.Pool) portsrepo.SequenceRepository {
	return &PgxSequenceRepository{pool: pool}
}

var _ portsrepo.SequenceRepository = (*PgxSequenceRepository)(nil)

// NextSequence atomically increments and returns the per-year counter. The
// single upsert statement is the serialized critical section that keeps entry
// numbers unique under concurrent creation.
func (r *PgxSequenceRepository) NextSequence(ctx context.Context, year int) (int64, error) {
	query := `
		INSERT INTO entry_sequences (year, last_value)
		VALUES ($1, 1)
		ON CONFLICT (year) DO UPDATE SET last_value = entry_sequences.last_value + 1
		RETURNING last_value;
	`
	var value int64
	if err := r.pool.QueryRow(ctx, query, year).Scan(&value); err != nil {
		return 0, fmt.Errorf("failed to advance entry sequence for year %d: %w", year, err)
	}
	return value, nil
}
