package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bizledger/journal_entry_app/internal/apperrors"
	"github.com/bizledger/journal_entry_app/internal/core/domain"
	portsrepo "github.com/bizledger/journal_entry_app/internal/core/ports/repositories"
	"github.com/bizledger/journal_entry_app/internal/utils/pagination"
)

type PgxJournalEntryRepository struct {
	pool *pgxpool.Pool
}

// NewPgxJournalEntryRepository creates a new repository for journal entry data.
func NewPgxJournalEntryRepository(pool *pgxpool.Pool) portsrepo.JournalEntryRepositoryFacade {
	return &PgxJournalEntryRepository{pool: pool}
}

var _ portsrepo.JournalEntryRepositoryFacade = (*PgxJournalEntryRepository)(nil)

const entryColumns = `entry_id, entry_number, entry_date, reference, description, entry_type, status,
	total_debit, total_credit, is_balanced, is_reversed, reversal_entry_id, reverses_entry_id,
	requires_approval, approved_by, approved_at, rejection_reason, currency_code, exchange_rate,
	version, created_at, created_by, last_updated_at, last_updated_by`

const lineColumns = `line_id, entry_id, account_id, account_code, account_name, debit_amount,
	credit_amount, description, currency_code, exchange_rate, position,
	created_at, created_by, last_updated_at, last_updated_by`

// SaveEntry persists a new entry and its lines within a DB transaction.
func (r *PgxJournalEntryRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	entryQuery := `
		INSERT INTO journal_entries (` + entryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24);
	`
	_, err = tx.Exec(ctx, entryQuery,
		entry.EntryID,
		entry.EntryNumber,
		entry.EntryDate,
		entry.Reference,
		entry.Description,
		entry.EntryType,
		entry.Status,
		entry.TotalDebit,
		entry.TotalCredit,
		entry.IsBalanced,
		entry.IsReversed,
		entry.ReversalEntryID,
		entry.ReversesEntryID,
		entry.RequiresApproval,
		entry.ApprovedBy,
		entry.ApprovedAt,
		entry.RejectionReason,
		entry.CurrencyCode,
		entry.ExchangeRate,
		entry.Version,
		entry.CreatedAt,
		entry.CreatedBy,
		entry.LastUpdatedAt,
		entry.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert entry %s: %w", entry.EntryID, err)
	}

	if err := insertLines(ctx, tx, entry.Lines); err != nil {
		return fmt.Errorf("failed to insert lines for entry %s: %w", entry.EntryID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction for entry %s: %w", entry.EntryID, err)
	}
	return nil
}

// insertLines batch-inserts entry lines inside an open transaction.
func insertLines(ctx context.Context, tx pgx.Tx, lines []domain.EntryLine) error {
	if len(lines) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	lineQuery := `
		INSERT INTO journal_entry_lines (` + lineColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	for _, line := range lines {
		batch.Queue(lineQuery,
			line.LineID,
			line.EntryID,
			line.AccountID,
			line.AccountCode,
			line.AccountName,
			line.DebitAmount,
			line.CreditAmount,
			line.Description,
			line.CurrencyCode,
			line.ExchangeRate,
			line.Position,
			line.CreatedAt,
			line.CreatedBy,
			line.LastUpdatedAt,
			line.LastUpdatedBy,
		)
	}
	br := tx.SendBatch(ctx, batch)
	return br.Close()
}

// updateEntryHeader writes the entry header guarded by the version check.
// Returns ErrNotFound when the entry does not exist and ErrVersionConflict on
// a stale write.
func (r *PgxJournalEntryRepository) updateEntryHeader(ctx context.Context, tx pgx.Tx, entry domain.JournalEntry, expectedVersion int64) error {
	query := `
		UPDATE journal_entries
		SET entry_date = $1, reference = $2, description = $3, status = $4,
			total_debit = $5, total_credit = $6, is_balanced = $7,
			requires_approval = $8, approved_by = $9, approved_at = $10, rejection_reason = $11,
			exchange_rate = $12, version = $13, last_updated_at = $14, last_updated_by = $15
		WHERE entry_id = $16 AND version = $17;
	`
	tag, err := tx.Exec(ctx, query,
		entry.EntryDate,
		entry.Reference,
		entry.Description,
		entry.Status,
		entry.TotalDebit,
		entry.TotalCredit,
		entry.IsBalanced,
		entry.RequiresApproval,
		entry.ApprovedBy,
		entry.ApprovedAt,
		entry.RejectionReason,
		entry.ExchangeRate,
		entry.Version,
		entry.LastUpdatedAt,
		entry.LastUpdatedBy,
		entry.EntryID,
		expectedVersion,
	)
	if err != nil {
		return fmt.Errorf("failed to update entry %s: %w", entry.EntryID, err)
	}
	if tag.RowsAffected() == 0 {
		var current int64
		err := tx.QueryRow(ctx, `SELECT version FROM journal_entries WHERE entry_id = $1`, entry.EntryID).Scan(&current)
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to check entry version for %s: %w", entry.EntryID, err)
		}
		return fmt.Errorf("%w: stored version is %d, expected %d", apperrors.ErrVersionConflict, current, expectedVersion)
	}
	return nil
}

// UpdateEntry replaces the stored entry header and lines, guarded by the
// optimistic version check.
func (r *PgxJournalEntryRepository) UpdateEntry(ctx context.Context, entry domain.JournalEntry, expectedVersion int64) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if err := r.updateEntryHeader(ctx, tx, entry, expectedVersion); err != nil {
		return err
	}

	// Lines are replaced wholesale; the service owns their validity.
	if _, err := tx.Exec(ctx, `DELETE FROM journal_entry_lines WHERE entry_id = $1`, entry.EntryID); err != nil {
		return fmt.Errorf("failed to clear lines for entry %s: %w", entry.EntryID, err)
	}
	if err := insertLines(ctx, tx, entry.Lines); err != nil {
		return fmt.Errorf("failed to insert lines for entry %s: %w", entry.EntryID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit update for entry %s: %w", entry.EntryID, err)
	}
	return nil
}

// PostEntry writes the POSTED entry header and, when the entry reverses
// another one, flags the original as reversed in the same transaction. A
// concurrent second reversal loses here: the original can only be flagged
// while still unreversed.
func (r *PgxJournalEntryRepository) PostEntry(ctx context.Context, entry domain.JournalEntry, expectedVersion int64) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if err := r.updateEntryHeader(ctx, tx, entry, expectedVersion); err != nil {
		return err
	}

	if entry.ReversesEntryID != nil {
		flagQuery := `
			UPDATE journal_entries
			SET is_reversed = TRUE, reversal_entry_id = $1, last_updated_at = $2, last_updated_by = $3
			WHERE entry_id = $4 AND is_reversed = FALSE;
		`
		tag, err := tx.Exec(ctx, flagQuery, entry.EntryID, entry.LastUpdatedAt, entry.LastUpdatedBy, *entry.ReversesEntryID)
		if err != nil {
			return fmt.Errorf("failed to flag original entry %s as reversed: %w", *entry.ReversesEntryID, err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("original entry %s: %w", *entry.ReversesEntryID, apperrors.ErrAlreadyReversed)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit post for entry %s: %w", entry.EntryID, err)
	}
	return nil
}

// scanEntry scans one journal entry row.
func scanEntry(row pgx.Row) (*domain.JournalEntry, error) {
	var entry domain.JournalEntry
	err := row.Scan(
		&entry.EntryID,
		&entry.EntryNumber,
		&entry.EntryDate,
		&entry.Reference,
		&entry.Description,
		&entry.EntryType,
		&entry.Status,
		&entry.TotalDebit,
		&entry.TotalCredit,
		&entry.IsBalanced,
		&entry.IsReversed,
		&entry.ReversalEntryID,
		&entry.ReversesEntryID,
		&entry.RequiresApproval,
		&entry.ApprovedBy,
		&entry.ApprovedAt,
		&entry.RejectionReason,
		&entry.CurrencyCode,
		&entry.ExchangeRate,
		&entry.Version,
		&entry.CreatedAt,
		&entry.CreatedBy,
		&entry.LastUpdatedAt,
		&entry.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// FindEntryByID retrieves an entry and its lines in insertion order.
func (r *PgxJournalEntryRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM journal_entries WHERE entry_id = $1;`
	entry, err := scanEntry(r.pool.QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find entry by ID %s: %w", entryID, err)
	}

	lineQuery := `SELECT ` + lineColumns + ` FROM journal_entry_lines WHERE entry_id = $1 ORDER BY position;`
	rows, err := r.pool.Query(ctx, lineQuery, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to query lines for entry %s: %w", entryID, err)
	}
	defer rows.Close()

	lines := []domain.EntryLine{}
	for rows.Next() {
		var line domain.EntryLine
		if err := rows.Scan(
			&line.LineID,
			&line.EntryID,
			&line.AccountID,
			&line.AccountCode,
			&line.AccountName,
			&line.DebitAmount,
			&line.CreditAmount,
			&line.Description,
			&line.CurrencyCode,
			&line.ExchangeRate,
			&line.Position,
			&line.CreatedAt,
			&line.CreatedBy,
			&line.LastUpdatedAt,
			&line.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan line row for entry %s: %w", entryID, err)
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating line rows for entry %s: %w", entryID, err)
	}

	entry.Lines = lines
	return entry, nil
}

// ListEntries retrieves a filtered, cursor-paginated page of entries without
// lines, newest entry date first.
func (r *PgxJournalEntryRepository) ListEntries(ctx context.Context, filter portsrepo.EntryFilter, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	var conditions []string
	var args []interface{}

	addCondition := func(clause string, value interface{}) {
		args = append(args, value)
		conditions = append(conditions, strings.Replace(clause, "?", "$"+strconv.Itoa(len(args)), 1))
	}

	if filter.Status != "" {
		addCondition("status = ?", filter.Status)
	}
	if filter.EntryType != "" {
		addCondition("entry_type = ?", filter.EntryType)
	}
	if filter.From != nil {
		addCondition("entry_date >= ?", *filter.From)
	}
	if filter.To != nil {
		addCondition("entry_date <= ?", *filter.To)
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		placeholder := "$" + strconv.Itoa(len(args))
		conditions = append(conditions,
			"(entry_number ILIKE "+placeholder+" OR description ILIKE "+placeholder+" OR reference ILIKE "+placeholder+")")
	}
	if nextToken != nil {
		entryDate, createdAt, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		args = append(args, entryDate, createdAt)
		conditions = append(conditions, fmt.Sprintf("(entry_date, created_at) < ($%d, $%d)", len(args)-1, len(args)))
	}

	query := `SELECT ` + entryColumns + ` FROM journal_entries`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	args = append(args, limit+1)
	query += fmt.Sprintf(" ORDER BY entry_date DESC, created_at DESC LIMIT $%d;", len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer rows.Close()

	entries := []domain.JournalEntry{}
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan entry row: %w", err)
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating entry rows: %w", err)
	}

	var token *string
	if len(entries) > limit {
		entries = entries[:limit]
		last := entries[len(entries)-1]
		encoded := pagination.EncodeToken(last.EntryDate, last.CreatedAt)
		token = &encoded
	}
	return entries, token, nil
}
