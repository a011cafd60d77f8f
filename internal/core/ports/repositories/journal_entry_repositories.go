package repositories

import (
	"context"
	"time"

	"github.com/bizledger/journal_entry_app/internal/core/domain"
)

// EntryFilter narrows the entry list query. Zero values mean "no filter".
type EntryFilter struct {
	Status    domain.EntryStatus
	EntryType domain.EntryType
	From      *time.Time // Inclusive entry-date lower bound
	To        *time.Time // Inclusive entry-date upper bound
	Search    string     // Matches entry number, description or reference
}

// EntryReader defines read operations for journal entry data.
type EntryReader interface {
	// FindEntryByID retrieves an entry with its lines in insertion order.
	FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// ListEntries retrieves a filtered, token-paginated list of entries
	// (without lines), newest entry date first.
	ListEntries(ctx context.Context, filter EntryFilter, limit int, nextToken *string) ([]domain.JournalEntry, *string, error)
}

// EntryWriter defines write operations for journal entry data.
type EntryWriter interface {
	// SaveEntry persists a new entry and its lines atomically.
	SaveEntry(ctx context.Context, entry domain.JournalEntry) error

	// UpdateEntry replaces the stored entry (header and lines) if the stored
	// version equals expectedVersion, bumping the version by one. Returns
	// apperrors.ErrVersionConflict on a stale write.
	UpdateEntry(ctx context.Context, entry domain.JournalEntry, expectedVersion int64) error

	// PostEntry persists the POSTED entry like UpdateEntry and, when the entry
	// reverses another one, flags the original as reversed in the same
	// database transaction.
	PostEntry(ctx context.Context, entry domain.JournalEntry, expectedVersion int64) error
}

// JournalEntryRepositoryFacade combines all entry repository interfaces.
type JournalEntryRepositoryFacade interface {
	EntryReader
	EntryWriter
}
