package services

import (
	"context"
	"time"

	"github.com/bizledger/journal_entry_app/internal/core/domain"
	"github.com/bizledger/journal_entry_app/internal/dto"
)

// EntryReaderSvc defines read operations for journal entries.
type EntryReaderSvc interface {
	// GetEntryByID retrieves an entry with its lines.
	GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// ListEntries retrieves a filtered, paginated list of entries.
	ListEntries(ctx context.Context, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error)
}

// EntryWriterSvc defines the mutation and lifecycle operations for journal
// entries. Every mutation takes the caller's current entry version and fails
// with apperrors.ErrVersionConflict when stale.
type EntryWriterSvc interface {
	// CreateEntry validates the draft header and lines and persists a new
	// DRAFT entry with a fresh entry number.
	CreateEntry(ctx context.Context, req dto.CreateEntryRequest, creatorID string) (*domain.JournalEntry, error)

	// AddLine appends a line to a DRAFT or REJECTED entry.
	AddLine(ctx context.Context, entryID string, req dto.AddLineRequest, actorID string) (*domain.JournalEntry, error)

	// UpdateLine patches a line on a DRAFT or REJECTED entry.
	UpdateLine(ctx context.Context, entryID, lineID string, req dto.UpdateLineRequest, actorID string) (*domain.JournalEntry, error)

	// RemoveLine drops a line from a DRAFT or REJECTED entry.
	RemoveLine(ctx context.Context, entryID, lineID string, version int64, actorID string) (*domain.JournalEntry, error)

	// SubmitForApproval moves a DRAFT entry to PENDING_APPROVAL, or straight
	// to APPROVED when the entry does not require approval.
	SubmitForApproval(ctx context.Context, entryID string, version int64, actorID string) (*domain.JournalEntry, error)

	// Approve moves a PENDING_APPROVAL entry to APPROVED.
	Approve(ctx context.Context, entryID string, version int64, approverID string) (*domain.JournalEntry, error)

	// Reject moves a PENDING_APPROVAL entry to REJECTED, keeping the reason.
	Reject(ctx context.Context, entryID string, version int64, approverID, reason string) (*domain.JournalEntry, error)

	// Post moves an APPROVED, balanced entry to POSTED.
	Post(ctx context.Context, entryID string, version int64, actorID string) (*domain.JournalEntry, error)

	// Reverse creates a mirror REVERSAL draft for a POSTED entry. It returns
	// the (unchanged) original and the new reversal entry.
	Reverse(ctx context.Context, entryID string, version int64, reversalDate time.Time, actorID string) (*domain.JournalEntry, *domain.JournalEntry, error)

	// Cancel soft-deletes an entry that has not been posted.
	Cancel(ctx context.Context, entryID string, version int64, actorID string) (*domain.JournalEntry, error)
}

// JournalEntrySvcFacade combines all journal-entry service interfaces.
type JournalEntrySvcFacade interface {
	EntryReaderSvc
	EntryWriterSvc
}
