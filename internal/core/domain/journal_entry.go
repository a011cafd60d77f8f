package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryStatus is the lifecycle state of a journal entry.
type EntryStatus string

const (
	StatusDraft           EntryStatus = "DRAFT"
	StatusPendingApproval EntryStatus = "PENDING_APPROVAL"
	StatusApproved        EntryStatus = "APPROVED"
	StatusPosted          EntryStatus = "POSTED"
	StatusRejected        EntryStatus = "REJECTED"
	StatusCancelled       EntryStatus = "CANCELLED"
)

// EntryType classifies how a journal entry originated. Fixed at creation.
type EntryType string

const (
	TypeManual     EntryType = "MANUAL"
	TypeAutomated  EntryType = "AUTOMATED"
	TypeRecurring  EntryType = "RECURRING"
	TypeReversal   EntryType = "REVERSAL"
	TypeAdjustment EntryType = "ADJUSTMENT"
)

// ValidEntryType reports whether t is one of the enumerated entry types.
func ValidEntryType(t EntryType) bool {
	switch t {
	case TypeManual, TypeAutomated, TypeRecurring, TypeReversal, TypeAdjustment:
		return true
	}
	return false
}

// statusTransitions maps each status to the statuses reachable from it.
// Posting is terminal for edits; a POSTED entry only changes via reversal
// linkage, which does not alter its own status.
var statusTransitions = map[EntryStatus][]EntryStatus{
	StatusDraft:           {StatusPendingApproval, StatusApproved, StatusCancelled},
	StatusPendingApproval: {StatusApproved, StatusRejected},
	StatusApproved:        {StatusPosted, StatusCancelled},
	StatusRejected:        {StatusDraft, StatusCancelled},
	StatusPosted:          {},
	StatusCancelled:       {},
}

// CanTransitionTo reports whether the state machine permits moving from s to target.
func (s EntryStatus) CanTransitionTo(target EntryStatus) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// IsEditable reports whether lines may be added, updated or removed while the
// entry is in status s.
func (s EntryStatus) IsEditable() bool {
	return s == StatusDraft || s == StatusRejected
}

// JournalEntry is a double-entry accounting record composed of balanced lines.
type JournalEntry struct {
	EntryID          string          `json:"entryID"`     // Primary Key (UUID)
	EntryNumber      string          `json:"entryNumber"` // Human-readable, e.g. JE-2024-001; immutable
	EntryDate        time.Time       `json:"entryDate"`   // Accounting effective date
	Reference        string          `json:"reference"`   // Optional cross-reference to a source document
	Description      string          `json:"description"`
	EntryType        EntryType       `json:"entryType"`
	Status           EntryStatus     `json:"status"`
	Lines            []EntryLine     `json:"lines,omitempty"`
	TotalDebit       decimal.Decimal `json:"totalDebit"`  // Derived; base currency
	TotalCredit      decimal.Decimal `json:"totalCredit"` // Derived; base currency
	IsBalanced       bool            `json:"isBalanced"`
	IsReversed       bool            `json:"isReversed"`
	ReversalEntryID  *string         `json:"reversalEntryID,omitempty"` // Entry that reverses this one, once posted
	ReversesEntryID  *string         `json:"reversesEntryID,omitempty"` // Set on a REVERSAL entry: the original it mirrors
	RequiresApproval bool            `json:"requiresApproval"`
	ApprovedBy       *string         `json:"approvedBy,omitempty"`
	ApprovedAt       *time.Time      `json:"approvedAt,omitempty"`
	RejectionReason  string          `json:"rejectionReason,omitempty"`
	CurrencyCode     string          `json:"currencyCode"` // Base currency of the entry
	ExchangeRate     decimal.Decimal `json:"exchangeRate"` // Entry-level rate to the ledger currency
	Version          int64           `json:"version"`      // Optimistic concurrency revision
	AuditFields
}
