package dto

import (
	"time"

	"github.com/bizledger/journal_entry_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateEntryLineRequest is one line of a create or add-line request.
// Amounts are validated server-side (exactly one positive side); the binding
// tags only cover presence and shape.
type CreateEntryLineRequest struct {
	AccountID    string           `json:"accountID" binding:"required"`
	AccountCode  string           `json:"accountCode"`
	AccountName  string           `json:"accountName"`
	DebitAmount  decimal.Decimal  `json:"debitAmount"`
	CreditAmount decimal.Decimal  `json:"creditAmount"`
	Description  string           `json:"description"`
	CurrencyCode string           `json:"currencyCode" binding:"omitempty,len=3"`
	ExchangeRate *decimal.Decimal `json:"exchangeRate"` // Defaults to the entry's rate when omitted
}

// CreateEntryRequest is the payload for creating a journal entry draft.
// An entry may start with no lines and have them added before submission.
type CreateEntryRequest struct {
	EntryDate        time.Time                `json:"entryDate" binding:"required"`
	Description      string                   `json:"description" binding:"required"`
	EntryType        domain.EntryType         `json:"entryType" binding:"required,entrytype"`
	CurrencyCode     string                   `json:"currencyCode" binding:"required,len=3"`
	ExchangeRate     *decimal.Decimal         `json:"exchangeRate"`
	Reference        string                   `json:"reference"`
	RequiresApproval *bool                    `json:"requiresApproval"` // Overrides the policy default when set
	Lines            []CreateEntryLineRequest `json:"lines" binding:"omitempty,dive"`
}

// AddLineRequest appends a line to a draft entry.
type AddLineRequest struct {
	Version int64                  `json:"version" binding:"required"`
	Line    CreateEntryLineRequest `json:"line" binding:"required"`
}

// UpdateLineRequest patches an existing line on a draft entry.
// Nil fields are left unchanged.
type UpdateLineRequest struct {
	Version      int64            `json:"version" binding:"required"`
	AccountID    *string          `json:"accountID"`
	AccountCode  *string          `json:"accountCode"`
	AccountName  *string          `json:"accountName"`
	DebitAmount  *decimal.Decimal `json:"debitAmount"`
	CreditAmount *decimal.Decimal `json:"creditAmount"`
	Description  *string          `json:"description"`
	CurrencyCode *string          `json:"currencyCode"`
	ExchangeRate *decimal.Decimal `json:"exchangeRate"`
}

// RemoveLineRequest drops a line from a draft entry.
type RemoveLineRequest struct {
	Version int64 `json:"version" binding:"required"`
}

// EntryActionRequest drives the lifecycle state machine for a single entry.
type EntryActionRequest struct {
	Action       string     `json:"action" binding:"required,oneof=submit approve reject post reverse cancel"`
	Version      int64      `json:"version" binding:"required"`
	Reason       string     `json:"reason"`       // Required for reject
	ReversalDate *time.Time `json:"reversalDate"` // Optional for reverse; defaults to today
}

// ListEntriesParams carries the query filters for the entry list endpoint.
type ListEntriesParams struct {
	Status    string     `form:"status" binding:"omitempty,oneof=DRAFT PENDING_APPROVAL APPROVED POSTED REJECTED CANCELLED"`
	EntryType string     `form:"type" binding:"omitempty,entrytype"`
	From      *time.Time `form:"from" time_format:"2006-01-02"`
	To        *time.Time `form:"to" time_format:"2006-01-02"`
	Search    string     `form:"search"`
	Limit     int        `form:"limit" binding:"omitempty,min=1,max=100"`
	NextToken *string    `form:"nextToken"`
}

// EntryLineResponse is the wire shape of a single entry line.
type EntryLineResponse struct {
	LineID       string          `json:"lineID"`
	AccountID    string          `json:"accountID"`
	AccountCode  string          `json:"accountCode,omitempty"`
	AccountName  string          `json:"accountName,omitempty"`
	DebitAmount  decimal.Decimal `json:"debitAmount"`
	CreditAmount decimal.Decimal `json:"creditAmount"`
	Description  string          `json:"description,omitempty"`
	CurrencyCode string          `json:"currencyCode"`
	ExchangeRate decimal.Decimal `json:"exchangeRate"`
	Position     int             `json:"position"`
}

// JournalEntryResponse is the wire shape of a journal entry.
type JournalEntryResponse struct {
	EntryID          string              `json:"entryID"`
	EntryNumber      string              `json:"entryNumber"`
	EntryDate        time.Time           `json:"entryDate"`
	Reference        string              `json:"reference,omitempty"`
	Description      string              `json:"description"`
	EntryType        string              `json:"entryType"`
	Status           string              `json:"status"`
	Lines            []EntryLineResponse `json:"lines,omitempty"`
	TotalDebit       decimal.Decimal     `json:"totalDebit"`
	TotalCredit      decimal.Decimal     `json:"totalCredit"`
	IsBalanced       bool                `json:"isBalanced"`
	IsReversed       bool                `json:"isReversed"`
	ReversalEntryID  *string             `json:"reversalEntryID,omitempty"`
	ReversesEntryID  *string             `json:"reversesEntryID,omitempty"`
	RequiresApproval bool                `json:"requiresApproval"`
	ApprovedBy       *string             `json:"approvedBy,omitempty"`
	ApprovedAt       *time.Time          `json:"approvedAt,omitempty"`
	RejectionReason  string              `json:"rejectionReason,omitempty"`
	CurrencyCode     string              `json:"currencyCode"`
	ExchangeRate     decimal.Decimal     `json:"exchangeRate"`
	Version          int64               `json:"version"`
	CreatedAt        time.Time           `json:"createdAt"`
	CreatedBy        string              `json:"createdBy"`
	LastUpdatedAt    time.Time           `json:"lastUpdatedAt"`
	LastUpdatedBy    string              `json:"lastUpdatedBy"`
}

// EntryActionResponse is returned from the entry-action endpoint. The reversal
// entry is only populated for the reverse action.
type EntryActionResponse struct {
	Entry         JournalEntryResponse  `json:"entry"`
	ReversalEntry *JournalEntryResponse `json:"reversalEntry,omitempty"`
}

// ListEntriesResponse is the paginated entry list payload.
type ListEntriesResponse struct {
	Entries   []JournalEntryResponse `json:"entries"`
	NextToken *string                `json:"nextToken,omitempty"`
}

// ToEntryLineResponse converts a domain.EntryLine to its response DTO.
func ToEntryLineResponse(line *domain.EntryLine) EntryLineResponse {
	return EntryLineResponse{
		LineID:       line.LineID,
		AccountID:    line.AccountID,
		AccountCode:  line.AccountCode,
		AccountName:  line.AccountName,
		DebitAmount:  line.DebitAmount,
		CreditAmount: line.CreditAmount,
		Description:  line.Description,
		CurrencyCode: line.CurrencyCode,
		ExchangeRate: line.ExchangeRate,
		Position:     line.Position,
	}
}

// ToJournalEntryResponse converts a domain.JournalEntry to its response DTO.
func ToJournalEntryResponse(e *domain.JournalEntry) JournalEntryResponse {
	var lines []EntryLineResponse
	if e.Lines != nil {
		lines = make([]EntryLineResponse, len(e.Lines))
		for i := range e.Lines {
			lines[i] = ToEntryLineResponse(&e.Lines[i])
		}
	}
	return JournalEntryResponse{
		EntryID:          e.EntryID,
		EntryNumber:      e.EntryNumber,
		EntryDate:        e.EntryDate,
		Reference:        e.Reference,
		Description:      e.Description,
		EntryType:        string(e.EntryType),
		Status:           string(e.Status),
		Lines:            lines,
		TotalDebit:       e.TotalDebit,
		TotalCredit:      e.TotalCredit,
		IsBalanced:       e.IsBalanced,
		IsReversed:       e.IsReversed,
		ReversalEntryID:  e.ReversalEntryID,
		ReversesEntryID:  e.ReversesEntryID,
		RequiresApproval: e.RequiresApproval,
		ApprovedBy:       e.ApprovedBy,
		ApprovedAt:       e.ApprovedAt,
		RejectionReason:  e.RejectionReason,
		CurrencyCode:     e.CurrencyCode,
		ExchangeRate:     e.ExchangeRate,
		Version:          e.Version,
		CreatedAt:        e.CreatedAt,
		CreatedBy:        e.CreatedBy,
		LastUpdatedAt:    e.LastUpdatedAt,
		LastUpdatedBy:    e.LastUpdatedBy,
	}
}
