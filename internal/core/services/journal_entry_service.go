package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bizledger/journal_entry_app/internal/apperrors"
	"github.com/bizledger/journal_entry_app/internal/core/domain"
	portsrepo "github.com/bizledger/journal_entry_app/internal/core/ports/repositories"
	portssvc "github.com/bizledger/journal_entry_app/internal/core/ports/services"
	"github.com/bizledger/journal_entry_app/internal/dto"
	"github.com/bizledger/journal_entry_app/internal/middleware"
	"github.com/bizledger/journal_entry_app/internal/utils/accounting"
)

// SystemApprover is recorded as the approver when an entry that does not
// require approval is submitted and auto-approved.
const SystemApprover = "system"

// journalEntryService owns the validation rules, balance computation and
// status state machine for journal entries.
type journalEntryService struct {
	entryRepo         portsrepo.JournalEntryRepositoryFacade
	sequenceRepo      portsrepo.SequenceRepository
	currencySvc       portssvc.CurrencySvcFacade
	approvalThreshold decimal.Decimal
}

// NewJournalEntryService creates a new journal entry service. Entries of type
// AUTOMATED or RECURRING below approvalThreshold skip the approval queue;
// everything else requires approval unless the creator overrides the policy.
func NewJournalEntryService(
	entryRepo portsrepo.JournalEntryRepositoryFacade,
	sequenceRepo portsrepo.SequenceRepository,
	currencySvc portssvc.CurrencySvcFacade,
	approvalThreshold decimal.Decimal,
) portssvc.JournalEntrySvcFacade {
	return &journalEntryService{
		entryRepo:         entryRepo,
		sequenceRepo:      sequenceRepo,
		currencySvc:       currencySvc,
		approvalThreshold: approvalThreshold,
	}
}

var _ portssvc.JournalEntrySvcFacade = (*journalEntryService)(nil)

// precisionFor resolves the minor-unit precision of the entry's base currency.
func (s *journalEntryService) precisionFor(ctx context.Context, currencyCode string) (int32, error) {
	currency, err := s.currencySvc.GetCurrencyByCode(ctx, currencyCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return 0, fmt.Errorf("%w: unsupported currency %s", apperrors.ErrValidation, currencyCode)
		}
		return 0, fmt.Errorf("failed to resolve currency %s: %w", currencyCode, err)
	}
	return currency.Precision, nil
}

// recomputeTotals derives TotalDebit, TotalCredit and IsBalanced from the
// entry's lines. These fields are never independently settable.
func (s *journalEntryService) recomputeTotals(entry *domain.JournalEntry, precision int32) error {
	totalDebit, totalCredit, err := accounting.ComputeTotals(entry.Lines, precision)
	if err != nil {
		return err
	}
	entry.TotalDebit = totalDebit
	entry.TotalCredit = totalCredit
	entry.IsBalanced = accounting.IsBalanced(totalDebit, totalCredit)
	return nil
}

// requiresApprovalFor applies the approval policy: AUTOMATED and RECURRING
// entries below the configured threshold skip approval, everything else
// requires it.
func (s *journalEntryService) requiresApprovalFor(entryType domain.EntryType, totalDebit decimal.Decimal) bool {
	switch entryType {
	case domain.TypeAutomated, domain.TypeRecurring:
		return totalDebit.GreaterThanOrEqual(s.approvalThreshold)
	default:
		return true
	}
}

// buildLine turns a line request into a domain line, defaulting the currency
// context to the entry's. A line in the entry's own currency must convert at
// a rate of exactly 1.
func (s *journalEntryService) buildLine(entry *domain.JournalEntry, req dto.CreateEntryLineRequest, position int, actorID string, now time.Time) (domain.EntryLine, error) {
	currencyCode := req.CurrencyCode
	if currencyCode == "" {
		currencyCode = entry.CurrencyCode
	}

	exchangeRate := decimal.NewFromInt(1)
	if req.ExchangeRate != nil {
		exchangeRate = *req.ExchangeRate
	} else if currencyCode != entry.CurrencyCode {
		return domain.EntryLine{}, fmt.Errorf("%w: exchange rate is required for line currency %s", apperrors.ErrValidation, currencyCode)
	}
	if currencyCode == entry.CurrencyCode && !exchangeRate.Equal(decimal.NewFromInt(1)) {
		return domain.EntryLine{}, fmt.Errorf("%w: exchange rate must be 1 for lines in the entry currency", apperrors.ErrValidation)
	}

	line := domain.EntryLine{
		LineID:       uuid.NewString(),
		EntryID:      entry.EntryID,
		AccountID:    req.AccountID,
		AccountCode:  req.AccountCode,
		AccountName:  req.AccountName,
		DebitAmount:  req.DebitAmount,
		CreditAmount: req.CreditAmount,
		Description:  req.Description,
		CurrencyCode: currencyCode,
		ExchangeRate: exchangeRate,
		Position:     position,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}
	if err := accounting.ValidateLine(line); err != nil {
		return domain.EntryLine{}, err
	}
	return line, nil
}

// CreateEntry validates the draft header and lines and persists a new DRAFT
// entry with a fresh per-year entry number.
func (s *journalEntryService) CreateEntry(ctx context.Context, req dto.CreateEntryRequest, creatorID string) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.EntryDate.IsZero() {
		return nil, fmt.Errorf("%w: entry date is required", apperrors.ErrValidation)
	}
	if strings.TrimSpace(req.Description) == "" {
		return nil, fmt.Errorf("%w: entry description is required", apperrors.ErrValidation)
	}
	if !domain.ValidEntryType(req.EntryType) {
		return nil, fmt.Errorf("%w: unknown entry type %q", apperrors.ErrValidation, req.EntryType)
	}

	precision, err := s.precisionFor(ctx, req.CurrencyCode)
	if err != nil {
		return nil, err
	}

	exchangeRate := decimal.NewFromInt(1)
	if req.ExchangeRate != nil {
		if req.ExchangeRate.Sign() <= 0 {
			return nil, fmt.Errorf("%w: entry exchange rate must be positive", apperrors.ErrValidation)
		}
		exchangeRate = *req.ExchangeRate
	}

	now := time.Now().UTC()
	entry := domain.JournalEntry{
		EntryID:      uuid.NewString(),
		EntryDate:    req.EntryDate,
		Reference:    req.Reference,
		Description:  req.Description,
		EntryType:    req.EntryType,
		Status:       domain.StatusDraft,
		CurrencyCode: req.CurrencyCode,
		ExchangeRate: exchangeRate,
		Version:      1,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorID,
		},
	}

	entry.Lines = make([]domain.EntryLine, 0, len(req.Lines))
	for i, lineReq := range req.Lines {
		line, err := s.buildLine(&entry, lineReq, i, creatorID, now)
		if err != nil {
			return nil, err
		}
		entry.Lines = append(entry.Lines, line)
	}

	if err := s.recomputeTotals(&entry, precision); err != nil {
		return nil, err
	}

	// The approval policy is evaluated once, at creation. An explicit flag in
	// the request wins over the type/threshold default.
	if req.RequiresApproval != nil {
		entry.RequiresApproval = *req.RequiresApproval
	} else {
		entry.RequiresApproval = s.requiresApprovalFor(entry.EntryType, entry.TotalDebit)
	}

	year := req.EntryDate.Year()
	sequence, err := s.sequenceRepo.NextSequence(ctx, year)
	if err != nil {
		logger.Error("Failed to allocate entry number", slog.Int("year", year), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to allocate entry number: %w", err)
	}
	entry.EntryNumber = FormatEntryNumber(year, sequence)

	if err := s.entryRepo.SaveEntry(ctx, entry); err != nil {
		logger.Error("Failed to save entry", slog.String("entry_number", entry.EntryNumber), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save entry: %w", err)
	}

	logger.Info("Journal entry created", slog.String("entry_id", entry.EntryID), slog.String("entry_number", entry.EntryNumber))
	return &entry, nil
}

// FormatEntryNumber renders the human-readable entry number, e.g. JE-2024-001.
// The sequence is zero-padded to at least three digits and never truncated.
func FormatEntryNumber(year int, sequence int64) string {
	return fmt.Sprintf("JE-%d-%03d", year, sequence)
}

// fetchForMutation loads an entry and verifies the caller holds the current
// version. The repository re-checks the version at write time; this early
// check keeps error reporting close to the caller's read.
func (s *journalEntryService) fetchForMutation(ctx context.Context, entryID string, version int64) (*domain.JournalEntry, error) {
	entry, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if entry.Version != version {
		return nil, fmt.Errorf("%w: have version %d, expected %d", apperrors.ErrVersionConflict, version, entry.Version)
	}
	return entry, nil
}

// saveMutation stamps audit fields, bumps the version and writes the entry
// with an optimistic concurrency check.
func (s *journalEntryService) saveMutation(ctx context.Context, entry *domain.JournalEntry, expectedVersion int64, actorID string) error {
	now := time.Now().UTC()
	entry.LastUpdatedAt = now
	entry.LastUpdatedBy = actorID
	entry.Version = expectedVersion + 1
	return s.entryRepo.UpdateEntry(ctx, *entry, expectedVersion)
}

// markEdited returns a REJECTED entry to DRAFT. Editing is the only way back
// into the submission pipeline after a rejection; the rejection reason stays on
// the record as an audit note.
func markEdited(entry *domain.JournalEntry) {
	if entry.Status == domain.StatusRejected {
		entry.Status = domain.StatusDraft
	}
}

// AddLine appends a line to a DRAFT or REJECTED entry and recomputes totals.
func (s *journalEntryService) AddLine(ctx context.Context, entryID string, req dto.AddLineRequest, actorID string) (*domain.JournalEntry, error) {
	entry, err := s.fetchForMutation(ctx, entryID, req.Version)
	if err != nil {
		return nil, err
	}
	if !entry.Status.IsEditable() {
		return nil, fmt.Errorf("%w: cannot edit lines in status %s", apperrors.ErrInvalidState, entry.Status)
	}
	markEdited(entry)

	precision, err := s.precisionFor(ctx, entry.CurrencyCode)
	if err != nil {
		return nil, err
	}

	line, err := s.buildLine(entry, req.Line, len(entry.Lines), actorID, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	entry.Lines = append(entry.Lines, line)

	if err := s.recomputeTotals(entry, precision); err != nil {
		return nil, err
	}
	if err := s.saveMutation(ctx, entry, req.Version, actorID); err != nil {
		return nil, err
	}
	return entry, nil
}

// UpdateLine patches a line on a DRAFT or REJECTED entry and recomputes totals.
func (s *journalEntryService) UpdateLine(ctx context.Context, entryID, lineID string, req dto.UpdateLineRequest, actorID string) (*domain.JournalEntry, error) {
	entry, err := s.fetchForMutation(ctx, entryID, req.Version)
	if err != nil {
		return nil, err
	}
	if !entry.Status.IsEditable() {
		return nil, fmt.Errorf("%w: cannot edit lines in status %s", apperrors.ErrInvalidState, entry.Status)
	}
	markEdited(entry)

	idx := -1
	for i := range entry.Lines {
		if entry.Lines[i].LineID == lineID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("line %s: %w", lineID, apperrors.ErrNotFound)
	}

	line := &entry.Lines[idx]
	if req.AccountID != nil {
		line.AccountID = *req.AccountID
	}
	if req.AccountCode != nil {
		line.AccountCode = *req.AccountCode
	}
	if req.AccountName != nil {
		line.AccountName = *req.AccountName
	}
	if req.DebitAmount != nil {
		line.DebitAmount = *req.DebitAmount
	}
	if req.CreditAmount != nil {
		line.CreditAmount = *req.CreditAmount
	}
	if req.Description != nil {
		line.Description = *req.Description
	}
	if req.CurrencyCode != nil {
		line.CurrencyCode = *req.CurrencyCode
	}
	if req.ExchangeRate != nil {
		line.ExchangeRate = *req.ExchangeRate
	}
	// Setting a foreign currency must carry its rate in the same patch; the
	// rate left over from the previous currency does not transfer.
	if req.CurrencyCode != nil && *req.CurrencyCode != entry.CurrencyCode && req.ExchangeRate == nil {
		return nil, fmt.Errorf("%w: exchange rate is required for line currency %s", apperrors.ErrValidation, line.CurrencyCode)
	}
	if line.CurrencyCode == entry.CurrencyCode && !line.ExchangeRate.Equal(decimal.NewFromInt(1)) {
		return nil, fmt.Errorf("%w: exchange rate must be 1 for lines in the entry currency", apperrors.ErrValidation)
	}
	if err := accounting.ValidateLine(*line); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	line.LastUpdatedAt = now
	line.LastUpdatedBy = actorID

	precision, err := s.precisionFor(ctx, entry.CurrencyCode)
	if err != nil {
		return nil, err
	}
	if err := s.recomputeTotals(entry, precision); err != nil {
		return nil, err
	}
	if err := s.saveMutation(ctx, entry, req.Version, actorID); err != nil {
		return nil, err
	}
	return entry, nil
}

// RemoveLine drops a line from a DRAFT or REJECTED entry, resequencing the
// remaining positions and recomputing totals.
func (s *journalEntryService) RemoveLine(ctx context.Context, entryID, lineID string, version int64, actorID string) (*domain.JournalEntry, error) {
	entry, err := s.fetchForMutation(ctx, entryID, version)
	if err != nil {
		return nil, err
	}
	if !entry.Status.IsEditable() {
		return nil, fmt.Errorf("%w: cannot edit lines in status %s", apperrors.ErrInvalidState, entry.Status)
	}
	markEdited(entry)

	kept := make([]domain.EntryLine, 0, len(entry.Lines))
	found := false
	for _, line := range entry.Lines {
		if line.LineID == lineID {
			found = true
			continue
		}
		line.Position = len(kept)
		kept = append(kept, line)
	}
	if !found {
		return nil, fmt.Errorf("line %s: %w", lineID, apperrors.ErrNotFound)
	}
	entry.Lines = kept

	precision, err := s.precisionFor(ctx, entry.CurrencyCode)
	if err != nil {
		return nil, err
	}
	if err := s.recomputeTotals(entry, precision); err != nil {
		return nil, err
	}
	if err := s.saveMutation(ctx, entry, version, actorID); err != nil {
		return nil, err
	}
	return entry, nil
}

// SubmitForApproval moves a DRAFT entry into the approval workflow. The
// structural prerequisites (at least two lines, balanced) are not bypassable.
// When the entry does not require approval, submission auto-approves it with
// the system recorded as approver.
func (s *journalEntryService) SubmitForApproval(ctx context.Context, entryID string, version int64, actorID string) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	entry, err := s.fetchForMutation(ctx, entryID, version)
	if err != nil {
		return nil, err
	}
	if entry.Status != domain.StatusDraft {
		return nil, fmt.Errorf("%w: submit requires status DRAFT, have %s", apperrors.ErrInvalidState, entry.Status)
	}
	if len(entry.Lines) < 2 {
		return nil, fmt.Errorf("%w: entry must have at least two lines", apperrors.ErrValidation)
	}
	if !entry.IsBalanced {
		return nil, fmt.Errorf("%w: entry debits (%s) and credits (%s) must balance before submission",
			apperrors.ErrValidation, entry.TotalDebit.String(), entry.TotalCredit.String())
	}

	if entry.RequiresApproval {
		entry.Status = domain.StatusPendingApproval
	} else {
		// No approval required: treat submission as auto-approval.
		now := time.Now().UTC()
		approver := SystemApprover
		entry.Status = domain.StatusApproved
		entry.ApprovedBy = &approver
		entry.ApprovedAt = &now
	}

	if err := s.saveMutation(ctx, entry, version, actorID); err != nil {
		return nil, err
	}
	logger.Info("Journal entry submitted", slog.String("entry_id", entry.EntryID), slog.String("status", string(entry.Status)))
	return entry, nil
}

// Approve moves a PENDING_APPROVAL entry to APPROVED, stamping the approver.
func (s *journalEntryService) Approve(ctx context.Context, entryID string, version int64, approverID string) (*domain.JournalEntry, error) {
	entry, err := s.fetchForMutation(ctx, entryID, version)
	if err != nil {
		return nil, err
	}
	if entry.Status != domain.StatusPendingApproval {
		return nil, fmt.Errorf("%w: approve requires status PENDING_APPROVAL, have %s", apperrors.ErrInvalidState, entry.Status)
	}

	now := time.Now().UTC()
	entry.Status = domain.StatusApproved
	entry.ApprovedBy = &approverID
	entry.ApprovedAt = &now
	entry.RejectionReason = ""

	if err := s.saveMutation(ctx, entry, version, approverID); err != nil {
		return nil, err
	}
	return entry, nil
}

// Reject moves a PENDING_APPROVAL entry to REJECTED. The entry becomes
// editable again; the reason stays on the record as an audit note.
func (s *journalEntryService) Reject(ctx context.Context, entryID string, version int64, approverID, reason string) (*domain.JournalEntry, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, fmt.Errorf("%w: rejection reason is required", apperrors.ErrValidation)
	}

	entry, err := s.fetchForMutation(ctx, entryID, version)
	if err != nil {
		return nil, err
	}
	if entry.Status != domain.StatusPendingApproval {
		return nil, fmt.Errorf("%w: reject requires status PENDING_APPROVAL, have %s", apperrors.ErrInvalidState, entry.Status)
	}

	entry.Status = domain.StatusRejected
	entry.RejectionReason = reason

	if err := s.saveMutation(ctx, entry, version, approverID); err != nil {
		return nil, err
	}
	return entry, nil
}

// Post moves an APPROVED entry to POSTED. The balance is re-validated here as
// the authoritative gate before the entry becomes immutable; an unbalanced
// entry is never posted "close enough". Posting a REVERSAL entry also flags
// the original entry as reversed, atomically with the status change.
func (s *journalEntryService) Post(ctx context.Context, entryID string, version int64, actorID string) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	entry, err := s.fetchForMutation(ctx, entryID, version)
	if err != nil {
		return nil, err
	}
	if entry.Status != domain.StatusApproved {
		return nil, fmt.Errorf("%w: post requires status APPROVED, have %s", apperrors.ErrInvalidState, entry.Status)
	}

	precision, err := s.precisionFor(ctx, entry.CurrencyCode)
	if err != nil {
		return nil, err
	}
	if err := s.recomputeTotals(entry, precision); err != nil {
		return nil, err
	}
	if !entry.IsBalanced {
		return nil, fmt.Errorf("%w: debits %s, credits %s", apperrors.ErrUnbalanced,
			entry.TotalDebit.String(), entry.TotalCredit.String())
	}

	now := time.Now().UTC()
	entry.Status = domain.StatusPosted
	entry.LastUpdatedAt = now
	entry.LastUpdatedBy = actorID
	entry.Version = version + 1

	if err := s.entryRepo.PostEntry(ctx, *entry, version); err != nil {
		logger.Error("Failed to post entry", slog.String("entry_id", entry.EntryID), slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Journal entry posted", slog.String("entry_id", entry.EntryID), slog.String("entry_number", entry.EntryNumber))
	return entry, nil
}

// Reverse creates a new REVERSAL draft whose lines mirror the original
// (debits and credits swapped). The reversal runs through the normal
// submission/approval pipeline; the original is flagged as reversed only once
// the reversal itself posts.
func (s *journalEntryService) Reverse(ctx context.Context, entryID string, version int64, reversalDate time.Time, actorID string) (*domain.JournalEntry, *domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	original, err := s.fetchForMutation(ctx, entryID, version)
	if err != nil {
		return nil, nil, err
	}
	if original.Status != domain.StatusPosted {
		return nil, nil, fmt.Errorf("%w: reverse requires status POSTED, have %s", apperrors.ErrInvalidState, original.Status)
	}
	if original.IsReversed {
		return nil, nil, fmt.Errorf("entry %s: %w", original.EntryNumber, apperrors.ErrAlreadyReversed)
	}

	if reversalDate.IsZero() {
		reversalDate = time.Now().UTC()
	}

	now := time.Now().UTC()
	reversal := domain.JournalEntry{
		EntryID:          uuid.NewString(),
		EntryDate:        reversalDate,
		Reference:        original.EntryNumber,
		Description:      fmt.Sprintf("Reversal of %s", original.EntryNumber),
		EntryType:        domain.TypeReversal,
		Status:           domain.StatusDraft,
		ReversesEntryID:  &original.EntryID,
		RequiresApproval: s.requiresApprovalFor(domain.TypeReversal, original.TotalCredit),
		CurrencyCode:     original.CurrencyCode,
		ExchangeRate:     original.ExchangeRate,
		Version:          1,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}

	reversal.Lines = make([]domain.EntryLine, len(original.Lines))
	for i, origLine := range original.Lines {
		reversal.Lines[i] = domain.EntryLine{
			LineID:       uuid.NewString(),
			EntryID:      reversal.EntryID,
			AccountID:    origLine.AccountID,
			AccountCode:  origLine.AccountCode,
			AccountName:  origLine.AccountName,
			DebitAmount:  origLine.CreditAmount,
			CreditAmount: origLine.DebitAmount,
			Description:  origLine.Description,
			CurrencyCode: origLine.CurrencyCode,
			ExchangeRate: origLine.ExchangeRate,
			Position:     origLine.Position,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     actorID,
				LastUpdatedAt: now,
				LastUpdatedBy: actorID,
			},
		}
	}

	precision, err := s.precisionFor(ctx, reversal.CurrencyCode)
	if err != nil {
		return nil, nil, err
	}
	if err := s.recomputeTotals(&reversal, precision); err != nil {
		return nil, nil, err
	}

	year := reversalDate.Year()
	sequence, err := s.sequenceRepo.NextSequence(ctx, year)
	if err != nil {
		logger.Error("Failed to allocate reversal entry number", slog.Int("year", year), slog.String("error", err.Error()))
		return nil, nil, fmt.Errorf("failed to allocate entry number: %w", err)
	}
	reversal.EntryNumber = FormatEntryNumber(year, sequence)

	if err := s.entryRepo.SaveEntry(ctx, reversal); err != nil {
		logger.Error("Failed to save reversal entry", slog.String("entry_number", reversal.EntryNumber), slog.String("error", err.Error()))
		return nil, nil, fmt.Errorf("failed to save reversal entry: %w", err)
	}

	logger.Info("Reversal entry created",
		slog.String("original_entry", original.EntryNumber),
		slog.String("reversal_entry", reversal.EntryNumber))
	return original, &reversal, nil
}

// Cancel soft-deletes an entry. CANCELLED is terminal; posted entries cannot
// be cancelled, only reversed.
func (s *journalEntryService) Cancel(ctx context.Context, entryID string, version int64, actorID string) (*domain.JournalEntry, error) {
	entry, err := s.fetchForMutation(ctx, entryID, version)
	if err != nil {
		return nil, err
	}
	if !entry.Status.CanTransitionTo(domain.StatusCancelled) {
		return nil, fmt.Errorf("%w: cannot cancel entry in status %s", apperrors.ErrInvalidState, entry.Status)
	}

	entry.Status = domain.StatusCancelled
	if err := s.saveMutation(ctx, entry, version, actorID); err != nil {
		return nil, err
	}
	return entry, nil
}

// GetEntryByID retrieves an entry with its lines.
func (s *journalEntryService) GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	entry, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			middleware.GetLoggerFromCtx(ctx).Error("Failed to find entry", slog.String("entry_id", entryID), slog.String("error", err.Error()))
		}
		return nil, err
	}
	return entry, nil
}

// ListEntries retrieves a filtered, token-paginated list of entries.
// Filtering semantics live in the repository; every returned entry satisfies
// the engine's invariants.
func (s *journalEntryService) ListEntries(ctx context.Context, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	filter := portsrepo.EntryFilter{
		Status:    domain.EntryStatus(params.Status),
		EntryType: domain.EntryType(params.EntryType),
		From:      params.From,
		To:        params.To,
		Search:    params.Search,
	}

	entries, nextToken, err := s.entryRepo.ListEntries(ctx, filter, limit, params.NextToken)
	if err != nil {
		logger.Error("Failed to list entries", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to retrieve entries: %w", err)
	}

	responses := make([]dto.JournalEntryResponse, len(entries))
	for i := range entries {
		responses[i] = dto.ToJournalEntryResponse(&entries[i])
	}

	return &dto.ListEntriesResponse{Entries: responses, NextToken: nextToken}, nil
}
