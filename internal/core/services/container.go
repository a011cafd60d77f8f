package services

import (
	portsrepo "github.com/bizledger/journal_entry_app/internal/core/ports/repositories"
	portssvc "github.com/bizledger/journal_entry_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// NewServiceContainer wires the repositories into the application services.
func NewServiceContainer(
	entryRepo portsrepo.JournalEntryRepositoryFacade,
	sequenceRepo portsrepo.SequenceRepository,
	currencyRepo portsrepo.CurrencyRepository,
	approvalThreshold decimal.Decimal,
) *portssvc.ServiceContainer {
	currencySvc := NewCurrencyService(currencyRepo)
	return &portssvc.ServiceContainer{
		JournalEntry: NewJournalEntryService(entryRepo, sequenceRepo, currencySvc, approvalThreshold),
		Currency:     currencySvc,
	}
}
