package services

import (
	"context"

	"github.com/bizledger/journal_entry_app/internal/core/domain"
)

// CurrencySvcFacade exposes currency reference data to handlers and to the
// entry engine, which needs the minor-unit precision for balance rounding.
type CurrencySvcFacade interface {
	// GetCurrencyByCode retrieves a currency by its ISO code.
	GetCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error)

	// ListCurrencies retrieves all supported currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}
