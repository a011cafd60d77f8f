package repositories

import (
	"context"

	"github.com/bizledger/journal_entry_app/internal/core/domain"
)

// CurrencyRepository defines read operations for currency reference data.
type CurrencyRepository interface {
	// FindCurrencyByCode retrieves a currency by its ISO code.
	FindCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error)

	// ListCurrencies retrieves all supported currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}
