package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bizledger/journal_entry_app/internal/apperrors"
	"github.com/bizledger/journal_entry_app/internal/core/domain"
	portsrepo "github.com/bizledger/journal_entry_app/internal/core/ports/repositories"
	portssvc "github.com/bizledger/journal_entry_app/internal/core/ports/services"
	"github.com/bizledger/journal_entry_app/internal/middleware"
)

// currencyService serves currency reference data.
type currencyService struct {
	currencyRepo portsrepo.CurrencyRepository
}

// NewCurrencyService creates a new CurrencyService.
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepository) portssvc.CurrencySvcFacade {
	return &currencyService{currencyRepo: currencyRepo}
}

var _ portssvc.CurrencySvcFacade = (*currencyService)(nil)

// GetCurrencyByCode retrieves a currency by its ISO code.
func (s *currencyService) GetCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, fmt.Errorf("%w: currency code is required", apperrors.ErrValidation)
	}

	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, code)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			middleware.GetLoggerFromCtx(ctx).Error("Failed to find currency", slog.String("code", code), slog.String("error", err.Error()))
		}
		return nil, err
	}
	return currency, nil
}

// ListCurrencies retrieves all supported currencies.
func (s *currencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to list currencies", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to retrieve currencies: %w", err)
	}
	return currencies, nil
}
