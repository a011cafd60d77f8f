package accounting

import (
	"fmt"

	"github.com/bizledger/journal_entry_app/internal/apperrors"
	"github.com/bizledger/journal_entry_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ValidateLine checks the structural validity of a single entry line:
// both sides non-negative and exactly one of them positive.
func ValidateLine(line domain.EntryLine) error {
	if line.AccountID == "" {
		return fmt.Errorf("%w: line account reference is required", apperrors.ErrValidation)
	}
	if line.DebitAmount.IsNegative() || line.CreditAmount.IsNegative() {
		return fmt.Errorf("%w: line amounts must not be negative", apperrors.ErrValidation)
	}
	if line.DebitAmount.IsPositive() && line.CreditAmount.IsPositive() {
		return fmt.Errorf("%w: line cannot carry both a debit and a credit", apperrors.ErrValidation)
	}
	if line.DebitAmount.IsZero() && line.CreditAmount.IsZero() {
		return fmt.Errorf("%w: line must carry either a debit or a credit", apperrors.ErrValidation)
	}
	if line.ExchangeRate.Sign() <= 0 {
		return fmt.Errorf("%w: line exchange rate must be positive", apperrors.ErrValidation)
	}
	return nil
}

// BaseAmount converts a line amount to the entry's base currency using the
// line exchange rate, rounding half-even at the currency's minor-unit
// precision. A rounding remainder larger than one minor unit is rejected
// rather than silently absorbed.
func BaseAmount(amount, exchangeRate decimal.Decimal, precision int32) (decimal.Decimal, error) {
	raw := amount.Mul(exchangeRate)
	rounded := raw.RoundBank(precision)
	minorUnit := decimal.New(1, -precision)
	// RoundBank leaves at most half a minor unit of remainder; anything larger
	// means the conversion arithmetic itself went wrong, not a rounding tie.
	if raw.Sub(rounded).Abs().GreaterThan(minorUnit) {
		return decimal.Zero, fmt.Errorf("%w: conversion remainder %s exceeds one minor unit",
			apperrors.ErrValidation, raw.Sub(rounded).Abs().String())
	}
	return rounded, nil
}

// ComputeTotals sums the debit and credit sides of the given lines in the
// entry's base currency. The sums are commutative, so line order is irrelevant.
func ComputeTotals(lines []domain.EntryLine, precision int32) (totalDebit, totalCredit decimal.Decimal, err error) {
	totalDebit = decimal.Zero
	totalCredit = decimal.Zero
	for _, line := range lines {
		if err := ValidateLine(line); err != nil {
			return decimal.Zero, decimal.Zero, err
		}
		if line.IsDebit() {
			base, err := BaseAmount(line.DebitAmount, line.ExchangeRate, precision)
			if err != nil {
				return decimal.Zero, decimal.Zero, err
			}
			totalDebit = totalDebit.Add(base)
		} else {
			base, err := BaseAmount(line.CreditAmount, line.ExchangeRate, precision)
			if err != nil {
				return decimal.Zero, decimal.Zero, err
			}
			totalCredit = totalCredit.Add(base)
		}
	}
	return totalDebit, totalCredit, nil
}

// IsBalanced reports whether the debit and credit totals are exactly equal at
// minor-unit precision.
func IsBalanced(totalDebit, totalCredit decimal.Decimal) bool {
	return totalDebit.Equal(totalCredit)
}
