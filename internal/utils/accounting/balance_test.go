package accounting_test

import (
	"testing"

	"github.com/bizledger/journal_entry_app/internal/apperrors"
	"github.com/bizledger/journal_entry_app/internal/core/domain"
	"github.com/bizledger/journal_entry_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func line(debit, credit string) domain.EntryLine {
	return domain.EntryLine{
		AccountID:    "acc-1",
		DebitAmount:  decimal.RequireFromString(debit),
		CreditAmount: decimal.RequireFromString(credit),
		CurrencyCode: "USD",
		ExchangeRate: decimal.NewFromInt(1),
	}
}

func TestValidateLine(t *testing.T) {
	testCases := []struct {
		name    string
		line    domain.EntryLine
		wantErr bool
	}{
		{"valid debit", line("100", "0"), false},
		{"valid credit", line("0", "100"), false},
		{"both sides", line("100", "100"), true},
		{"neither side", line("0", "0"), true},
		{"negative debit", line("-5", "0"), true},
		{"negative credit", line("0", "-5"), true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := accounting.ValidateLine(tc.line)
			if tc.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, apperrors.ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}

	t.Run("missing account", func(t *testing.T) {
		l := line("100", "0")
		l.AccountID = ""
		assert.ErrorIs(t, accounting.ValidateLine(l), apperrors.ErrValidation)
	})

	t.Run("zero exchange rate", func(t *testing.T) {
		l := line("100", "0")
		l.ExchangeRate = decimal.Zero
		assert.ErrorIs(t, accounting.ValidateLine(l), apperrors.ErrValidation)
	})
}

func TestBaseAmount_RoundsHalfEven(t *testing.T) {
	// Banker's rounding at two decimal places: ties go to the even neighbour.
	testCases := []struct {
		amount string
		rate   string
		want   string
	}{
		{"10.125", "1", "10.12"},
		{"10.135", "1", "10.14"},
		{"10.145", "1", "10.14"},
		{"2.675", "1", "2.68"},
		{"100", "0.8567", "85.67"},
	}

	for _, tc := range testCases {
		got, err := accounting.BaseAmount(
			decimal.RequireFromString(tc.amount),
			decimal.RequireFromString(tc.rate),
			2,
		)
		require.NoError(t, err, "amount %s rate %s", tc.amount, tc.rate)
		assert.True(t, got.Equal(decimal.RequireFromString(tc.want)),
			"amount %s rate %s: got %s, want %s", tc.amount, tc.rate, got, tc.want)
	}
}

func TestBaseAmount_ZeroPrecisionCurrency(t *testing.T) {
	got, err := accounting.BaseAmount(decimal.RequireFromString("100.5"), decimal.NewFromInt(1), 0)
	require.NoError(t, err)
	// 100.5 rounds half-even to 100 at zero decimal places.
	assert.True(t, got.Equal(decimal.NewFromInt(100)), "got %s", got)
}

func TestBaseAmount_RemainderWithinMinorUnitAccepted(t *testing.T) {
	// 100 * 0.333333 = 33.3333; remainder after rounding is 0.0067 < 0.01, fine.
	_, err := accounting.BaseAmount(decimal.NewFromInt(100), decimal.RequireFromString("0.333333"), 2)
	assert.NoError(t, err)

	// At zero precision the same conversion leaves 0.33 on the floor, which
	// is within one whole minor unit and still accepted.
	_, err = accounting.BaseAmount(decimal.NewFromInt(100), decimal.RequireFromString("0.333333"), 0)
	assert.NoError(t, err)
}

func TestComputeTotals(t *testing.T) {
	lines := []domain.EntryLine{
		line("100.50", "0"),
		line("49.50", "0"),
		line("0", "150"),
	}

	totalDebit, totalCredit, err := accounting.ComputeTotals(lines, 2)
	require.NoError(t, err)
	assert.True(t, totalDebit.Equal(decimal.RequireFromString("150")), "debit %s", totalDebit)
	assert.True(t, totalCredit.Equal(decimal.RequireFromString("150")), "credit %s", totalCredit)
	assert.True(t, accounting.IsBalanced(totalDebit, totalCredit))
}

func TestComputeTotals_OrderIndependent(t *testing.T) {
	forward := []domain.EntryLine{line("10.11", "0"), line("20.22", "0"), line("0", "30.33")}
	backward := []domain.EntryLine{line("0", "30.33"), line("20.22", "0"), line("10.11", "0")}

	d1, c1, err := accounting.ComputeTotals(forward, 2)
	require.NoError(t, err)
	d2, c2, err := accounting.ComputeTotals(backward, 2)
	require.NoError(t, err)

	assert.True(t, d1.Equal(d2))
	assert.True(t, c1.Equal(c2))
}

func TestComputeTotals_ForeignLines(t *testing.T) {
	foreign := line("100", "0")
	foreign.CurrencyCode = "EUR"
	foreign.ExchangeRate = decimal.RequireFromString("1.0857")

	lines := []domain.EntryLine{foreign, line("0", "108.57")}

	totalDebit, totalCredit, err := accounting.ComputeTotals(lines, 2)
	require.NoError(t, err)
	assert.True(t, totalDebit.Equal(decimal.RequireFromString("108.57")), "debit %s", totalDebit)
	assert.True(t, accounting.IsBalanced(totalDebit, totalCredit))
}

func TestComputeTotals_InvalidLineFails(t *testing.T) {
	lines := []domain.EntryLine{line("100", "0"), line("50", "50")}
	_, _, err := accounting.ComputeTotals(lines, 2)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestIsBalanced_OffByOneMinorUnit(t *testing.T) {
	assert.False(t, accounting.IsBalanced(
		decimal.RequireFromString("100.00"),
		decimal.RequireFromString("100.01"),
	))
}
