package domain

import "github.com/shopspring/decimal"

// EntryLine is a single debit or credit within a journal entry.
// Exactly one of DebitAmount/CreditAmount is positive; the other is zero.
// Account fields are references owned by the chart-of-accounts collaborator;
// only their presence is validated here.
type EntryLine struct {
	LineID       string          `json:"lineID"`  // Primary Key (UUID)
	EntryID      string          `json:"entryID"` // FK -> JournalEntry.entryID
	AccountID    string          `json:"accountID"`
	AccountCode  string          `json:"accountCode"`
	AccountName  string          `json:"accountName"`
	DebitAmount  decimal.Decimal `json:"debitAmount"`
	CreditAmount decimal.Decimal `json:"creditAmount"`
	Description  string          `json:"description"` // Optional line-level note
	CurrencyCode string          `json:"currencyCode"`
	ExchangeRate decimal.Decimal `json:"exchangeRate"` // Rate to the entry's base currency
	Position     int             `json:"position"`     // Insertion order; does not affect balance
	AuditFields
}

// IsDebit reports whether the line carries its amount on the debit side.
func (l EntryLine) IsDebit() bool {
	return l.DebitAmount.IsPositive()
}

// Amount returns whichever side of the line is populated.
func (l EntryLine) Amount() decimal.Decimal {
	if l.IsDebit() {
		return l.DebitAmount
	}
	return l.CreditAmount
}
