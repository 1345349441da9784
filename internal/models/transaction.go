package models

import "time"

// TransactionType represents the direction of a transaction.
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "Expense"
	TransactionTypeIncome  TransactionType = "Income"
)

// Valid reports whether t is one of the supported transaction types.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeExpense || t == TransactionTypeIncome
}

// Transaction records one financial event. Category always holds the canonical
// registry key by the time a transaction is committed; Subcategory, when set,
// appears in that category's subcategory list. Date is kept as the ISO-8601
// string the caller or the assistant produced; consumers parse it tolerantly
// and skip records whose date cannot be parsed.
type Transaction struct {
	ID          string          `json:"id"`
	Amount      float64         `json:"amount"`
	Category    string          `json:"category"`
	Subcategory string          `json:"subcategory,omitempty"`
	Note        string          `json:"note"`
	Date        string          `json:"date"`
	Type        TransactionType `json:"type"`
}

// dateLayouts are tried in order when parsing transaction dates. The assistant
// occasionally omits the timezone or the time component entirely.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseDate parses an ISO-8601-ish date string in local time.
// The boolean is false when the string matches none of the accepted layouts.
func ParseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if ts, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// ExpenseSummary aggregates the filtered transaction set for one period.
type ExpenseSummary struct {
	TotalExpense float64 `json:"total_expense"`
	TotalIncome  float64 `json:"total_income"`
	Balance      float64 `json:"balance"`
}
