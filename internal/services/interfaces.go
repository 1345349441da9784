package services

import (
	"time"

	"pocketledger/internal/models"
)

// CategoryRegistrar defines the contract for the category registry: the set of
// known categories, their styles, and the two-level subcategory hierarchy.
// No operation rejects input; malformed names degrade to fallback values.
type CategoryRegistrar interface {
	// Normalize resolves a raw category name to its canonical key without
	// registering anything.
	Normalize(raw string) string
	// RegisterCategory inserts name as a new custom category. No-op when the
	// exact key already exists.
	RegisterCategory(name string) error
	// RegisterSubcategory appends sub to category's subcategory list and
	// returns the canonical entry. Blank names and case-insensitive
	// duplicates are no-ops that return the existing entry.
	RegisterSubcategory(category, sub string) (string, error)
	// DeleteSubcategory removes the exact-match entry; no-op when absent.
	// Transactions referencing the deleted subcategory are left untouched.
	DeleteSubcategory(category, sub string) error
	AvailableCategories() []string
	Styles() map[string]models.CategoryStyle
	StyleFor(name string) models.CategoryStyle
	Hierarchy() map[string][]string
}

// TransactionStorer defines the contract for the transaction store. Add
// prepends; Update and Delete are silent no-ops when the id does not match.
// Every mutation persists the full set.
type TransactionStorer interface {
	Add(tx models.Transaction) error
	Update(tx models.Transaction) error
	Delete(id string) error
	All() []models.Transaction
}

// Reconciler commits candidate transactions, normalizing and auto-registering
// their category and subcategory on the way in.
type Reconciler interface {
	Record(candidate models.Transaction) (models.Transaction, error)
	Amend(candidate models.Transaction) (models.Transaction, error)
}

// PeriodServicer holds the selected year+month cursor.
type PeriodServicer interface {
	Current() (int, time.Month)
	ChangeMonth(offset int)
}

// BreakdownEntry is one category's share of the period's expenses.
type BreakdownEntry struct {
	Name       string  `json:"name"`
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
	ColorClass string  `json:"color_class"`
	ColorHex   string  `json:"color_hex"`
	IsCustom   bool    `json:"is_custom"`
}

// TrendPoint is one calendar day's expense total. HeightPercentage is the
// amount relative to the month's busiest day, for bar rendering.
type TrendPoint struct {
	Day              int     `json:"day"`
	Amount           float64 `json:"amount"`
	HeightPercentage float64 `json:"height_percentage"`
}

// AnalyticsServicer recomputes derived views from the store, the registry,
// and the period cursor on every read. It never fails; transactions with
// unparseable dates are simply excluded.
type AnalyticsServicer interface {
	FilteredTransactions() []models.Transaction
	Summary() models.ExpenseSummary
	CategoryBreakdown() []BreakdownEntry
	DailyTrend() []TrendPoint
}
