package services

import (
	"math"
	"regexp"
	"sort"
	"time"

	"pocketledger/internal/models"
)

// analyticsService derives the period views. It holds no state of its own;
// every read recomputes from the store, the registry, and the period cursor.
type analyticsService struct {
	store    TransactionStorer
	registry CategoryRegistrar
	period   PeriodServicer
}

// NewAnalyticsService creates an AnalyticsServicer over the given components.
func NewAnalyticsService(store TransactionStorer, registry CategoryRegistrar, period PeriodServicer) AnalyticsServicer {
	return &analyticsService{store: store, registry: registry, period: period}
}

// FilteredTransactions returns the transactions whose date falls in the
// cursor's month, sorted by date descending. The stable sort keeps store
// order (newest add first) for same-date records.
func (s *analyticsService) FilteredTransactions() []models.Transaction {
	year, month := s.period.Current()
	return FilterByMonth(s.store.All(), year, month)
}

// FilterByMonth is the pure filtering/sorting core of FilteredTransactions.
// Records with unparseable dates are excluded, never an error.
func FilterByMonth(transactions []models.Transaction, year int, month time.Month) []models.Transaction {
	type dated struct {
		tx models.Transaction
		ts time.Time
	}

	var in []dated
	for _, tx := range transactions {
		ts, ok := models.ParseDate(tx.Date)
		if !ok {
			continue
		}
		if ts.Year() == year && ts.Month() == month {
			in = append(in, dated{tx: tx, ts: ts})
		}
	}

	sort.SliceStable(in, func(i, j int) bool {
		return in[i].ts.After(in[j].ts)
	})

	out := make([]models.Transaction, len(in))
	for i, d := range in {
		out[i] = d.tx
	}
	return out
}

// Summary reduces the filtered set into expense/income totals and balance.
func (s *analyticsService) Summary() models.ExpenseSummary {
	return Summarize(s.FilteredTransactions())
}

// Summarize computes the summary of the given transactions.
func Summarize(transactions []models.Transaction) models.ExpenseSummary {
	var summary models.ExpenseSummary
	for _, tx := range transactions {
		if tx.Type == models.TransactionTypeExpense {
			summary.TotalExpense += tx.Amount
			summary.Balance -= tx.Amount
		} else {
			summary.TotalIncome += tx.Amount
			summary.Balance += tx.Amount
		}
	}
	return summary
}

// CategoryBreakdown groups the period's expenses by category, sorted by
// summed amount descending. Percentages are of the period's total expense;
// an expense-free period yields an empty slice.
func (s *analyticsService) CategoryBreakdown() []BreakdownEntry {
	var total float64
	sums := make(map[string]float64)
	var order []string

	for _, tx := range s.FilteredTransactions() {
		if tx.Type != models.TransactionTypeExpense {
			continue
		}
		amount := math.Abs(tx.Amount)
		if _, seen := sums[tx.Category]; !seen {
			order = append(order, tx.Category)
		}
		sums[tx.Category] += amount
		total += amount
	}

	entries := make([]BreakdownEntry, 0, len(order))
	for _, name := range order {
		amount := sums[name]
		pct := 0.0
		if total > 0 {
			pct = amount / total * 100
		}
		style := s.registry.StyleFor(name)
		entries = append(entries, BreakdownEntry{
			Name:       name,
			Amount:     amount,
			Percentage: pct,
			ColorClass: style.ColorClass,
			ColorHex:   colorHexFor(style.ColorClass),
			IsCustom:   style.IsCustom,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Amount > entries[j].Amount
	})
	return entries
}

// DailyTrend returns one point per calendar day of the cursor's month, with
// each day's expense total and its height relative to the busiest day. The
// denominator is floored at 1 so an all-zero month divides cleanly.
func (s *analyticsService) DailyTrend() []TrendPoint {
	year, month := s.period.Current()
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()

	byDay := make(map[int]float64)
	for _, tx := range s.FilteredTransactions() {
		if tx.Type != models.TransactionTypeExpense {
			continue
		}
		ts, ok := models.ParseDate(tx.Date)
		if !ok {
			continue
		}
		byDay[ts.Day()] += math.Abs(tx.Amount)
	}

	maxAmount := 1.0
	for _, amount := range byDay {
		if amount > maxAmount {
			maxAmount = amount
		}
	}

	points := make([]TrendPoint, daysInMonth)
	for day := 1; day <= daysInMonth; day++ {
		points[day-1] = TrendPoint{
			Day:              day,
			Amount:           byDay[day],
			HeightPercentage: byDay[day] / maxAmount * 100,
		}
	}
	return points
}

// colorMap translates the utility-class color names to hex for chart
// rendering on the client.
var colorMap = map[string]string{
	"orange":  "#ea580c",
	"blue":    "#2563eb",
	"purple":  "#9333ea",
	"pink":    "#db2777",
	"teal":    "#0d9488",
	"rose":    "#e11d48",
	"cyan":    "#0891b2",
	"emerald": "#059669",
	"indigo":  "#4f46e5",
	"violet":  "#7c3aed",
	"fuchsia": "#c026d3",
	"lime":    "#65a30d",
	"amber":   "#d97706",
	"gray":    "#4b5563",
}

var colorClassRegex = regexp.MustCompile(`text-([a-z]+)-600`)

func colorHexFor(colorClass string) string {
	if m := colorClassRegex.FindStringSubmatch(colorClass); m != nil {
		if hex, ok := colorMap[m[1]]; ok {
			return hex
		}
	}
	return colorMap["gray"]
}
