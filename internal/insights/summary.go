// Package insights computes dashboard aggregations over a user's
// transaction history.
package insights

import (
	"sort"
	"time"

	"fintrack/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecentLimit is the number of transactions shown on the dashboard
const RecentLimit = 5

// CategoryStats aggregates the transactions recorded against one category
type CategoryStats struct {
	CategoryID uuid.UUID       `json:"categoryId"`
	Count      int             `json:"count"`
	Total      decimal.Decimal `json:"total"`
}

// Summary is the dashboard view of a user's transactions
type Summary struct {
	Balance        decimal.Decimal      `json:"balance"`
	MonthlyIncome  decimal.Decimal      `json:"monthlyIncome"`
	MonthlyExpense decimal.Decimal      `json:"monthlyExpense"`
	ByCategory     []CategoryStats      `json:"byCategory"`
	Recent         []models.Transaction `json:"recent"`
}

// Summarize builds the dashboard summary for a set of transactions.
//
// The balance covers the full history; monthly income and expense cover
// the calendar month of the reference time in its location. Recent holds
// the latest transactions by date, newest first.
func Summarize(transactions []models.Transaction, reference time.Time) *Summary {
	summary := &Summary{
		Balance:        decimal.Zero,
		MonthlyIncome:  decimal.Zero,
		MonthlyExpense: decimal.Zero,
	}

	refYear, refMonth, _ := reference.Date()
	statsByCategory := make(map[uuid.UUID]*CategoryStats)

	for i := range transactions {
		t := &transactions[i]

		summary.Balance = summary.Balance.Add(t.SignedAmount())

		year, month, _ := t.Date.In(reference.Location()).Date()
		if year == refYear && month == refMonth {
			if t.IsCredit() {
				summary.MonthlyIncome = summary.MonthlyIncome.Add(t.Amount)
			} else {
				summary.MonthlyExpense = summary.MonthlyExpense.Add(t.Amount)
			}
		}

		stats, ok := statsByCategory[t.CategoryID]
		if !ok {
			stats = &CategoryStats{CategoryID: t.CategoryID, Total: decimal.Zero}
			statsByCategory[t.CategoryID] = stats
		}
		stats.Count++
		stats.Total = stats.Total.Add(t.Amount)
	}

	summary.ByCategory = make([]CategoryStats, 0, len(statsByCategory))
	for _, stats := range statsByCategory {
		summary.ByCategory = append(summary.ByCategory, *stats)
	}
	// Largest totals first, category ID as a stable tiebreaker
	sort.Slice(summary.ByCategory, func(i, j int) bool {
		a, b := summary.ByCategory[i], summary.ByCategory[j]
		if !a.Total.Equal(b.Total) {
			return a.Total.GreaterThan(b.Total)
		}
		return a.CategoryID.String() < b.CategoryID.String()
	})

	summary.Recent = recentTransactions(transactions, RecentLimit)

	return summary
}

func recentTransactions(transactions []models.Transaction, limit int) []models.Transaction {
	recent := make([]models.Transaction, len(transactions))
	copy(recent, transactions)

	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].Date.After(recent[j].Date)
	})

	if len(recent) > limit {
		recent = recent[:limit]
	}
	return recent
}
