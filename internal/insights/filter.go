package insights

import (
	"strings"
	"time"

	"fintrack/internal/models"

	"github.com/google/uuid"
)

// PageSize is the fixed number of transactions per page
const PageSize = 10

// Filter narrows a transaction list. Zero values mean "no restriction":
// an empty Search matches everything, an empty Type matches both credit
// and debit, a nil CategoryID matches every category, and a zero
// Month/Year pair disables the date restriction.
type Filter struct {
	Search     string
	Type       string
	CategoryID uuid.UUID
	Month      time.Month
	Year       int
}

// Apply returns the transactions matching every active restriction,
// preserving the input order.
func (f Filter) Apply(transactions []models.Transaction) []models.Transaction {
	matched := make([]models.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if f.matches(&t) {
			matched = append(matched, t)
		}
	}
	return matched
}

func (f Filter) matches(t *models.Transaction) bool {
	if f.Search != "" &&
		!strings.Contains(strings.ToLower(t.Description), strings.ToLower(f.Search)) {
		return false
	}

	if f.Type != "" && t.Type != f.Type {
		return false
	}

	if f.CategoryID != uuid.Nil && t.CategoryID != f.CategoryID {
		return false
	}

	if f.Year != 0 || f.Month != 0 {
		year, month, _ := t.Date.Date()
		if f.Year != 0 && year != f.Year {
			return false
		}
		if f.Month != 0 && month != f.Month {
			return false
		}
	}

	return true
}

// Page is one page of a filtered transaction list
type Page struct {
	Items      []models.Transaction `json:"items"`
	Page       int                  `json:"page"`
	TotalPages int                  `json:"totalPages"`
	TotalItems int                  `json:"totalItems"`
}

// Paginate slices a transaction list into a fixed-size page. Page numbers
// start at 1; out-of-range requests are clamped rather than rejected, so
// page 0 yields the first page and anything past the end yields the last.
// An empty list reports zero total pages and serves page 1 empty.
func Paginate(transactions []models.Transaction, page int) Page {
	totalItems := len(transactions)
	totalPages := (totalItems + PageSize - 1) / PageSize

	lastPage := totalPages
	if lastPage < 1 {
		lastPage = 1
	}
	if page < 1 {
		page = 1
	}
	if page > lastPage {
		page = lastPage
	}

	start := (page - 1) * PageSize
	end := start + PageSize
	if start > totalItems {
		start = totalItems
	}
	if end > totalItems {
		end = totalItems
	}

	return Page{
		Items:      transactions[start:end],
		Page:       page,
		TotalPages: totalPages,
		TotalItems: totalItems,
	}
}
