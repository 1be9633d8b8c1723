package filter

import (
	"slices"
	"strings"

	"github.com/GustavoCaso/spendwise/internal/expense"
)

// All is the category sentinel matching every category.
const All = "All"

// Criteria narrows the on-screen expense list. Empty strings mean
// "not set"; dates are inclusive YYYY-MM-DD bounds.
type Criteria struct {
	Search   string
	Category string
	DateFrom string
	DateTo   string
}

// DefaultCriteria matches everything.
func DefaultCriteria() Criteria {
	return Criteria{Category: All}
}

func (c Criteria) Match(ex expense.Expense) bool {
	if c.Search != "" && !strings.Contains(strings.ToLower(ex.Description), strings.ToLower(c.Search)) {
		return false
	}
	if c.Category != All && c.Category != "" && expense.Category(c.Category) != ex.Category {
		return false
	}
	return inRange(ex.Date, c.DateFrom, c.DateTo)
}

// Apply returns the expenses matching every predicate of c, in input order.
func Apply(expenses []expense.Expense, c Criteria) []expense.Expense {
	result := make([]expense.Expense, 0, len(expenses))
	for _, ex := range expenses {
		if c.Match(ex) {
			result = append(result, ex)
		}
	}
	return result
}

// ExportOptions scopes an export. An empty Categories list places no
// restriction on category.
type ExportOptions struct {
	DateFrom   string
	DateTo     string
	Categories []expense.Category
}

func (o ExportOptions) Match(ex expense.Expense) bool {
	if len(o.Categories) > 0 && !slices.Contains(o.Categories, ex.Category) {
		return false
	}
	return inRange(ex.Date, o.DateFrom, o.DateTo)
}

// ForExport returns the expenses selected by o, in input order.
func ForExport(expenses []expense.Expense, o ExportOptions) []expense.Expense {
	result := make([]expense.Expense, 0, len(expenses))
	for _, ex := range expenses {
		if o.Match(ex) {
			result = append(result, ex)
		}
	}
	return result
}

// ISO dates are fixed width so string comparison orders them correctly.
func inRange(date, from, to string) bool {
	if from != "" && date < from {
		return false
	}
	if to != "" && date > to {
		return false
	}
	return true
}
