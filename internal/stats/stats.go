package stats

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/GustavoCaso/spendwise/internal/expense"
	"github.com/GustavoCaso/spendwise/internal/util"
)

const recentLimit = 5

// Stats are aggregate figures over the whole collection.
type Stats struct {
	Total      float64
	Monthly    float64
	ByCategory map[expense.Category]float64
	// TopCategory is empty when there are no expenses.
	TopCategory expense.Category
	Count       int
}

// Category is a display row for a single category.
type Category struct {
	Name              expense.Category
	Amount            float64
	Count             int
	PercentageOfTotal float64
	LastTransaction   string
}

// Compute aggregates expenses. Monthly covers the calendar month of now.
// Ties for TopCategory go to the category declared first.
func Compute(expenses []expense.Expense, now time.Time) Stats {
	from, to := util.MonthBounds(now)

	total := decimal.Zero
	monthly := decimal.Zero
	byCategory := map[expense.Category]decimal.Decimal{}

	for _, ex := range expenses {
		amount := ex.Decimal()
		total = total.Add(amount)
		if ex.Date >= from && ex.Date <= to {
			monthly = monthly.Add(amount)
		}
		byCategory[ex.Category] = byCategory[ex.Category].Add(amount)
	}

	s := Stats{
		Total:      total.InexactFloat64(),
		Monthly:    monthly.InexactFloat64(),
		ByCategory: make(map[expense.Category]float64, len(byCategory)),
		Count:      len(expenses),
	}

	for cat, sum := range byCategory {
		s.ByCategory[cat] = sum.InexactFloat64()
	}

	var top decimal.Decimal
	for _, cat := range expense.Categories() {
		sum, ok := byCategory[cat]
		if !ok {
			continue
		}
		if s.TopCategory == "" || sum.GreaterThan(top) {
			s.TopCategory = cat
			top = sum
		}
	}

	return s
}

// Recent returns the first five expenses of the collection as ordered.
func Recent(expenses []expense.Expense) []expense.Expense {
	if len(expenses) <= recentLimit {
		return expenses
	}
	return expenses[:recentLimit]
}

// Breakdown returns one row per category in declaration order, zero-filled
// for categories without expenses.
func Breakdown(expenses []expense.Expense) []Category {
	rows := make([]Category, 0, len(expense.Categories()))
	sums := map[expense.Category]decimal.Decimal{}
	total := decimal.Zero

	for _, cat := range expense.Categories() {
		rows = append(rows, Category{Name: cat})
	}

	for _, ex := range expenses {
		i := ex.Category.Index()
		if i < 0 {
			continue
		}
		amount := ex.Decimal()
		sums[ex.Category] = sums[ex.Category].Add(amount)
		total = total.Add(amount)
		rows[i].Count++
		if ex.Date > rows[i].LastTransaction {
			rows[i].LastTransaction = ex.Date
		}
	}

	totalCents := util.Cents(total.InexactFloat64())
	for i := range rows {
		rows[i].Amount = sums[rows[i].Name].InexactFloat64()
		// shares are taken over whole cents
		rows[i].PercentageOfTotal = util.Percentage(util.Cents(rows[i].Amount), totalCents)
	}

	return rows
}
