package export

import (
	"fmt"

	"github.com/GustavoCaso/spendwise/internal/expense"
)

func sampleExpenses() []expense.Expense {
	return []expense.Expense{
		{ID: "1", Date: "2024-03-20", Amount: 42.5, Category: expense.Food, Description: "Lunch", CreatedAt: "2024-03-20T12:00:00Z"},
		{ID: "2", Date: "2024-03-12", Amount: 120, Category: expense.Bills, Description: "Electricity, March", CreatedAt: "2024-03-12T09:00:00Z"},
		{ID: "3", Date: "2024-02-28", Amount: 15.25, Category: expense.Transportation, Description: `He said "hi"`, CreatedAt: "2024-02-28T18:30:00Z"},
		{ID: "4", Date: "2024-01-05", Amount: 60, Category: expense.Bills, Description: "Internet", CreatedAt: "2024-01-05T07:45:00Z"},
	}
}

func manyExpenses(n int) []expense.Expense {
	out := make([]expense.Expense, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, expense.Expense{
			ID:          fmt.Sprintf("id-%d", i),
			Date:        fmt.Sprintf("2024-01-%02d", i%28+1),
			Amount:      float64(i + 1),
			Category:    expense.Categories()[i%len(expense.Categories())],
			Description: fmt.Sprintf("Expense number %d", i),
			CreatedAt:   "2024-01-01T00:00:00Z",
		})
	}
	return out
}
