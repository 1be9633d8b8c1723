package cli

import (
	"flag"
	"strings"

	"github.com/GustavoCaso/spendwise/internal/expense"
)

// FormFlags are the expense fields shared by add and update.
type FormFlags struct {
	Date        string
	Amount      string
	Category    string
	Description string
}

func (f *FormFlags) Register(fs *flag.FlagSet) {
	fs.StringVar(&f.Date, "date", "", "expense date as YYYY-MM-DD")
	fs.StringVar(&f.Amount, "amount", "", "amount spent, e.g. 42.50")
	fs.StringVar(&f.Category, "category", "", "Food, Transportation, Entertainment, Shopping, Bills or Other")
	fs.StringVar(&f.Description, "description", "", "what the money was spent on")
}

// Merge overlays the flags that were given on base.
func (f FormFlags) Merge(base expense.FormData) (expense.FormData, error) {
	if f.Date != "" {
		base.Date = f.Date
	}
	if f.Amount != "" {
		base.Amount = f.Amount
	}
	if strings.TrimSpace(f.Category) != "" {
		c, err := expense.ParseCategory(f.Category)
		if err != nil {
			return base, err
		}
		base.Category = c
	}
	if f.Description != "" {
		base.Description = f.Description
	}
	return base, nil
}
