package list

import (
	"context"
	"flag"
	"fmt"

	"github.com/GustavoCaso/spendwise/internal/cli"
	"github.com/GustavoCaso/spendwise/internal/filter"
	"github.com/GustavoCaso/spendwise/internal/stats"
	"github.com/GustavoCaso/spendwise/internal/util"
)

type listCommand struct {
	search   string
	category string
	from     string
	to       string
}

func NewCommand() cli.Command {
	return &listCommand{}
}

func (c *listCommand) Description() string {
	return "List expenses, optionally filtered"
}

func (c *listCommand) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.search, "s", "", "only expenses whose description contains this text")
	fs.StringVar(&c.category, "category", filter.All, "category to show, or All")
	fs.StringVar(&c.from, "from", "", "earliest date (YYYY-MM-DD)")
	fs.StringVar(&c.to, "to", "", "latest date (YYYY-MM-DD)")
}

func (c *listCommand) Run(_ context.Context, app *cli.App) error {
	criteria, err := filter.ParseCriteria(c.search, c.category, c.from, c.to)
	if err != nil {
		return err
	}

	expenses := filter.Apply(app.Store.List(), criteria)
	if len(expenses) == 0 {
		fmt.Fprintln(app.Out, "No expenses found")
		return nil
	}

	for _, ex := range expenses {
		fmt.Fprintln(app.Out, cli.ExpenseLine(ex))
	}

	summary := stats.Compute(expenses, app.Now())
	noun := "expenses"
	if summary.Count == 1 {
		noun = "expense"
	}
	fmt.Fprintf(app.Out, "\n%d %s · Total %s\n",
		summary.Count,
		noun,
		util.ColorOutput(util.FormatCurrency(summary.Total), "bold"),
	)
	return nil
}
