package statscmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/GustavoCaso/spendwise/internal/cli"
	"github.com/GustavoCaso/spendwise/internal/stats"
	"github.com/GustavoCaso/spendwise/internal/util"
)

type statsCommand struct {
	recent bool
}

func NewCommand() cli.Command {
	return &statsCommand{}
}

func (c *statsCommand) Description() string {
	return "Show spending statistics"
}

func (c *statsCommand) SetFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.recent, "recent", true, "show the most recent expenses")
}

func (c *statsCommand) Run(_ context.Context, app *cli.App) error {
	expenses := app.Store.List()
	s := stats.Compute(expenses, app.Now())

	top := "-"
	if s.TopCategory != "" {
		top = util.ColorOutput(string(s.TopCategory), s.TopCategory.Color())
	}

	fmt.Fprintf(app.Out, "%-14s %s\n", "Total", util.ColorOutput(util.FormatCurrency(s.Total), "bold"))
	fmt.Fprintf(app.Out, "%-14s %s\n", "This month", util.FormatCurrency(s.Monthly))
	fmt.Fprintf(app.Out, "%-14s %d\n", "Expenses", s.Count)
	fmt.Fprintf(app.Out, "%-14s %s\n", "Top category", top)

	fmt.Fprintln(app.Out)
	for _, row := range stats.Breakdown(expenses) {
		last := row.LastTransaction
		if last == "" {
			last = "-"
		}
		fmt.Fprintf(app.Out, "%-14s %12s %6.1f%% %4d  %s\n",
			util.ColorOutput(string(row.Name), row.Name.Color()),
			util.FormatCurrency(row.Amount),
			row.PercentageOfTotal,
			row.Count,
			last,
		)
	}

	if !c.recent || len(expenses) == 0 {
		return nil
	}

	fmt.Fprintf(app.Out, "\n%s\n", util.ColorOutput("Recent", "underline"))
	for _, ex := range stats.Recent(expenses) {
		fmt.Fprintln(app.Out, cli.ExpenseLine(ex))
	}
	return nil
}
