package add

import (
	"context"
	"flag"
	"fmt"

	"github.com/GustavoCaso/spendwise/internal/cli"
	"github.com/GustavoCaso/spendwise/internal/expense"
	"github.com/GustavoCaso/spendwise/internal/util"
)

type addCommand struct {
	form cli.FormFlags
}

func NewCommand() cli.Command {
	return &addCommand{}
}

func (c *addCommand) Description() string {
	return "Record a new expense"
}

func (c *addCommand) SetFlags(fs *flag.FlagSet) {
	c.form.Register(fs)
}

func (c *addCommand) Run(ctx context.Context, app *cli.App) error {
	now := app.Now()

	data, err := c.form.Merge(expense.FormData{Date: now.Format(expense.DateLayout)})
	if err != nil {
		return err
	}

	if err = cli.ValidationErrors(data.Validate(now)); err != nil {
		return err
	}

	ex, err := app.Store.Add(ctx, data)
	if err != nil {
		return fmt.Errorf("unable to add expense: %w", err)
	}

	fmt.Fprintf(app.Out, "%s %s\n", util.ColorOutput("Added", "green", "bold"), cli.ExpenseLine(ex))
	return nil
}
