package update

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strconv"

	"github.com/GustavoCaso/spendwise/internal/cli"
	"github.com/GustavoCaso/spendwise/internal/expense"
	"github.com/GustavoCaso/spendwise/internal/util"
)

type updateCommand struct {
	id   string
	form cli.FormFlags
}

func NewCommand() cli.Command {
	return &updateCommand{}
}

func (c *updateCommand) Description() string {
	return "Edit an existing expense"
}

func (c *updateCommand) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.id, "id", "", "id of the expense to edit")
	c.form.Register(fs)
}

func (c *updateCommand) Run(ctx context.Context, app *cli.App) error {
	if c.id == "" {
		return errors.New("you must provide the id of the expense to edit")
	}

	current, err := app.Store.Get(c.id)
	if err != nil {
		return err
	}

	data, err := c.form.Merge(expense.FormData{
		Date:        current.Date,
		Amount:      strconv.FormatFloat(current.Amount, 'f', -1, 64),
		Category:    current.Category,
		Description: current.Description,
	})
	if err != nil {
		return err
	}

	if err = cli.ValidationErrors(data.Validate(app.Now())); err != nil {
		return err
	}

	if err = app.Store.Update(ctx, c.id, data); err != nil {
		return fmt.Errorf("unable to update expense: %w", err)
	}

	updated, err := app.Store.Get(c.id)
	if err != nil {
		return err
	}
	fmt.Fprintf(app.Out, "%s %s\n", util.ColorOutput("Updated", "green", "bold"), cli.ExpenseLine(updated))
	return nil
}
