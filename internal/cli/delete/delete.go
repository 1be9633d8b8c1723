package deletecmd

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/GustavoCaso/spendwise/internal/cli"
	"github.com/GustavoCaso/spendwise/internal/util"
)

type deleteCommand struct {
	id string
}

func NewCommand() cli.Command {
	return &deleteCommand{}
}

func (c *deleteCommand) Description() string {
	return "Delete an expense"
}

func (c *deleteCommand) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.id, "id", "", "id of the expense to delete")
}

func (c *deleteCommand) Run(ctx context.Context, app *cli.App) error {
	if c.id == "" {
		return errors.New("you must provide the id of the expense to delete")
	}

	if err := app.Store.Delete(ctx, c.id); err != nil {
		return fmt.Errorf("unable to delete expense: %w", err)
	}

	fmt.Fprintf(app.Out, "%s %s\n", util.ColorOutput("Deleted", "red", "bold"), c.id)
	return nil
}
