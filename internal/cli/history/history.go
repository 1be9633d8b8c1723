package history

import (
	"context"
	"flag"
	"fmt"

	"github.com/GustavoCaso/spendwise/internal/cli"
	"github.com/GustavoCaso/spendwise/internal/export"
	"github.com/GustavoCaso/spendwise/internal/util"
)

type historyCommand struct {
	clear bool
	limit int
}

func NewCommand() cli.Command {
	return &historyCommand{}
}

func (c *historyCommand) Description() string {
	return "Show or clear the export history"
}

func (c *historyCommand) SetFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.clear, "clear", false, "remove every history record")
	fs.IntVar(&c.limit, "n", 10, "number of records to show")
}

func (c *historyCommand) Run(ctx context.Context, app *cli.App) error {
	if c.clear {
		if err := app.History.Clear(ctx); err != nil {
			return err
		}
		fmt.Fprintln(app.Out, "Export history cleared")
		return nil
	}

	records := app.History.List()
	if len(records) == 0 {
		fmt.Fprintln(app.Out, "No exports yet")
		return nil
	}

	if c.limit > 0 && len(records) > c.limit {
		records = records[:c.limit]
	}

	for _, r := range records {
		status := util.ColorOutput(string(r.Status), statusColor(r.Status))
		fmt.Fprintf(app.Out, "%s  %-5s %-14s %-20s %-10s %4d records  %s\n",
			r.Timestamp.Local().Format("2006-01-02 15:04"),
			r.Format,
			r.Destination.Name(),
			export.TemplateName(r.Template),
			status,
			r.ExpenseCount,
			r.FileSize,
		)
		if r.ShareLink != "" {
			fmt.Fprintf(app.Out, "    %s\n", util.ColorOutput(r.ShareLink, "underline"))
		}
	}
	return nil
}

func statusColor(s export.Status) string {
	switch s {
	case export.StatusCompleted:
		return "green"
	case export.StatusPending:
		return "yellow"
	case export.StatusFailed:
		return "red"
	}
	return ""
}
