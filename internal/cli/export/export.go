package exportcmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/GustavoCaso/spendwise/internal/cli"
	"github.com/GustavoCaso/spendwise/internal/export"
	"github.com/GustavoCaso/spendwise/internal/filter"
	"github.com/GustavoCaso/spendwise/internal/util"
)

type exportCommand struct {
	formats      string
	name         string
	from         string
	to           string
	categories   string
	template     string
	destinations string
	share        bool
	schedule     string
	templates    bool
}

func NewCommand() cli.Command {
	return &exportCommand{}
}

func (c *exportCommand) Description() string {
	return "Export expenses as CSV, JSON, PDF or XLSX"
}

func (c *exportCommand) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.formats, "f", "csv", "comma separated formats: "+joinFormats(export.Formats()))
	fs.StringVar(&c.name, "o", "", "base file name, defaults to the configured base name")
	fs.StringVar(&c.from, "from", "", "earliest date (YYYY-MM-DD)")
	fs.StringVar(&c.to, "to", "", "latest date (YYYY-MM-DD)")
	fs.StringVar(&c.categories, "categories", "", "comma separated categories, empty for all")
	fs.StringVar(&c.template, "template", "", "template id recorded in the history, e.g. tax-report")
	fs.StringVar(&c.destinations, "d", "local", "comma separated destinations: "+joinDestinations(export.Destinations()))
	fs.BoolVar(&c.share, "share", false, "generate a share link")
	fs.StringVar(&c.schedule, "schedule", "once", "once, daily, weekly or monthly; repeating schedules are recorded as pending")
	fs.BoolVar(&c.templates, "templates", false, "list the available templates and exit")
}

func (c *exportCommand) Run(ctx context.Context, app *cli.App) error {
	if c.templates {
		printTemplates(app)
		return nil
	}

	freq, err := export.ParseFrequency(c.schedule)
	if err != nil {
		return err
	}

	formats, err := export.ParseFormats(c.formats)
	if err != nil {
		return err
	}

	destinations, err := export.ParseDestinations(c.destinations)
	if err != nil {
		return err
	}

	options, err := filter.ParseExportOptions(c.categories, c.from, c.to)
	if err != nil {
		return err
	}

	if c.template != "" {
		if _, ok := export.LookupTemplate(c.template); !ok {
			return fmt.Errorf("unknown template %q", c.template)
		}
	}

	for _, d := range destinations {
		if app.Connections.Connected(d) {
			continue
		}
		fmt.Fprintf(app.Out, "Connecting to %s...\n", d.Name())
		if err = app.Connections.Connect(ctx, d); err != nil {
			return fmt.Errorf("unable to connect to %s: %w", d.Name(), err)
		}
	}

	name := c.name
	if name == "" && app.Config != nil {
		name = app.Config.Export.BaseName
	}

	req := export.Request{
		BaseName:     name,
		Template:     c.template,
		Formats:      formats,
		Destinations: destinations,
		Options:      options,
		Share:        c.share,
	}

	if freq != export.Once {
		return c.scheduleExport(ctx, app, req, freq)
	}

	res, err := app.Exporter.Run(ctx, app.Store.List(), req)
	if errors.Is(err, export.ErrNoRecords) {
		return fmt.Errorf("nothing to export: %w", err)
	}

	for _, r := range res.Records {
		status := util.ColorOutput(string(r.Status), "green")
		if r.Status != export.StatusCompleted {
			status = util.ColorOutput(string(r.Status), "red")
		}
		fmt.Fprintf(app.Out, "%-5s %-14s %-10s ~%s\n", r.Format, r.Destination.Name(), status, r.FileSize)
	}

	if err != nil {
		return err
	}

	if c.template != "" {
		fmt.Fprintf(app.Out, "\nTemplate: %s", export.TemplateName(c.template))
	}
	fmt.Fprintf(app.Out, "\nExported %d records · Total: %s\n",
		len(res.Expenses),
		util.ColorOutput(util.FormatCurrency(res.Total), "bold"),
	)
	if c.share && len(res.Records) > 0 {
		fmt.Fprintf(app.Out, "Share link: %s\n", res.Records[0].ShareLink)
	}
	return nil
}

func (c *exportCommand) scheduleExport(ctx context.Context, app *cli.App, req export.Request, freq export.Frequency) error {
	next, records, err := app.Exporter.Schedule(ctx, app.Store.List(), req, freq, app.Now())
	if errors.Is(err, export.ErrNoRecords) {
		return fmt.Errorf("nothing to schedule: %w", err)
	}
	if err != nil {
		return err
	}

	for _, r := range records {
		fmt.Fprintf(app.Out, "%-5s %-14s %-10s %s\n",
			r.Format,
			r.Destination.Name(),
			util.ColorOutput(string(r.Status), "yellow"),
			export.TemplateName(r.Template),
		)
	}

	fmt.Fprintf(app.Out, "\nScheduled %s export · Next run: %s\n",
		freq,
		util.ColorOutput(next.Format("Mon Jan 2, 2006 15:04"), "bold"),
	)
	return nil
}

func printTemplates(app *cli.App) {
	for _, t := range export.Templates() {
		fmt.Fprintf(app.Out, "%-18s %s\n", t.ID, util.ColorOutput(t.Name, "bold"))
		fmt.Fprintf(app.Out, "%-18s %s\n", "", t.Description)
		fmt.Fprintf(app.Out, "%-18s fields: %s\n", "", strings.Join(t.Fields, ", "))
	}
}

func joinFormats(formats []export.Format) string {
	names := make([]string, 0, len(formats))
	for _, f := range formats {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}

func joinDestinations(destinations []export.Destination) string {
	names := make([]string, 0, len(destinations))
	for _, d := range destinations {
		names = append(names, string(d))
	}
	return strings.Join(names, ", ")
}
