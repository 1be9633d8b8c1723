package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/GustavoCaso/spendwise/internal/config"
	"github.com/GustavoCaso/spendwise/internal/expense"
	"github.com/GustavoCaso/spendwise/internal/export"
	"github.com/GustavoCaso/spendwise/internal/logger"
	"github.com/GustavoCaso/spendwise/internal/store"
	"github.com/GustavoCaso/spendwise/internal/util"
)

// App holds the collaborators a subcommand may use.
type App struct {
	Config      *config.Config
	Store       *store.Store
	History     *export.History
	Exporter    *export.Exporter
	Connections *export.Connections
	Logger      *logger.Logger
	Out         io.Writer
	Now         func() time.Time
}

type Command interface {
	SetFlags(fset *flag.FlagSet)
	Description() string
	Run(ctx context.Context, app *App) error
}

// ExpenseLine renders one expense for terminal output.
func ExpenseLine(ex expense.Expense) string {
	return fmt.Sprintf("%s  %-14s %-40s %12s  %s",
		ex.Date,
		util.ColorOutput(string(ex.Category), ex.Category.Color()),
		ex.Description,
		util.FormatCurrency(ex.Amount),
		util.ColorOutput(ex.ID, "faint"),
	)
}

// ValidationErrors joins form errors into a single error.
func ValidationErrors(errs []*expense.ValidationError) error {
	if len(errs) == 0 {
		return nil
	}
	messages := make([]string, 0, len(errs))
	for _, err := range errs {
		messages = append(messages, err.Error())
	}
	return fmt.Errorf("invalid expense: %s", strings.Join(messages, "; "))
}
