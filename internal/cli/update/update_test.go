package update

import (
	"context"
	"errors"
	"flag"
	"testing"
	"time"

	"github.com/GustavoCaso/spendwise/internal/cli/clitest"
	"github.com/GustavoCaso/spendwise/internal/expense"
	"github.com/GustavoCaso/spendwise/internal/storage"
)

var now = time.Date(2024, time.January, 20, 10, 0, 0, 0, time.UTC)

func TestRun(t *testing.T) {
	ctx := context.Background()
	app, _ := clitest.NewApp(t, now)

	original, err := app.Store.Add(ctx, expense.FormData{Date: "2024-01-10", Amount: "10", Category: expense.Food, Description: "Lunch"})
	if err != nil {
		t.Fatalf("Add() error: %v", err)
	}

	cmd := NewCommand()
	fs := flag.NewFlagSet("update", flag.ContinueOnError)
	cmd.SetFlags(fs)
	if err = fs.Parse([]string{"-id", original.ID, "-amount", "12.75", "-description", "Team lunch"}); err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	if err = cmd.Run(ctx, app); err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}

	got, _ := app.Store.Get(original.ID)
	want := expense.Expense{
		ID:          original.ID,
		Date:        "2024-01-10",
		Amount:      12.75,
		Category:    expense.Food,
		Description: "Team lunch",
		CreatedAt:   original.CreatedAt,
	}
	if got != want {
		t.Errorf("updated = %+v, want %+v", got, want)
	}
}

func TestRunErrors(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		args  []string
		check func(error) bool
	}{
		{
			name:  "missing id",
			args:  nil,
			check: func(err error) bool { return err != nil },
		},
		{
			name: "unknown id",
			args: []string{"-id", "nope", "-amount", "5"},
			check: func(err error) bool {
				var notFound *storage.NotFoundError
				return errors.As(err, &notFound)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _ := clitest.NewApp(t, now)
			cmd := NewCommand()
			fs := flag.NewFlagSet("update", flag.ContinueOnError)
			cmd.SetFlags(fs)
			if err := fs.Parse(tt.args); err != nil {
				t.Fatalf("Parse() error: %v", err)
			}
			if err := cmd.Run(ctx, app); !tt.check(err) {
				t.Errorf("Run() error = %v", err)
			}
		})
	}
}

func TestRunInvalidAmountLeavesExpense(t *testing.T) {
	ctx := context.Background()
	app, _ := clitest.NewApp(t, now)

	original, _ := app.Store.Add(ctx, expense.FormData{Date: "2024-01-10", Amount: "10", Category: expense.Food, Description: "Lunch"})

	cmd := NewCommand()
	fs := flag.NewFlagSet("update", flag.ContinueOnError)
	cmd.SetFlags(fs)
	_ = fs.Parse([]string{"-id", original.ID, "-amount", "-3"})

	if err := cmd.Run(ctx, app); err == nil {
		t.Fatal("Run() error = nil, want validation error")
	}
	if got, _ := app.Store.Get(original.ID); got != original {
		t.Errorf("expense = %+v, want unchanged %+v", got, original)
	}
}
