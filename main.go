package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/GustavoCaso/spendwise/internal/cli"
	"github.com/GustavoCaso/spendwise/internal/cli/add"
	deletecmd "github.com/GustavoCaso/spendwise/internal/cli/delete"
	exportcmd "github.com/GustavoCaso/spendwise/internal/cli/export"
	"github.com/GustavoCaso/spendwise/internal/cli/history"
	"github.com/GustavoCaso/spendwise/internal/cli/list"
	statscmd "github.com/GustavoCaso/spendwise/internal/cli/stats"
	"github.com/GustavoCaso/spendwise/internal/cli/update"
	"github.com/GustavoCaso/spendwise/internal/config"
	"github.com/GustavoCaso/spendwise/internal/expense"
	"github.com/GustavoCaso/spendwise/internal/export"
	"github.com/GustavoCaso/spendwise/internal/logger"
	"github.com/GustavoCaso/spendwise/internal/storage"
	"github.com/GustavoCaso/spendwise/internal/storage/sqlite"
	"github.com/GustavoCaso/spendwise/internal/store"
	"github.com/GustavoCaso/spendwise/internal/util"
)

// simulated OAuth round trip for cloud destinations
const connectLatency = 1500 * time.Millisecond

var configPath string
var noColor bool

var subcommands = map[string]cli.Command{
	"add":     add.NewCommand(),
	"update":  update.NewCommand(),
	"delete":  deletecmd.NewCommand(),
	"list":    list.NewCommand(),
	"stats":   statscmd.NewCommand(),
	"export":  exportcmd.NewCommand(),
	"history": history.NewCommand(),
}

var subcommandsFlagSets = map[string]*flag.FlagSet{}

func main() {
	if len(os.Args) < 2 {
		fmt.Printf("subcommand is required\n")
		printUsage()

		os.Exit(1)
	}

	for c, cLogic := range subcommands {
		fset := flag.NewFlagSet(c, flag.ExitOnError)
		fset.StringVar(&configPath, "c", "spendwise.toml", "Configuration file")
		fset.BoolVar(&noColor, "no-color", false, "Disable colored output")

		cLogic.SetFlags(fset)

		subcommandsFlagSets[c] = fset
	}

	commandName := os.Args[1]
	command, ok := subcommands[commandName]
	if !ok {
		if strings.Contains(commandName, "help") {
			printHelp()

			os.Exit(0)
		}
		log.Fatalf("unsupported command %s. \nUse 'help' command to print information about supported commands\n", commandName)
	}

	// ExitOnError
	_ = subcommandsFlagSets[commandName].Parse(os.Args[2:])

	if noColor {
		util.SetColor(false)
	}

	conf, err := config.Parse(configPath)
	if err != nil {
		log.Fatalf("Unable to parse the configuration: %s", err.Error())
	}

	l := logger.New(conf.Logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app, closeApp, err := newApp(ctx, conf, l)
	if err != nil {
		l.Fatal("Unable to initialize", "error", err)
	}
	defer closeApp()

	if err = command.Run(ctx, app); err != nil {
		fmt.Fprintf(os.Stderr, "%s %s\n", util.ColorOutput("error:", "red", "bold"), err)
		closeApp()
		os.Exit(1)
	}
}

func newApp(ctx context.Context, conf *config.Config, l *logger.Logger) (*cli.App, func(), error) {
	db, err := sqlite.New(ctx, conf.DB, l)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to open the database: %w", err)
	}

	s := store.New(ctx, storage.NewExpensePersister(db, l), l)
	s.Subscribe(func(expenses []expense.Expense) {
		l.Debug("Expense collection changed", "count", len(expenses))
	})

	exportHistory := export.NewHistory(ctx, db, l)
	connections := export.NewConnections(connectLatency)
	exporter := export.NewExporter(exportHistory, connections, export.DirSink{Dir: conf.Export.Dir}, l)

	app := &cli.App{
		Config:      conf,
		Store:       s,
		History:     exportHistory,
		Exporter:    exporter,
		Connections: connections,
		Logger:      l,
		Out:         os.Stdout,
		Now:         time.Now,
	}

	closeApp := func() {
		if err := db.Close(); err != nil {
			l.Error("Failed to close the database", "error", err)
		}
	}

	return app, closeApp, nil
}

func printHelp() {
	printUsage()

	for c, cLogic := range subcommands {
		fmt.Printf("subcommand <%s>: %s\n", c, cLogic.Description())
		subcommandsFlagSets[c].PrintDefaults()
		fmt.Println()
		fmt.Println()
	}
}

func printUsage() {
	fmt.Printf("usage: spendwise <subcommand> [flags]\n\n")
}
