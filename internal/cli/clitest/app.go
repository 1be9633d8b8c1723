package clitest

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/GustavoCaso/spendwise/internal/cli"
	"github.com/GustavoCaso/spendwise/internal/config"
	"github.com/GustavoCaso/spendwise/internal/export"
	"github.com/GustavoCaso/spendwise/internal/storage"
	"github.com/GustavoCaso/spendwise/internal/store"
	"github.com/GustavoCaso/spendwise/internal/testutil"
	"github.com/GustavoCaso/spendwise/internal/util"
)

// NewApp wires an in-memory App whose clock is fixed at now. Artifacts are
// written to a temporary directory and color output is off.
func NewApp(t *testing.T, now time.Time) (*cli.App, *bytes.Buffer) {
	t.Helper()
	util.SetColor(false)

	ctx := context.Background()
	l := testutil.TestLogger(t)
	kv := storage.NewMemoryKV()
	clock := func() time.Time { return now }
	dir := t.TempDir()

	s := store.New(ctx, storage.NewExpensePersister(kv, l), l, store.WithClock(clock))
	history := export.NewHistory(ctx, kv, l)
	connections := export.NewConnections(0)

	out := &bytes.Buffer{}
	return &cli.App{
		Config:      &config.Config{Export: config.ExportConfig{Dir: dir}},
		Store:       s,
		History:     history,
		Exporter:    export.NewExporter(history, connections, export.DirSink{Dir: dir}, l),
		Connections: connections,
		Logger:      l,
		Out:         out,
		Now:         clock,
	}, out
}
