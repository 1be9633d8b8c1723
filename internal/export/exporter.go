package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/GustavoCaso/spendwise/internal/expense"
	"github.com/GustavoCaso/spendwise/internal/filter"
	"github.com/GustavoCaso/spendwise/internal/logger"
)

var (
	// ErrNoRecords is returned when the filters leave nothing to export.
	ErrNoRecords    = errors.New("no records match the export filters")
	ErrNotRecurring = errors.New("schedule frequency does not repeat")
)

type ExportError struct {
	Format Format
	Err    error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export %s failed: %v", e.Format, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}

type Artifact struct {
	Filename string
	Format   Format
	Data     []byte
}

// ArtifactSink receives rendered artifacts for the local destination.
type ArtifactSink interface {
	Write(ctx context.Context, a Artifact) error
}

// DirSink writes artifacts as files under Dir.
type DirSink struct {
	Dir string
}

func (s DirSink) Write(_ context.Context, a Artifact) error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}
	path := filepath.Join(s.Dir, a.Filename)
	if err := os.WriteFile(path, a.Data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

type Request struct {
	BaseName     string
	Template     string
	Formats      []Format
	Destinations []Destination
	Options      filter.ExportOptions
	Share        bool
}

type Result struct {
	Expenses  []expense.Expense
	Total     float64
	Artifacts []Artifact
	Records   []Record
}

type Exporter struct {
	history     *History
	connections *Connections
	sink        ArtifactSink
	logger      *logger.Logger
	now         func() time.Time
}

func NewExporter(history *History, connections *Connections, sink ArtifactSink, l *logger.Logger) *Exporter {
	return &Exporter{
		history:     history,
		connections: connections,
		sink:        sink,
		logger:      l.WithComponent("exporter"),
		now:         time.Now,
	}
}

// Run filters expenses, renders every requested format and delivers the
// artifacts. Renders run concurrently over a private snapshot. History gets
// one record per format and destination whenever rendering was attempted.
func (e *Exporter) Run(ctx context.Context, expenses []expense.Expense, req Request) (Result, error) {
	req, err := e.normalize(req)
	if err != nil {
		return Result{}, err
	}

	snapshot := filter.ForExport(expenses, req.Options)
	if len(snapshot) == 0 {
		return Result{}, ErrNoRecords
	}

	result := Result{
		Expenses: snapshot,
		Total:    sum(snapshot).InexactFloat64(),
	}

	var link string
	if req.Share {
		link = ShareLink()
	}

	artifacts, renderErr := e.render(ctx, snapshot, req)
	if renderErr != nil {
		for _, f := range req.Formats {
			for _, d := range req.Destinations {
				result.Records = append(result.Records, e.record(ctx, req, f, d, StatusFailed, len(snapshot), ""))
			}
		}
		e.logger.Error("Export failed", "error", renderErr)
		return result, renderErr
	}
	result.Artifacts = artifacts

	var deliverErr error
	for _, d := range req.Destinations {
		for _, a := range artifacts {
			status := StatusCompleted
			if err = e.deliver(ctx, d, a); err != nil {
				status = StatusFailed
				deliverErr = errors.Join(deliverErr, &ExportError{Format: a.Format, Err: err})
			}
			result.Records = append(result.Records, e.record(ctx, req, a.Format, d, status, len(snapshot), link))
		}
	}

	e.logger.Info("Export finished",
		"records", len(snapshot),
		"formats", len(req.Formats),
		"destinations", len(req.Destinations),
	)

	return result, deliverErr
}

// Schedule records one pending export per format and destination for a
// repeating frequency and returns when it will next run, counted from.
// Nothing is rendered until then.
func (e *Exporter) Schedule(ctx context.Context, expenses []expense.Expense, req Request, freq Frequency, from time.Time) (time.Time, []Record, error) {
	next, repeats := freq.NextRun(from)
	if !repeats {
		return time.Time{}, nil, fmt.Errorf("%w: %q", ErrNotRecurring, freq)
	}

	req, err := e.normalize(req)
	if err != nil {
		return time.Time{}, nil, err
	}

	snapshot := filter.ForExport(expenses, req.Options)
	if len(snapshot) == 0 {
		return time.Time{}, nil, ErrNoRecords
	}

	var records []Record
	for _, f := range req.Formats {
		for _, d := range req.Destinations {
			records = append(records, e.record(ctx, req, f, d, StatusPending, len(snapshot), ""))
		}
	}

	e.logger.Info("Export scheduled", "frequency", freq, "next_run", next, "records", len(snapshot))

	return next, records, nil
}

func (e *Exporter) normalize(req Request) (Request, error) {
	if len(req.Formats) == 0 {
		return req, fmt.Errorf("%w: none selected", ErrUnknownFormat)
	}
	for _, f := range req.Formats {
		if _, err := ParseFormat(string(f)); err != nil {
			return req, err
		}
	}
	if len(req.Destinations) == 0 {
		req.Destinations = []Destination{Local}
	}
	for _, d := range req.Destinations {
		if _, err := ParseDestination(string(d)); err != nil {
			return req, err
		}
		if !e.connections.Connected(d) {
			return req, fmt.Errorf("%w: %s", ErrNotConnected, d.Name())
		}
	}
	if req.Template == "" {
		req.Template = CustomTemplate
	}
	return req, nil
}

func (e *Exporter) render(ctx context.Context, snapshot []expense.Expense, req Request) ([]Artifact, error) {
	now := e.now()
	artifacts := make([]Artifact, len(req.Formats))

	g, gctx := errgroup.WithContext(ctx)
	for i, f := range req.Formats {
		i, f := i, f
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return &ExportError{Format: f, Err: err}
			}
			var buf bytes.Buffer
			if err := renderFormat(&buf, f, snapshot, now); err != nil {
				return &ExportError{Format: f, Err: err}
			}
			artifacts[i] = Artifact{
				Filename: Filename(req.BaseName, f),
				Format:   f,
				Data:     buf.Bytes(),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return artifacts, nil
}

func renderFormat(w io.Writer, f Format, snapshot []expense.Expense, now time.Time) error {
	switch f {
	case CSV:
		return WriteCSV(w, snapshot)
	case JSON:
		return WriteJSON(w, snapshot, now)
	case PDF:
		return WritePDF(w, NewDocument(snapshot, now))
	case XLSX:
		return WriteXLSX(w, snapshot)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

func (e *Exporter) deliver(ctx context.Context, d Destination, a Artifact) error {
	if d != Local {
		e.logger.Info("Simulated delivery", "destination", d, "file", a.Filename, "bytes", len(a.Data))
		return nil
	}
	return e.sink.Write(ctx, a)
}

func (e *Exporter) record(ctx context.Context, req Request, f Format, d Destination, status Status, count int, link string) Record {
	return e.history.Add(ctx, Record{
		Template:     req.Template,
		Format:       f,
		Destination:  d,
		Status:       status,
		FileSize:     FormatFileSize(EstimateFileSize(count, f)),
		ExpenseCount: count,
		ShareLink:    link,
	})
}

// Task is an export running in the background.
type Task struct {
	done   chan struct{}
	result Result
	err    error
}

// Start runs the export on its own goroutine. The caller may wait on the
// task or drop it.
func (e *Exporter) Start(ctx context.Context, expenses []expense.Expense, req Request) *Task {
	t := &Task{done: make(chan struct{})}
	go func() {
		defer close(t.done)
		t.result, t.err = e.Run(ctx, expenses, req)
	}()
	return t
}

func (t *Task) Done() <-chan struct{} {
	return t.done
}

func (t *Task) Wait() (Result, error) {
	<-t.done
	return t.result, t.err
}
