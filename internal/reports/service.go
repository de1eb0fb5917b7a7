package reports

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/JaimeStill/tribunal/internal/judge"
	"github.com/JaimeStill/tribunal/internal/policies"
	"github.com/JaimeStill/tribunal/internal/tickets"
	"github.com/JaimeStill/tribunal/pkg/storage"
)

// Options tunes report evaluation.
type Options struct {
	// DefaultSLADays applies when no policy matches a ticket.
	DefaultSLADays int
	// Workers bounds concurrent judge calls. Values below 1 are treated as 1.
	Workers int
	// MaxUploadSize caps multipart upload memory in bytes.
	MaxUploadSize int64
}

type service struct {
	policies policies.System
	judge    judge.System
	storage  storage.System
	logger   *slog.Logger
	opts     Options
	handler  *Handler
}

// New creates a report system backed by the given policy, judge, and storage
// systems.
func New(p policies.System, j judge.System, store storage.System, logger *slog.Logger, opts Options) System {
	if opts.Workers < 1 {
		opts.Workers = 1
	}

	s := &service{
		policies: p,
		judge:    j,
		storage:  store,
		logger:   logger.With("system", "reports"),
		opts:     opts,
	}
	s.handler = NewHandler(s, logger, opts.MaxUploadSize)

	return s
}

func (s *service) Handler() *Handler {
	return s.handler
}

func (s *service) Analyze(ctx context.Context, file io.Reader, filename string) (*Report, error) {
	rows, err := tickets.ReadBatch(file, filename)
	if err != nil {
		return nil, err
	}

	batch := tickets.Aggregate(rows)
	s.logger.Info("batch aggregated", "rows", len(rows), "tickets", batch.Len())

	list, err := s.policies.ListOrdered(ctx)
	if err != nil {
		return nil, fmt.Errorf("load policies: %w", err)
	}

	judgments := s.collectJudgments(ctx, batch)

	report := &Report{
		ID:          uuid.New(),
		GeneratedAt: time.Now().UTC(),
		Rows:        BuildRows(batch, judgments, list, s.opts.DefaultSLADays),
	}
	report.Summary = Summarize(report.Rows)

	s.storeArtifacts(ctx, report)

	s.logger.Info("report generated",
		"report_id", report.ID,
		"tickets", report.Summary.Tickets,
		"sla_met", report.Summary.SLAMet,
		"sla_breached", report.Summary.SLABreached)

	return report, nil
}

func (s *service) Artifact(ctx context.Context, id uuid.UUID, format Format) (io.ReadCloser, error) {
	switch format {
	case FormatCSV, FormatJSON:
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidFormat, format)
	}

	reader, err := s.storage.Download(ctx, artifactKey(id, format))
	if err != nil {
		return nil, err
	}

	return reader, nil
}

// collectJudgments runs judge calls across a bounded worker pool, writing
// each result into its ticket's slot so report ordering is independent of
// completion order. Judge implementations absorb their own failures, so the
// group never returns an error.
func (s *service) collectJudgments(ctx context.Context, batch *tickets.Batch) map[string]judge.Judgment {
	ts := batch.Tickets()
	results := make([]judge.Judgment, len(ts))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.Workers)

	var completed atomic.Int64
	for i, t := range ts {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				results[i] = judge.Unusable(err.Error())
				return nil
			}

			results[i] = s.judge.Judge(gctx, t)
			s.logger.Info("ticket judged", "ticket_id", t.ID, "progress", fmt.Sprintf("%d/%d", completed.Add(1), len(ts)))
			return nil
		})
	}

	_ = g.Wait()

	judgments := make(map[string]judge.Judgment, len(ts))
	for i, t := range ts {
		judgments[t.ID] = results[i]
	}

	return judgments
}

// storeArtifacts uploads the CSV and JSON renderings of the report. Storage
// failures are logged and do not fail the analysis: the report is already
// complete and returned to the caller in full.
func (s *service) storeArtifacts(ctx context.Context, report *Report) {
	var csvBuf bytes.Buffer
	if err := WriteCSV(&csvBuf, report.Rows); err != nil {
		s.logger.Error("csv artifact rendering failed", "report_id", report.ID, "error", err)
	} else if err := s.storage.Upload(ctx, artifactKey(report.ID, FormatCSV), &csvBuf, FormatCSV.ContentType()); err != nil {
		s.logger.Error("csv artifact upload failed", "report_id", report.ID, "error", err)
	}

	data, err := MarshalRows(report.Rows)
	if err != nil {
		s.logger.Error("json artifact rendering failed", "report_id", report.ID, "error", err)
		return
	}
	if err := s.storage.Upload(ctx, artifactKey(report.ID, FormatJSON), bytes.NewReader(data), FormatJSON.ContentType()); err != nil {
		s.logger.Error("json artifact upload failed", "report_id", report.ID, "error", err)
	}
}

func artifactKey(id uuid.UUID, format Format) string {
	return fmt.Sprintf("reports/%s.%s", id, format)
}
