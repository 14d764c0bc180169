package pipeline

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nao1215/passcheck/internal/model"
)

// DefaultConcurrency is the number of passwords evaluated at once by default.
const DefaultConcurrency = 4

// BatchProcessor evaluates a list of passwords concurrently.
// Every password gets a fresh pipeline from the factory.
type BatchProcessor struct {
	pipelineFactory func() *Pipeline
	concurrency     int
	logger          *slog.Logger
}

// BatchOption configures a BatchProcessor.
type BatchOption func(*BatchProcessor)

// WithBatchLogger sets a custom logger for batch processing.
func WithBatchLogger(logger *slog.Logger) BatchOption {
	return func(b *BatchProcessor) {
		b.logger = logger
	}
}

// WithConcurrency sets the maximum number of concurrent evaluations.
// Non-positive values keep the default.
func WithConcurrency(n int) BatchOption {
	return func(b *BatchProcessor) {
		if n > 0 {
			b.concurrency = n
		}
	}
}

// NewBatchProcessor creates a new BatchProcessor.
func NewBatchProcessor(pipelineFactory func() *Pipeline, opts ...BatchOption) *BatchProcessor {
	bp := &BatchProcessor{
		pipelineFactory: pipelineFactory,
		concurrency:     DefaultConcurrency,
	}
	for _, opt := range opts {
		opt(bp)
	}
	if bp.logger == nil {
		bp.logger = slog.Default()
	}
	return bp
}

// ProcessBatch evaluates passwords and returns their reports in input order.
// A failed evaluation keeps its partial report; only cancellation of ctx is
// returned as an error, in which case unevaluated positions are nil.
func (bp *BatchProcessor) ProcessBatch(ctx context.Context, passwords []string) ([]*model.EvaluationReport, error) {
	results := make([]*model.EvaluationReport, len(passwords))
	err := bp.ProcessBatchWithCallback(ctx, passwords, func(report *model.EvaluationReport, index int) {
		// Each goroutine owns exactly one index.
		results[index] = report
	})
	return results, err
}

// ProcessBatchWithCallback evaluates passwords and calls callback for each
// finished report. The callback runs on the evaluating goroutine and must be
// safe for concurrent use.
func (bp *BatchProcessor) ProcessBatchWithCallback(
	ctx context.Context,
	passwords []string,
	callback func(report *model.EvaluationReport, index int),
) error {
	bp.logger.Info("starting batch evaluation",
		"total", len(passwords),
		"concurrency", bp.concurrency,
	)
	startTime := time.Now()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(bp.concurrency)

	for i, password := range passwords {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			report := model.NewEvaluationReport(password)
			report.Index = i

			if err := bp.pipelineFactory().Execute(ctx, report); err != nil {
				bp.logger.Warn("evaluation failed",
					"index", i,
					"error", err,
				)
			}
			callback(report, i)
			return nil
		})
	}

	err := g.Wait()
	bp.logger.Info("batch evaluation complete",
		"total", len(passwords),
		"elapsed", time.Since(startTime),
	)
	return err
}
