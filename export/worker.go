package export

import (
	"context"
	"log/slog"
	"time"

	serrors "github.com/c360studio/semstreams/pkg/errs"
	"github.com/google/uuid"

	"github.com/c360studio/graphol/config"
	"github.com/c360studio/graphol/diagram"
	"github.com/c360studio/graphol/inference"
	"github.com/c360studio/graphol/owl"
)

// ProgressFunc receives (current, total) step counts during a run. The total
// counts two steps per node (compile, node axioms) plus one per edge.
type ProgressFunc func(current, total int)

// Worker drives a full translation pass over one diagram. It owns the
// diagram for the duration of the run; callers must not mutate the diagram
// while Run is in flight.
type Worker struct {
	diagram  *diagram.Diagram
	cfg      config.ExportConfig
	logger   *slog.Logger
	metrics  *Metrics
	progress ProgressFunc
}

// WorkerOption customizes a worker.
type WorkerOption func(*Worker)

// WithLogger sets the worker's logger.
func WithLogger(logger *slog.Logger) WorkerOption {
	return func(w *Worker) { w.logger = logger }
}

// WithMetrics attaches run metrics.
func WithMetrics(m *Metrics) WorkerOption {
	return func(w *Worker) { w.metrics = m }
}

// WithProgress attaches a progress sink.
func WithProgress(fn ProgressFunc) WorkerOption {
	return func(w *Worker) { w.progress = fn }
}

// NewWorker creates a worker for one diagram.
func NewWorker(d *diagram.Diagram, cfg config.ExportConfig, opts ...WorkerOption) *Worker {
	w := &Worker{
		diagram: d,
		cfg:     cfg,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run resolves identities, compiles every node, and synthesizes axioms for
// every node and edge. Cancellation is checked between steps; a cancelled
// run returns the context error and no partial axiom set.
func (w *Worker) Run(ctx context.Context) (*owl.AxiomSet, error) {
	runID := uuid.NewString()
	start := time.Now()
	nodes := w.diagram.Nodes()
	edges := w.diagram.Edges()
	total := 2*len(nodes) + len(edges)
	current := 0

	logger := w.logger.With(
		"run_id", runID,
		"diagram", w.diagram.Name,
		"nodes", len(nodes),
		"edges", len(edges),
	)
	logger.Debug("starting diagram translation")

	inference.IdentifyAll(w.diagram)

	factory := owl.NewFactory()
	axioms := owl.NewAxiomSet()
	compiler := NewCompiler(w.diagram, factory, w.cfg, axioms)
	synthesizer := NewSynthesizer(w.diagram, compiler, factory, w.cfg, axioms)

	step := func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		current++
		if w.progress != nil {
			w.progress(current, total)
		}
		return nil
	}

	fail := func(err error, stage string) (*owl.AxiomSet, error) {
		status := "error"
		if ctx.Err() != nil {
			status = "cancelled"
		}
		logger.Warn("diagram translation aborted", "stage", stage, "error", err)
		w.observe(status, start, 0)
		if w.metrics != nil && status == "error" {
			w.metrics.RecordStageError(stage)
		}
		if status == "cancelled" {
			return nil, serrors.WrapTransient(err, "export", "Run", stage)
		}
		return nil, serrors.WrapInvalid(err, "export", "Run", stage)
	}

	for _, n := range nodes {
		if err := step(); err != nil {
			return fail(err, "compile")
		}
		// An attribute range restriction has no expression form; it exists
		// only to produce the data property range axiom in the node pass.
		if n.Kind == diagram.KindRangeRestriction && n.Identity() == diagram.IdentityValueDomain {
			continue
		}
		if _, err := compiler.Compile(n); err != nil {
			return fail(err, "compile")
		}
	}
	for _, n := range nodes {
		if err := step(); err != nil {
			return fail(err, "node axioms")
		}
		if err := synthesizer.NodeAxioms(n); err != nil {
			return fail(err, "node axioms")
		}
	}
	for _, e := range edges {
		if err := step(); err != nil {
			return fail(err, "edge axioms")
		}
		if err := synthesizer.EdgeAxioms(e); err != nil {
			return fail(err, "edge axioms")
		}
	}

	logger.Debug("diagram translation complete",
		"axioms", axioms.Len(),
		"elapsed", time.Since(start),
	)
	w.observe("success", start, axioms.Len())
	return axioms, nil
}

func (w *Worker) observe(status string, start time.Time, axioms int) {
	if w.metrics == nil {
		return
	}
	w.metrics.RecordRun(status, time.Since(start), axioms)
}
