// Package taxo ties the taxonomy components into one analysis engine.
package taxo

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/contentops/taxo/pkg/taxo/analytics"
	"github.com/contentops/taxo/pkg/taxo/config"
	"github.com/contentops/taxo/pkg/taxo/content"
	"github.com/contentops/taxo/pkg/taxo/lint"
	"github.com/contentops/taxo/pkg/taxo/report"
	"github.com/contentops/taxo/pkg/taxo/rewrite"
	"github.com/contentops/taxo/pkg/taxo/store"
)

// Options configures an Engine.
type Options struct {
	Config  config.Config
	History store.Store // optional run-history sink
	Logger  *zap.Logger
}

// Engine runs the scan → tally → detect → recommend → report pipeline.
type Engine struct {
	cfg     config.Config
	comp    *config.Components
	history store.Store
	logger  *zap.Logger
	builder *report.Builder
}

// New creates an Engine with the given dependencies.
func New(opts Options) *Engine {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		cfg:     opts.Config,
		comp:    opts.Config.Build(),
		history: opts.History,
		logger:  logger,
		builder: report.NewBuilder(),
	}
}

// Close releases the history store, if any.
func (e *Engine) Close() error {
	if e.history == nil {
		return nil
	}
	return e.history.Close()
}

// Result bundles one full run's outputs.
type Result struct {
	Report   report.Report
	JSONPath string
	TextPath string
	Rewrite  rewrite.Result
}

// Analyze scans the content root, writes the report pair, records history,
// and runs the rewriter — as a dry run unless update is set.
func (e *Engine) Analyze(ctx context.Context, update bool) (Result, error) {
	docs, skipped, err := content.ScanAll(ctx, e.cfg.ContentDir, e.logger)
	if err != nil {
		return Result{}, fmt.Errorf("scan %s: %w", e.cfg.ContentDir, err)
	}
	e.logger.Info("scan complete",
		zap.Int("docs", len(docs)), zap.Int("skipped", skipped))

	analyzer := analytics.NewAnalyzer()
	for _, doc := range docs {
		analyzer.Process(doc)
	}
	analyzer.AddSkipped(skipped)
	stats := analyzer.Snapshot()

	pairs := analytics.DetectDuplicates(stats.Tags, e.comp.Tags)
	recs := e.comp.Generator.Run(stats)
	findings := lint.CheckAll(docs)

	rep := e.builder.Build(stats, pairs, recs, findings, e.comp.Categories, e.comp.Tags)

	writer := &report.Writer{Dir: e.cfg.ReportsDir}
	jsonPath, textPath, err := writer.Write(rep)
	if err != nil {
		return Result{}, err
	}
	e.logger.Info("report written",
		zap.String("json", jsonPath), zap.String("text", textPath))

	if e.history != nil {
		run := store.Run{
			ID:              rep.RunID,
			CreatedAt:       rep.GeneratedAt,
			TotalDocs:       rep.Summary.TotalDocs,
			DistinctCats:    int64(rep.Summary.DistinctCats),
			DistinctTags:    int64(rep.Summary.DistinctTags),
			Recommendations: int64(rep.Summary.Recommendations),
			Duplicates:      int64(rep.Summary.Duplicates),
			Skipped:         int64(rep.Summary.SkippedFiles),
			ReportPath:      jsonPath,
		}
		if err := e.history.SaveRun(ctx, run); err != nil {
			e.logger.Warn("run history not recorded", zap.Error(err))
		}
	}

	rewriter := &rewrite.Rewriter{
		Categories: e.comp.Categories,
		Tags:       e.comp.Tags,
		Apply:      update,
		Logger:     e.logger,
	}
	rwRes, err := rewriter.Run(ctx, docs)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Report:   rep,
		JSONPath: jsonPath,
		TextPath: textPath,
		Rewrite:  rwRes,
	}, nil
}
