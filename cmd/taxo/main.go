package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/contentops/taxo/internal/logging"
	"github.com/contentops/taxo/pkg/taxo"
	"github.com/contentops/taxo/pkg/taxo/config"
	"github.com/contentops/taxo/pkg/taxo/store"
	"github.com/contentops/taxo/pkg/taxo/store/sqlite"
)

var (
	verbose    bool
	configPath string
	contentDir string
	reportsDir string
	historyDB  string
	update     bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "taxo",
	Short: "Content taxonomy analysis and standardization",
	Long: `taxo scans a markdown/MDX content directory, tallies category and tag
usage, flags likely-duplicate tags, and writes cleanup recommendations to
reports/taxonomy-analysis.{json,txt}.

With --update it also rewrites frontmatter to the canonical taxonomy.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// .env is optional; matching env vars override config paths.
		_ = godotenv.Load()

		var err error
		logger, err = logging.New(verbose)
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runAnalyze,
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Scan content and write the taxonomy report",
	RunE:  runAnalyze,
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent analysis runs",
	RunE:  runHistory,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to taxo.yaml")
	rootCmd.PersistentFlags().StringVar(&contentDir, "content", "", "content root (overrides config)")
	rootCmd.PersistentFlags().StringVar(&reportsDir, "reports", "", "reports directory (overrides config)")
	rootCmd.PersistentFlags().StringVar(&historyDB, "history", "", "run-history database (overrides config)")

	rootCmd.Flags().BoolVar(&update, "update", false, "rewrite frontmatter to canonical taxonomy")
	analyzeCmd.Flags().BoolVar(&update, "update", false, "rewrite frontmatter to canonical taxonomy")

	rootCmd.AddCommand(analyzeCmd, historyCmd)
}

func loadConfig() (config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}
	cfg.ApplyEnv()

	if contentDir != "" {
		cfg.ContentDir = contentDir
	}
	if reportsDir != "" {
		cfg.ReportsDir = reportsDir
	}
	if historyDB != "" {
		cfg.HistoryDB = historyDB
	}
	return cfg, nil
}

func openHistory(ctx context.Context, cfg config.Config) store.Store {
	if cfg.HistoryDB == "" {
		return nil
	}
	st, err := sqlite.Open(ctx, cfg.HistoryDB)
	if err != nil {
		// History is a convenience; analysis still runs without it.
		logger.Warn("run history unavailable", zap.Error(err))
		return nil
	}
	return st
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	engine := taxo.New(taxo.Options{
		Config:  cfg,
		History: openHistory(ctx, cfg),
		Logger:  logger,
	})
	defer engine.Close()

	res, err := engine.Analyze(ctx, update)
	if err != nil {
		return err
	}

	fmt.Printf("Analyzed %d documents (%d skipped)\n",
		res.Report.Summary.TotalDocs, res.Report.Summary.SkippedFiles)
	fmt.Printf("Report: %s\n", res.TextPath)

	if update {
		fmt.Printf("Updated %d documents\n", res.Rewrite.Updated)
	} else if res.Rewrite.Updated > 0 {
		fmt.Printf("%d documents would change; re-run with --update to apply\n", res.Rewrite.Updated)
	}

	if res.Rewrite.Errors > 0 {
		return fmt.Errorf("%d documents failed to rewrite", res.Rewrite.Errors)
	}
	return nil
}

func runHistory(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	st, err := sqlite.Open(ctx, cfg.HistoryDB)
	if err != nil {
		return fmt.Errorf("open history db: %w", err)
	}
	defer st.Close()

	runs, err := st.ListRuns(ctx, 20)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No recorded runs")
		return nil
	}

	for _, r := range runs {
		fmt.Printf("%s  %s  docs=%d cats=%d tags=%d recs=%d dupes=%d skipped=%d\n",
			r.ID, r.CreatedAt.Format("2006-01-02 15:04:05"),
			r.TotalDocs, r.DistinctCats, r.DistinctTags,
			r.Recommendations, r.Duplicates, r.Skipped)
	}
	return nil
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
