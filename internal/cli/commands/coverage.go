package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/arytiwari/jioastro-sub006/internal/cli/output"
	"github.com/arytiwari/jioastro-sub006/internal/engine"
	"github.com/arytiwari/jioastro-sub006/internal/feed"
	"github.com/arytiwari/jioastro-sub006/internal/stats"
	"github.com/arytiwari/jioastro-sub006/pkg/core"
)

// CoverageOptions holds options for the coverage command.
type CoverageOptions struct {
	Implemented string   // Implemented list file, overrides config
	Observed    []string // Detection feeds to count observed yogas from
	Format      string   // Output format
}

// NewCoverageCommand creates the coverage command.
func NewCoverageCommand() *cobra.Command {
	opts := &CoverageOptions{}

	cmd := &cobra.Command{
		Use:   "coverage",
		Short: "Report catalog implementation coverage",
		Long: `Report, per tier and overall, how much of the catalog the upstream
detector implements.

The implemented list is a YAML file of canonical names. With --observed,
detection feeds are normalized and counted against the catalog, showing
which tiers actually appear in practice.`,
		Example: `  # Coverage against the configured implemented list
  jioastro coverage

  # Coverage with an explicit list
  jioastro coverage --implemented detectors.yaml

  # Include observed counts from real feeds
  jioastro coverage --observed charts/chart-001.yaml --observed charts/chart-002.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCoverage(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Implemented, "implemented", "", "Implemented yoga list (overrides config)")
	cmd.Flags().StringArrayVar(&opts.Observed, "observed", nil, "Detection feed to count observed yogas from (repeatable)")
	cmd.Flags().StringVar(&opts.Format, "format", "", "Output format (auto|text|markdown|json)")

	return cmd
}

func runCoverage(cmd *cobra.Command, opts *CoverageOptions) error {
	cmdCtx, cleanup, err := NewCatalogContext(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	eng := cmdCtx.Engine
	r := cmdCtx.Renderer
	if opts.Format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))
	}

	// An explicit --implemented file must parse; the configured one is
	// already loaded (best-effort) in the engine.
	implemented := cmdCtx.Engine.Implemented()
	if opts.Implemented != "" {
		implemented, err = feed.LoadImplemented(opts.Implemented)
		if err != nil {
			return err
		}
	}

	var observed []core.NormalizedYoga
	for _, path := range opts.Observed {
		df, err := feed.LoadDetections(path)
		if err != nil {
			return err
		}
		res, err := eng.Analyze(cmd.Context(), engine.AnalyzeRequest{
			ChartID:    df.ChartID,
			Detections: df.Detections,
		})
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		observed = append(observed, res.Yogas...)
	}

	report := stats.Aggregate(eng.Registry().Definitions(), implemented, observed)

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(report)
	case output.ModeMarkdown:
		return coverageMarkdown(r, report, len(opts.Observed))
	default:
		return coverageText(r, report, len(opts.Observed))
	}
}

// coverageText renders the report as a styled table.
func coverageText(r *output.Renderer, report core.CoverageReport, feedCount int) error {
	r.Header(1, "Catalog Coverage")

	t := table.NewWriter()
	t.SetOutputMirror(r.Writer())
	t.SetStyle(table.StyleLight)
	header := table.Row{"Tier", "Implemented", "Total", "Coverage"}
	if feedCount > 0 {
		header = append(header, "Observed")
	}
	t.AppendHeader(header)
	for _, tc := range report.Tiers {
		row := table.Row{tc.Tier, tc.Implemented, tc.Total, fmt.Sprintf("%.2f%%", tc.Coverage)}
		if feedCount > 0 {
			row = append(row, tc.Observed)
		}
		t.AppendRow(row)
	}
	footer := table.Row{"overall", report.Overall.Implemented, report.Overall.Total,
		fmt.Sprintf("%.2f%%", report.Overall.Coverage)}
	if feedCount > 0 {
		footer = append(footer, report.Overall.Observed)
	}
	t.AppendFooter(footer)
	t.Render()

	if report.UnresolvedObserved > 0 {
		r.Warning(fmt.Sprintf("%d observed detections resolved to no catalog entry", report.UnresolvedObserved))
	}
	return nil
}

// coverageMarkdown renders the report in markdown format.
func coverageMarkdown(r *output.Renderer, report core.CoverageReport, feedCount int) error {
	r.Println(output.FormatHeader(1, "Catalog Coverage"))
	r.Println()

	if feedCount > 0 {
		r.Println("| Tier | Implemented | Total | Coverage | Observed |")
		r.Println("|------|-------------|-------|----------|----------|")
		for _, tc := range report.Tiers {
			r.Printf("| %s | %d | %d | %.2f%% | %d |\n",
				tc.Tier, tc.Implemented, tc.Total, tc.Coverage, tc.Observed)
		}
		r.Printf("| **overall** | %d | %d | %.2f%% | %d |\n",
			report.Overall.Implemented, report.Overall.Total,
			report.Overall.Coverage, report.Overall.Observed)
	} else {
		r.Println("| Tier | Implemented | Total | Coverage |")
		r.Println("|------|-------------|-------|----------|")
		for _, tc := range report.Tiers {
			r.Printf("| %s | %d | %d | %.2f%% |\n",
				tc.Tier, tc.Implemented, tc.Total, tc.Coverage)
		}
		r.Printf("| **overall** | %d | %d | %.2f%% |\n",
			report.Overall.Implemented, report.Overall.Total, report.Overall.Coverage)
	}
	r.Println()

	if report.UnresolvedObserved > 0 {
		r.Println(output.FormatKeyValue("Unresolved observed", fmt.Sprintf("%d", report.UnresolvedObserved)))
	}
	return nil
}
