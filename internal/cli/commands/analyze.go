package commands

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/arytiwari/jioastro-sub006/internal/cli/output"
	"github.com/arytiwari/jioastro-sub006/internal/engine"
	"github.com/arytiwari/jioastro-sub006/internal/feed"
	"github.com/arytiwari/jioastro-sub006/pkg/core"
)

// analyzeParallelism bounds concurrent feed analysis.
const analyzeParallelism = 4

// AnalyzeOptions holds options for the analyze command.
type AnalyzeOptions struct {
	Periods   string // Period tree file for timeline computation
	Now       string // Reference date override (YYYY-MM-DD)
	Save      bool   // Persist the analysis run
	Timelines bool   // Compute timelines for all yogas, not only strong ones
	Format    string // Output format
}

// NewAnalyzeCommand creates the analyze command.
func NewAnalyzeCommand() *cobra.Command {
	opts := &AnalyzeOptions{}

	cmd := &cobra.Command{
		Use:   "analyze <detections.yaml>...",
		Short: "Normalize and deduplicate detection feeds",
		Long: `Parse one or more detection feed files, resolve raw names against the
catalog, and collapse duplicates to one entry per canonical name per
chart. Unrecognized names pass through with standard tier and are
recorded in the review queue.

With --periods, activation timelines are computed for Strong and
Very Strong yogas (--timelines extends this to every resolved yoga).
Multiple files are analyzed in parallel.`,
		Example: `  # Analyze a detection feed
  jioastro analyze data/detections.yaml

  # Analyze with activation timelines
  jioastro analyze data/detections.yaml --periods data/periods.yaml

  # Analyze several charts and persist the runs
  jioastro analyze charts/*.yaml --save

  # Machine-readable output
  jioastro analyze data/detections.yaml --format json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Periods, "periods", "p", "", "Period tree file for timeline computation")
	cmd.Flags().StringVar(&opts.Now, "now", "", "Reference date (YYYY-MM-DD, default today)")
	cmd.Flags().BoolVar(&opts.Save, "save", false, "Persist the analysis to the state store")
	cmd.Flags().BoolVar(&opts.Timelines, "timelines", false, "Compute timelines for every resolved yoga")
	cmd.Flags().StringVar(&opts.Format, "format", "", "Output format (auto|text|markdown|json)")

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string, opts *AnalyzeOptions) error {
	cmdCtx, cleanup, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	eng := cmdCtx.Engine
	r := cmdCtx.Renderer
	if opts.Format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))
	}

	nowOverride, err := parseDateFlag(opts.Now)
	if err != nil {
		return err
	}

	var periods *feed.PeriodsFile
	if opts.Periods != "" {
		periods, err = feed.LoadPeriods(opts.Periods)
		if err != nil {
			return err
		}
	}

	// Analyze feeds in parallel, keeping results in input order
	results := make([]*engine.AnalysisResult, len(args))
	g, gctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(analyzeParallelism)
	for i, path := range args {
		g.Go(func() error {
			df, err := feed.LoadDetections(path)
			if err != nil {
				return err
			}
			res, err := eng.Analyze(gctx, buildAnalyzeRequest(df, periods, nowOverride, opts))
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return analyzeJSON(r, results)
	case output.ModeMarkdown:
		return analyzeMarkdown(r, args, results)
	default:
		return analyzeText(r, args, results)
	}
}

// buildAnalyzeRequest assembles one engine request from a parsed feed.
// The feed's own dates are defaults; --now wins, and a feed without a
// birth date borrows the period file's.
func buildAnalyzeRequest(df *feed.DetectionsFile, periods *feed.PeriodsFile, nowOverride time.Time, opts *AnalyzeOptions) engine.AnalyzeRequest {
	req := engine.AnalyzeRequest{
		ChartID:      df.ChartID,
		Detections:   df.Detections,
		Birth:        df.BirthDate,
		Now:          df.Now,
		Save:         opts.Save,
		AllTimelines: opts.Timelines,
	}
	if periods != nil {
		req.Periods = periods.Periods
		req.PeriodsVersion = periods.Version
		if req.Birth.IsZero() {
			req.Birth = periods.BirthDate
		}
	}
	if !nowOverride.IsZero() {
		req.Now = nowOverride
	}
	if req.Now.IsZero() {
		req.Now = time.Now().UTC()
	}
	return req
}

// parseDateFlag parses a YYYY-MM-DD flag value. Empty input returns the
// zero time.
func parseDateFlag(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return t, nil
}

// analyzeText renders results in styled text format.
func analyzeText(r *output.Renderer, paths []string, results []*engine.AnalysisResult) error {
	for i, res := range results {
		if i > 0 {
			r.Println()
		}
		title := "Analysis"
		if res.ChartID != "" {
			title = "Analysis: " + res.ChartID
		}
		r.Header(1, title)
		r.Muted(paths[i])
		r.Println()

		for j, y := range res.Yogas {
			detail := y.Strength.String()
			if y.Unresolved {
				detail += ", unresolved"
			} else if len(y.Provenance) > 1 {
				detail += fmt.Sprintf(", merged %d", len(y.Provenance))
			}
			r.YogaLine(j+1, y.CanonicalName, y.Tier.String(), detail)
		}
		r.Println()
		r.Printf("%d detections collapsed to %d yogas",
			countDetections(res), len(res.Yogas))
		if res.UnresolvedCount > 0 {
			r.Printf(" (%d unresolved)", res.UnresolvedCount)
		}
		r.Println()

		if len(res.Timelines) > 0 {
			r.Println()
			r.Header(2, "Activation Timelines")
			renderTimelinesText(r, res.Timelines)
		}

		if res.Analysis != nil {
			r.Println()
			r.Success("Analysis saved: " + res.Analysis.ID)
		}
	}
	return nil
}

// analyzeMarkdown renders results in markdown format.
func analyzeMarkdown(r *output.Renderer, paths []string, results []*engine.AnalysisResult) error {
	for i, res := range results {
		title := "Analysis"
		if res.ChartID != "" {
			title = "Analysis: " + res.ChartID
		}
		r.Println(output.FormatHeader(1, title))
		r.Println()
		r.Println(output.FormatKeyValue("File", paths[i]))
		r.Println(output.FormatKeyValue("Yogas", fmt.Sprintf("%d", len(res.Yogas))))
		r.Println(output.FormatKeyValue("Unresolved", fmt.Sprintf("%d", res.UnresolvedCount)))
		r.Println()

		r.Println(output.FormatHeader(2, "Yogas"))
		r.Println()
		for _, y := range res.Yogas {
			line := fmt.Sprintf("- **%s** [%s] %s", y.CanonicalName, y.Tier, y.Strength)
			if y.Unresolved {
				line += " _(unresolved)_"
			}
			if len(y.Provenance) > 1 {
				line += " — from: " + strings.Join(y.Provenance, ", ")
			}
			r.Println(line)
		}
		r.Println()

		if len(res.Timelines) > 0 {
			r.Println(output.FormatHeader(2, "Activation Timelines"))
			r.Println()
			for _, name := range sortedTimelineNames(res.Timelines) {
				tl := res.Timelines[name]
				r.Println(fmt.Sprintf("- **%s**: %s, %d windows", name, tl.Status, len(tl.Windows)))
			}
			r.Println()
		}

		if res.Analysis != nil {
			r.Println(output.FormatKeyValue("Saved", res.Analysis.ID))
			r.Println()
		}
	}
	return nil
}

// analyzeJSON renders results as JSON. A single feed emits one object,
// several feeds an array.
func analyzeJSON(r *output.Renderer, results []*engine.AnalysisResult) error {
	if len(results) == 1 {
		return r.JSON(results[0])
	}
	return r.JSON(results)
}

// renderTimelinesText writes one line per timeline, sorted by name.
func renderTimelinesText(r *output.Renderer, timelines map[string]*core.Timeline) {
	styles := r.Styles()
	for _, name := range sortedTimelineNames(timelines) {
		tl := timelines[name]
		status := string(tl.Status)
		if tl.Status == core.StatusCurrentlyActive {
			status = styles.Success.Render(status)
		}
		line := fmt.Sprintf("  %s %s", styles.YogaName.Render(name), status)
		if len(tl.Windows) > 0 {
			line += styles.Muted.Render(fmt.Sprintf(" (%d windows)", len(tl.Windows)))
		}
		r.Println(line)
		if tl.ActivationAge != "" {
			r.Println("      " + styles.Muted.Render("activation age "+tl.ActivationAge))
		}
	}
}

func sortedTimelineNames(timelines map[string]*core.Timeline) []string {
	names := make([]string, 0, len(timelines))
	for name := range timelines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// countDetections recovers the raw detection count from provenance.
func countDetections(res *engine.AnalysisResult) int {
	n := 0
	for _, y := range res.Yogas {
		n += len(y.Provenance)
	}
	return n
}
