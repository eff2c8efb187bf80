package commands

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/arytiwari/jioastro-sub006/internal/cli/output"
	"github.com/arytiwari/jioastro-sub006/internal/engine"
	"github.com/arytiwari/jioastro-sub006/internal/feed"
	"github.com/arytiwari/jioastro-sub006/pkg/core"
)

const dateLayout = "2006-01-02"

// TimelineOptions holds options for the timeline command.
type TimelineOptions struct {
	Periods string // Period tree file
	Now     string // Reference date override
	Format  string // Output format
}

// NewTimelineCommand creates the timeline command.
func NewTimelineCommand() *cobra.Command {
	opts := &TimelineOptions{}

	cmd := &cobra.Command{
		Use:   "timeline <yoga>",
		Short: "Predict when a yoga activates",
		Long: `Compute the activation timeline for one yoga against a planetary
period tree. The yoga may be named by any known variant spelling.

Windows open while a forming planet rules a period; overlapping windows
become peak periods. The timeline also reports whether the yoga is
currently active relative to the reference date.`,
		Example: `  # When does Gajakesari Yoga activate?
  jioastro timeline "Gajakesari Yoga" --periods data/periods.yaml

  # Variant spellings resolve to the same yoga
  jioastro timeline "Kesari Yoga" --periods data/periods.yaml

  # Evaluate against a past reference date
  jioastro timeline "Raja Yoga" --periods data/periods.yaml --now 2020-06-01`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTimeline(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Periods, "periods", "p", "", "Period tree file (required)")
	cmd.Flags().StringVar(&opts.Now, "now", "", "Reference date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&opts.Format, "format", "", "Output format (auto|text|markdown|json)")
	_ = cmd.MarkFlagRequired("periods")

	return cmd
}

func runTimeline(cmd *cobra.Command, name string, opts *TimelineOptions) error {
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

	nowOverride, err := parseDateFlag(opts.Now)
	if err != nil {
		return err
	}

	periods, err := feed.LoadPeriods(opts.Periods)
	if err != nil {
		return err
	}

	req := engine.TimelineRequest{
		Name:           name,
		Periods:        periods.Periods,
		PeriodsVersion: periods.Version,
		Birth:          periods.BirthDate,
		Now:            nowOverride,
	}
	if req.Now.IsZero() {
		req.Now = time.Now().UTC()
	}

	tl, err := eng.Timeline(cmd.Context(), req)
	if err != nil {
		var nf *core.NotFound
		if errors.As(err, &nf) {
			renderNotFound(r, nf)
		}
		return err
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(tl)
	case output.ModeMarkdown:
		return timelineMarkdown(r, tl)
	default:
		return timelineText(r, tl)
	}
}

// renderNotFound shows a structured not-found result before the command
// fails with exit code 1.
func renderNotFound(r *output.Renderer, nf *core.NotFound) {
	if r.EffectiveMode() == output.ModeJSON {
		_ = r.JSON(map[string]interface{}{
			"error":       "not_found",
			"query":       nf.Query,
			"suggestions": nf.Suggestions,
		})
		return
	}
	r.Error(fmt.Sprintf("no yoga named %q", nf.Query))
	if len(nf.Suggestions) > 0 {
		r.Println()
		r.Println("Did you mean:")
		for _, s := range nf.Suggestions {
			r.Println("  " + r.Styles().YogaName.Render(s))
		}
	}
}

// timelineText renders a timeline in styled text format.
func timelineText(r *output.Renderer, tl *core.Timeline) error {
	styles := r.Styles()

	r.Header(1, tl.CanonicalName)
	status := string(tl.Status)
	switch tl.Status {
	case core.StatusCurrentlyActive:
		status = styles.Success.Render(status)
	case core.StatusIndeterminate:
		status = styles.Warning.Render(status)
	}
	r.Println("Status: " + status)
	if tl.ActivationAge != "" {
		r.Println("Activation age: " + tl.ActivationAge)
	}
	r.Println()

	if len(tl.Windows) == 0 {
		r.Muted("No activation windows.")
	} else {
		t := table.NewWriter()
		t.SetOutputMirror(r.Writer())
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"Planet", "Level", "Start", "End", "Intensity"})
		for _, w := range tl.Windows {
			t.AppendRow(table.Row{
				w.Planet,
				w.Level,
				w.Start.Format(dateLayout),
				w.End.Format(dateLayout),
				w.Intensity,
			})
		}
		t.Render()
	}

	if len(tl.PeakPeriods) > 0 {
		r.Println()
		r.Header(2, "Peak Periods")
		for _, p := range tl.PeakPeriods {
			planets := make([]string, len(p.Planets))
			for i, pl := range p.Planets {
				planets[i] = string(pl)
			}
			r.Printf("  %s to %s  %s\n",
				p.Start.Format(dateLayout),
				p.End.Format(dateLayout),
				styles.Bold.Render(strings.Join(planets, " + ")))
		}
	}

	if len(tl.Recommendations) > 0 {
		r.Println()
		for _, rec := range tl.Recommendations {
			r.Muted(rec)
		}
	}

	return nil
}

// timelineMarkdown renders a timeline in markdown format.
func timelineMarkdown(r *output.Renderer, tl *core.Timeline) error {
	r.Println(output.FormatHeader(1, tl.CanonicalName))
	r.Println()
	r.Println(output.FormatKeyValue("Status", string(tl.Status)))
	if tl.ActivationAge != "" {
		r.Println(output.FormatKeyValue("Activation age", tl.ActivationAge))
	}
	r.Println()

	if len(tl.Windows) > 0 {
		r.Println(output.FormatHeader(2, "Windows"))
		r.Println()
		r.Println("| Planet | Level | Start | End | Intensity |")
		r.Println("|--------|-------|-------|-----|-----------|")
		for _, w := range tl.Windows {
			r.Printf("| %s | %s | %s | %s | %s |\n",
				w.Planet, w.Level,
				w.Start.Format(dateLayout), w.End.Format(dateLayout),
				w.Intensity)
		}
		r.Println()
	}

	if len(tl.PeakPeriods) > 0 {
		r.Println(output.FormatHeader(2, "Peak Periods"))
		r.Println()
		for _, p := range tl.PeakPeriods {
			planets := make([]string, len(p.Planets))
			for i, pl := range p.Planets {
				planets[i] = string(pl)
			}
			r.Printf("- %s to %s: %s\n",
				p.Start.Format(dateLayout),
				p.End.Format(dateLayout),
				strings.Join(planets, " + "))
		}
		r.Println()
	}

	for _, rec := range tl.Recommendations {
		r.Println("> " + rec)
	}

	return nil
}
