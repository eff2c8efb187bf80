package commands

import (
	"errors"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/arytiwari/jioastro-sub006/internal/cli/output"
	"github.com/arytiwari/jioastro-sub006/pkg/core"
)

// ReviewListOptions holds options for the review list command.
type ReviewListOptions struct {
	Status string // Filter by status
	Format string // Output format
}

// NewReviewCommand creates the review command group.
func NewReviewCommand() *cobra.Command {
	listOpts := &ReviewListOptions{}

	cmd := &cobra.Command{
		Use:   "review",
		Short: "Work the unresolved-name review queue",
		Long: `Manage raw detection names that matched no catalog variant.

Unresolved names accumulate in the review queue during analysis.
Resolving an entry records which canonical yoga it should map to;
adding the spelling to the alias overlay remains a manual step.`,
		Example: `  # Pending entries
  jioastro review

  # Everything, including resolved and dismissed
  jioastro review list --status all

  # Map an entry to its canonical yoga
  jioastro review resolve 6d2c... --canonical "Gajakesari Yoga"

  # Drop a nonsense entry
  jioastro review dismiss 6d2c...`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReviewList(cmd, listOpts)
		},
	}

	cmd.Flags().StringVar(&listOpts.Status, "status", "pending", "Filter by status (pending|resolved|dismissed|all)")
	cmd.Flags().StringVar(&listOpts.Format, "format", "", "Output format (auto|text|markdown|json)")

	cmd.AddCommand(newReviewListCommand())
	cmd.AddCommand(newReviewResolveCommand())
	cmd.AddCommand(newReviewDismissCommand())

	return cmd
}

func newReviewListCommand() *cobra.Command {
	opts := &ReviewListOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List review queue entries",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReviewList(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Status, "status", "pending", "Filter by status (pending|resolved|dismissed|all)")
	cmd.Flags().StringVar(&opts.Format, "format", "", "Output format (auto|text|markdown|json)")

	return cmd
}

func newReviewResolveCommand() *cobra.Command {
	var canonical string
	var format string

	cmd := &cobra.Command{
		Use:   "resolve <id>",
		Short: "Resolve an entry to a canonical yoga",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReviewResolve(cmd, args[0], canonical, format)
		},
	}

	cmd.Flags().StringVar(&canonical, "canonical", "", "Canonical yoga name to map the entry to (required)")
	cmd.Flags().StringVar(&format, "format", "", "Output format (auto|text|markdown|json)")
	_ = cmd.MarkFlagRequired("canonical")

	return cmd
}

func newReviewDismissCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "dismiss <id>",
		Short: "Dismiss an entry without resolution",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReviewDismiss(cmd, args[0], format)
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "Output format (auto|text|markdown|json)")

	return cmd
}

// parseReviewStatus maps the --status flag to a store filter.
func parseReviewStatus(s string) (core.ReviewStatus, error) {
	switch s {
	case "", "all":
		return "", nil
	case "pending":
		return core.ReviewPending, nil
	case "resolved":
		return core.ReviewResolved, nil
	case "dismissed":
		return core.ReviewDismissed, nil
	default:
		return "", fmt.Errorf("unknown status %q (valid: pending, resolved, dismissed, all)", s)
	}
}

func runReviewList(cmd *cobra.Command, opts *ReviewListOptions) error {
	status, err := parseReviewStatus(opts.Status)
	if err != nil {
		return err
	}

	cmdCtx, cleanup, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	r := cmdCtx.Renderer
	if opts.Format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))
	}

	entries, err := cmdCtx.Engine.Store().ListReview(cmd.Context(), status)
	if err != nil {
		if errors.Is(err, core.ErrStoreNotConfigured) {
			return fmt.Errorf("review queue needs a state store\nHint: Set state.driver in jioastro.yaml")
		}
		return err
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(entries)
	case output.ModeMarkdown:
		return reviewListMarkdown(r, entries, opts.Status)
	default:
		return reviewListText(r, entries, opts.Status)
	}
}

// reviewListText renders queue entries as a styled table.
func reviewListText(r *output.Renderer, entries []*core.ReviewEntry, status string) error {
	r.Header(1, fmt.Sprintf("Review Queue (%d %s)", len(entries), status))

	if len(entries) == 0 {
		r.Muted("Queue is empty.")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.Writer())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "Raw Name", "Seen", "Last Seen", "Status", "Canonical"})
	for _, e := range entries {
		t.AppendRow(table.Row{
			e.ID,
			e.RawName,
			e.Occurrences,
			e.LastSeen.Format(dateLayout),
			e.Status,
			e.ResolvedCanonical,
		})
	}
	t.Render()
	return nil
}

// reviewListMarkdown renders queue entries in markdown format.
func reviewListMarkdown(r *output.Renderer, entries []*core.ReviewEntry, status string) error {
	r.Println(output.FormatHeader(1, fmt.Sprintf("Review Queue (%d %s)", len(entries), status)))
	r.Println()

	if len(entries) == 0 {
		r.Println("Queue is empty.")
		return nil
	}

	r.Println("| ID | Raw Name | Seen | Last Seen | Status | Canonical |")
	r.Println("|----|----------|------|-----------|--------|-----------|")
	for _, e := range entries {
		r.Printf("| %s | %s | %d | %s | %s | %s |\n",
			e.ID, e.RawName, e.Occurrences,
			e.LastSeen.Format(dateLayout), e.Status, e.ResolvedCanonical)
	}
	return nil
}

func runReviewResolve(cmd *cobra.Command, id, canonical, format string) error {
	cmdCtx, cleanup, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	r := cmdCtx.Renderer
	if format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(format))
	}

	// The chosen name must be a real catalog entry; variant spellings are
	// resolved to their canonical form first.
	def, err := cmdCtx.Engine.Lookup(canonical)
	if err != nil {
		var nf *core.NotFound
		if errors.As(err, &nf) {
			renderNotFound(r, nf)
		}
		return err
	}

	if err := cmdCtx.Engine.Store().ResolveReview(cmd.Context(), id, def.CanonicalName); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return fmt.Errorf("no review entry with id %q", id)
		}
		return err
	}

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(map[string]string{
			"id":        id,
			"status":    string(core.ReviewResolved),
			"canonical": def.CanonicalName,
		})
	}
	r.Success(fmt.Sprintf("Resolved %s to %s", id, def.CanonicalName))
	r.Muted("Add the spelling to the alias overlay to make the mapping permanent.")
	return nil
}

func runReviewDismiss(cmd *cobra.Command, id, format string) error {
	cmdCtx, cleanup, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	r := cmdCtx.Renderer
	if format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(format))
	}

	if err := cmdCtx.Engine.Store().DismissReview(cmd.Context(), id); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return fmt.Errorf("no review entry with id %q", id)
		}
		return err
	}

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(map[string]string{
			"id":     id,
			"status": string(core.ReviewDismissed),
		})
	}
	r.Success("Dismissed " + id)
	return nil
}
