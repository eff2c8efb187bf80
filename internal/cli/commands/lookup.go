package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arytiwari/jioastro-sub006/internal/cli/output"
	"github.com/arytiwari/jioastro-sub006/pkg/core"
)

// LookupOptions holds options for the lookup command.
type LookupOptions struct {
	Format string // Output format
}

// NewLookupCommand creates the lookup command.
func NewLookupCommand() *cobra.Command {
	opts := &LookupOptions{}

	cmd := &cobra.Command{
		Use:   "lookup <name>",
		Short: "Look up a yoga in the catalog",
		Long: `Show the catalog entry for a yoga. The name may be any known variant
spelling; case, extra whitespace, and hyphens are ignored.

An unknown name prints suggestions and exits with code 1.`,
		Example: `  # Look up by canonical name
  jioastro lookup "Gajakesari Yoga"

  # Variant spellings work too
  jioastro lookup "gaja kesari"

  # Machine-readable output
  jioastro lookup "Budha-Aditya Yoga" --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.Format, "format", "", "Output format (auto|text|markdown|json)")

	return cmd
}

func runLookup(cmd *cobra.Command, name string, opts *LookupOptions) error {
	cmdCtx, cleanup, err := NewCatalogContext(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	r := cmdCtx.Renderer
	if opts.Format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))
	}

	def, err := cmdCtx.Engine.Lookup(name)
	if err != nil {
		var nf *core.NotFound
		if errors.As(err, &nf) {
			renderNotFound(r, nf)
		}
		return err
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(def)
	case output.ModeMarkdown:
		return lookupMarkdown(r, def)
	default:
		return lookupText(r, def)
	}
}

// lookupText renders a definition in styled text format.
func lookupText(r *output.Renderer, def *core.YogaDefinition) error {
	styles := r.Styles()

	r.Header(1, def.CanonicalName)
	r.Println("Tier:      " + string(def.Tier))
	if def.LifeArea != "" {
		r.Println("Life area: " + string(def.LifeArea))
	}
	if len(def.FormingPlanets) > 0 {
		r.Println("Planets:   " + joinPlanets(def.FormingPlanets))
	}
	if def.Formation != "" {
		r.Println()
		r.Println(def.Formation)
	}
	if len(def.VariantNames) > 0 {
		r.Println()
		r.Println(styles.Muted.Render("Also known as: " + strings.Join(def.VariantNames, ", ")))
	}
	return nil
}

// lookupMarkdown renders a definition in markdown format.
func lookupMarkdown(r *output.Renderer, def *core.YogaDefinition) error {
	r.Println(output.FormatHeader(1, def.CanonicalName))
	r.Println()
	r.Println(output.FormatKeyValue("Tier", string(def.Tier)))
	if def.LifeArea != "" {
		r.Println(output.FormatKeyValue("Life area", string(def.LifeArea)))
	}
	if len(def.FormingPlanets) > 0 {
		r.Println(output.FormatKeyValue("Forming planets", joinPlanets(def.FormingPlanets)))
	}
	if def.Formation != "" {
		r.Println()
		r.Println(def.Formation)
	}
	if len(def.VariantNames) > 0 {
		r.Println()
		r.Println(output.FormatKeyValue("Also known as", strings.Join(def.VariantNames, ", ")))
	}
	return nil
}

// joinPlanets formats a planet list for display.
func joinPlanets(planets []core.Planet) string {
	names := make([]string, len(planets))
	for i, p := range planets {
		names[i] = string(p)
	}
	return strings.Join(names, ", ")
}
