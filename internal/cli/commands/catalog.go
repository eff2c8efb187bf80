package commands

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/arytiwari/jioastro-sub006/internal/cli/output"
	"github.com/arytiwari/jioastro-sub006/pkg/core"
)

// CatalogOptions holds options for the catalog command.
type CatalogOptions struct {
	Tier   string // Filter by tier
	Area   string // Filter by life area
	Search string // Substring filter on names
	Format string // Output format
}

// NewCatalogCommand creates the catalog command.
func NewCatalogCommand() *cobra.Command {
	opts := &CatalogOptions{}

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the yoga catalog",
		Long: `List every catalog entry in registry order, optionally filtered by
tier, life area, or a name substring.

The search filter matches canonical names and variant spellings,
ignoring case.`,
		Example: `  # The whole catalog
  jioastro catalog

  # Major positive yogas only
  jioastro catalog --tier major_positive

  # Wealth yogas mentioning lakshmi
  jioastro catalog --area wealth --search lakshmi

  # Machine-readable output
  jioastro catalog --format json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCatalog(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Tier, "tier", "", "Filter by tier (major_positive|major_challenge|standard|minor|subtle)")
	cmd.Flags().StringVar(&opts.Area, "area", "", "Filter by life area")
	cmd.Flags().StringVarP(&opts.Search, "search", "s", "", "Filter by name substring")
	cmd.Flags().StringVar(&opts.Format, "format", "", "Output format (auto|text|markdown|json)")

	_ = cmd.RegisterFlagCompletionFunc("tier", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		names := make([]string, len(core.AllTiers))
		for i, t := range core.AllTiers {
			names[i] = string(t)
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("area", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		names := make([]string, len(core.AllLifeAreas))
		for i, a := range core.AllLifeAreas {
			names[i] = string(a)
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func runCatalog(cmd *cobra.Command, opts *CatalogOptions) error {
	cmdCtx, cleanup, err := NewCatalogContext(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	r := cmdCtx.Renderer
	if opts.Format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))
	}

	defs, err := filterCatalog(cmdCtx.Engine.Registry().Definitions(), opts)
	if err != nil {
		return err
	}

	reg := cmdCtx.Engine.Registry()
	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(map[string]interface{}{
			"version": reg.Version(),
			"count":   len(defs),
			"yogas":   defs,
		})
	case output.ModeMarkdown:
		return catalogMarkdown(r, defs, reg.Version())
	default:
		return catalogText(r, defs, reg.Version())
	}
}

// filterCatalog applies tier, area, and search filters in registry order.
func filterCatalog(defs []*core.YogaDefinition, opts *CatalogOptions) ([]*core.YogaDefinition, error) {
	var tier core.Tier
	if opts.Tier != "" {
		parsed, ok := core.ParseTier(opts.Tier)
		if !ok {
			return nil, fmt.Errorf("unknown tier %q (valid: major_positive, major_challenge, standard, minor, subtle)", opts.Tier)
		}
		tier = parsed
	}

	var area core.LifeArea
	if opts.Area != "" {
		parsed, ok := core.ParseLifeArea(opts.Area)
		if !ok {
			return nil, fmt.Errorf("unknown life area %q", opts.Area)
		}
		area = parsed
	}

	search := strings.ToLower(strings.TrimSpace(opts.Search))

	filtered := make([]*core.YogaDefinition, 0, len(defs))
	for _, def := range defs {
		if tier != "" && def.Tier != tier {
			continue
		}
		if area != "" && def.LifeArea != area {
			continue
		}
		if search != "" && !matchesSearch(def, search) {
			continue
		}
		filtered = append(filtered, def)
	}
	return filtered, nil
}

// matchesSearch reports whether the search term appears in the canonical
// name or any variant, ignoring case.
func matchesSearch(def *core.YogaDefinition, search string) bool {
	if strings.Contains(strings.ToLower(def.CanonicalName), search) {
		return true
	}
	for _, v := range def.VariantNames {
		if strings.Contains(strings.ToLower(v), search) {
			return true
		}
	}
	return false
}

// catalogText renders the catalog as a styled table.
func catalogText(r *output.Renderer, defs []*core.YogaDefinition, version string) error {
	r.Header(1, fmt.Sprintf("Yoga Catalog (%d entries)", len(defs)))

	if len(defs) == 0 {
		r.Muted("No entries match the filters.")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.Writer())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Name", "Tier", "Life Area", "Planets", "Variants"})
	for _, def := range defs {
		t.AppendRow(table.Row{
			def.CanonicalName,
			def.Tier,
			def.LifeArea,
			joinPlanets(def.FormingPlanets),
			len(def.VariantNames),
		})
	}
	t.Render()

	r.Muted("registry " + version)
	return nil
}

// catalogMarkdown renders the catalog in markdown format.
func catalogMarkdown(r *output.Renderer, defs []*core.YogaDefinition, version string) error {
	r.Println(output.FormatHeader(1, fmt.Sprintf("Yoga Catalog (%d entries)", len(defs))))
	r.Println()
	r.Println(output.FormatKeyValue("Registry", version))
	r.Println()

	if len(defs) == 0 {
		r.Println("No entries match the filters.")
		return nil
	}

	r.Println("| Name | Tier | Life Area | Planets |")
	r.Println("|------|------|-----------|---------|")
	for _, def := range defs {
		r.Printf("| %s | %s | %s | %s |\n",
			def.CanonicalName, def.Tier, def.LifeArea, joinPlanets(def.FormingPlanets))
	}
	return nil
}
