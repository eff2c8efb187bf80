package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/spf13/cobra"

	"github.com/arytiwari/jioastro-sub006/internal/cache"
	"github.com/arytiwari/jioastro-sub006/internal/catalog"
	"github.com/arytiwari/jioastro-sub006/internal/cli/config"
	"github.com/arytiwari/jioastro-sub006/internal/cli/output"
	"github.com/arytiwari/jioastro-sub006/internal/feed"
	"github.com/arytiwari/jioastro-sub006/internal/state"
)

// DoctorOptions holds options for the doctor command.
type DoctorOptions struct {
	Format string // Output format: text, markdown, json
}

// NewDoctorCommand creates the doctor command.
func NewDoctorCommand() *cobra.Command {
	opts := &DoctorOptions{}
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Run a project health check",
		Long: `Check that every part of the JioAstro setup is usable.

The doctor command verifies:
- Configuration file and data directory
- Catalog registry build and alias overlay
- Implemented-set file (when configured)
- State store connectivity
- Timeline cache backend

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Markdown format
  - JSON: Machine-readable format`,
		Example: `  # Run health check
  jioastro doctor

  # Output as JSON
  jioastro doctor --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDoctor(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json")

	return cmd
}

// DoctorOutput is the JSON output for the doctor command.
type DoctorOutput struct {
	Checks  []HealthCheck `json:"checks"`
	Healthy bool          `json:"healthy"`
}

// HealthCheck represents a single health check result.
type HealthCheck struct {
	Name   string `json:"name"`
	Group  string `json:"group"`
	Status string `json:"status"` // "pass", "warn", "fail"
	Detail string `json:"detail,omitempty"`
}

func runDoctor(cmd *cobra.Command, opts *DoctorOptions) error {
	// No engine here: doctor must still report when engine construction
	// itself would fail, so each subsystem is probed individually.
	cmdCtx := NewCommandContextWithoutEngine(cmd)
	r := cmdCtx.Renderer

	// Override renderer if format flag is set
	if opts.Format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))
	}

	doctorOutput := buildDoctorOutput(cmd, cmdCtx.Cfg)

	var renderErr error
	switch r.EffectiveMode() {
	case output.ModeJSON:
		renderErr = r.JSON(doctorOutput)
	case output.ModeMarkdown:
		renderErr = renderDoctorMarkdown(r, doctorOutput)
	default:
		renderErr = renderDoctorText(r, doctorOutput)
	}
	if renderErr != nil {
		return renderErr
	}

	if !doctorOutput.Healthy {
		failed := 0
		for _, check := range doctorOutput.Checks {
			if check.Status == "fail" {
				failed++
			}
		}
		return fmt.Errorf("%d health check(s) failed", failed)
	}
	return nil
}

func buildDoctorOutput(cmd *cobra.Command, cfg *config.Config) *DoctorOutput {
	ctx := cmd.Context()
	out := &DoctorOutput{Healthy: true}

	add := func(group, name, status, detail string) {
		out.Checks = append(out.Checks, HealthCheck{Name: name, Group: group, Status: status, Detail: detail})
		if status == "fail" {
			out.Healthy = false
		}
	}

	// Configuration
	if cfgFile := config.GetConfigFileUsed(); cfgFile != "" {
		add("configuration", "config file", "pass", cfgFile)
	} else {
		add("configuration", "config file", "warn", "none found, using defaults")
	}

	if info, err := os.Stat(cfg.DataDir); err != nil {
		add("configuration", "data directory", "fail", fmt.Sprintf("%s does not exist", cfg.DataDir))
	} else if !info.IsDir() {
		add("configuration", "data directory", "fail", fmt.Sprintf("%s is not a directory", cfg.DataDir))
	} else {
		add("configuration", "data directory", "pass", cfg.DataDir)
	}

	// Catalog
	if reg, err := catalog.Build(catalog.BuildOptions{}); err != nil {
		add("catalog", "registry build", "fail", err.Error())
	} else {
		add("catalog", "registry build", "pass",
			fmt.Sprintf("%d entries, %d variant spellings", reg.Count(), reg.VariantCount()))
	}

	if cfg.Overlay == "" {
		add("catalog", "alias overlay", "pass", "not configured")
	} else if overlay, err := catalog.LoadOverlay(cfg.Overlay); err != nil {
		add("catalog", "alias overlay", "fail", err.Error())
	} else if _, err := catalog.Build(catalog.BuildOptions{Overlay: overlay}); err != nil {
		add("catalog", "alias overlay", "fail", err.Error())
	} else {
		aliases := 0
		for _, variants := range overlay {
			aliases += len(variants)
		}
		add("catalog", "alias overlay", "pass", fmt.Sprintf("%d aliases for %d yogas", aliases, len(overlay)))
	}

	if cfg.Implemented == "" {
		add("catalog", "implemented set", "pass", "not configured")
	} else if implemented, err := feed.LoadImplemented(cfg.Implemented); err != nil {
		// Coverage degrades to the full catalog when the list is
		// unreadable, so this is a warning rather than a failure.
		add("catalog", "implemented set", "warn", err.Error())
	} else {
		add("catalog", "implemented set", "pass", fmt.Sprintf("%d names", len(implemented)))
	}

	// Infrastructure
	checkStateStore(ctx, cfg, add)

	cacheCfg := cfg.GetCache()
	if timelineCache, err := cache.Open(ctx, cacheCfg.Backend, cache.RedisOptions{
		Addr:     cacheCfg.Addr,
		Password: cacheCfg.Password,
		DB:       cacheCfg.DB,
	}); err != nil {
		add("infrastructure", "timeline cache", "fail", err.Error())
	} else {
		if err := timelineCache.Ping(ctx); err != nil {
			add("infrastructure", "timeline cache", "fail", err.Error())
		} else {
			add("infrastructure", "timeline cache", "pass", cacheCfg.Backend)
		}
		_ = timelineCache.Close()
	}

	return out
}

func checkStateStore(ctx context.Context, cfg *config.Config, add func(group, name, status, detail string)) {
	stateCfg := cfg.GetState()
	if stateCfg.Driver == "none" {
		add("infrastructure", "state store", "pass", "disabled")
		return
	}

	if (stateCfg.Driver == "" || stateCfg.Driver == "sqlite") && stateCfg.Path != "" {
		if err := os.MkdirAll(filepath.Dir(stateCfg.Path), 0750); err != nil {
			add("infrastructure", "state store", "fail", err.Error())
			return
		}
	}

	store, err := state.Open(ctx, state.Options{
		Driver: stateCfg.Driver,
		Path:   stateCfg.Path,
		DSN:    stateCfg.DSN,
	})
	if err != nil {
		add("infrastructure", "state store", "fail", err.Error())
		return
	}
	defer func() { _ = store.Close() }()

	if err := store.Ping(ctx); err != nil {
		add("infrastructure", "state store", "fail", err.Error())
		return
	}

	detail := stateCfg.Driver
	if stateCfg.Driver == "sqlite" {
		detail = fmt.Sprintf("sqlite %s", stateCfg.Path)
	}
	add("infrastructure", "state store", "pass", detail)
}

func renderDoctorText(r *output.Renderer, out *DoctorOutput) error {
	styles := r.Styles()

	// Header
	r.Println("")
	r.Println(styles.Header1.Render("JioAstro Health Report"))
	r.Println(styles.Muted.Render(strings.Repeat("=", 55)))
	r.Println("")

	currentGroup := ""
	titleCaser := cases.Title(language.English)
	for _, check := range out.Checks {
		if check.Group != currentGroup {
			currentGroup = check.Group
			r.Println(styles.Bold.Render("   " + titleCaser.String(currentGroup)))
			r.Println(styles.Muted.Render("   " + strings.Repeat("-", 40)))
		}

		icon := styles.StatusSuccess.String()
		switch check.Status {
		case "warn":
			icon = styles.Warning.Render("!")
		case "fail":
			icon = styles.StatusFailed.String()
		}

		line := fmt.Sprintf("%s %s", icon, check.Name)
		if check.Detail != "" {
			line += ": " + check.Detail
		}
		r.Println("   " + line)
	}
	r.Println("")

	r.Println(styles.Muted.Render(strings.Repeat("=", 55)))
	if out.Healthy {
		r.Success("All checks passed")
	} else {
		r.Error("Problems found, see failed checks above")
	}
	r.Println("")

	return nil
}

func renderDoctorMarkdown(r *output.Renderer, out *DoctorOutput) error {
	r.Println("# JioAstro Health Report")
	r.Println("")

	currentGroup := ""
	titleCaser := cases.Title(language.English)
	for _, check := range out.Checks {
		if check.Group != currentGroup {
			currentGroup = check.Group
			r.Println("## " + titleCaser.String(currentGroup))
			r.Println("")
		}

		status := strings.ToUpper(check.Status)
		line := fmt.Sprintf("- **[%s]** %s", status, check.Name)
		if check.Detail != "" {
			line += ": " + check.Detail
		}
		r.Println(line)
	}
	r.Println("")

	if out.Healthy {
		r.Println("All checks passed.")
	} else {
		r.Println("Problems found, see failed checks above.")
	}
	r.Println("")

	return nil
}
