package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arytiwari/jioastro-sub006/internal/cli/output"
)

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	var force bool
	var example bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new JioAstro project",
		Long: `Initialize a new JioAstro project with default directory structure and configuration.

This creates:
  - data/ directory for detection feeds and period trees
  - jioastro.yaml configuration file

Use --example to also scaffold sample detections, a Vimshottari period
tree, an alias overlay, and an implemented set.`,
		Example: `  # Initialize in current directory
  jioastro init

  # Initialize with sample data files
  jioastro init --example

  # Initialize in a new directory
  jioastro init my-charts --example

  # Force overwrite existing config
  jioastro init --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			// Create renderer
			cfg := getConfig()
			mode := output.Mode(cfg.OutputFormat)
			r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

			if example {
				return runInitExample(r, dir, force)
			}
			return runInit(r, dir, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing configuration")
	cmd.Flags().BoolVar(&example, "example", false, "Scaffold sample detection, period, and overlay files")

	return cmd
}

func runInit(r *output.Renderer, dir string, force bool) error {
	if err := prepareProjectDir(dir, force); err != nil {
		return err
	}

	if err := copyTemplate("minimal", dir, force); err != nil {
		return fmt.Errorf("failed to initialize project: %w", err)
	}
	if err := os.MkdirAll(dir+"/data", 0750); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	// List created files
	files, _ := listTemplateFiles("minimal")
	for _, f := range files {
		r.StatusLine(f, "success", "")
	}
	r.StatusLine("data/", "success", "")

	r.Println("")
	r.Success("JioAstro project initialized!")
	r.Println("")
	r.Println("Next steps:")
	r.Println("  1. Drop detector output into data/detections.yaml")
	r.Println("  2. Export the period tree to data/periods.yaml")
	r.Println("  3. Run 'jioastro analyze data/detections.yaml --periods data/periods.yaml'")
	r.Println("  4. Run 'jioastro review list' to triage unrecognized spellings")

	return nil
}

func runInitExample(r *output.Renderer, dir string, force bool) error {
	if err := prepareProjectDir(dir, force); err != nil {
		return err
	}

	if err := copyTemplate("example", dir, force); err != nil {
		return fmt.Errorf("failed to initialize project: %w", err)
	}

	// List created files by category
	files, _ := listTemplateFiles("example")
	groups := groupTemplateFiles(files)

	r.Header(2, "Configuration")
	for _, f := range groups["config"] {
		r.StatusLine(f, "success", "")
	}

	r.Println("")
	r.Header(2, "Data")
	for _, f := range groups["data"] {
		r.StatusLine(f, "success", "")
	}

	r.Println("")
	r.Success("JioAstro project initialized with sample data!")
	r.Println("")
	r.Println("Next steps:")
	r.Println("  jioastro analyze data/detections.yaml --periods data/periods.yaml")
	r.Println("  jioastro timeline \"Gaja Kesari Yoga\" --periods data/periods.yaml")
	r.Println("  jioastro coverage")
	r.Println("  jioastro serve")

	return nil
}

// prepareProjectDir creates the target directory and guards against
// clobbering an existing configuration.
func prepareProjectDir(dir string, force bool) error {
	if dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	configPath := dir + "/jioastro.yaml"
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("jioastro.yaml already exists. Use --force to overwrite")
	}
	return nil
}
