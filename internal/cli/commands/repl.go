package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/arytiwari/jioastro-sub006/internal/catalog"
	"github.com/arytiwari/jioastro-sub006/pkg/core"
)

// NewReplCommand creates the repl command.
func NewReplCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactive catalog browser",
		Long: `Start an interactive encyclopedia session.

Type any yoga name (canonical or variant spelling) to look it up.
Dot-commands browse the catalog: .tiers, .areas, .variants, .stats.`,
		Example: `  jioastro repl`,
		Args:    cobra.NoArgs,
		RunE:    runRepl,
	}
}

func runRepl(cmd *cobra.Command, _ []string) error {
	cmdCtx, cleanup, err := NewCatalogContext(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	reg := cmdCtx.Engine.Registry()
	r := cmdCtx.Renderer

	// History lives next to the state database, even when the store itself
	// is disabled for this session.
	historyFile := ""
	if statePath := cmdCtx.Cfg.GetState().Path; statePath != "" {
		historyDir := filepath.Dir(statePath)
		if err := os.MkdirAll(historyDir, 0750); err == nil {
			historyFile = filepath.Join(historyDir, "repl_history")
		}
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "jioastro> ",
		HistoryFile:     historyFile,
		AutoComplete:    newYogaCompleter(reg),
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "JioAstro catalog REPL (%d yogas, registry %s)\n", reg.Count(), reg.Version())
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Type a yoga name to look it up, .help for commands, .quit to exit")
	_, _ = fmt.Fprintln(cmd.OutOrStdout())

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ".") {
			if line == ".quit" || line == ".exit" {
				break
			}
			handleReplCommand(cmd, cmdCtx, line)
			continue
		}

		def, err := cmdCtx.Engine.Lookup(line)
		if err != nil {
			var nf *core.NotFound
			if errors.As(err, &nf) {
				renderNotFound(r, nf)
			} else {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			}
			continue
		}

		if err := lookupText(r, def); err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout())
	}

	return nil
}

func handleReplCommand(cmd *cobra.Command, cmdCtx *CommandContext, line string) {
	reg := cmdCtx.Engine.Registry()
	r := cmdCtx.Renderer
	parts := strings.Fields(line)
	command := strings.ToLower(parts[0])

	switch command {
	case ".help":
		printReplHelp(cmd.OutOrStdout())

	case ".tiers":
		counts := make(map[core.Tier]int, len(core.AllTiers))
		for _, def := range reg.Definitions() {
			counts[def.Tier]++
		}
		for _, tier := range core.AllTiers {
			r.Printf("%-16s %d\n", tier, counts[tier])
		}

	case ".areas":
		counts := make(map[core.LifeArea]int, len(core.AllLifeAreas))
		for _, def := range reg.Definitions() {
			counts[def.LifeArea]++
		}
		for _, area := range core.AllLifeAreas {
			r.Printf("%-16s %d\n", area, counts[area])
		}

	case ".variants":
		if len(parts) < 2 {
			_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Usage: .variants <name>")
			return
		}
		name := strings.Join(parts[1:], " ")
		def, err := cmdCtx.Engine.Lookup(name)
		if err != nil {
			var nf *core.NotFound
			if errors.As(err, &nf) {
				renderNotFound(r, nf)
			} else {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			}
			return
		}
		r.Println(r.Styles().Bold.Render(def.CanonicalName))
		if len(def.VariantNames) == 0 {
			r.Muted("no variant spellings")
			return
		}
		for _, v := range def.VariantNames {
			r.Printf("  %s\n", v)
		}

	case ".stats":
		r.Printf("registry:  %s\n", reg.Version())
		r.Printf("built at:  %s\n", reg.BuiltAt().Format("2006-01-02 15:04:05 MST"))
		r.Printf("entries:   %d\n", reg.Count())
		r.Printf("variants:  %d\n", reg.VariantCount())

	case ".clear":
		fmt.Print("\033[H\033[2J")

	default:
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Unknown command: %s (type .help for commands)\n", command)
	}
}

func printReplHelp(w io.Writer) {
	help := `
Commands:
  .help            Show this help message
  .tiers           Entry counts per category tier
  .areas           Entry counts per life area
  .variants <name> Variant spellings for a yoga
  .stats           Registry snapshot details
  .clear           Clear the screen
  .quit / .exit    Exit the REPL

Tips:
  - Any variant spelling resolves to its canonical entry
  - Use arrow keys to navigate history
  - Tab completion works for canonical names
`
	_, _ = fmt.Fprintln(w, help)
}

// newYogaCompleter creates a readline completer for canonical names.
func newYogaCompleter(reg *catalog.Registry) *readline.PrefixCompleter {
	defs := reg.Definitions()

	items := make([]readline.PrefixCompleterInterface, 0, len(defs)+7)
	for _, def := range defs {
		items = append(items, readline.PcItem(def.CanonicalName))
	}

	items = append(items,
		readline.PcItem(".help"),
		readline.PcItem(".tiers"),
		readline.PcItem(".areas"),
		readline.PcItem(".variants"),
		readline.PcItem(".stats"),
		readline.PcItem(".clear"),
		readline.PcItem(".quit"),
		readline.PcItem(".exit"),
	)

	return readline.NewPrefixCompleter(items...)
}
