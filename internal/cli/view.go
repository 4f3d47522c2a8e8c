package cli

import (
	"encoding/json"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lucky7xz/datacard/internal/page"
	"github.com/lucky7xz/datacard/internal/ui"
	"github.com/spf13/cobra"
)

func newViewCommand(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "view [page.toml]",
		Short: "Browse a page in the terminal",
		Long: `Opens a page in the terminal. Without an argument the bundled demo page is
shown. The page file and its data files are watched and every change reruns
the page; selections survive the rerun.

On exit the selected record of every clickable grid is printed as JSON.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return runView(cmd, env, path)
		},
	}
}

func runView(cmd *cobra.Command, env *Env, path string) error {
	opts := ui.Options{Config: env.Config, Load: page.Demo}
	if path != "" {
		if _, err := page.Load(path); err != nil {
			return err
		}
		opts.Load = func() (*page.Doc, error) { return page.Load(path) }
		opts.Watch = true
	}

	m := ui.NewModel(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	result, err := p.Run()
	if err != nil {
		m.Close()
		return fmt.Errorf("terminal: %w", err)
	}
	final, ok := result.(ui.Model)
	if !ok {
		m.Close()
		return nil
	}
	// The final model owns whichever watcher the session ended with.
	final.Close()

	sel := final.Selections()
	if len(sel) == 0 {
		return nil
	}
	out, err := json.MarshalIndent(sel, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
