package cli

import (
	"fmt"
	"path/filepath"

	"github.com/lucky7xz/datacard/internal/page"
	"github.com/lucky7xz/datacard/internal/ui"
	"github.com/spf13/cobra"
)

func newDocsCommand() *cobra.Command {
	var raw bool
	cmd := &cobra.Command{
		Use:   "docs",
		Short: "Show the component and page file reference",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			md := page.Docs()
			if raw {
				fmt.Fprint(cmd.OutOrStdout(), md)
				return nil
			}
			out, err := ui.RenderMarkdown(md, min(terminalColumns(), 100))
			if err != nil {
				return fmt.Errorf("render docs: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "print the markdown source")
	return cmd
}

func newDemoCommand() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "demo [dir]",
		Short: "Write the demo page and its data into a directory",
		Long: `Copies the bundled demo page and its data files into dir (default
./datacard-demo). Existing files are kept unless --force is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "datacard-demo"
			if len(args) == 1 {
				dir = args[0]
			}
			written, err := page.WriteDemo(dir, force)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, f := range written {
				fmt.Fprintf(out, "  wrote %s\n", f)
			}
			if len(written) == 0 {
				fmt.Fprintf(out, "Nothing written; %s already has the demo files (use --force to overwrite)\n", dir)
				return nil
			}
			fmt.Fprintf(out, "\n✓ Demo ready. Try: datacard view %s\n", filepath.Join(dir, "page.toml"))
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing files")
	return cmd
}
