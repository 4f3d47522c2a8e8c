package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/lucky7xz/datacard/internal/card"
	"github.com/lucky7xz/datacard/internal/datacard"
	"github.com/lucky7xz/datacard/internal/grid"
	"github.com/lucky7xz/datacard/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// fallbackColumns is used when stdout is not a terminal and --width is unset.
const fallbackColumns = 80

type renderFlags struct {
	titleField string
	imageField string
	badges     []string
	cardWidth  int
	maxHeight  int
	width      int
	format     string
}

func newRenderCommand(env *Env) *cobra.Command {
	f := renderFlags{}
	cmd := &cobra.Command{
		Use:   "render <records.json|records.yaml|->",
		Short: "Print a grid of cards once",
		Long: `Lays out a records file as a grid and prints it. The grid is as wide as the
terminal unless --width is given. Use - to read records from stdin; pick the
encoding with --format.`,
		Example: `  datacard render employees.json --title-field name --image-field image --badge department
  curl -s https://example.com/items.json | datacard render - --card-width 200`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := readRecords(args[0], f.format, cmd.InOrStdin())
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("card-width") {
				f.cardWidth = env.Config.CardWidth
			}
			if !cmd.Flags().Changed("max-height") {
				f.maxHeight = env.Config.MaxHeight
			}
			if f.width <= 0 {
				f.width = terminalColumns()
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderRecords(records, f))
			return nil
		},
	}
	cmd.Flags().StringVar(&f.titleField, "title-field", "", "field shown as the card title")
	cmd.Flags().StringVar(&f.imageField, "image-field", "", "field holding an image URL")
	cmd.Flags().StringArrayVar(&f.badges, "badge", nil, "field rendered as badges (repeatable)")
	cmd.Flags().IntVar(&f.cardWidth, "card-width", grid.DefaultCardWidth, "card width in pixels")
	cmd.Flags().IntVar(&f.maxHeight, "max-height", grid.DefaultMaxHeight, "card height cap in pixels")
	cmd.Flags().IntVar(&f.width, "width", 0, "output width in columns (default: terminal width)")
	cmd.Flags().StringVar(&f.format, "format", string(card.FormatJSON), "encoding of stdin records: json or yaml")
	return cmd
}

func readRecords(arg, format string, stdin io.Reader) ([]card.Record, error) {
	if arg != "-" {
		return card.LoadRecords(arg)
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return card.ParseRecords(data, card.Format(format))
}

// renderRecords lays records out for a terminal of f.width columns.
func renderRecords(records []card.Record, f renderFlags) string {
	types := make(card.FieldTypes, len(f.badges))
	for _, b := range f.badges {
		types[b] = string(card.KindBadge)
	}
	opts := datacard.Options{
		TitleField: f.titleField,
		ImageField: f.imageField,
		FieldTypes: types,
		CardWidth:  f.cardWidth,
		MaxHeight:  f.maxHeight,
	}
	g := datacard.Layout(records, opts, f.width*grid.TerminalMetrics.CellWidth, grid.TerminalMetrics)
	return ui.RenderGrid(g, -1, false)
}

func terminalColumns() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return fallbackColumns
}
