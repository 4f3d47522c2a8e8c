// Package cli defines the datacard command tree.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/lucky7xz/datacard/internal/config"
	"github.com/lucky7xz/datacard/internal/core"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Env is what every command needs from the process.
type Env struct {
	// ConfigDir holds config.toml and datacard.log. Empty disables file
	// logging, which tests rely on.
	ConfigDir string
	Config    config.Config
	Out       io.Writer
	Err       io.Writer
}

// NewRootCommand builds the command tree.
func NewRootCommand(env *Env) *cobra.Command {
	if env.Out == nil {
		env.Out = os.Stdout
	}
	if env.Err == nil {
		env.Err = os.Stderr
	}
	env.Config.ApplyDefaults()

	var (
		verbose bool
		restore = func() {}
	)

	root := &cobra.Command{
		Use:   "datacard",
		Short: "Responsive grids of data cards",
		Long: `datacard renders lists of records as responsive grids of cards.

Each record becomes a card: an optional title and image, then one line per
field. Fields typed as badges become coloured pills. Clickable grids remember
the card you picked across reruns.

Run without arguments to open the bundled demo page.`,
		Version:       config.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if env.ConfigDir == "" {
				return nil
			}
			var err error
			restore, err = core.SetupLogging(filepath.Join(env.ConfigDir, "datacard.log"), verbose || env.Config.Verbose)
			if err != nil {
				return fmt.Errorf("logging: %w", err)
			}
			zap.L().Debug("command started", zap.String("command", cmd.CommandPath()), zap.Strings("args", args))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			restore()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(cmd, env, "")
		},
	}
	root.SetOut(env.Out)
	root.SetErr(env.Err)
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level")

	root.AddCommand(
		newViewCommand(env),
		newRenderCommand(env),
		newServeCommand(env),
		newDocsCommand(),
		newDemoCommand(),
	)
	return root
}
