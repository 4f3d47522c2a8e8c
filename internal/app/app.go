package app

import (
	"fmt"
	"os"

	"github.com/lucky7xz/datacard/internal/cli"
	"github.com/lucky7xz/datacard/internal/config"
)

// Run prepares the config directory and hands the arguments to the command
// tree. It returns the process exit code.
func Run() int {
	configDir, err := config.GetConfigDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not get config dir: %v\n", err)
		return 1
	}
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "could not create config dir: %v\n", err)
		return 1
	}

	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		// A broken config file should not lock the user out.
		fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
		cfg = config.DefaultConfig()
	}

	root := cli.NewRootCommand(&cli.Env{ConfigDir: configDir, Config: cfg})
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
