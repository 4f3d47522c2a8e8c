package cli

import (
	"fmt"
	"net"
	"os/signal"
	"strings"
	"syscall"

	"github.com/lucky7xz/datacard/internal/native"
	"github.com/lucky7xz/datacard/internal/page"
	"github.com/lucky7xz/datacard/internal/web"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCommand(env *Env) *cobra.Command {
	var (
		addr string
		open bool
	)
	cmd := &cobra.Command{
		Use:   "serve [page.toml]",
		Short: "Serve a page as HTML",
		Long: `Serves a page over HTTP. Every browser gets its own selections. Changes to
the page file or its data files reload open browsers. Without an argument the
bundled demo page is served.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("addr") {
				addr = env.Config.Addr
			}
			load := page.Demo
			watchFiles := false
			if len(args) == 1 {
				path := args[0]
				load = func() (*page.Doc, error) { return page.Load(path) }
				watchFiles = true
			}

			srv, err := web.New(web.Options{Load: load, Theme: env.Config.Theme})
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			url := browserURL(addr)
			fmt.Fprintf(cmd.OutOrStdout(), "Serving on %s (ctrl+c to stop)\n", url)
			if open {
				if err := native.Open(url); err != nil {
					zap.L().Warn("could not open browser", zap.Error(err))
				}
			}
			return srv.Run(ctx, addr, watchFiles)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8501", "listen address")
	cmd.Flags().BoolVar(&open, "open", false, "open the page in the default browser")
	return cmd
}

// browserURL turns a listen address into a URL a local browser can open.
func browserURL(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return "http://" + addr
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	if strings.Contains(host, ":") {
		host = "[" + host + "]"
	}
	return "http://" + host + ":" + port
}
