package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/vango-dev/ffui/internal/todo"
	"github.com/vango-dev/ffui/pkg/metrics"
	"github.com/vango-dev/ffui/pkg/reactive"
	"github.com/vango-dev/ffui/pkg/server"
)

func serveCmd(opts *options) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the live host",
		Long: `Serve the demo app. Every browser tab gets its own session with
its own copy of the component state.

Examples:
  ffui serve
  ffui serve --addr=:3000
  FFUI_ADDR=0.0.0.0:8080 ffui serve -c prod.toml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr != "" {
				opts.cfg.Server.Addr = addr
			}
			return runServe(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address (default from ffui.toml)")

	return cmd
}

func runServe(ctx context.Context, opts *options) error {
	cfg := opts.cfg
	logger := slog.Default()

	tasks := seedTasks(nil, cfg.Server.Tasks)
	factory := func() *reactive.Component { return todo.New(tasks...) }

	var serverOpts []server.Option
	serverOpts = append(serverOpts, server.WithLogger(logger.With("component", "server")))
	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		collector := metrics.New(
			metrics.WithRegistry(reg),
			metrics.WithNamespace(cfg.Metrics.Namespace),
		)
		serverOpts = append(serverOpts, server.WithMetrics(collector, reg))
	}

	srv := server.New(factory, server.FromFile(cfg), serverOpts...)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	printBanner()
	success("listening on %s", cfg.Server.Addr)
	if cfg.Metrics.Enabled {
		info("metrics at %s", cfg.Metrics.Path)
	}
	if path := cfg.Path(); path != "" {
		info("config %s", path)
	}
	return srv.Run(ctx)
}
