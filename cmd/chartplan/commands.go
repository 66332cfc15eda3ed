package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mazilong/tui.chart/internal/chart"
	"github.com/mazilong/tui.chart/internal/config"
	"github.com/mazilong/tui.chart/internal/definition"
	"github.com/mazilong/tui.chart/internal/logger"
	"github.com/mazilong/tui.chart/internal/reports"
	"github.com/mazilong/tui.chart/internal/server"
	"github.com/mazilong/tui.chart/internal/storage"
)

type rootOptions struct {
	envFiles []string
	logLevel string
	cfg      *config.Config
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "chartplan",
		Short:         "Plan and render combo charts",
		Long:          "chartplan resolves chart definitions into axes, scales and components,\nand renders them as interactive HTML or PNG images.",
		Version:       config.GetVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Context(), opts.envFiles...)
			if err != nil {
				return err
			}
			if opts.logLevel != "" {
				if _, err := logger.ParseLevel(opts.logLevel); err != nil {
					return err
				}
				cfg.LogLevel = opts.logLevel
			}
			cfg.ApplyLogging()
			opts.cfg = cfg
			return nil
		},
	}

	root.PersistentFlags().StringSliceVar(&opts.envFiles, "env-file", nil, "Env files to load before the environment (default: .env)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Override LOG_LEVEL (debug, info, warn, error)")

	root.AddCommand(newPlanCmd(opts), newRenderCmd(opts), newServeCmd(opts))
	return root
}

func newPlanCmd(opts *rootOptions) *cobra.Command {
	var (
		outputPath string
		encoding   string
		hide       []string
	)

	cmd := &cobra.Command{
		Use:   "plan <definition>",
		Short: "Print the plan, scales and visible series of a chart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			def, hidden, err := loadDefinition(cmd.Context(), opts.cfg, args[0], hide)
			if err != nil {
				return err
			}

			g := reports.NewGenerator(opts.cfg.DefaultTickCount, opts.cfg.ChartWidth, opts.cfg.ChartHeight)
			built, err := g.Build(def, hidden)
			if err != nil {
				return err
			}

			data, err := reports.EncodeFrame(built.Frame, encoding)
			if err != nil {
				return err
			}
			if encoding != reports.EncodingMsgpack {
				data = append(data, '\n')
			}
			return writeOutput(cmd.OutOrStdout(), outputPath, data)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().StringVar(&encoding, "encoding", reports.EncodingJSON, "Plan encoding: json or msgpack")
	cmd.Flags().StringSliceVar(&hide, "hide", nil, "Series to hide as family:index, repeatable")
	return cmd
}

func newRenderCmd(opts *rootOptions) *cobra.Command {
	var (
		outputPath string
		format     string
		save       bool
		hide       []string
	)

	cmd := &cobra.Command{
		Use:   "render <definition>",
		Short: "Render a chart as HTML or PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			def, hidden, err := loadDefinition(ctx, opts.cfg, args[0], hide)
			if err != nil {
				return err
			}

			if format == "" {
				format = opts.cfg.RenderFormat
			}
			g := reports.NewGenerator(opts.cfg.DefaultTickCount, opts.cfg.ChartWidth, opts.cfg.ChartHeight)
			rendered, err := g.Render(def, format, hidden)
			if err != nil {
				return err
			}

			if save {
				store, err := storage.NewStore(ctx, opts.cfg)
				if err != nil {
					return err
				}
				defer store.Close()

				so := reports.NewStorageOrchestrator(store)
				keys, err := so.StoreChart(ctx, rendered)
				if err != nil {
					return err
				}
				for _, key := range keys {
					fmt.Fprintln(cmd.ErrOrStderr(), so.Location(key))
				}
				if outputPath == "" {
					return nil
				}
			}

			if outputPath == "" {
				outputPath = strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0])) + rendered.Extension
			}
			return writeOutput(cmd.OutOrStdout(), outputPath, rendered.Data)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path, - for stdout (default: <definition>.<format>)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Render format: html or png (default: RENDER_FORMAT)")
	cmd.Flags().BoolVar(&save, "save", false, "Store the chart and its plan in the configured storage")
	cmd.Flags().StringSliceVar(&hide, "hide", nil, "Series to hide as family:index, repeatable")
	return cmd
}

func newServeCmd(opts *rootOptions) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the planning and rendering API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.cfg
			if port != "" {
				cfg.Port = port
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			store, err := storage.NewStore(ctx, cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			logger.Info("Starting chart service", map[string]interface{}{
				"port":    cfg.Port,
				"storage": cfg.StorageMode,
				"bucket":  cfg.GCSBucket,
				"output":  cfg.OutputDir,
			})
			return server.NewServer(cfg, store, config.GetVersion()).Start(ctx, ":"+cfg.Port)
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "Listen port (default: PORT)")
	return cmd
}

func loadDefinition(ctx context.Context, cfg *config.Config, source string, hide []string) (chart.Definition, map[string][]bool, error) {
	def, err := definition.Load(ctx, definition.NewFetcher(cfg.FetchTimeout), source)
	if err != nil {
		return def, nil, err
	}
	hidden, err := reports.ParseHidden(hide)
	if err != nil {
		return def, nil, err
	}
	return def, hidden, nil
}

func writeOutput(stdout io.Writer, path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := stdout.Write(data)
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	logger.Info("Chart written", map[string]interface{}{"path": path, "bytes": len(data)})
	return nil
}
