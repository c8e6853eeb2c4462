// SPDX-License-Identifier: MIT

// Command draftheat renders win-rate heatmaps for a 5-vs-5 draft.
//
//	draftheat render --heroes=A,B,C,D,E,F,G,H,I,J --winrates="50,..;.." --out=heatmap.png
//	draftheat serve --addr=:8080
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/draftheat/config"
	"github.com/katalvlaran/draftheat/heatmap"
	"github.com/katalvlaran/draftheat/server"
	"github.com/katalvlaran/draftheat/winrate"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}

// app carries state resolved in the root PersistentPreRunE.
type app struct {
	configFile string
	cfg        config.Config
	log        zerolog.Logger
	stderr     io.Writer
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stderr: stderr}

	root := &cobra.Command{
		Use:           "draftheat",
		Short:         "Render diverging win-rate heatmaps for 5v5 drafts",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "config file (default: ./draftheat.yaml or $HOME/.draftheat/draftheat.yaml)")
	pf.String("log-level", "info", "log level: trace|debug|info|warn|error")
	pf.String("log-format", config.LogFormatConsole, "log format: console|json")

	root.AddCommand(newRenderCmd(a), newServeCmd(a))

	return root
}

// load resolves config from file, env and the flags of cmd, then builds the logger.
func (a *app) load(cmd *cobra.Command) error {
	v, err := config.NewViper(a.configFile)
	if err != nil {
		return err
	}
	bindings := map[string]string{
		config.KeyLogLevel:     "log-level",
		config.KeyLogFormat:    "log-format",
		config.KeyAugmentation: "augmentation",
		config.KeyWidth:        "width",
		config.KeyHeight:       "height",
		config.KeyReference:    "reference",
		config.KeyStrict:       "strict",
		config.KeyHTTPAddr:     "addr",
	}
	for key, name := range bindings {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err = v.BindPFlag(key, f); err != nil {
				return err
			}
		}
	}
	if a.cfg, err = config.Load(v); err != nil {
		return err
	}
	if a.log, err = a.cfg.Log.NewLogger(a.stderr); err != nil {
		return err
	}
	a.log.Debug().Str("config", v.ConfigFileUsed()).Msg("configuration loaded")

	return nil
}

func (a *app) pipeline() *heatmap.Pipeline {
	return heatmap.New(append(a.cfg.PipelineOptions(), heatmap.WithLogger(a.log))...)
}

func newRenderCmd(a *app) *cobra.Command {
	var heroes, winrates, out string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render one heatmap image (PNG or SVG, chosen by --out extension)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := a.pipeline().RenderFile(out, winrate.ParseNames(heroes), winrates)
			if err != nil {
				return err
			}
			if res.Outcome != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "radiant %.2f%% / dire %.2f%%\n", res.Outcome.TeamA, res.Outcome.TeamB())
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)

			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&heroes, "heroes", "", "10 comma-separated hero names, radiant first")
	f.StringVar(&winrates, "winrates", "", `5 rows of 5 win rates, e.g. "50,51,..;49,..."`)
	f.StringVar(&out, "out", "heatmap.png", "output file (.png or .svg)")
	f.String("augmentation", heatmap.AugmentationEnabled.String(), "add Avg row/column and team outcome: enabled|disabled")
	f.Int("width", heatmap.DefaultWidth, "image width in pixels")
	f.Int("height", heatmap.DefaultHeight, "image height in pixels")
	f.Float64("reference", 50, "fair win rate the color anchor is measured against")
	f.Bool("strict", false, "fail when every value is equal instead of centering the scale")
	_ = cmd.MarkFlagRequired("heroes")
	_ = cmd.MarkFlagRequired("winrates")

	return cmd
}

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve heatmaps over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			srv := server.New(a.pipeline(),
				server.WithCORSOrigins(a.cfg.HTTP.CORSOrigins),
				server.WithLogger(a.log))

			return srv.ListenAndServe(cmd.Context(), a.cfg.HTTP.Addr)
		},
	}
	cmd.Flags().String("addr", ":8080", "listen address")

	return cmd
}
