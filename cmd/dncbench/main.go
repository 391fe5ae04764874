// Copyright 2025 go-dnc Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command dncbench runs the divide-and-conquer algorithms of go-dnc over
// many random inputs and checks them against their reference results and
// theoretical bounds.
//
// Usage:
//
//	dncbench run                                   # defaults: 10 trials at n=100,1000,10000
//	dncbench run --config bench.yaml --json        # YAML config, JSON report
//	dncbench run --suites quick,select --sizes 50000 --trials 4
//	dncbench host                                  # CPU and platform summary
//
// The process exits with status 1 when any trial breaks a property.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

var errPropertiesFailed = errors.New("property checks failed")

// app carries what every subcommand shares.
type app struct {
	verbose bool
	log     *zap.Logger
	out     io.Writer

	// buildLogger replaces newLogger when set.
	buildLogger func(verbose bool) (*zap.Logger, error)
}

// runOptions are the flags of the run command. Only flags that were set
// override the config file.
type runOptions struct {
	configPath string
	seed       uint64
	trials     int
	sizes      []int
	suites     []string
	workers    int
	json       bool
	lang       string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a := &app{log: zap.NewNop(), out: os.Stdout}
	err := newRootCmd(a).ExecuteContext(ctx)
	if err != nil {
		if !errors.Is(err, errPropertiesFailed) {
			a.log.Error("dncbench failed", zap.Error(err))
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		_ = a.log.Sync()
		os.Exit(1)
	}
	_ = a.log.Sync()
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "dncbench",
		Short:         "Validate instrumented divide-and-conquer algorithms",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			build := a.buildLogger
			if build == nil {
				build = newLogger
			}
			log, err := build(a.verbose)
			if err != nil {
				return fmt.Errorf("build logger: %w", err)
			}
			a.log = log
			return nil
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "human-readable debug logging")

	root.AddCommand(newRunCmd(a), newHostCmd(a))
	return root
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

func newRunCmd(a *app) *cobra.Command {
	var opts runOptions
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the configured suites and check every property",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd.Flags(), &opts)
			if err != nil {
				return err
			}
			return a.run(cmd.Context(), cfg, &opts)
		},
	}
	bindRunFlags(cmd.Flags(), &opts)
	return cmd
}

func bindRunFlags(fs *pflag.FlagSet, o *runOptions) {
	def := DefaultConfig()
	fs.StringVarP(&o.configPath, "config", "c", "", "YAML config file")
	fs.Uint64Var(&o.seed, "seed", def.Seed, "base random seed")
	fs.IntVar(&o.trials, "trials", def.Trials, "trials per suite and size")
	fs.IntSliceVar(&o.sizes, "sizes", def.Sizes, "input sizes")
	fs.StringSliceVar(&o.suites, "suites", def.Suites, "suites to run (merge, quick, select, closest)")
	fs.IntVar(&o.workers, "workers", def.Workers, "parallel trials, 0 for GOMAXPROCS")
	fs.BoolVar(&o.json, "json", false, "write the report as JSON")
	fs.StringVar(&o.lang, "lang", "en", "BCP 47 tag used to format numbers in the text report")
}

// resolveConfig layers defaults, the config file and explicitly set flags,
// then validates the result.
func resolveConfig(fs *pflag.FlagSet, o *runOptions) (Config, error) {
	cfg := DefaultConfig()
	if o.configPath != "" {
		var err error
		if cfg, err = LoadConfig(o.configPath); err != nil {
			return Config{}, err
		}
	}

	if fs.Changed("seed") {
		cfg.Seed = o.seed
	}
	if fs.Changed("trials") {
		cfg.Trials = o.trials
	}
	if fs.Changed("sizes") {
		cfg.Sizes = o.sizes
	}
	if fs.Changed("suites") {
		cfg.Suites = o.suites
	}
	if fs.Changed("workers") {
		cfg.Workers = o.workers
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (a *app) run(ctx context.Context, cfg Config, o *runOptions) error {
	tag, err := language.Parse(o.lang)
	if err != nil {
		return fmt.Errorf("parse --lang: %w", err)
	}

	a.log.Info("starting run",
		zap.Uint64("seed", cfg.Seed),
		zap.Int("trials", cfg.Trials),
		zap.Ints("sizes", cfg.Sizes),
		zap.Strings("suites", cfg.Suites),
	)

	runner := NewRunner(cfg, a.log)
	defer runner.Close()

	report, err := runner.Run(ctx)
	if err != nil {
		return err
	}

	if o.json {
		err = report.WriteJSON(a.out)
	} else {
		err = report.WriteText(a.out, tag)
	}
	if err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	if report.Failed() {
		return errPropertiesFailed
	}
	return nil
}

func newHostCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "host",
		Short: "Print the platform and detected CPU features",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			_, err := fmt.Fprintln(a.out, currentHost())
			return err
		},
	}
}
