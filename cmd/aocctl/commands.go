package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/danmuck/aocctl/internal/catalog"
	"github.com/danmuck/aocctl/internal/config"
	"github.com/danmuck/aocctl/internal/logging"
	"github.com/danmuck/aocctl/internal/observability"
	"github.com/danmuck/aocctl/internal/puzzle"
	"github.com/danmuck/aocctl/internal/runner"
)

const (
	outputText = "text"
	outputYAML = "yaml"
)

type app struct {
	configPath  string
	metricsFile string
}

type report struct {
	Results []runner.Result `yaml:"results"`
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "aocctl",
		Short:         "Run daily puzzle solvers",
		Long:          "aocctl answers part one or part two of a daily puzzle from an input file.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default "+config.DefaultPath+" when present)")
	root.PersistentFlags().StringVar(&a.metricsFile, "metrics-file", "", "write prometheus metrics to this file after the run")

	reg := catalog.Builtin(catalog.DefaultOptions())
	for _, name := range reg.Names() {
		s, _ := reg.Get(name)
		root.AddCommand(a.exerciseCmd(name, s.Title()))
	}
	root.AddCommand(a.runCmd(), a.allCmd(), a.listCmd())
	return root
}

func (a *app) exerciseCmd(name, title string) *cobra.Command {
	var two bool
	cmd := &cobra.Command{
		Use:   name + " <file>",
		Short: "Solve " + title,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.solveOne(cmd, name, args[0], partFlag(two))
		},
	}
	cmd.Flags().BoolVarP(&two, "two", "2", false, "answer part two")
	return cmd
}

func (a *app) runCmd() *cobra.Command {
	var two bool
	cmd := &cobra.Command{
		Use:   "run <exercise> <file>",
		Short: "Solve an exercise by name",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.solveOne(cmd, args[0], args[1], partFlag(two))
		},
	}
	cmd.Flags().BoolVarP(&two, "two", "2", false, "answer part two")
	return cmd
}

func (a *app) solveOne(cmd *cobra.Command, name, path string, part puzzle.Part) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	s, err := catalog.Builtin(solverOptions(cfg)).Lookup(name)
	if err != nil {
		return err
	}
	res, err := runner.Run(cmd.Context(), s, path, part)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), res.Answer)
	return a.writeMetrics(cfg)
}

func (a *app) allCmd() *cobra.Command {
	var (
		output      string
		inputDir    string
		parallelism int
	)
	cmd := &cobra.Command{
		Use:   "all",
		Short: "Solve both parts of every configured exercise",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("input-dir") {
				cfg.InputDir = inputDir
			}
			if cmd.Flags().Changed("parallelism") {
				cfg.Parallelism = parallelism
			}
			if err := config.Validate(cfg, nil); err != nil {
				return err
			}
			format := strings.ToLower(strings.TrimSpace(output))
			if format != outputText && format != outputYAML {
				return fmt.Errorf("unknown output %q (supported: %s, %s)", output, outputText, outputYAML)
			}

			reg, err := catalog.Select(solverOptions(cfg), cfg.Exercises)
			if err != nil {
				return err
			}
			jobs := make([]runner.Job, 0, 2*len(cfg.Exercises))
			for _, name := range reg.Names() {
				s, _ := reg.Get(name)
				for _, part := range puzzle.Parts() {
					jobs = append(jobs, runner.Job{Solver: s, Part: part, File: cfg.InputPath(name)})
				}
			}
			logging.Infof("aocctl all jobs=%d parallelism=%d input_dir=%q", len(jobs), cfg.Parallelism, cfg.InputDir)

			results, err := runner.RunAll(cmd.Context(), jobs, cfg.Parallelism)
			if err != nil {
				return err
			}
			if err := printResults(cmd.OutOrStdout(), format, results); err != nil {
				return err
			}
			return a.writeMetrics(cfg)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", outputText, "output format: text | yaml")
	cmd.Flags().StringVar(&inputDir, "input-dir", "", "override input_dir from the config")
	cmd.Flags().IntVarP(&parallelism, "parallelism", "p", 1, "override parallelism from the config")
	return cmd
}

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available exercises",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := catalog.Builtin(catalog.DefaultOptions())
			for _, name := range reg.Names() {
				s, _ := reg.Get(name)
				fmt.Fprintf(cmd.OutOrStdout(), "%-6s %s\n", name, s.Title())
			}
			return nil
		},
	}
}

func printResults(w io.Writer, format string, results []runner.Result) error {
	if format == outputYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report{Results: results}); err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		return enc.Close()
	}
	for _, r := range results {
		if _, err := fmt.Fprintf(w, "%s part %s: %d\n", r.Exercise, r.Part, r.Answer); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) writeMetrics(cfg config.Config) error {
	path := a.metricsFile
	if path == "" {
		path = cfg.MetricsFile
	}
	if path == "" {
		return nil
	}
	if err := observability.WriteTextfile(path); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	logging.Debugf("aocctl metrics written path=%q", path)
	return nil
}

func partFlag(two bool) puzzle.Part {
	if two {
		return puzzle.PartTwo
	}
	return puzzle.PartOne
}
