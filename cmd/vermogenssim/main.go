// Command vermogenssim projects the evolution of investable capital with a
// Monte Carlo simulation and renders the percentile bands as console, CSV,
// JSON, HTML or PDF output, or serves them interactively over HTTP.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/WouterdeVisser/LangeTermijnBeleggen/internal/config"
	"github.com/WouterdeVisser/LangeTermijnBeleggen/internal/logging"
	"github.com/WouterdeVisser/LangeTermijnBeleggen/internal/output"
	"github.com/WouterdeVisser/LangeTermijnBeleggen/internal/server"
	"github.com/WouterdeVisser/LangeTermijnBeleggen/internal/simulation"
)

const version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:          "vermogenssim",
		Short:        "Monte Carlo long-term wealth simulation",
		Version:      version,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(newSimulateCmd(&logLevel))
	root.AddCommand(newServeCmd(&logLevel))
	root.AddCommand(newExampleConfigCmd())
	return root
}

func newSimulateCmd(logLevel *string) *cobra.Command {
	var (
		configPath string
		format     string
		outPath    string
		scenarios  int
		seed       int64
		milestone  int
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run a simulation from a parameter file",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logging.New(*logLevel)
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			parser := config.NewInputParser()
			params, err := parser.LoadFromFile(configPath)
			if err != nil {
				return err
			}
			if scenarios > 0 {
				params.NumScenarios = scenarios
			}
			if seed != 0 {
				params.Seed = seed
			}
			if milestone > 0 {
				params.MilestoneYear = milestone
			}

			engine := simulation.NewEngine()
			engine.SetLogger(logging.NewEngineLogger(logger))
			result, err := engine.Run(params)
			if err != nil {
				return err
			}

			formatter, err := output.GetFormatterByName(format)
			if err != nil {
				return err
			}

			// Console output goes to stdout unless a file was asked for.
			if formatter.Name() == "console" && outPath == "" {
				data, err := formatter.Format(result, params)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}

			written, err := output.WriteFormatted(formatter, result, params, outPath)
			if err != nil {
				return err
			}
			logger.Info("report written",
				zap.String("format", formatter.Name()),
				zap.String("file", written),
			)
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "parameters.yaml", "parameter file (YAML)")
	cmd.Flags().StringVarP(&format, "format", "f", "console", "output format (console, csv, json, html, pdf)")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "output file (default: stdout for console, timestamped file otherwise)")
	cmd.Flags().IntVar(&scenarios, "scenarios", 0, "override scenario count")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed for reproducible runs (0 = entropy)")
	cmd.Flags().IntVar(&milestone, "milestone-year", 0, "override milestone year marker")
	return cmd
}

func newServeCmd(logLevel *string) *cobra.Command {
	var (
		address    string
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the interactive simulation UI and JSON API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := server.LoadConfig(configPath)
			if err != nil {
				return err
			}
			if address != "" {
				cfg.Address = address
			}
			level := *logLevel
			if cfg.LogLevel != "" {
				level = cfg.LogLevel
			}

			logger, err := logging.New(level)
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			return server.ListenAndServe(cfg, logger)
		},
	}

	cmd.Flags().StringVarP(&address, "address", "a", "", "listen address (overrides server config)")
	cmd.Flags().StringVar(&configPath, "server-config", "", "server configuration file (YAML)")
	return cmd
}

func newExampleConfigCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "example-config",
		Short: "Write an example parameter file",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := config.NewInputParser().ExampleYAML()
			if err != nil {
				return err
			}
			if outPath == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(outPath, data, 0644); err != nil {
				return fmt.Errorf("failed to write example config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "example parameter file written to %s\n", outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "output", "o", "", "destination file (default: stdout)")
	return cmd
}
