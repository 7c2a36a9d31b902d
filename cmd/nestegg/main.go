package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime/debug"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rgehrsitz/nestegg/internal/api"
	"github.com/rgehrsitz/nestegg/internal/calculation"
	"github.com/rgehrsitz/nestegg/internal/compare"
	"github.com/rgehrsitz/nestegg/internal/config"
	"github.com/rgehrsitz/nestegg/internal/domain"
	"github.com/rgehrsitz/nestegg/internal/output"
	"github.com/rgehrsitz/nestegg/internal/transform"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// app carries what every command needs once flags and settings are resolved.
type app struct {
	settings *config.Settings
	logger   zerolog.Logger
	currency *output.CurrencyFormatter
}

func (a *app) init(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("settings")
	settings, err := config.LoadSettings(path, cmd.Flags())
	if err != nil {
		return err
	}
	level, err := settings.LogLevel()
	if err != nil {
		return err
	}
	if debugMode, _ := cmd.Flags().GetBool("debug"); debugMode {
		level = zerolog.DebugLevel
	}
	currency, err := output.NewCurrencyFormatter(settings.Locale, settings.Currency)
	if err != nil {
		return err
	}

	a.settings = settings
	a.logger = newConsoleLogger(cmd.ErrOrStderr(), level)
	a.currency = currency
	return nil
}

func (a *app) engine() *calculation.ProjectionEngine {
	engine := calculation.NewProjectionEngine()
	engine.SetLogger(zerologAdapter{log: a.logger})
	return engine
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "nestegg",
		Short: "Retirement savings projection calculator",
		Long: `Project a monthly savings plan up to retirement, draw it down with the 4% rule,
and find the monthly contribution needed to retire on a target income.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.String("settings", "", "Path to a settings file (yaml, json or toml)")
	pf.String("locale", "", "Locale used to format money, e.g. pt-BR")
	pf.String("currency", "", "ISO 4217 currency code, e.g. BRL")
	pf.String("log-level", "", "Log level (debug, info, warn, error)")
	pf.Bool("debug", false, "Enable debug output for detailed calculations")

	root.AddCommand(
		projectCmd(a),
		solveCmd(a),
		compareCmd(a),
		exportCmd(a),
		validateCmd(),
		serveCmd(a),
		versionCmd(),
	)
	return root
}

func projectCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project [plan-file]",
		Short: "Project a plan and print the report",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := resolvePlan(cmd, args)
			if err != nil {
				return err
			}
			result, err := a.engine().Project(plan.InputParameters)
			if err != nil {
				return err
			}

			format, _ := cmd.Flags().GetString("format")
			gran, _ := cmd.Flags().GetString("granularity")
			granularity, err := domain.ParseGranularity(gran)
			if err != nil {
				return err
			}
			f := output.GetFormatterByName(format, a.currency, granularity)
			if f == nil {
				return fmt.Errorf("unknown output format %q (valid: %s)", format, strings.Join(output.AvailableFormatterNames(), ", "))
			}

			if file, _ := cmd.Flags().GetString("output"); file != "" {
				if err := output.WriteFormatted(f, result, file); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", file)
				return nil
			}
			data, err := f.Format(result)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	addParamFlags(cmd.Flags())
	cmd.Flags().StringP("format", "f", "console", "Output format (console, json, csv)")
	cmd.Flags().StringP("granularity", "g", "yearly", "Series granularity (yearly, monthly)")
	cmd.Flags().StringP("output", "o", "", "Write the report to a file instead of stdout")
	return cmd
}

func solveCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve [plan-file]",
		Short: "Find the monthly contribution needed to reach the target income",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := resolvePlan(cmd, args)
			if err != nil {
				return err
			}
			result, err := a.engine().Project(plan.InputParameters)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			cf := a.currency
			p := result.Parameters
			fmt.Fprintln(w, "REQUIRED CONTRIBUTION")
			fmt.Fprintln(w, strings.Repeat("=", 50))
			fmt.Fprintf(w, "Target income today:          %s\n", cf.Format(p.TargetMonthlyIncomeToday, false))
			fmt.Fprintf(w, "Target income in year %-3d:     %s\n", p.Years, cf.FormatDecimal(result.TargetNominalMonthly, false))
			fmt.Fprintf(w, "Portfolio needed:             %s\n", cf.FormatDecimal(result.NeededPortfolio, false))
			fmt.Fprintf(w, "Portfolio needed (today):     %s\n", cf.FormatDecimal(result.NeededPortfolioDeflated, false))
			fmt.Fprintf(w, "Required monthly contribution: %s\n", cf.FormatDecimal(result.NeededMonthly, false))
			fmt.Fprintln(w)
			fmt.Fprintf(w, "Search bracket: [%s, %s] after %d iterations\n",
				result.Solver.Lo.StringFixed(2), result.Solver.Hi.StringFixed(2), result.Solver.Iterations)
			if result.Solver.BracketSaturated {
				fmt.Fprintln(w, "Warning: the target is out of reach within the search range; the contribution shown is the search limit.")
			}
			return nil
		},
	}
	addParamFlags(cmd.Flags())
	return cmd
}

func compareCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare [plan-file]",
		Short: "Compare a plan against what-if templates or against the other plans in the file",
		Long: `Compare a base plan against alternative strategies.

Examples:
  nestegg compare plan.yaml --with conservative,work_5yr_longer
  nestegg compare plans.yaml --format csv   # compares every plan in the file
  nestegg compare --list-templates`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			registry := transform.CreateBuiltInTemplates()

			if list, _ := cmd.Flags().GetBool("list-templates"); list {
				fmt.Fprintln(w, "Available templates:")
				for _, t := range registry.Templates() {
					fmt.Fprintf(w, "  %-22s %s\n", t.Name, t.Description)
				}
				return nil
			}

			with, _ := cmd.Flags().GetString("with")
			templates := splitList(with)

			engine := compare.NewCompareEngine(a.engine())
			engine.TemplateRegistry = registry

			var set *compare.ComparisonSet
			if len(args) > 0 && len(templates) == 0 {
				plans, err := config.NewInputParser().LoadPlans(args[0])
				if err != nil {
					return err
				}
				if len(plans) < 2 {
					return errors.New("--with is required unless the plan file holds several plans")
				}
				if set, err = engine.ComparePlans(cmd.Context(), plans); err != nil {
					return fmt.Errorf("comparison failed: %w", err)
				}
			} else {
				if len(templates) == 0 {
					return errors.New("--with is required (see --list-templates)")
				}
				plan, err := resolvePlan(cmd, args)
				if err != nil {
					return err
				}
				if set, err = engine.Compare(cmd.Context(), plan, compare.CompareOptions{Templates: templates}); err != nil {
					return fmt.Errorf("comparison failed: %w", err)
				}
			}
			if len(args) > 0 {
				set.ConfigPath = args[0]
			}

			format, _ := cmd.Flags().GetString("format")
			switch strings.ToLower(format) {
			case "csv":
				out, err := (&compare.CSVFormatter{}).Format(set)
				if err != nil {
					return err
				}
				fmt.Fprint(w, out)
			case "json":
				out, err := (&compare.JSONFormatter{Pretty: true}).Format(set)
				if err != nil {
					return err
				}
				fmt.Fprintln(w, out)
			case "table", "console", "":
				fmt.Fprint(w, (&compare.TableFormatter{Currency: a.currency}).Format(set))
			default:
				return fmt.Errorf("unknown output format: %s (valid: table, csv, json)", format)
			}
			return nil
		},
	}
	addParamFlags(cmd.Flags())
	cmd.Flags().String("with", "", "Comma-separated list of templates to compare")
	cmd.Flags().StringP("format", "f", "table", "Output format (table, csv, json)")
	cmd.Flags().Bool("list-templates", false, "List all available templates")
	return cmd
}

func exportCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [plan-file]",
		Short: "Export one projection series as csv, xlsx or pdf",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := resolvePlan(cmd, args)
			if err != nil {
				return err
			}

			phaseName, _ := cmd.Flags().GetString("phase")
			phase, err := domain.ParsePhase(phaseName)
			if err != nil {
				return err
			}
			gran, _ := cmd.Flags().GetString("granularity")
			granularity, err := domain.ParseGranularity(gran)
			if err != nil {
				return err
			}
			format, _ := cmd.Flags().GetString("format")
			exporter := output.GetExporterByName(format)
			if exporter == nil {
				return fmt.Errorf("unsupported export format %q (valid: %s)", format, strings.Join(output.AvailableExporterNames(), ", "))
			}

			result, err := a.engine().Project(plan.InputParameters)
			if err != nil {
				return err
			}

			file, _ := cmd.Flags().GetString("output")
			if file == "" {
				file = output.ExportFileName(phase, granularity, exporter.Name())
			}
			f, err := os.Create(file)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", file, err)
			}
			if err := output.ExportSeries(f, result, phase, granularity, exporter.Name()); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			a.logger.Debug().Str("file", file).Str("format", exporter.Name()).Msg("export written")
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %s %s series to %s\n", granularity, phase, file)
			return nil
		},
	}
	addParamFlags(cmd.Flags())
	cmd.Flags().String("phase", "accumulation", "Series to export (accumulation, retirement)")
	cmd.Flags().StringP("granularity", "g", "yearly", "Series granularity (yearly, monthly)")
	cmd.Flags().StringP("format", "f", "xlsx", "Export format (csv, xlsx, pdf)")
	cmd.Flags().StringP("output", "o", "", "Output file (default <phase>_<granularity>.<format>)")
	return cmd
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [plan-file]",
		Short: "Validate a plan file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plans, err := config.NewInputParser().LoadPlans(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Plan file %s is valid (%d plan(s))\n", args[0], len(plans))
			return nil
		},
	}
}

func serveCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the projection API over HTTP",
		// .env must be loaded before settings read the environment
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("failed to load .env: %w", err)
			}
			return a.init(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := calculation.NewCachedEngine(a.engine(), a.settings.Cache.Size)
			if err != nil {
				return err
			}
			server := api.NewWebAPI(a.logger, api.Config{
				Addr:      a.settings.Addr(),
				Projector: engine,
			})
			return server.Start()
		},
	}
	cmd.Flags().String("host", "", "Listen host")
	cmd.Flags().Int("port", 0, "Listen port")
	cmd.Flags().Int("cache-size", 0, "Number of projections kept in memory")
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		// version needs no settings
		PersistentPreRun: func(cmd *cobra.Command, args []string) {},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "nestegg %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(cmd.OutOrStdout(), info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.Main.Version
	}
	return ""
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
