package main

import (
	"fmt"
	"strconv"
	"strings"

	"hypotest/internal"
	"hypotest/internal/config"
	"hypotest/internal/errors"
	"hypotest/internal/report"
	"hypotest/internal/testkit"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	envFile string
	alpha   float64
	format  string
	cfg     *config.Config
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "ttest-cli",
		Short:         "Two-sample t-test calculator",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.envFile)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("alpha") {
				cfg.Test.Alpha = opts.alpha
			}
			if cmd.Flags().Changed("format") {
				cfg.Report.Format = strings.ToLower(opts.format)
			}
			if err := config.Validate(cfg); err != nil {
				return err
			}
			internal.DefaultLogger.SetLevel(internal.ParseLogLevel(cfg.Logging.Level))
			opts.cfg = cfg
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "Optional dotenv file with TTEST_* settings")
	rootCmd.PersistentFlags().Float64Var(&opts.alpha, "alpha", report.DefaultAlpha, "Significance level")
	rootCmd.PersistentFlags().StringVar(&opts.format, "format", config.FormatText, "Report format: text|markdown|html")

	rootCmd.AddCommand(
		newDemoCmd(opts),
		newComputeCmd(opts),
	)
	return rootCmd
}

func newDemoCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Compare the built-in example test scores",
		Long: `Run Student's and Welch's t-tests on two fixed groups of test scores and
print means, standard deviations, t-statistics, p-values, the decision at alpha
and Cohen's d.

Example: ttest-cli demo --format markdown`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fx := testkit.ExampleScores()
			return runReport(cmd, opts.cfg, report.Input{
				Label1:        fx.Label1,
				Label2:        fx.Label2,
				Sample1:       fx.Sample1,
				Sample2:       fx.Sample2,
				Alpha:         opts.cfg.Test.Alpha,
				EqualVariance: opts.cfg.Test.EqualVariance,
			})
		},
	}
}

func newComputeCmd(opts *rootOptions) *cobra.Command {
	var sample1, sample2 string
	var welch bool

	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Compare two samples given on the command line",
		Long: `Run a two-sample t-test on comma separated samples.

Student's pooled-variance test drives the interpretation unless --welch is set
or TTEST_EQUAL_VARIANCE=false.

Example: ttest-cli compute --sample1 85,90,78,92 --sample2 70,75,68,80 --welch`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s1, err := parseSample("sample1", sample1)
			if err != nil {
				return err
			}
			s2, err := parseSample("sample2", sample2)
			if err != nil {
				return err
			}

			equalVariance := opts.cfg.Test.EqualVariance
			if cmd.Flags().Changed("welch") {
				equalVariance = !welch
			}

			return runReport(cmd, opts.cfg, report.Input{
				Label1:        "Sample 1",
				Label2:        "Sample 2",
				Sample1:       s1,
				Sample2:       s2,
				Alpha:         opts.cfg.Test.Alpha,
				EqualVariance: equalVariance,
			})
		},
	}

	cmd.Flags().StringVar(&sample1, "sample1", "", "First sample, comma separated")
	cmd.Flags().StringVar(&sample2, "sample2", "", "Second sample, comma separated")
	cmd.Flags().BoolVar(&welch, "welch", false, "Interpret with Welch's test instead of Student's")
	_ = cmd.MarkFlagRequired("sample1")
	_ = cmd.MarkFlagRequired("sample2")
	return cmd
}

func runReport(cmd *cobra.Command, cfg *config.Config, in report.Input) error {
	r, err := report.Build(in)
	if err != nil {
		return errors.Wrap(err, "t-test failed")
	}
	internal.DefaultLogger.Info("report %s: method=%s p=%g reject=%t",
		r.ID, r.Interpretation.Method, r.Interpretation.PValue, r.Interpretation.Reject)
	return report.Render(cmd.OutOrStdout(), r, cfg.Report.Format)
}

// parseSample reads "1, 2.5,3" into a slice. Blank entries are rejected.
func parseSample(name, raw string) ([]float64, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, errors.InvalidInput(name + " is empty")
	}
	fields := strings.Split(raw, ",")
	out := make([]float64, 0, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, errors.InvalidInput(fmt.Sprintf("%s value %d (%q) is not a number", name, i+1, f))
		}
		out = append(out, v)
	}
	return out, nil
}
