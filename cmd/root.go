// Package cmd wires the contentgate CLI.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dotcommander/contentgate/internal/config"
	"github.com/dotcommander/contentgate/internal/outputters"
	"github.com/dotcommander/contentgate/internal/types"
)

var (
	rootPath     string
	keyword      string
	quiet        bool
	verbose      bool
	outputFormat string
	outputFile   string
	failOn       string
	excludes     []string
)

var rootCmd = &cobra.Command{
	Use:   "contentgate",
	Short: "Composite quality scoring and gate validation for written content",
	Long: `Contentgate scores content documents across six quality dimensions,
validates each against configurable minimum thresholds, and issues an
approval verdict with prioritized recommendations.

By default, contentgate evaluates every content file under the root and
reports the results. Use 'check' to evaluate a single file or stdin.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEvaluate(cmd)
	},
	SilenceUsage: true,
}

// Execute runs the CLI. Exit codes: 0 clean, 1 quality failure per --fail-on,
// 2 usage or configuration error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootPath, "root", "r", "", "Content root directory (defaults to current directory)")
	rootCmd.PersistentFlags().StringVarP(&keyword, "keyword", "k", "", "Focus keyword (overrides frontmatter)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show passing documents and gates")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "console", "Output format for reports (console|json|markdown)")
	rootCmd.PersistentFlags().StringVarP(&outputFile, "output", "o", "", "Output file for reports")
	rootCmd.PersistentFlags().StringVar(&failOn, "fail-on", "rejected", "Exit non-zero at this verdict or worse (rejected|needs_revision|never)")
	rootCmd.PersistentFlags().StringSliceVar(&excludes, "exclude", nil, "Glob patterns to exclude from discovery")
}

func runEvaluate(cmd *cobra.Command) error {
	cfg, err := config.LoadConfig(rootPath)
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}
	applyFlags(cfg, cmd)

	summary, err := evaluateTree(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	outputter := outputters.NewOutputter(cfg, cmd.OutOrStdout())
	if err := outputter.Format(summary); err != nil {
		return fmt.Errorf("error formatting output: %w", err)
	}

	if shouldFail(summary.WorstVerdict(), cfg.FailOn) {
		os.Exit(1)
	}
	return nil
}

// applyFlags lets explicitly set flags win over config file values.
func applyFlags(cfg *config.Config, cmd *cobra.Command) {
	flags := cmd.Flags()
	if flags.Changed("keyword") {
		cfg.Keyword = keyword
	}
	if flags.Changed("quiet") {
		cfg.Quiet = quiet
	}
	if flags.Changed("verbose") {
		cfg.Verbose = verbose
	}
	if flags.Changed("format") {
		cfg.Format = outputFormat
	}
	if flags.Changed("output") {
		cfg.Output = outputFile
	}
	if flags.Changed("fail-on") {
		cfg.FailOn = failOn
	}
	if flags.Changed("exclude") {
		cfg.Exclude = append(cfg.Exclude, excludes...)
	}
}

// shouldFail maps the worst verdict in a run onto the --fail-on setting.
func shouldFail(worst types.Verdict, failOn string) bool {
	switch failOn {
	case "never":
		return false
	case "needs_revision":
		return worst != types.VerdictApproved
	default: // rejected
		return worst == types.VerdictRejected
	}
}
