package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dotcommander/contentgate/internal/config"
	"github.com/dotcommander/contentgate/internal/dimension"
	"github.com/dotcommander/contentgate/internal/gate"
)

var standardsCmd = &cobra.Command{
	Use:   "standards",
	Short: "Print the effective weights, thresholds, and decision policy",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStandards(cmd)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(standardsCmd)
}

func runStandards(cmd *cobra.Command) error {
	cfg, err := config.LoadConfig(rootPath)
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}

	eng, err := buildEngine(cfg)
	if err != nil {
		return fmt.Errorf("error building engine: %w", err)
	}

	w := cmd.OutOrStdout()
	weights := eng.Weights()
	standards := eng.Standards()
	policy := eng.Policy()

	fmt.Fprintln(w, "Dimension            Weight  Minimum  Critical")
	for _, d := range dimension.All() {
		min := "-"
		if m, ok := standards.Minimum(d); ok {
			min = fmt.Sprintf("%d", m)
		}
		critical := ""
		if policy.IsCritical(gate.QualityGate{Weight: weights[d]}) {
			critical = "yes"
		}
		fmt.Fprintf(w, "%-20s %.2f    %-7s  %s\n", d, weights[d], min, critical)
	}
	fmt.Fprintf(w, "\nMinimum overall score: %d\n", standards.MinOverallScore)
	fmt.Fprintf(w, "Approve at or above:   %d\n", policy.ApproveScore)
	fmt.Fprintf(w, "Gate failures allowed: %d\n", policy.MaxGateFailures)
	fmt.Fprintf(w, "All gates must pass:   %v\n", standards.RequireAllGatesPass)
	return nil
}
