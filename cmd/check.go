package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dotcommander/contentgate/internal/config"
	"github.com/dotcommander/contentgate/internal/discovery"
	"github.com/dotcommander/contentgate/internal/output"
	"github.com/dotcommander/contentgate/internal/outputters"
)

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Evaluate a single content file, or stdin when no file is given",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck(cmd, args)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(rootPath)
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}
	applyFlags(cfg, cmd)

	name := "<stdin>"
	var raw string
	if len(args) == 1 {
		absPath, err := discovery.ValidateFilePath(args[0])
		if err != nil {
			return err
		}
		contents, err := os.ReadFile(absPath)
		if err != nil {
			return fmt.Errorf("cannot read file: %w", err)
		}
		name = args[0]
		raw = string(contents)
	} else {
		contents, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("cannot read stdin: %w", err)
		}
		raw = string(contents)
	}

	eng, err := buildEngine(cfg)
	if err != nil {
		return fmt.Errorf("error building engine: %w", err)
	}
	validator, err := buildValidator(cfg)
	if err != nil {
		return fmt.Errorf("error loading schemas: %w", err)
	}

	summary := &output.Summary{StartTime: time.Now()}
	summary.Add(evaluateFile(cmd.Context(), eng, validator, name, raw, cfg.Keyword))

	outputter := outputters.NewOutputter(cfg, cmd.OutOrStdout())
	if err := outputter.Format(summary); err != nil {
		return fmt.Errorf("error formatting output: %w", err)
	}

	if shouldFail(summary.WorstVerdict(), cfg.FailOn) {
		os.Exit(1)
	}
	return nil
}
