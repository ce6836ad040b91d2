// Package outputters selects and drives the configured output formatter.
package outputters

import (
	"fmt"
	"io"
	"time"

	"github.com/dotcommander/contentgate/internal/config"
	"github.com/dotcommander/contentgate/internal/output"
)

// Outputter routes a run summary to the formatter named by the config.
type Outputter struct {
	config *config.Config
	w      io.Writer
}

// NewOutputter creates an Outputter writing to w.
func NewOutputter(cfg *config.Config, w io.Writer) *Outputter {
	return &Outputter{config: cfg, w: w}
}

// Format renders the summary using the configured format.
func (o *Outputter) Format(summary *output.Summary) error {
	if summary.StartTime.IsZero() {
		summary.StartTime = time.Now()
	}
	if summary.Root == "" {
		summary.Root = o.config.Root
	}

	switch o.config.Format {
	case "console":
		return output.NewConsoleFormatter(o.w, o.config.Quiet, o.config.Verbose).Format(summary)
	case "json":
		return output.NewJSONFormatter(o.w, true, o.config.Output).Format(summary)
	case "markdown":
		return output.NewMarkdownFormatter(o.w, o.config.Verbose, o.config.Output).Format(summary)
	default:
		return fmt.Errorf("unsupported format: %s", o.config.Format)
	}
}
