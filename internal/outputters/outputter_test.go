package outputters

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/dotcommander/contentgate/internal/config"
	"github.com/dotcommander/contentgate/internal/output"
)

func TestFormatDispatch(t *testing.T) {
	summary := &output.Summary{StartTime: time.Now()}

	tests := []struct {
		format  string
		wantErr bool
		marker  string
	}{
		{"console", false, "No content files found"},
		{"json", false, `"tool": "contentgate"`},
		{"markdown", false, "# Content Quality Report"},
		{"xml", true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			o := NewOutputter(&config.Config{Format: tt.format}, &buf)

			err := o.Format(summary)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Format() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.marker != "" && !strings.Contains(buf.String(), tt.marker) {
				t.Errorf("output missing %q:\n%s", tt.marker, buf.String())
			}
		})
	}
}
