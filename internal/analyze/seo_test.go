package analyze

import (
	"context"
	"testing"

	"github.com/dotcommander/contentgate/internal/content"
)

func TestSEOFallbackWithoutKeyword(t *testing.T) {
	doc := parseTestDoc(t, wellFormedDoc)
	a := NewSEOAnalyzer()

	got, err := a.Analyze(context.Background(), doc, "")
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if got != KeywordFallbackScore {
		t.Errorf("Analyze(no keyword) = %d, want documented fallback %d", got, KeywordFallbackScore)
	}
}

func TestSEOWellFormedOutscoresPoor(t *testing.T) {
	a := NewSEOAnalyzer()
	ctx := context.Background()

	good := parseTestDoc(t, wellFormedDoc)
	goodScore, err := a.Analyze(ctx, good, "sourdough")
	if err != nil {
		t.Fatalf("Analyze(good) error = %v", err)
	}

	poor := parseTestDoc(t, "Nothing about the topic here. No headings, no links, thin text.")
	poorScore, err := a.Analyze(ctx, poor, "sourdough")
	if err != nil {
		t.Fatalf("Analyze(poor) error = %v", err)
	}

	if goodScore <= poorScore {
		t.Errorf("well-formed doc scored %d, poor doc %d; want good > poor", goodScore, poorScore)
	}
	if goodScore < 70 {
		t.Errorf("well-formed doc scored %d, want at least 70", goodScore)
	}
}

func TestHeadingHierarchyIntact(t *testing.T) {
	tests := []struct {
		name     string
		headings []content.Heading
		want     bool
	}{
		{"empty", nil, false},
		{"single h1", []content.Heading{{Level: 1}}, true},
		{"h1 h2 h3", []content.Heading{{Level: 1}, {Level: 2}, {Level: 3}}, true},
		{"h1 h3 skip", []content.Heading{{Level: 1}, {Level: 3}}, false},
		{"descend freely", []content.Heading{{Level: 1}, {Level: 2}, {Level: 3}, {Level: 2}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := headingHierarchyIntact(tt.headings); got != tt.want {
				t.Errorf("headingHierarchyIntact() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSEOKeywordDensityBand(t *testing.T) {
	// Keyword absent from the text entirely: density checks award nothing.
	doc := parseTestDoc(t, wellFormedDoc)
	a := NewSEOAnalyzer()

	withKeyword, err := a.Analyze(context.Background(), doc, "sourdough")
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	unrelated, err := a.Analyze(context.Background(), doc, "blockchain")
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if withKeyword <= unrelated {
		t.Errorf("on-topic keyword scored %d, off-topic %d; want on-topic higher", withKeyword, unrelated)
	}
}
