package analyze

import (
	"context"
	"strings"

	"github.com/montanaflynn/stats"

	"github.com/dotcommander/contentgate/internal/content"
	"github.com/dotcommander/contentgate/internal/dimension"
)

// fillerPhrases attract a small deduction per occurrence. Padding, not prose.
var fillerPhrases = []string{
	"in order to",
	"it is important to note",
	"needless to say",
	"at the end of the day",
	"basically",
	"very unique",
}

// passiveMarkers are rough passive-voice indicators.
var passiveMarkers = []string{
	"is being",
	"was being",
	"has been",
	"have been",
	"will be done",
}

// WritingAnalyzer scores prose craft: sentence rhythm, paragraph development,
// and absence of filler.
type WritingAnalyzer struct{}

// NewWritingAnalyzer creates a WritingAnalyzer.
func NewWritingAnalyzer() *WritingAnalyzer {
	return &WritingAnalyzer{}
}

func (a *WritingAnalyzer) Dimension() dimension.Dimension {
	return dimension.WritingQuality
}

// Analyze starts from 100 and deducts for long or monotonous sentences,
// filler and passive constructions, list-heavy structure, and undeveloped
// paragraphs.
func (a *WritingAnalyzer) Analyze(ctx context.Context, doc *content.Document, keyword string) (int, error) {
	if err := checkInput(ctx, doc); err != nil {
		return 0, err
	}

	score := 100
	lower := strings.ToLower(doc.PlainText)

	lengths := make([]float64, 0, len(doc.Sentences))
	for _, s := range doc.Sentences {
		lengths = append(lengths, float64(len(strings.Fields(s))))
	}
	if len(lengths) > 0 {
		mean, _ := stats.Mean(lengths)
		switch {
		case mean > 28:
			score -= 15
		case mean > 22:
			score -= 8
		}
	}
	if len(lengths) >= 5 {
		sd, _ := stats.StandardDeviation(lengths)
		// Near-identical sentence lengths read as monotonous.
		if sd < 3 {
			score -= 10
		}
	}

	fillerHits := 0
	for _, phrase := range fillerPhrases {
		fillerHits += strings.Count(lower, phrase)
	}
	if deduction := fillerHits * 2; deduction > 0 {
		if deduction > 12 {
			deduction = 12
		}
		score -= deduction
	}

	passiveHits := 0
	for _, marker := range passiveMarkers {
		passiveHits += strings.Count(lower, marker)
	}
	switch {
	case passiveHits > 3:
		score -= 8
	case passiveHits > 1:
		score -= 4
	}

	if listHeavy(doc.Body) {
		score -= 10
	}
	if len(doc.Paragraphs) < 2 {
		score -= 10
	}

	return clamp(score), nil
}

// listHeavy reports whether bullets dominate the body text.
func listHeavy(body string) bool {
	total := 0
	bullets := 0
	for _, raw := range strings.Split(body, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		total++
		if strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* ") {
			bullets++
		}
	}
	return total > 0 && float64(bullets)/float64(total) > 0.45
}
