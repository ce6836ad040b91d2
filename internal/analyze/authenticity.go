package analyze

import (
	"context"
	"strings"

	"github.com/montanaflynn/stats"

	"github.com/dotcommander/contentgate/internal/content"
	"github.com/dotcommander/contentgate/internal/dimension"
)

// aiPhrases are formulaic constructions that read as machine-generated.
var aiPhrases = []string{
	"delve into",
	"in today's fast-paced world",
	"it's worth noting",
	"it is worth noting",
	"in the ever-evolving",
	"navigating the landscape",
	"game-changer",
	"unlock the power",
	"harness the power",
	"rich tapestry",
	"in conclusion",
	"furthermore",
	"moreover",
}

// hedgePhrases soften claims without adding information.
var hedgePhrases = []string{
	"arguably",
	"perhaps",
	"somewhat",
	"generally speaking",
	"to some extent",
	"it could be said",
}

// AuthenticityAnalyzer scores how human the prose reads: formulaic phrasing
// and hedging cost points, as does suspiciously uniform paragraph structure.
type AuthenticityAnalyzer struct{}

// NewAuthenticityAnalyzer creates an AuthenticityAnalyzer.
func NewAuthenticityAnalyzer() *AuthenticityAnalyzer {
	return &AuthenticityAnalyzer{}
}

func (a *AuthenticityAnalyzer) Dimension() dimension.Dimension {
	return dimension.Authenticity
}

func (a *AuthenticityAnalyzer) Analyze(ctx context.Context, doc *content.Document, keyword string) (int, error) {
	if err := checkInput(ctx, doc); err != nil {
		return 0, err
	}

	score := 100
	lower := strings.ToLower(doc.PlainText)

	aiHits := 0
	for _, phrase := range aiPhrases {
		aiHits += strings.Count(lower, phrase)
	}
	if deduction := aiHits * 5; deduction > 0 {
		if deduction > 40 {
			deduction = 40
		}
		score -= deduction
	}

	hedgeHits := 0
	for _, phrase := range hedgePhrases {
		hedgeHits += strings.Count(lower, phrase)
	}
	if deduction := hedgeHits * 2; deduction > 0 {
		if deduction > 10 {
			deduction = 10
		}
		score -= deduction
	}

	// Human writing varies paragraph length; near-identical paragraph sizes
	// across a longer piece are a generation tell.
	if len(doc.Paragraphs) >= 4 {
		sizes := make([]float64, 0, len(doc.Paragraphs))
		for _, p := range doc.Paragraphs {
			sizes = append(sizes, float64(len(strings.Fields(p))))
		}
		sd, _ := stats.StandardDeviation(sizes)
		if sd < 5 {
			score -= 10
		}
	}

	return clamp(score), nil
}
