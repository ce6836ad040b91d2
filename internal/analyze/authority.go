package analyze

import (
	"context"
	"strings"
	"unicode"

	"github.com/dotcommander/contentgate/internal/content"
	"github.com/dotcommander/contentgate/internal/dimension"
)

// AuthorityAnalyzer scores topical authority: depth of coverage and density
// of concrete, verifiable detail.
type AuthorityAnalyzer struct{}

// NewAuthorityAnalyzer creates an AuthorityAnalyzer.
func NewAuthorityAnalyzer() *AuthorityAnalyzer {
	return &AuthorityAnalyzer{}
}

func (a *AuthorityAnalyzer) Dimension() dimension.Dimension {
	return dimension.TopicalAuthority
}

// Analyze accumulates points per signal, 100 total.
func (a *AuthorityAnalyzer) Analyze(ctx context.Context, doc *content.Document, keyword string) (int, error) {
	if err := checkInput(ctx, doc); err != nil {
		return 0, err
	}

	points := 0

	// Topic developed across sections (20 points).
	switch {
	case len(doc.Headings) >= 4:
		points += 20
	case len(doc.Headings) >= 2:
		points += 10
	}

	// Substantial length (25 points).
	switch {
	case doc.WordCount >= 1200:
		points += 25
	case doc.WordCount >= 600:
		points += 18
	case doc.WordCount >= 300:
		points += 10
	}

	// Numeric detail: statistics, measurements, dates (15 points).
	numbers := countNumericTokens(doc.PlainText)
	switch {
	case numbers >= 3:
		points += 15
	case numbers >= 1:
		points += 8
	}

	// Named entities, approximated by capitalized words mid-sentence
	// (15 points).
	entities := countMidSentenceCapitals(doc.Sentences)
	switch {
	case entities >= 5:
		points += 15
	case entities >= 2:
		points += 8
	}

	// Outbound references (15 points).
	switch {
	case doc.ExternalLinks >= 2:
		points += 15
	case doc.ExternalLinks >= 1:
		points += 8
	}

	// Headings track the target topic (10 points). Without a keyword the
	// check is inapplicable and awards full credit.
	if keyword == "" || doc.HeadingKeywordCoverage(keyword) >= 25 {
		points += 10
	}

	return clamp(points), nil
}

// countNumericTokens counts tokens that contain a digit.
func countNumericTokens(text string) int {
	count := 0
	for _, token := range strings.Fields(text) {
		for _, r := range token {
			if unicode.IsDigit(r) {
				count++
				break
			}
		}
	}
	return count
}

// countMidSentenceCapitals counts capitalized words that do not open a
// sentence, a rough proxy for named entities.
func countMidSentenceCapitals(sentences []string) int {
	count := 0
	for _, s := range sentences {
		words := strings.Fields(s)
		for i, w := range words {
			if i == 0 {
				continue
			}
			r := []rune(w)
			if len(r) > 1 && unicode.IsUpper(r[0]) && unicode.IsLower(r[1]) {
				count++
			}
		}
	}
	return count
}
