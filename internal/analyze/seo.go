package analyze

import (
	"context"
	"strings"

	"github.com/dotcommander/contentgate/internal/content"
	"github.com/dotcommander/contentgate/internal/dimension"
)

// KeywordFallbackScore is the documented fallback reported when no target
// keyword is supplied. The dimension still reports a defined value so the
// weight-sum invariant holds; a missing keyword is not an error.
const KeywordFallbackScore = 75

// Recommended on-page bands.
const (
	titleMinLen       = 30
	titleMaxLen       = 60
	descriptionMinLen = 120
	descriptionMaxLen = 160
	densityMin        = 0.5
	densityMax        = 2.5
)

// SEOAnalyzer scores on-page SEO compliance: title and description length,
// heading structure, keyword placement and density, links, and image alt
// text.
type SEOAnalyzer struct{}

// NewSEOAnalyzer creates an SEOAnalyzer.
func NewSEOAnalyzer() *SEOAnalyzer {
	return &SEOAnalyzer{}
}

func (a *SEOAnalyzer) Dimension() dimension.Dimension {
	return dimension.SEOCompliance
}

// Analyze accumulates points per check, 100 total.
func (a *SEOAnalyzer) Analyze(ctx context.Context, doc *content.Document, keyword string) (int, error) {
	if err := checkInput(ctx, doc); err != nil {
		return 0, err
	}
	if keyword == "" {
		return KeywordFallbackScore, nil
	}

	points := 0
	lowerKeyword := strings.ToLower(keyword)

	title := doc.Title
	if title == "" {
		for _, h := range doc.Headings {
			if h.Level == 1 {
				title = h.Text
				break
			}
		}
	}

	// Title length band (15 points).
	switch {
	case len(title) >= titleMinLen && len(title) <= titleMaxLen:
		points += 15
	case title != "":
		points += 7
	}

	// Description length band (15 points).
	switch {
	case len(doc.Description) >= descriptionMinLen && len(doc.Description) <= descriptionMaxLen:
		points += 15
	case doc.Description != "":
		points += 7
	}

	// Exactly one H1 (10 points).
	h1Count := 0
	for _, h := range doc.Headings {
		if h.Level == 1 {
			h1Count++
		}
	}
	if h1Count == 1 {
		points += 10
	}

	// Intact heading hierarchy, no skipped levels (10 points).
	if headingHierarchyIntact(doc.Headings) {
		points += 10
	}

	// Keyword in title (10 points).
	if strings.Contains(strings.ToLower(title), lowerKeyword) {
		points += 10
	}

	// Keyword in opening paragraph (5 points).
	if len(doc.Paragraphs) > 0 && strings.Contains(strings.ToLower(doc.Paragraphs[0]), lowerKeyword) {
		points += 5
	}

	// Keyword density band (15 points, half credit when present but outside
	// the band).
	density := doc.KeywordDensity(keyword)
	switch {
	case density >= densityMin && density <= densityMax:
		points += 15
	case density > 0:
		points += 7
	}

	// At least one link (10 points).
	if doc.Links >= 1 {
		points += 10
	}

	// Every image carries alt text; no images is fine (10 points).
	if doc.Images == 0 || doc.ImagesWithAlt == doc.Images {
		points += 10
	}

	return clamp(points), nil
}

// headingHierarchyIntact reports whether heading levels never skip (an H3
// directly under an H1, say).
func headingHierarchyIntact(headings []content.Heading) bool {
	if len(headings) == 0 {
		return false
	}
	prev := headings[0].Level
	for _, h := range headings[1:] {
		if h.Level > prev+1 {
			return false
		}
		prev = h.Level
	}
	return true
}
