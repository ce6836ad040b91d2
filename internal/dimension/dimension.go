// Package dimension defines the closed set of content quality dimensions.
// Dimensions are enumerated rather than free-form strings so that a missing or
// misspelled dimension is a construction-time error, not a runtime NaN.
package dimension

import "fmt"

// Dimension identifies one axis of content quality, scored in [0,100].
type Dimension string

const (
	WritingQuality   Dimension = "writing-quality"
	SEOCompliance    Dimension = "seo-compliance"
	Readability      Dimension = "readability"
	Authenticity     Dimension = "authenticity"
	Uniqueness       Dimension = "uniqueness"
	TopicalAuthority Dimension = "topical-authority"
)

// all holds every dimension in canonical order. Reports, recommendations, and
// gate lists follow this order so output is deterministic across runs.
var all = []Dimension{
	WritingQuality,
	SEOCompliance,
	Readability,
	Authenticity,
	Uniqueness,
	TopicalAuthority,
}

// titles maps dimensions to their human-readable display names.
var titles = map[Dimension]string{
	WritingQuality:   "Writing Quality",
	SEOCompliance:    "SEO Compliance",
	Readability:      "Readability",
	Authenticity:     "Authenticity",
	Uniqueness:       "Uniqueness",
	TopicalAuthority: "Topical Authority",
}

// All returns every dimension in canonical order. The returned slice is a
// copy; callers may reorder it freely.
func All() []Dimension {
	out := make([]Dimension, len(all))
	copy(out, all)
	return out
}

// Count returns the number of dimensions in the closed set.
func Count() int {
	return len(all)
}

// Known reports whether d is a member of the closed dimension set.
func Known(d Dimension) bool {
	_, ok := titles[d]
	return ok
}

// Parse converts a string identifier to a Dimension.
func Parse(s string) (Dimension, error) {
	d := Dimension(s)
	if !Known(d) {
		return "", fmt.Errorf("unknown dimension: %q", s)
	}
	return d, nil
}

func (d Dimension) String() string {
	return string(d)
}

// Title returns the human-readable display name for the dimension.
func (d Dimension) Title() string {
	if t, ok := titles[d]; ok {
		return t
	}
	return string(d)
}
