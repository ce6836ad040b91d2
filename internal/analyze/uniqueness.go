package analyze

import (
	"context"
	"math"
	"strings"

	"github.com/dotcommander/contentgate/internal/content"
	"github.com/dotcommander/contentgate/internal/dimension"
)

// ngramSize is the shingle length used to detect repeated passages.
const ngramSize = 5

// UniquenessAnalyzer scores internal uniqueness: how much of the document
// repeats its own passages. It does not consult any external corpus.
type UniquenessAnalyzer struct{}

// NewUniquenessAnalyzer creates a UniquenessAnalyzer.
func NewUniquenessAnalyzer() *UniquenessAnalyzer {
	return &UniquenessAnalyzer{}
}

func (a *UniquenessAnalyzer) Dimension() dimension.Dimension {
	return dimension.Uniqueness
}

func (a *UniquenessAnalyzer) Analyze(ctx context.Context, doc *content.Document, keyword string) (int, error) {
	if err := checkInput(ctx, doc); err != nil {
		return 0, err
	}

	words := strings.Fields(strings.ToLower(doc.PlainText))
	total := len(words) - ngramSize + 1
	if total < 1 {
		// Too short to shingle; nothing can repeat.
		return 100, nil
	}

	seen := make(map[string]bool, total)
	duplicates := 0
	for i := 0; i < total; i++ {
		gram := strings.Join(words[i:i+ngramSize], " ")
		if seen[gram] {
			duplicates++
		} else {
			seen[gram] = true
		}
	}

	ratio := float64(duplicates) / float64(total)
	return clamp(100 - int(math.Round(ratio*250))), nil
}
