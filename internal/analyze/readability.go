package analyze

import (
	"context"
	"math"
	"strings"

	"github.com/dotcommander/contentgate/internal/content"
	"github.com/dotcommander/contentgate/internal/dimension"
)

// ReadabilityAnalyzer scores the document with the Flesch reading ease
// formula, clamped into [0,100]. Higher is easier to read.
type ReadabilityAnalyzer struct{}

// NewReadabilityAnalyzer creates a ReadabilityAnalyzer.
func NewReadabilityAnalyzer() *ReadabilityAnalyzer {
	return &ReadabilityAnalyzer{}
}

func (a *ReadabilityAnalyzer) Dimension() dimension.Dimension {
	return dimension.Readability
}

func (a *ReadabilityAnalyzer) Analyze(ctx context.Context, doc *content.Document, keyword string) (int, error) {
	if err := checkInput(ctx, doc); err != nil {
		return 0, err
	}
	if len(doc.Sentences) == 0 {
		return 0, ErrNoProse
	}

	words := strings.Fields(doc.PlainText)
	syllables := 0
	for _, w := range words {
		syllables += countSyllables(w)
	}

	wordsPerSentence := float64(len(words)) / float64(len(doc.Sentences))
	syllablesPerWord := float64(syllables) / float64(len(words))
	flesch := 206.835 - 1.015*wordsPerSentence - 84.6*syllablesPerWord

	return clamp(int(math.Round(flesch))), nil
}

// countSyllables estimates syllables by counting vowel groups, with the usual
// silent-e adjustment. Minimum of one per word.
func countSyllables(word string) int {
	word = strings.ToLower(strings.Trim(word, ".,;:!?\"'()[]"))
	if word == "" {
		return 0
	}

	count := 0
	prevVowel := false
	for _, r := range word {
		vowel := strings.ContainsRune("aeiouy", r)
		if vowel && !prevVowel {
			count++
		}
		prevVowel = vowel
	}
	if strings.HasSuffix(word, "e") && !strings.HasSuffix(word, "le") && count > 1 {
		count--
	}
	if count < 1 {
		count = 1
	}
	return count
}
