package analyze

import (
	"context"
	"testing"
)

func TestCountSyllables(t *testing.T) {
	tests := []struct {
		word string
		want int
	}{
		{"cat", 1},
		{"water", 2},
		{"simple", 2},
		{"readability", 5},
		{"the", 1},
		{"I", 1},
		{"make", 1},
		{"", 0},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			if got := countSyllables(tt.word); got != tt.want {
				t.Errorf("countSyllables(%q) = %d, want %d", tt.word, got, tt.want)
			}
		})
	}
}

func TestReadabilitySimpleBeatsDense(t *testing.T) {
	a := NewReadabilityAnalyzer()
	ctx := context.Background()

	simple := parseTestDoc(t, "The cat sat on the mat. The dog ran to the park. We like short words. They read fast.")
	simpleScore, err := a.Analyze(ctx, simple, "")
	if err != nil {
		t.Fatalf("Analyze(simple) error = %v", err)
	}

	dense := parseTestDoc(t, "Institutional considerations notwithstanding, multidimensional organizational infrastructures necessitate comprehensive administrative coordination across heterogeneous operational environments, particularly when interdepartmental communication methodologies remain fundamentally incompatible.")
	denseScore, err := a.Analyze(ctx, dense, "")
	if err != nil {
		t.Fatalf("Analyze(dense) error = %v", err)
	}

	if simpleScore <= denseScore {
		t.Errorf("simple prose scored %d, dense prose %d; want simple > dense", simpleScore, denseScore)
	}
	if simpleScore < 80 {
		t.Errorf("simple prose scored %d, want at least 80", simpleScore)
	}
	if denseScore > 20 {
		t.Errorf("dense prose scored %d, want at most 20", denseScore)
	}
}
