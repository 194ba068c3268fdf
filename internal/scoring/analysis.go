package scoring

import (
	"sort"
	"strings"
)

// Qualitative score bands shared by the Likert tests.
const (
	levelVeryHigh = "Very High"
	levelHigh     = "High"
	levelModerate = "Moderate"
	levelLow      = "Low"
	levelVeryLow  = "Very Low"
)

func levelFor(score float64) string {
	switch {
	case score >= 70:
		return levelVeryHigh
	case score >= 60:
		return levelHigh
	case score >= 40:
		return levelModerate
	case score >= 30:
		return levelLow
	default:
		return levelVeryLow
	}
}

// maxDim and minDim pick extremes over the table's declared order, so ties
// resolve to the first-declared dimension, stably across calls.
func maxDim(dims []string, scores map[string]float64) string {
	best := dims[0]
	for _, d := range dims[1:] {
		if scores[d] > scores[best] {
			best = d
		}
	}
	return best
}

func minDim(dims []string, scores map[string]float64) string {
	best := dims[0]
	for _, d := range dims[1:] {
		if scores[d] < scores[best] {
			best = d
		}
	}
	return best
}

type rankedDim struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// rankDims orders dimensions by score descending, declaration order on
// ties, and keeps the top n.
func rankDims(dims []string, scores map[string]float64, n int) []rankedDim {
	ranked := make([]rankedDim, 0, len(dims))
	for _, d := range dims {
		ranked = append(ranked, rankedDim{Name: d, Score: scores[d]})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Score > ranked[j].Score })
	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}

// humanize turns a dimension key into prose ("self_direction" -> "self direction").
func humanize(dim string) string { return strings.ReplaceAll(dim, "_", " ") }
