package scoring

import "fmt"

// DISC styles in canonical order; the first-listed style wins ties for the
// dominant pick.
var discStyles = []string{"D", "I", "S", "C"}

var discStyleNames = map[string]string{
	"D": "Dominance",
	"I": "Influence",
	"S": "Steadiness",
	"C": "Conscientiousness",
}

func scoreDISC(answers AnswerSet) Result {
	counts := map[string]int{"D": 0, "I": 0, "S": 0, "C": 0}
	total := 0
	for _, raw := range answers {
		letter, ok := stringValue(raw)
		if !ok {
			continue
		}
		if _, known := counts[letter]; known {
			counts[letter]++
			total++
		}
	}

	dominant := discStyles[0]
	for _, s := range discStyles[1:] {
		if counts[s] > counts[dominant] {
			dominant = s
		}
	}

	scores := make(map[string]float64, len(counts))
	for s, n := range counts {
		scores[s] = float64(n)
	}
	return Result{
		TestID: TestDISC,
		Label:  dominant,
		Scores: scores,
		Analysis: map[string]interface{}{
			"dominant_style": discStyleNames[dominant],
			"counts":         counts,
			"summary":        fmt.Sprintf("Your primary behavioral style is %s (%s).", discStyleNames[dominant], dominant),
		},
		Confidence: dominanceConfidence(counts[dominant], total),
	}
}
