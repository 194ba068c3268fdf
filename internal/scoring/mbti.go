package scoring

import "fmt"

// The four MBTI preference pairs: first pole wins a strict majority, the
// second pole takes ties.
var mbtiPairs = [4][2]string{{"E", "I"}, {"S", "N"}, {"T", "F"}, {"J", "P"}}

func scoreMBTI(answers AnswerSet) Result {
	counts := map[string]int{"E": 0, "I": 0, "S": 0, "N": 0, "T": 0, "F": 0, "J": 0, "P": 0}
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

	personalityType := ""
	pairs := make([][2]int, 0, len(mbtiPairs))
	for _, p := range mbtiPairs {
		if counts[p[0]] > counts[p[1]] {
			personalityType += p[0]
		} else {
			personalityType += p[1]
		}
		pairs = append(pairs, [2]int{counts[p[0]], counts[p[1]]})
	}

	scores := make(map[string]float64, len(counts))
	for letter, n := range counts {
		scores[letter] = float64(n)
	}
	return Result{
		TestID:     TestMBTI,
		Label:      personalityType,
		Scores:     scores,
		Analysis:   mbtiAnalysis(personalityType, counts),
		Confidence: clarityConfidence(pairs, total),
	}
}

func mbtiAnalysis(personalityType string, counts map[string]int) map[string]interface{} {
	preferences := make(map[string]interface{}, len(mbtiPairs))
	for _, p := range mbtiPairs {
		a, b := counts[p[0]], counts[p[1]]
		denom := a + b
		if denom < 1 {
			denom = 1
		}
		preferences[p[0]+"-"+p[1]] = map[string]interface{}{
			p[0]:      a,
			p[1]:      b,
			"clarity": round2(abs(a-b) / float64(denom)),
		}
	}
	return map[string]interface{}{
		"type":        personalityType,
		"preferences": preferences,
		"summary":     fmt.Sprintf("Your responses indicate a %s preference pattern.", personalityType),
	}
}
