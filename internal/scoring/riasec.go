package scoring

import (
	"fmt"
	"strings"
)

func scoreRIASEC(answers AnswerSet) Result {
	samples := collectLikert(riasecTable, answers)
	scores := likertScores(riasecTable, samples)
	top := rankDims(riasecTable.dims, scores, 3)
	return Result{
		TestID:     TestRIASEC,
		Label:      careerCode(top),
		Scores:     scores,
		Analysis:   riasecAnalysis(top),
		Confidence: consistencyConfidence(samples),
	}
}

// careerCode is the Holland three-letter code: initials of the top three
// interests, highest first.
func careerCode(top []rankedDim) string {
	var b strings.Builder
	for _, t := range top {
		b.WriteString(strings.ToUpper(t.Name[:1]))
	}
	return b.String()
}

func riasecAnalysis(top []rankedDim) map[string]interface{} {
	topInterests := make([]map[string]interface{}, 0, len(top))
	for _, t := range top {
		topInterests = append(topInterests, map[string]interface{}{"interest": t.Name, "score": t.Score})
	}
	return map[string]interface{}{
		"top_interests": topInterests,
		"career_code":   careerCode(top),
		"summary": fmt.Sprintf("Your career interests align most with %s, %s, and %s fields.",
			top[0].Name, top[1].Name, top[2].Name),
	}
}
