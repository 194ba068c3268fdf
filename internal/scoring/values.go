package scoring

import "fmt"

func scoreValues(answers AnswerSet) Result {
	samples := collectLikert(valuesTable, answers)
	scores := likertScores(valuesTable, samples)
	return Result{
		TestID:     TestValues,
		Label:      maxDim(valuesTable.dims, scores),
		Scores:     scores,
		Analysis:   valuesAnalysis(scores),
		Confidence: consistencyConfidence(samples),
	}
}

func valuesAnalysis(scores map[string]float64) map[string]interface{} {
	top := rankDims(valuesTable.dims, scores, 3)
	topValues := make([]map[string]interface{}, 0, len(top))
	for _, v := range top {
		topValues = append(topValues, map[string]interface{}{"value": v.Name, "score": v.Score})
	}
	return map[string]interface{}{
		"top_values": topValues,
		"summary": fmt.Sprintf("Your core values are centered around %s, %s, and %s.",
			humanize(top[0].Name), humanize(top[1].Name), humanize(top[2].Name)),
	}
}
