package scoring

func scoreDarkTriad(answers AnswerSet) Result {
	samples := collectLikert(darkTriadTable, answers)
	scores := likertScores(darkTriadTable, samples)
	return Result{
		TestID:     TestDarkTriad,
		Label:      maxDim(darkTriadTable.dims, scores),
		Scores:     scores,
		Analysis:   darkTriadAnalysis(scores),
		Confidence: consistencyConfidence(samples),
	}
}

// Dark Triad results are framed carefully: the analysis carries a fixed
// sensitivity note alongside the raw trait scores.
func darkTriadAnalysis(scores map[string]float64) map[string]interface{} {
	return map[string]interface{}{
		"scores": scores,
		"summary": "These scores reflect certain personality tendencies. Remember that everyone has complex motivations, " +
			"and these results are for self-awareness and growth.",
		"note": "High scores don't define you - they're opportunities for self-reflection and personal development.",
	}
}
