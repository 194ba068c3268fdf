package scoring

import "fmt"

func scoreGrit(answers AnswerSet) Result {
	samples := collectLikert(gritTable, answers)
	scores := likertScores(gritTable, samples)
	// Composite grit: mean of the two grit subscales. Goal-orientation
	// dimensions stay out of the composite.
	scores["overall_grit"] = round1((scores["grit_consistency"] + scores["grit_perseverance"]) / 2)
	return Result{
		TestID:     TestGrit,
		Label:      gritLevel(scores["overall_grit"]),
		Scores:     scores,
		Analysis:   gritAnalysis(scores),
		Confidence: consistencyConfidence(samples),
	}
}

func gritLevel(overall float64) string {
	switch {
	case overall >= 70:
		return "High"
	case overall >= 40:
		return "Moderate"
	default:
		return "Developing"
	}
}

func gritAnalysis(scores map[string]float64) map[string]interface{} {
	overall := scores["overall_grit"]
	qualifier := "developing"
	switch {
	case overall >= 70:
		qualifier = "strong"
	case overall >= 40:
		qualifier = "moderate"
	}
	return map[string]interface{}{
		"grit_level": gritLevel(overall),
		"scores":     scores,
		"summary": fmt.Sprintf("Your grit score of %v/100 indicates %s persistence and passion for long-term goals.",
			overall, qualifier),
	}
}
