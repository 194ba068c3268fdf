package scoring

import "fmt"

func scoreBigFive(answers AnswerSet) Result {
	samples := collectLikert(bigFiveTable, answers)
	scores := likertScores(bigFiveTable, samples)
	return Result{
		TestID:     TestBigFive,
		Label:      maxDim(bigFiveTable.dims, scores),
		Scores:     scores,
		Analysis:   bigFiveAnalysis(scores),
		Confidence: consistencyConfidence(samples),
	}
}

func bigFiveAnalysis(scores map[string]float64) map[string]interface{} {
	profile := make(map[string]interface{}, len(scores))
	for _, dim := range bigFiveTable.dims {
		score := scores[dim]
		profile[dim] = map[string]interface{}{
			"score":       score,
			"level":       levelFor(score),
			"description": bigFiveDescription(dim, score),
		}
	}
	return map[string]interface{}{
		"profile":           profile,
		"summary":           bigFiveSummary(scores),
		"strengths":         bigFiveStrengths(scores),
		"development_areas": bigFiveDevelopmentAreas(scores),
	}
}

func bigFiveSummary(scores map[string]float64) string {
	highest := maxDim(bigFiveTable.dims, scores)
	lowest := minDim(bigFiveTable.dims, scores)
	return fmt.Sprintf(
		"Your personality is characterized by %s as your strongest trait and %s as your most moderate trait. "+
			"This combination creates a unique personality profile that influences how you interact with the world, make decisions, and form relationships.",
		humanize(highest), humanize(lowest))
}

// Strengths require a high standing (low for neuroticism, where stability
// is the asset); development areas mirror that. Either list falls back to a
// single placeholder so consumers never see an empty list.
func bigFiveStrengths(scores map[string]float64) []string {
	var out []string
	if scores["openness"] >= 60 {
		out = append(out, "Creative and innovative thinking")
	}
	if scores["conscientiousness"] >= 60 {
		out = append(out, "Strong organizational and planning skills")
	}
	if scores["extraversion"] >= 60 {
		out = append(out, "Excellent social and communication skills")
	}
	if scores["agreeableness"] >= 60 {
		out = append(out, "Strong interpersonal and teamwork abilities")
	}
	if scores["neuroticism"] <= 40 {
		out = append(out, "Emotional stability and stress resilience")
	}
	if len(out) == 0 {
		out = []string{"Balanced personality across all dimensions"}
	}
	return out
}

func bigFiveDevelopmentAreas(scores map[string]float64) []string {
	var out []string
	if scores["openness"] <= 40 {
		out = append(out, "Exploring new experiences and creative pursuits")
	}
	if scores["conscientiousness"] <= 40 {
		out = append(out, "Improving organization and goal-setting skills")
	}
	if scores["extraversion"] <= 40 {
		out = append(out, "Building social connections and networking")
	}
	if scores["agreeableness"] <= 40 {
		out = append(out, "Developing empathy and collaborative skills")
	}
	if scores["neuroticism"] >= 60 {
		out = append(out, "Managing stress and emotional regulation")
	}
	if len(out) == 0 {
		out = []string{"Continue maintaining your balanced personality"}
	}
	return out
}

// Dimension descriptions use a coarser 3-band split than the profile levels.
var bigFiveDescriptions = map[string]map[string]string{
	"openness": {
		"high":     "You are imaginative, creative, and open to new experiences. You enjoy abstract thinking and artistic pursuits.",
		"moderate": "You balance practicality with openness to new ideas. You appreciate both tradition and innovation.",
		"low":      "You prefer familiar approaches and concrete thinking. You value practicality and established methods.",
	},
	"conscientiousness": {
		"high":     "You are organized, disciplined, and goal-oriented. You plan ahead and follow through on commitments.",
		"moderate": "You balance structure with flexibility. You can be organized when needed but also adaptable.",
		"low":      "You prefer spontaneity and flexibility. You may struggle with long-term planning and organization.",
	},
	"extraversion": {
		"high":     "You are outgoing, energetic, and social. You gain energy from being around others.",
		"moderate": "You balance social interaction with solitude. You can be outgoing in some situations and reserved in others.",
		"low":      "You prefer quiet environments and small groups. You gain energy from solitude and reflection.",
	},
	"agreeableness": {
		"high":     "You are cooperative, trusting, and empathetic. You prioritize harmony and helping others.",
		"moderate": "You balance cooperation with assertiveness. You can be both supportive and competitive when needed.",
		"low":      "You are independent and competitive. You prioritize your own needs and can be skeptical of others' motives.",
	},
	"neuroticism": {
		"high":     "You may experience more frequent stress, anxiety, or emotional ups and downs. You are sensitive to negative emotions.",
		"moderate": "You have typical emotional responses. You can handle stress reasonably well but may occasionally feel overwhelmed.",
		"low":      "You are emotionally stable and resilient. You remain calm under pressure and recover quickly from setbacks.",
	},
}

func bigFiveDescription(dim string, score float64) string {
	band := "low"
	switch {
	case score >= 60:
		band = "high"
	case score >= 40:
		band = "moderate"
	}
	if d, ok := bigFiveDescriptions[dim]; ok {
		return d[band]
	}
	return "No description available"
}
