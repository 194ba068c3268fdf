package scoring

import (
	"fmt"
	"strings"
)

var hdTypes = map[string]string{
	"manifesting-generator": "Manifesting Generator",
	"generator":             "Generator",
	"projector":             "Projector",
	"manifestor":            "Manifestor",
	"reflector":             "Reflector",
}

var hdAuthorities = map[string]string{
	"emotional":      "Emotional Authority",
	"sacral":         "Sacral Authority",
	"splenic":        "Splenic Authority",
	"ego":            "Ego Authority",
	"self-projected": "Self-Projected Authority",
	"mental":         "Mental Authority",
	"lunar":          "Lunar Authority",
}

// scoreHumanDesign derives a type/authority reading from five intake
// answers: birth date, time, and location (ids 1-3), decision-making style
// (4), and energy pattern (5). There is no Likert arithmetic here;
// confidence tracks birth-data completeness and is capped at the
// entertainment-tier ceiling.
func scoreHumanDesign(answers AnswerSet) Result {
	birthData := map[string]string{
		"date":     hdField(answers, "1"),
		"time":     hdField(answers, "2"),
		"location": hdField(answers, "3"),
	}
	decisionMaking := hdField(answers, "4")
	if decisionMaking == "" {
		decisionMaking = "emotional"
	}
	energyPattern := hdField(answers, "5")
	if energyPattern == "" {
		energyPattern = "manifesting-generator"
	}

	resultType, ok := hdTypes[energyPattern]
	if !ok {
		resultType = "Manifesting Generator"
	}
	authority, ok := hdAuthorities[decisionMaking]
	if !ok {
		authority = "Emotional Authority"
	}

	complete := 0
	for _, v := range birthData {
		if strings.TrimSpace(v) != "" {
			complete++
		}
	}

	return Result{
		TestID: TestHumanDesign,
		Label:  resultType,
		Scores: map[string]float64{},
		Analysis: map[string]interface{}{
			"type":       resultType,
			"authority":  authority,
			"birth_data": birthData,
			"summary":    fmt.Sprintf("You are a %s with %s.", resultType, authority),
		},
		Confidence: completenessConfidence(complete),
	}
}

func hdField(answers AnswerSet, key string) string {
	s, _ := stringValue(answers[key])
	return s
}
