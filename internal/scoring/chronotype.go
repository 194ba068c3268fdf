package scoring

import (
	"fmt"
	"strings"
)

func scoreChronotype(answers AnswerSet) Result {
	samples := collectChronotype(answers)
	scores := chronotypeScores(samples)
	return Result{
		TestID:     TestChronotype,
		Label:      chronotypeLabel(scores["morningness"]),
		Scores:     scores,
		Analysis:   chronotypeAnalysis(scores),
		Confidence: consistencyConfidence(samples),
	}
}

// collectChronotype handles the instrument's two answer shapes: ids 1-10
// are MEQ morningness items (either a plain integer or {"score": n},
// never reverse-scored), the rest are regular 1-5 Likert items.
func collectChronotype(answers AnswerSet) map[string][]int {
	samples := make(map[string][]int, len(chronotypeTable.dims))
	for _, dim := range chronotypeTable.dims {
		samples[dim] = nil
	}
	for key, raw := range answers {
		id, ok := questionID(key)
		if !ok {
			continue
		}
		dim, reverse, ok := chronotypeTable.Lookup(id)
		if !ok {
			continue
		}
		var v int
		if id <= 10 {
			v, ok = meqValue(raw)
		} else {
			v, ok = likertValue(raw)
			if ok && reverse {
				v = 6 - v
			}
		}
		if !ok {
			continue
		}
		samples[dim] = append(samples[dim], v)
	}
	return samples
}

// meqValue accepts an MEQ item response: 0-6 inclusive, either bare or
// wrapped as {"score": n}.
func meqValue(raw interface{}) (int, bool) {
	if obj, ok := raw.(map[string]interface{}); ok {
		inner, present := obj["score"]
		if !present {
			return 0, false
		}
		raw = inner
	}
	n, ok := intValue(raw)
	if !ok || n < 0 || n > 6 {
		return 0, false
	}
	return n, true
}

// chronotypeScores applies the instrument's native morningness formula,
// sum/count*10, instead of the shared Likert normalization; the sleep
// dimensions use the regular 0-100 scale.
func chronotypeScores(samples map[string][]int) map[string]float64 {
	scores := make(map[string]float64, len(chronotypeTable.dims))
	for _, dim := range chronotypeTable.dims {
		s := samples[dim]
		switch {
		case len(s) == 0:
			scores[dim] = 50.0
		case dim == "morningness":
			total := 0
			for _, v := range s {
				total += v
			}
			scores[dim] = round1(float64(total) / float64(len(s)) * 10)
		default:
			scores[dim] = normalizeMean(s)
		}
	}
	return scores
}

func chronotypeLabel(morningness float64) string {
	switch {
	case morningness >= 70:
		return "Strong Morning Type"
	case morningness >= 60:
		return "Moderate Morning Type"
	case morningness >= 40:
		return "Neither Type"
	case morningness >= 30:
		return "Moderate Evening Type"
	default:
		return "Strong Evening Type"
	}
}

func chronotypeAnalysis(scores map[string]float64) map[string]interface{} {
	label := chronotypeLabel(scores["morningness"])
	return map[string]interface{}{
		"chronotype": label,
		"scores":     scores,
		"summary": fmt.Sprintf("You are a %s, which affects your optimal times for productivity, exercise, and social activities.",
			strings.ToLower(label)),
	}
}
