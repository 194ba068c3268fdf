package scoring

import (
	"fmt"
	"sort"
	"strconv"
)

// enneagramItemType maps each questionnaire item to the type it loads on.
// Item-for-item from the source instrument.
var enneagramItemType = map[int]int{
	1:  4, // romantic/imaginative
	2:  2, // taking on responsibilities
	3:  8, // aggressive/assertive
	4:  5, // trouble expressing feelings
	5:  2, // supportive/giving
	6:  7, // spontaneous/fun-loving
	7:  1, // idealistic/improve things
	8:  1, // getting things done perfectly
	9:  3, // competitive/image-conscious
	10: 5, // studious/intellectually curious
	11: 1, // responsible/hard-working
	12: 4, // moody/self-absorbed
	13: 3, // determined/driven
	14: 9, // easy-going/agreeable
	15: 6, // concerned with security
}

func scoreEnneagram(answers AnswerSet) Result {
	// Likert answers weight their item's type by agreement strength.
	typeScores := make(map[int]int, 9)
	for t := 1; t <= 9; t++ {
		typeScores[t] = 0
	}
	for key, raw := range answers {
		id, ok := questionID(key)
		if !ok {
			continue
		}
		t, ok := enneagramItemType[id]
		if !ok {
			continue
		}
		v, ok := likertValue(raw)
		if !ok {
			continue
		}
		typeScores[t] += v
	}

	dominant := 1
	for t := 2; t <= 9; t++ {
		if typeScores[t] > typeScores[dominant] {
			dominant = t
		}
	}

	sorted := make([]int, 0, 9)
	for t := 1; t <= 9; t++ {
		sorted = append(sorted, typeScores[t])
	}
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))

	scores := make(map[string]float64, 9)
	for t := 1; t <= 9; t++ {
		scores[strconv.Itoa(t)] = float64(typeScores[t])
	}
	label := strconv.Itoa(dominant)
	return Result{
		TestID: TestEnneagram,
		Label:  label,
		Scores: scores,
		Analysis: map[string]interface{}{
			"dominant_type": label,
			"type_scores":   scores,
			"summary":       fmt.Sprintf("Your responses point to Enneagram type %s as your dominant pattern.", label),
		},
		Confidence: separationConfidence(sorted[0], sorted[1]),
	}
}
