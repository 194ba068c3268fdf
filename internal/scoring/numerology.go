package scoring

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// numerologyMeanings covers every number a correct reduction can produce:
// 1-9 plus the master numbers. An out-of-table number would mean the
// reduction itself is broken.
var numerologyMeanings = map[int]string{
	1:  "Leadership, independence, innovation",
	2:  "Cooperation, diplomacy, partnership",
	3:  "Creativity, communication, optimism",
	4:  "Stability, hard work, organization",
	5:  "Freedom, adventure, versatility",
	6:  "Nurturing, responsibility, healing",
	7:  "Spirituality, analysis, introspection",
	8:  "Material success, authority, achievement",
	9:  "Completion, humanitarianism, wisdom",
	11: "Intuition, inspiration, enlightenment",
	22: "Master builder, practical idealism",
	33: "Master teacher, spiritual healing",
}

// scoreNumerology derives the five core numbers from birth date and birth
// name. Unlike the questionnaire tests this is pure arithmetic, so success
// carries a fixed 0.95 confidence; missing or unparseable required inputs
// are a hard result-level error.
func scoreNumerology(answers AnswerSet) Result {
	birthName, _ := stringValue(answers["2"])
	birthName = strings.ToUpper(birthName)
	if answers["1"] == nil || strings.TrimSpace(birthName) == "" {
		return numerologyError("birth date and name are required")
	}
	month, day, year, ok := parseBirthDate(answers["1"])
	if !ok {
		return numerologyError("invalid birth date format")
	}

	lifePath := reduceNumber(month + day + digitSum(year))
	expression := reduceNumber(nameValue(birthName, anyLetter))
	soulUrge := reduceNumber(nameValue(birthName, isVowel))
	personality := reduceNumber(nameValue(birthName, isConsonant))
	birthday := reduceNumber(day)

	numbers := map[string]int{
		"life_path":   lifePath,
		"expression":  expression,
		"soul_urge":   soulUrge,
		"personality": personality,
		"birthday":    birthday,
	}
	scores := make(map[string]float64, len(numbers))
	for k, v := range numbers {
		scores[k] = float64(v)
	}
	return Result{
		TestID:     TestNumerology,
		Label:      strconv.Itoa(lifePath),
		Scores:     scores,
		Analysis:   numerologyAnalysis(numbers),
		Confidence: 0.95,
	}
}

func numerologyError(msg string) Result {
	return Result{
		TestID:   TestNumerology,
		Scores:   map[string]float64{},
		Analysis: map[string]interface{}{"error": msg},
		Err:      msg,
	}
}

// parseBirthDate accepts "MM/DD/YYYY", "YYYY-MM-DD", or an already-split
// {"month","day","year"} object.
func parseBirthDate(v interface{}) (month, day, year int, ok bool) {
	switch t := v.(type) {
	case string:
		if strings.Contains(t, "/") {
			parts := strings.Split(t, "/")
			if len(parts) != 3 {
				return 0, 0, 0, false
			}
			m, err1 := strconv.Atoi(parts[0])
			d, err2 := strconv.Atoi(parts[1])
			y, err3 := strconv.Atoi(parts[2])
			if err1 != nil || err2 != nil || err3 != nil {
				return 0, 0, 0, false
			}
			return m, d, y, true
		}
		parsed, err := time.Parse("2006-01-02", t)
		if err != nil {
			return 0, 0, 0, false
		}
		return int(parsed.Month()), parsed.Day(), parsed.Year(), true
	case map[string]interface{}:
		m, ok1 := intValue(t["month"])
		d, ok2 := intValue(t["day"])
		y, ok3 := intValue(t["year"])
		if !ok1 || !ok2 || !ok3 {
			return 0, 0, 0, false
		}
		return m, d, y, true
	default:
		return 0, 0, 0, false
	}
}

// reduceNumber collapses to a single digit, preserving the master numbers
// 11, 22, and 33.
func reduceNumber(n int) int {
	for n > 9 && n != 11 && n != 22 && n != 33 {
		n = digitSum(n)
	}
	return n
}

func digitSum(n int) int {
	sum := 0
	for n > 0 {
		sum += n % 10
		n /= 10
	}
	return sum
}

// letterValue is the Pythagorean table: A-I map to 1-9, then the cycle
// repeats (J=1 .. R=9, S=1 .. Z=8). Non-letters contribute nothing.
func letterValue(r rune) int {
	if r < 'A' || r > 'Z' {
		return 0
	}
	return int(r-'A')%9 + 1
}

func nameValue(name string, include func(rune) bool) int {
	sum := 0
	for _, r := range name {
		if include(r) {
			sum += letterValue(r)
		}
	}
	return sum
}

func anyLetter(r rune) bool { return r >= 'A' && r <= 'Z' }

func isVowel(r rune) bool { return strings.ContainsRune("AEIOU", r) }

func isConsonant(r rune) bool { return anyLetter(r) && !isVowel(r) }

func numerologyAnalysis(numbers map[string]int) map[string]interface{} {
	detail := make(map[string]interface{}, len(numbers))
	for name, n := range numbers {
		detail[name] = map[string]interface{}{
			"number":  n,
			"meaning": meaningFor(n),
		}
	}
	return map[string]interface{}{
		"numbers": detail,
		"life_path_focus": fmt.Sprintf("Your life path number %d suggests a journey focused on %s",
			numbers["life_path"], meaningFor(numbers["life_path"])),
		"summary": fmt.Sprintf("Your numerology profile reveals a combination of %s and %s energies.",
			meaningFor(numbers["life_path"]), meaningFor(numbers["expression"])),
	}
}

func meaningFor(n int) string {
	if m, ok := numerologyMeanings[n]; ok {
		return m
	}
	return "Unique spiritual significance"
}
