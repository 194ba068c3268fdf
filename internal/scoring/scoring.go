// Package scoring turns raw questionnaire answers into dimension scores,
// structured analysis, and a confidence estimate. It is pure computation:
// no I/O, no clock, no randomness. Callers may invoke it concurrently.
package scoring

import "strconv"

// Test identifiers accepted by Score. The set is closed: adding a test means
// adding a case to Score and a table/metadata entry here.
const (
	TestBigFive     = "bigFive"
	TestValues      = "values"
	TestRIASEC      = "riasec"
	TestDarkTriad   = "darkTriad"
	TestGrit        = "grit"
	TestChronotype  = "chronotype"
	TestNumerology  = "numerology"
	TestMBTI        = "mbti"
	TestEnneagram   = "enneagram"
	TestDISC        = "disc"
	TestHumanDesign = "humanDesign"
)

// AnswerSet maps a stringified 1-based question id to its raw answer as
// decoded from JSON: a Likert integer, a categorical token, or (numerology,
// human design) a date/name string or object. Values that don't parse for
// their question are skipped, never fatal.
type AnswerSet map[string]interface{}

// Result is the uniform outcome of scoring one submission. Expected edge
// cases (unknown test, missing numerology inputs) are encoded in the value;
// Score never returns a Go error.
type Result struct {
	TestID     string                 `json:"test_id"`
	Label      string                 `json:"result_label"`
	Scores     map[string]float64     `json:"dimension_scores"`
	Analysis   map[string]interface{} `json:"analysis"`
	Confidence float64                `json:"confidence"`
	Err        string                 `json:"error,omitempty"`
}

// Score routes a submission to the scorer for testID. An unregistered test
// id yields Label "unknown" with empty scores and zero confidence; callers
// treat that as data, not a fault.
func Score(testID string, answers AnswerSet) Result {
	switch testID {
	case TestBigFive:
		return scoreBigFive(answers)
	case TestValues:
		return scoreValues(answers)
	case TestRIASEC:
		return scoreRIASEC(answers)
	case TestDarkTriad:
		return scoreDarkTriad(answers)
	case TestGrit:
		return scoreGrit(answers)
	case TestChronotype:
		return scoreChronotype(answers)
	case TestNumerology:
		return scoreNumerology(answers)
	case TestMBTI:
		return scoreMBTI(answers)
	case TestEnneagram:
		return scoreEnneagram(answers)
	case TestDISC:
		return scoreDISC(answers)
	case TestHumanDesign:
		return scoreHumanDesign(answers)
	default:
		return Result{
			TestID:   testID,
			Label:    "unknown",
			Scores:   map[string]float64{},
			Analysis: map[string]interface{}{},
		}
	}
}

// questionID parses an AnswerSet key. Non-numeric keys are malformed input
// and get skipped by every scorer.
func questionID(key string) (int, bool) {
	id, err := strconv.Atoi(key)
	if err != nil {
		return 0, false
	}
	return id, true
}

// intValue coerces a decoded JSON answer to an integer. Floats must be
// whole; anything else is malformed.
func intValue(v interface{}) (int, bool) {
	switch t := v.(type) {
	case int:
		return t, true
	case int64:
		return int(t), true
	case float64:
		if t != float64(int(t)) {
			return 0, false
		}
		return int(t), true
	case string:
		n, err := strconv.Atoi(t)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// likertValue is intValue restricted to the 1-5 response scale.
func likertValue(v interface{}) (int, bool) {
	n, ok := intValue(v)
	if !ok || n < 1 || n > 5 {
		return 0, false
	}
	return n, true
}

func stringValue(v interface{}) (string, bool) {
	s, ok := v.(string)
	return s, ok
}
