package scoring_test

import (
	"testing"

	"github.com/personal-blueprint/blueprint-backend/internal/scoring"
)

func TestNumerologyJohnSmith(t *testing.T) {
	answers := scoring.AnswerSet{"1": "1990-05-15", "2": "JOHN SMITH"}
	res := scoring.Score(scoring.TestNumerology, answers)
	if res.Err != "" {
		t.Fatalf("unexpected error: %q", res.Err)
	}
	// life path = reduce(5 + 15 + (1+9+9+0)) = reduce(39) = reduce(12) = 3
	want := map[string]float64{
		"life_path":   3,
		"expression":  8,  // JOHN=20, SMITH=24, reduce(44)
		"soul_urge":   6,  // O+I = 15
		"personality": 11, // J+H+N+S+M+T+H = 29 -> master 11
		"birthday":    6,  // reduce(15)
	}
	for k, v := range want {
		if res.Scores[k] != v {
			t.Errorf("%s = %v, want %v", k, res.Scores[k], v)
		}
	}
	if res.Label != "3" {
		t.Errorf("label = %q, want 3", res.Label)
	}
	if res.Confidence != 0.95 {
		t.Errorf("confidence = %v, want fixed 0.95", res.Confidence)
	}
	// Recompute: deterministic arithmetic.
	again := scoring.Score(scoring.TestNumerology, answers)
	if again.Scores["life_path"] != 3 || again.Confidence != 0.95 {
		t.Errorf("recompute drifted: %v", again)
	}
}

func TestNumerologyDateFormats(t *testing.T) {
	cases := []interface{}{
		"1990-05-15",
		"05/15/1990",
		map[string]interface{}{"month": 5.0, "day": 15.0, "year": 1990.0},
	}
	for _, date := range cases {
		res := scoring.Score(scoring.TestNumerology, scoring.AnswerSet{"1": date, "2": "JOHN SMITH"})
		if res.Err != "" {
			t.Errorf("%v: error %q", date, res.Err)
			continue
		}
		if res.Scores["life_path"] != 3 {
			t.Errorf("%v: life path = %v, want 3", date, res.Scores["life_path"])
		}
	}
}

func TestNumerologyCaseAndMasterNumbers(t *testing.T) {
	upper := scoring.Score(scoring.TestNumerology, scoring.AnswerSet{"1": "05/15/1990", "2": "JOHN SMITH"})
	lower := scoring.Score(scoring.TestNumerology, scoring.AnswerSet{"1": "05/15/1990", "2": "john smith"})
	if upper.Scores["expression"] != lower.Scores["expression"] {
		t.Errorf("name case must not matter: %v vs %v", upper.Scores, lower.Scores)
	}
	// 29 is not reduced past 11: master numbers survive.
	if upper.Scores["personality"] != 11 {
		t.Errorf("personality = %v, want master number 11", upper.Scores["personality"])
	}
}

func TestNumerologyMissingInputs(t *testing.T) {
	cases := []scoring.AnswerSet{
		{},
		{"1": "1990-05-15"},
		{"2": "JOHN SMITH"},
		{"1": "1990-05-15", "2": "   "},
	}
	for _, answers := range cases {
		res := scoring.Score(scoring.TestNumerology, answers)
		if res.Err == "" {
			t.Errorf("%v: want result-level error", answers)
		}
		if res.Confidence != 0 {
			t.Errorf("%v: confidence = %v, want 0", answers, res.Confidence)
		}
		if len(res.Scores) != 0 {
			t.Errorf("%v: scores must be empty on failure", answers)
		}
	}
}

func TestNumerologyBadDate(t *testing.T) {
	res := scoring.Score(scoring.TestNumerology, scoring.AnswerSet{"1": "soon", "2": "JOHN SMITH"})
	if res.Err == "" {
		t.Fatal("want result-level error for unparseable date")
	}
}

func TestNumerologyAnalysis(t *testing.T) {
	res := scoring.Score(scoring.TestNumerology, scoring.AnswerSet{"1": "1990-05-15", "2": "JOHN SMITH"})
	numbers, ok := res.Analysis["numbers"].(map[string]interface{})
	if !ok {
		t.Fatalf("analysis missing numbers: %#v", res.Analysis)
	}
	lp, ok := numbers["life_path"].(map[string]interface{})
	if !ok {
		t.Fatalf("numbers missing life_path: %#v", numbers)
	}
	if lp["meaning"] != "Creativity, communication, optimism" {
		t.Errorf("life path 3 meaning = %v", lp["meaning"])
	}
	focus, _ := res.Analysis["life_path_focus"].(string)
	if focus == "" {
		t.Error("missing life_path_focus sentence")
	}
}
