package scoring

// Metadata describes a test to catalog consumers. Static, keyed by test id,
// no runtime dependency on answers.
type Metadata struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Category      string `json:"category"` // evidence-based | entertainment/spiritual
	Source        string `json:"source"`
	QuestionCount int    `json:"question_count"`
	Duration      string `json:"duration"`
}

var testMetadata = map[string]Metadata{
	TestMBTI: {
		ID:            TestMBTI,
		Name:          "Myers-Briggs Type Indicator",
		Category:      "evidence-based",
		Source:        "Psychological theory by Myers & Briggs",
		QuestionCount: 20,
		Duration:      "15-20 minutes",
	},
	TestEnneagram: {
		ID:            TestEnneagram,
		Name:          "Enneagram Personality Types",
		Category:      "evidence-based",
		Source:        "Enneagram Institute methodology",
		QuestionCount: 15,
		Duration:      "20-25 minutes",
	},
	TestDISC: {
		ID:            TestDISC,
		Name:          "DISC Behavioral Assessment",
		Category:      "evidence-based",
		Source:        "DISC behavioral assessment model",
		QuestionCount: 10,
		Duration:      "10-15 minutes",
	},
	TestHumanDesign: {
		ID:            TestHumanDesign,
		Name:          "Human Design System",
		Category:      "entertainment/spiritual",
		Source:        "Human Design System (entertainment/spiritual guidance)",
		QuestionCount: 5,
		Duration:      "5 minutes + birth data",
	},
	TestBigFive: {
		ID:            TestBigFive,
		Name:          "Big Five Personality Traits",
		Category:      "evidence-based",
		Source:        "Five-factor model (IPIP item pool)",
		QuestionCount: 42,
		Duration:      "15-20 minutes",
	},
	TestValues: {
		ID:            TestValues,
		Name:          "Personal Values Assessment",
		Category:      "evidence-based",
		Source:        "Schwartz theory of basic human values",
		QuestionCount: 42,
		Duration:      "15-20 minutes",
	},
	TestRIASEC: {
		ID:            TestRIASEC,
		Name:          "Career Interest Profiler",
		Category:      "evidence-based",
		Source:        "Holland RIASEC occupational themes",
		QuestionCount: 42,
		Duration:      "15-20 minutes",
	},
	TestDarkTriad: {
		ID:            TestDarkTriad,
		Name:          "Dark Triad Assessment",
		Category:      "evidence-based",
		Source:        "Short Dark Triad (SD3)",
		QuestionCount: 42,
		Duration:      "15-20 minutes",
	},
	TestGrit: {
		ID:            TestGrit,
		Name:          "Grit and Goal Orientation",
		Category:      "evidence-based",
		Source:        "Duckworth Grit Scale with goal-orientation items",
		QuestionCount: 42,
		Duration:      "15-20 minutes",
	},
	TestChronotype: {
		ID:            TestChronotype,
		Name:          "Chronotype and Sleep Quality",
		Category:      "evidence-based",
		Source:        "Morningness-Eveningness Questionnaire with sleep items",
		QuestionCount: 42,
		Duration:      "15-20 minutes",
	},
	TestNumerology: {
		ID:            TestNumerology,
		Name:          "Numerology Profile",
		Category:      "entertainment/spiritual",
		Source:        "Pythagorean numerology (entertainment/spiritual guidance)",
		QuestionCount: 4,
		Duration:      "5 minutes",
	},
}

// MetadataFor returns the catalog entry for a test id.
func MetadataFor(testID string) (Metadata, bool) {
	m, ok := testMetadata[testID]
	return m, ok
}

// AllMetadata lists every registered test, stable by id.
func AllMetadata() []Metadata {
	ids := []string{
		TestBigFive, TestValues, TestRIASEC, TestDarkTriad, TestGrit,
		TestChronotype, TestNumerology, TestMBTI, TestEnneagram, TestDISC,
		TestHumanDesign,
	}
	out := make([]Metadata, 0, len(ids))
	for _, id := range ids {
		out = append(out, testMetadata[id])
	}
	return out
}
