package results

// TestResult is one persisted scoring outcome, keyed to the anonymous user
// session that submitted it. Answers are kept alongside the derived scores
// so a result can be re-scored if a table version ever changes.
type TestResult struct {
	ID          string                 `json:"id"`
	TestID      string                 `json:"test_id"`
	UserSession string                 `json:"user_session"`
	Answers     map[string]interface{} `json:"answers"`
	Label       string                 `json:"result_label"`
	Scores      map[string]float64     `json:"dimension_scores"`
	Analysis    map[string]interface{} `json:"analysis"`
	Confidence  float64                `json:"confidence"`
	CompletedAt int64                  `json:"completed_at"`
}
