package results

import (
	"database/sql"
	"encoding/json"
	"errors"
)

// SQLStore persists results through database/sql; the driver (sqlite for
// offline, pgx for postgres) is chosen at open time, see internal/db.
// Maps ride in JSON columns, the same shape the HTTP layer serves.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) SaveResult(r TestResult) error {
	aj, err := json.Marshal(r.Answers)
	if err != nil {
		return err
	}
	sj, err := json.Marshal(r.Scores)
	if err != nil {
		return err
	}
	nj, err := json.Marshal(r.Analysis)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`INSERT INTO results (id,test_id,user_session,answers_json,label,scores_json,analysis_json,confidence,completed_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		ON CONFLICT (id) DO UPDATE SET label=EXCLUDED.label, scores_json=EXCLUDED.scores_json,
			analysis_json=EXCLUDED.analysis_json, confidence=EXCLUDED.confidence`,
		r.ID, r.TestID, r.UserSession, string(aj), r.Label, string(sj), string(nj), r.Confidence, r.CompletedAt)
	return err
}

func (s *SQLStore) GetResult(id string) (TestResult, error) {
	row := s.db.QueryRow(`SELECT id,test_id,user_session,answers_json,label,scores_json,analysis_json,confidence,completed_at
		FROM results WHERE id=$1`, id)
	return scanResult(row)
}

func (s *SQLStore) ListResults(userSession string) ([]TestResult, error) {
	rows, err := s.db.Query(`SELECT id,test_id,user_session,answers_json,label,scores_json,analysis_json,confidence,completed_at
		FROM results WHERE user_session=$1 ORDER BY completed_at DESC, id`, userSession)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []TestResult
	for rows.Next() {
		r, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *SQLStore) DeleteResults(userSession string) error {
	_, err := s.db.Exec(`DELETE FROM results WHERE user_session=$1`, userSession)
	return err
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanResult(row rowScanner) (TestResult, error) {
	var r TestResult
	var aj, sj, nj string
	err := row.Scan(&r.ID, &r.TestID, &r.UserSession, &aj, &r.Label, &sj, &nj, &r.Confidence, &r.CompletedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return TestResult{}, ErrNotFound
		}
		return TestResult{}, err
	}
	if err := json.Unmarshal([]byte(aj), &r.Answers); err != nil {
		return TestResult{}, err
	}
	if err := json.Unmarshal([]byte(sj), &r.Scores); err != nil {
		return TestResult{}, err
	}
	if err := json.Unmarshal([]byte(nj), &r.Analysis); err != nil {
		return TestResult{}, err
	}
	return r, nil
}
