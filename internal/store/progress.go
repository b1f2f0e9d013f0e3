package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/kurera-app/kurera/internal/progression"
)

// SaveProgress stores the full progression record: state, per-exercise
// entries, and the active plan. Entries and plan are replaced wholesale so
// the database always mirrors the engine's view.
func (s *Store) SaveProgress(p *progression.Progress) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO progression_state (id, current_phase, experience_points, level_maxed_out, consecutive_perfect)
		VALUES (1, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			current_phase = excluded.current_phase,
			experience_points = excluded.experience_points,
			level_maxed_out = excluded.level_maxed_out,
			consecutive_perfect = excluded.consecutive_perfect`,
		p.State.CurrentPhase, p.State.ExperiencePoints,
		boolToInt(p.State.LevelMaxedOut), p.State.ConsecutivePerfectSessions)
	if err != nil {
		return fmt.Errorf("save progression state: %w", err)
	}

	if _, err := tx.Exec("DELETE FROM exercise_progress"); err != nil {
		return fmt.Errorf("clear exercise progress: %w", err)
	}
	for id, e := range p.Entries {
		history, err := json.Marshal(e.History)
		if err != nil {
			return fmt.Errorf("marshal history for %s: %w", id, err)
		}
		_, err = tx.Exec(`
			INSERT INTO exercise_progress (exercise_id, history, sets, reps, hold_seconds, phase_index)
			VALUES (?, ?, ?, ?, ?, ?)`,
			id, string(history), e.Config.Sets, e.Config.Reps, e.Config.HoldSeconds, e.PhaseIndex)
		if err != nil {
			return fmt.Errorf("save exercise progress for %s: %w", id, err)
		}
	}

	if _, err := tx.Exec("DELETE FROM active_plan"); err != nil {
		return fmt.Errorf("clear plan: %w", err)
	}
	for i, id := range p.PlanIDs {
		if _, err := tx.Exec("INSERT INTO active_plan (position, exercise_id) VALUES (?, ?)", i, id); err != nil {
			return fmt.Errorf("save plan entry: %w", err)
		}
	}

	return tx.Commit()
}

// LoadProgress returns the stored progression record, or nil if no state
// has been saved yet.
func (s *Store) LoadProgress() (*progression.Progress, error) {
	row := s.db.QueryRow(`
		SELECT current_phase, experience_points, level_maxed_out, consecutive_perfect
		FROM progression_state WHERE id = 1`)

	p := &progression.Progress{Entries: make(map[string]*progression.ExerciseProgress)}
	var maxed int
	err := row.Scan(&p.State.CurrentPhase, &p.State.ExperiencePoints, &maxed, &p.State.ConsecutivePerfectSessions)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load progression state: %w", err)
	}
	p.State.LevelMaxedOut = maxed != 0

	rows, err := s.db.Query(`
		SELECT exercise_id, history, sets, reps, hold_seconds, phase_index
		FROM exercise_progress`)
	if err != nil {
		return nil, fmt.Errorf("load exercise progress: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		e := &progression.ExerciseProgress{}
		var historyRaw string
		if err := rows.Scan(&e.ExerciseID, &historyRaw, &e.Config.Sets, &e.Config.Reps, &e.Config.HoldSeconds, &e.PhaseIndex); err != nil {
			return nil, fmt.Errorf("scan exercise progress: %w", err)
		}
		if err := json.Unmarshal([]byte(historyRaw), &e.History); err != nil {
			return nil, fmt.Errorf("unmarshal history for %s: %w", e.ExerciseID, err)
		}
		p.Entries[e.ExerciseID] = e
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate exercise progress: %w", err)
	}

	planRows, err := s.db.Query("SELECT exercise_id FROM active_plan ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("load plan: %w", err)
	}
	defer planRows.Close()
	for planRows.Next() {
		var id string
		if err := planRows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan plan entry: %w", err)
		}
		p.PlanIDs = append(p.PlanIDs, id)
	}
	if err := planRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate plan: %w", err)
	}

	return p, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
