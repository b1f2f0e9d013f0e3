package store

import (
	"fmt"
	"time"
)

// SessionEvent is one appended row in the session log.
type SessionEvent struct {
	SessionID   string
	SessionType string
	Exertion    string
	PainScore   int
	XPEarned    int
	Upgrades    int
	LevelMaxed  bool
	Message     string
	CreatedAt   time.Time
}

// AppendSessionEvent records one completed session's feedback outcome.
func (s *Store) AppendSessionEvent(e SessionEvent) error {
	createdAt := e.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	_, err := s.db.Exec(`
		INSERT INTO session_events (session_id, session_type, exertion, pain_score, xp_earned, upgrades, level_maxed, message, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.SessionID, e.SessionType, e.Exertion, e.PainScore, e.XPEarned,
		e.Upgrades, boolToInt(e.LevelMaxed), e.Message, createdAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("append session event: %w", err)
	}
	return nil
}

// SessionStats summarizes the session log for the stats command.
type SessionStats struct {
	TotalSessions int
	TotalXP       int
	TotalUpgrades int
	ByType        map[string]int
	AvgPain       float64
}

// Stats aggregates the session-event log.
func (s *Store) Stats() (*SessionStats, error) {
	stats := &SessionStats{ByType: make(map[string]int)}

	row := s.db.QueryRow(`
		SELECT COUNT(*), COALESCE(SUM(xp_earned), 0), COALESCE(SUM(upgrades), 0), COALESCE(AVG(pain_score), 0)
		FROM session_events`)
	if err := row.Scan(&stats.TotalSessions, &stats.TotalXP, &stats.TotalUpgrades, &stats.AvgPain); err != nil {
		return nil, fmt.Errorf("aggregate session events: %w", err)
	}

	rows, err := s.db.Query("SELECT session_type, COUNT(*) FROM session_events GROUP BY session_type")
	if err != nil {
		return nil, fmt.Errorf("count by type: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var typ string
		var count int
		if err := rows.Scan(&typ, &count); err != nil {
			return nil, fmt.Errorf("scan type count: %w", err)
		}
		stats.ByType[typ] = count
	}
	return stats, rows.Err()
}

// RecentEvents returns up to limit session events, newest first.
func (s *Store) RecentEvents(limit int) ([]SessionEvent, error) {
	rows, err := s.db.Query(`
		SELECT session_id, session_type, exertion, pain_score, xp_earned, upgrades, level_maxed, message, created_at
		FROM session_events ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query session events: %w", err)
	}
	defer rows.Close()

	var events []SessionEvent
	for rows.Next() {
		var e SessionEvent
		var maxed int
		var createdRaw string
		if err := rows.Scan(&e.SessionID, &e.SessionType, &e.Exertion, &e.PainScore,
			&e.XPEarned, &e.Upgrades, &maxed, &e.Message, &createdRaw); err != nil {
			return nil, fmt.Errorf("scan session event: %w", err)
		}
		e.LevelMaxed = maxed != 0
		if t, err := time.Parse(time.RFC3339, createdRaw); err == nil {
			e.CreatedAt = t
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
