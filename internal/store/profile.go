package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/kurera-app/kurera/internal/assessment"
	"github.com/kurera-app/kurera/internal/catalog"
)

// SaveProfile stores the assessed program, replacing any previous one.
func (s *Store) SaveProfile(program *assessment.Program, assessedAt time.Time) error {
	focus, err := json.Marshal(program.FocusAreas)
	if err != nil {
		return fmt.Errorf("marshal focus areas: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO profile (id, joint, level, irritability, rehab_days, circulation_days, activity, focus_areas, catalog_version, assessed_at)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			joint = excluded.joint,
			level = excluded.level,
			irritability = excluded.irritability,
			rehab_days = excluded.rehab_days,
			circulation_days = excluded.circulation_days,
			activity = excluded.activity,
			focus_areas = excluded.focus_areas,
			catalog_version = excluded.catalog_version,
			assessed_at = excluded.assessed_at`,
		string(program.Joint), program.Level, string(program.Irritability),
		program.RehabDaysPerWeek, program.CirculationDaysPerWeek,
		program.ActivityPrescription, string(focus), program.CatalogVersion,
		assessedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

// LoadProfile returns the stored program, or nil if no assessment has been
// completed yet.
func (s *Store) LoadProfile() (*assessment.Program, error) {
	row := s.db.QueryRow(`
		SELECT joint, level, irritability, rehab_days, circulation_days, activity, focus_areas, catalog_version
		FROM profile WHERE id = 1`)

	var p assessment.Program
	var joint, irritability, focusRaw string
	err := row.Scan(&joint, &p.Level, &irritability, &p.RehabDaysPerWeek,
		&p.CirculationDaysPerWeek, &p.ActivityPrescription, &focusRaw, &p.CatalogVersion)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}

	p.Joint = catalog.Joint(joint)
	p.Irritability = assessment.Irritability(irritability)
	if err := json.Unmarshal([]byte(focusRaw), &p.FocusAreas); err != nil {
		return nil, fmt.Errorf("unmarshal focus areas: %w", err)
	}
	return &p, nil
}
