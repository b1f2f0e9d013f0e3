package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kurera-app/kurera/internal/assessment"
	"github.com/kurera-app/kurera/internal/catalog"
	"github.com/kurera-app/kurera/internal/progression"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "kurera.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func TestProfileRoundTrip(t *testing.T) {
	st := openTestStore(t)

	loaded, err := st.LoadProfile()
	require.NoError(t, err)
	assert.Nil(t, loaded, "fresh store has no profile")

	program := &assessment.Program{
		Joint:                  catalog.JointKnee,
		Level:                  2,
		Irritability:           assessment.IrritabilityLow,
		RehabDaysPerWeek:       3,
		CirculationDaysPerWeek: 4,
		ActivityPrescription:   "keep walking",
		FocusAreas:             []string{"Styrka", "Funktion"},
		CatalogVersion:         assessment.CatalogVersion,
	}
	require.NoError(t, st.SaveProfile(program, time.Now()))

	loaded, err = st.LoadProfile()
	require.NoError(t, err)
	assert.Equal(t, program, loaded)

	// Saving again replaces wholesale.
	program.Level = 3
	program.CirculationDaysPerWeek = 0
	require.NoError(t, st.SaveProfile(program, time.Now()))
	loaded, err = st.LoadProfile()
	require.NoError(t, err)
	assert.Equal(t, 3, loaded.Level)
}

func TestProgressRoundTrip(t *testing.T) {
	st := openTestStore(t)

	loaded, err := st.LoadProgress()
	require.NoError(t, err)
	assert.Nil(t, loaded, "fresh store has no progression state")

	p := progression.NewProgress(2)
	p.State.ExperiencePoints = 450
	p.State.ConsecutivePerfectSessions = 3
	p.PlanIDs = []string{"b", "a", "c"}
	p.Entries["a"] = &progression.ExerciseProgress{
		ExerciseID: "a",
		History:    []progression.Exertion{progression.ExertionLight, progression.ExertionPerfect},
		Config:     progression.Dose{Sets: 2, Reps: 12},
		PhaseIndex: 1,
	}
	p.Entries["b"] = &progression.ExerciseProgress{
		ExerciseID: "b",
		Config:     progression.Dose{Sets: 1, Reps: 10, HoldSeconds: 5},
	}
	require.NoError(t, st.SaveProgress(p))

	loaded, err = st.LoadProgress()
	require.NoError(t, err)
	assert.Equal(t, p.State, loaded.State)
	assert.Equal(t, []string{"b", "a", "c"}, loaded.PlanIDs, "plan order must survive")
	require.Len(t, loaded.Entries, 2)
	assert.Equal(t, p.Entries["a"], loaded.Entries["a"])
	assert.Equal(t, p.Entries["b"], loaded.Entries["b"])
}

func TestSaveProgressReplacesEntries(t *testing.T) {
	st := openTestStore(t)

	p := progression.NewProgress(1)
	p.Entries["old"] = &progression.ExerciseProgress{ExerciseID: "old", Config: progression.Dose{Sets: 2, Reps: 10}}
	require.NoError(t, st.SaveProgress(p))

	// Level-up style bulk reset: entries cleared, new plan.
	p.Entries = map[string]*progression.ExerciseProgress{}
	p.PlanIDs = []string{"new"}
	require.NoError(t, st.SaveProgress(p))

	loaded, err := st.LoadProgress()
	require.NoError(t, err)
	assert.Empty(t, loaded.Entries)
	assert.Equal(t, []string{"new"}, loaded.PlanIDs)
}

func TestSessionEventsAndStats(t *testing.T) {
	st := openTestStore(t)

	stats, err := st.Stats()
	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalSessions)

	events := []SessionEvent{
		{SessionID: "s1", SessionType: "rehab", Exertion: "light", PainScore: 1, XPEarned: 150, Upgrades: 0},
		{SessionID: "s2", SessionType: "rehab", Exertion: "perfect", PainScore: 3, XPEarned: 100, Upgrades: 1},
		{SessionID: "s3", SessionType: "circulation", Exertion: "perfect", PainScore: 2, XPEarned: 100},
	}
	for _, e := range events {
		require.NoError(t, st.AppendSessionEvent(e))
	}

	stats, err = st.Stats()
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalSessions)
	assert.Equal(t, 350, stats.TotalXP)
	assert.Equal(t, 1, stats.TotalUpgrades)
	assert.Equal(t, 2, stats.ByType["rehab"])
	assert.Equal(t, 1, stats.ByType["circulation"])
	assert.InDelta(t, 2.0, stats.AvgPain, 0.001)

	recent, err := st.RecentEvents(2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "s3", recent[0].SessionID, "newest first")
	assert.Equal(t, "s2", recent[1].SessionID)
	assert.False(t, recent[0].CreatedAt.IsZero())
}

func TestReset(t *testing.T) {
	st := openTestStore(t)

	program := &assessment.Program{Joint: catalog.JointHip, Level: 1, Irritability: assessment.IrritabilityLow, FocusAreas: []string{"Smärtlindring"}}
	require.NoError(t, st.SaveProfile(program, time.Now()))
	require.NoError(t, st.SaveProgress(progression.NewProgress(1)))
	require.NoError(t, st.AppendSessionEvent(SessionEvent{SessionID: "s1", SessionType: "rehab", Exertion: "light"}))

	require.NoError(t, st.Reset())

	loaded, err := st.LoadProfile()
	require.NoError(t, err)
	assert.Nil(t, loaded)
	progress, err := st.LoadProgress()
	require.NoError(t, err)
	assert.Nil(t, progress)
	stats, err := st.Stats()
	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalSessions)
}
