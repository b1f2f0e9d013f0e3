// Package workout assembles playable sessions from the locked plan, the
// exercise catalog, and per-exercise progress, and generates the plan itself
// on level entry.
package workout

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/kurera-app/kurera/internal/catalog"
	"github.com/kurera-app/kurera/internal/progression"
)

// SessionType distinguishes the progressive rehab session from the fixed
// low-intensity circulation session.
type SessionType string

const (
	TypeRehab       SessionType = "rehab"
	TypeCirculation SessionType = "circulation"
)

// ParseSessionType validates a session type name.
func ParseSessionType(s string) (SessionType, error) {
	switch typ := SessionType(s); typ {
	case TypeRehab, TypeCirculation:
		return typ, nil
	default:
		return "", fmt.Errorf("invalid session type %q: want rehab or circulation", s)
	}
}

// SessionExercise pairs a catalog exercise with the dose to play it at.
type SessionExercise struct {
	Exercise catalog.Exercise
	Config   progression.Dose
}

// Session is one playable workout. Ephemeral: it is rebuilt for every play
// and never persisted — only the resulting feedback is.
type Session struct {
	ID        string
	Type      SessionType
	Exercises []SessionExercise
}

func newSession(typ SessionType) *Session {
	return &Session{ID: uuid.NewString(), Type: typ}
}

// ExerciseIDs returns the session's exercise IDs in play order.
func (s *Session) ExerciseIDs() []string {
	ids := make([]string, 0, len(s.Exercises))
	for _, e := range s.Exercises {
		ids = append(ids, e.Exercise.ID)
	}
	return ids
}
