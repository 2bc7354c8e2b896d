package entity

import (
	"github.com/google/uuid"

	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/valueobject"
)

// SessionState is the per-owner application state loaded at session start:
// the month being viewed and the exclusion ledger.
type SessionState struct {
	UserID        uuid.UUID
	SelectedMonth valueobject.Month
	Exclusions    valueobject.ExclusionSet
}

// NewSessionState creates a session viewing the given month.
func NewSessionState(userID uuid.UUID, month valueobject.Month, exclusions valueobject.ExclusionSet) *SessionState {
	if exclusions == nil {
		exclusions = valueobject.NewExclusionSet()
	}
	return &SessionState{
		UserID:        userID,
		SelectedMonth: month,
		Exclusions:    exclusions,
	}
}
