package dto

import (
	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/entity"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/valueobject"
)

// ConvertPredictionRequest represents the optional overrides applied when
// converting a prediction into a real transaction.
type ConvertPredictionRequest struct {
	Description *string  `json:"description,omitempty" binding:"omitempty,min=1,max=255"`
	Category    *string  `json:"category,omitempty"`
	Value       *float64 `json:"value,omitempty"`
	Date        *string  `json:"date,omitempty"`
	IsPaid      *bool    `json:"is_paid,omitempty"`
}

// PredictionListResponse represents the upcoming predictions.
type PredictionListResponse struct {
	Horizon     int                   `json:"horizon"`
	Predictions []TransactionResponse `json:"predictions"`
}

// ExclusionResponse represents the exclusion ledger after a dismiss or restore.
type ExclusionResponse struct {
	Key        string   `json:"key"`
	Exclusions []string `json:"exclusions"`
}

// SessionResponse represents the per-owner session state.
type SessionResponse struct {
	SelectedMonth string   `json:"selected_month"`
	Exclusions    []string `json:"exclusions"`
}

// SelectMonthRequest represents the request body for changing the viewed month.
type SelectMonthRequest struct {
	Month string `json:"month" binding:"required"`
}

// ToPredictionListResponse converts predictions to a PredictionListResponse DTO.
func ToPredictionListResponse(horizon int, predictions []*entity.Transaction) PredictionListResponse {
	return PredictionListResponse{
		Horizon:     horizon,
		Predictions: ToTransactionResponses(predictions),
	}
}

// ToExclusionResponse converts a ledger change to an ExclusionResponse DTO.
func ToExclusionResponse(key valueobject.PredictionKey, set valueobject.ExclusionSet) ExclusionResponse {
	return ExclusionResponse{
		Key:        key.String(),
		Exclusions: exclusionStrings(set),
	}
}

// ToSessionResponse converts a SessionState to a SessionResponse DTO.
func ToSessionResponse(state *entity.SessionState) SessionResponse {
	return SessionResponse{
		SelectedMonth: state.SelectedMonth.String(),
		Exclusions:    exclusionStrings(state.Exclusions),
	}
}

func exclusionStrings(set valueobject.ExclusionSet) []string {
	keys := set.Keys()
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, k.String())
	}
	return out
}
