package prediction

import (
	domainerror "github.com/MatheusJosue/planilha-financeira-v2/internal/domain/error"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/valueobject"
)

func parseKey(raw string) (valueobject.PredictionKey, error) {
	key, err := valueobject.ParsePredictionKey(raw)
	if err != nil {
		return valueobject.PredictionKey{}, domainerror.NewPredictionError(
			domainerror.ErrCodeInvalidPredictionKey,
			"invalid prediction key",
			domainerror.ErrInvalidPredictionKey,
		)
	}
	return key, nil
}

func predictionNotFound() error {
	return domainerror.NewPredictionError(
		domainerror.ErrCodePredictionNotFound,
		"prediction not found",
		domainerror.ErrPredictionNotFound,
	)
}
