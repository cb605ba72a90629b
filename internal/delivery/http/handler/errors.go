package handler

import (
	stderrors "errors"

	"github.com/cellmap-service/internal/pkg/errors"
	"github.com/cellmap-service/internal/pkg/validator"
	"github.com/cellmap-service/internal/usecase"
)

// toAppError переводит ошибки usecase в ответы API
func toAppError(err error) error {
	var loadErr *usecase.LoadError
	switch {
	case stderrors.As(err, &loadErr):
		return errors.ErrDatasetUnavailable.WithReason(err.Error())
	case stderrors.Is(err, usecase.ErrLocationNotFound):
		return errors.ErrLocationNotFound
	}
	return err
}

// validationError - первая невалидная часть выбора определяет код ошибки
func validationError(err error, location, metric string) error {
	for _, field := range validator.FailedFields(err) {
		switch field {
		case "location":
			return errors.ErrInvalidLocation.WithDetails(map[string]interface{}{"location": location})
		case "metric":
			return errors.ErrInvalidMetric.WithDetails(map[string]interface{}{"metric": metric})
		}
	}
	return errors.ErrInvalidRequest.WithReason(err.Error())
}
