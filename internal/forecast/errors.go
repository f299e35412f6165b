package forecast

import (
	"errors"
	"fmt"
)

// InsufficientDataError reports a history shorter than the model requires.
type InsufficientDataError struct {
	Got  int
	Need int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("insufficient data: need at least %d days of history, got %d", e.Need, e.Got)
}

// DataQualityError reports feature columns that remained unusable after
// missing-value handling.
type DataQualityError struct {
	Column string
}

func (e *DataQualityError) Error() string {
	return fmt.Sprintf("unable to handle missing values in column %s", e.Column)
}

// ModelFitError reports a fit or predict failure on degenerate input.
type ModelFitError struct {
	Reason string
}

func (e *ModelFitError) Error() string {
	return "model fit: " + e.Reason
}

// IsInsufficientData reports whether err is an InsufficientDataError.
func IsInsufficientData(err error) bool {
	var ide *InsufficientDataError
	return errors.As(err, &ide)
}
