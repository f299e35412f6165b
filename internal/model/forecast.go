package model

import "time"

// ForecastPoint is a single predicted close for a future business day.
type ForecastPoint struct {
	Date  time.Time `json:"date"`
	Price float64   `json:"price"`
}
