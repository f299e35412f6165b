package model

import "time"

// OHLCV represents a single daily candlestick bar.
type OHLCV struct {
	Time   time.Time `json:"time"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume int64     `json:"volume"`
}

// Period is a history length accepted by the data source.
type Period string

const (
	Period1Mo Period = "1mo"
	Period3Mo Period = "3mo"
	Period6Mo Period = "6mo"
	Period1Y  Period = "1y"
	Period2Y  Period = "2y"
	Period5Y  Period = "5y"
)

// ValidPeriods is the closed set of history lengths the data source accepts.
var ValidPeriods = []Period{Period1Mo, Period3Mo, Period6Mo, Period1Y, Period2Y, Period5Y}

// Valid reports whether p is one of the accepted periods.
func (p Period) Valid() bool {
	for _, v := range ValidPeriods {
		if p == v {
			return true
		}
	}
	return false
}

// Quote summarises the most recent trading day for the dashboard metric cards.
type Quote struct {
	Symbol          string    `json:"symbol"`
	Price           float64   `json:"price"`
	Change          float64   `json:"change"`
	ChangePct       float64   `json:"change_pct"`
	Volume          int64     `json:"volume"`
	VolumeChangePct float64   `json:"volume_change_pct"`
	High52w         float64   `json:"high_52w"`
	Low52w          float64   `json:"low_52w"`
	AsOf            time.Time `json:"as_of"`
}
