package model

// RSIZone classifies the RSI reading.
type RSIZone string

const (
	RSIOversold   RSIZone = "OVERSOLD"
	RSINeutral    RSIZone = "NEUTRAL"
	RSIOverbought RSIZone = "OVERBOUGHT"
)

// MACDCross indicates whether MACD sits above or below its signal line.
type MACDCross string

const (
	MACDBullish MACDCross = "BULLISH"
	MACDBearish MACDCross = "BEARISH"
	MACDFlat    MACDCross = "FLAT"
)

// Bias is the combined interpretation shown on the dashboard signal card.
type Bias string

const (
	BiasBullish Bias = "BULLISH"
	BiasBearish Bias = "BEARISH"
	BiasNeutral Bias = "NEUTRAL"
)

// AnalysisSignal is the interpreted view of the technical indicators.
type AnalysisSignal struct {
	RSIZone   RSIZone   `json:"rsi_zone"`
	MACDCross MACDCross `json:"macd_cross"`
	Bias      Bias      `json:"bias"`
	Note      string    `json:"note,omitempty"`
}
