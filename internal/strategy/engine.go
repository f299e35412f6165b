// Package strategy interprets raw indicator values into the qualitative
// signal shown on the dashboard.
package strategy

import "stockdash/internal/model"

// Evaluate derives the signal card from the latest indicator values.
func Evaluate(ind model.TechnicalIndicators) model.AnalysisSignal {
	sig := model.AnalysisSignal{
		RSIZone:   rsiZone(ind.RSI),
		MACDCross: macdCross(ind.MACD, ind.SignalLine),
	}
	sig.Bias = combine(sig.RSIZone, sig.MACDCross)

	if ind.RSI >= rsiExtremeHigh {
		sig.Note = "RSI above 85: extended move, pullback risk elevated"
	} else if ind.RSI <= rsiExtremeLow {
		sig.Note = "RSI below 15: capitulation territory"
	}

	return sig
}

// combine maps the two component readings to an overall bias. A momentum
// cross only counts when RSI is not already stretched the same way.
func combine(zone model.RSIZone, cross model.MACDCross) model.Bias {
	switch {
	case zone == model.RSIOversold && cross == model.MACDBullish:
		return model.BiasBullish
	case zone == model.RSIOverbought && cross == model.MACDBearish:
		return model.BiasBearish
	case zone == model.RSINeutral && cross == model.MACDBullish:
		return model.BiasBullish
	case zone == model.RSINeutral && cross == model.MACDBearish:
		return model.BiasBearish
	default:
		return model.BiasNeutral
	}
}
