package strategy

import (
	"testing"

	"stockdash/internal/model"
)

func TestEvaluate_Zones(t *testing.T) {
	tests := []struct {
		name string
		ind  model.TechnicalIndicators
		zone model.RSIZone
	}{
		{"deep oversold", model.TechnicalIndicators{RSI: 12}, model.RSIOversold},
		{"boundary oversold", model.TechnicalIndicators{RSI: 29.9}, model.RSIOversold},
		{"neutral low", model.TechnicalIndicators{RSI: 30}, model.RSINeutral},
		{"neutral mid", model.TechnicalIndicators{RSI: 50}, model.RSINeutral},
		{"neutral high", model.TechnicalIndicators{RSI: 70}, model.RSINeutral},
		{"overbought", model.TechnicalIndicators{RSI: 70.1}, model.RSIOverbought},
	}
	for _, tt := range tests {
		sig := Evaluate(tt.ind)
		if sig.RSIZone != tt.zone {
			t.Errorf("%s: expected zone %s, got %s", tt.name, tt.zone, sig.RSIZone)
		}
	}
}

func TestEvaluate_MACDCross(t *testing.T) {
	sig := Evaluate(model.TechnicalIndicators{RSI: 50, MACD: 1.2, SignalLine: 0.8})
	if sig.MACDCross != model.MACDBullish {
		t.Errorf("expected bullish cross, got %s", sig.MACDCross)
	}
	if sig.Bias != model.BiasBullish {
		t.Errorf("expected bullish bias, got %s", sig.Bias)
	}

	sig = Evaluate(model.TechnicalIndicators{RSI: 50, MACD: -0.5, SignalLine: 0.1})
	if sig.MACDCross != model.MACDBearish {
		t.Errorf("expected bearish cross, got %s", sig.MACDCross)
	}
	if sig.Bias != model.BiasBearish {
		t.Errorf("expected bearish bias, got %s", sig.Bias)
	}

	sig = Evaluate(model.TechnicalIndicators{RSI: 50, MACD: 0, SignalLine: 0})
	if sig.MACDCross != model.MACDFlat {
		t.Errorf("expected flat, got %s", sig.MACDCross)
	}
	if sig.Bias != model.BiasNeutral {
		t.Errorf("expected neutral bias, got %s", sig.Bias)
	}
}

func TestEvaluate_StretchedMoveConflicts(t *testing.T) {
	// Overbought with bullish momentum reads neutral, not bullish.
	sig := Evaluate(model.TechnicalIndicators{RSI: 78, MACD: 2, SignalLine: 1})
	if sig.Bias != model.BiasNeutral {
		t.Errorf("expected neutral bias for overbought+bullish, got %s", sig.Bias)
	}
}

func TestEvaluate_ExtremeNote(t *testing.T) {
	sig := Evaluate(model.TechnicalIndicators{RSI: 90, MACD: 1, SignalLine: 0})
	if sig.Note == "" {
		t.Error("expected extended-move note for RSI 90")
	}
	sig = Evaluate(model.TechnicalIndicators{RSI: 55, MACD: 1, SignalLine: 0})
	if sig.Note != "" {
		t.Errorf("unexpected note: %s", sig.Note)
	}
}
