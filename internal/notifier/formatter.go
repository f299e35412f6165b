package notifier

import (
	"fmt"
	"strings"
	"time"

	"stockdash/internal/dashboard"
)

// FormatAnalysis formats a symbol analysis into a Telegram message.
func FormatAnalysis(a *dashboard.Analysis) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📊 <b>%s</b> | %s\n\n", a.Quote.Symbol, time.Now().Format("2006-01-02")))

	b.WriteString(fmt.Sprintf("Price: %.2f (%+.2f%%)\n", a.Quote.Price, a.Quote.ChangePct))
	b.WriteString(fmt.Sprintf("52w range: %.2f - %.2f\n\n", a.Quote.Low52w, a.Quote.High52w))

	b.WriteString(fmt.Sprintf("RSI: %.1f (%s)\n", a.Indicators.RSI, a.Signal.RSIZone))
	b.WriteString(fmt.Sprintf("MACD: %.3f / signal %.3f (%s)\n", a.Indicators.MACD, a.Indicators.SignalLine, a.Signal.MACDCross))
	b.WriteString(fmt.Sprintf("Bias: <b>%s</b>\n", a.Signal.Bias))
	if a.Signal.Note != "" {
		b.WriteString("⚠️ " + a.Signal.Note + "\n")
	}

	if len(a.Forecast) > 0 {
		last := a.Forecast[len(a.Forecast)-1]
		b.WriteString(fmt.Sprintf("\n7-day forecast: %.2f → %.2f (by %s)\n",
			a.Forecast[0].Price, last.Price, last.Date.Format("Jan 2")))
	} else {
		b.WriteString("\nForecast unavailable (insufficient data)\n")
	}

	return b.String()
}
