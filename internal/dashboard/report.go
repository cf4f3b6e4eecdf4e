package dashboard

import (
	"fmt"
	"strings"
	"time"

	"StockDash/internal/model"
)

// FormatQuote renders the stat cards of a series as plain text, one card per
// line. predicted may be nil when no prediction is available.
func FormatQuote(name string, s *model.StockSeries, predicted *float64, now time.Time) string {
	var b strings.Builder

	if name == "" || strings.EqualFold(name, s.Symbol) {
		b.WriteString(fmt.Sprintf("%s | %s\n\n", s.Symbol, now.Format("2006-01-02 15:04")))
	} else {
		b.WriteString(fmt.Sprintf("%s (%s) | %s\n\n", name, s.Symbol, now.Format("2006-01-02 15:04")))
	}

	values := map[ElementID]string{
		LatestClose:      FormatCurrency(s.LatestClose),
		FiftyTwoWeekHigh: FormatCurrency(s.FiftyTwoWeekHigh),
		FiftyTwoWeekLow:  FormatCurrency(s.FiftyTwoWeekLow),
		AverageVolume:    FormatOptionalVolume(s.AverageVolume),
		PredictedClose:   FormatCurrency(predicted),
	}
	for _, id := range StatCards {
		b.WriteString(fmt.Sprintf("%-20s %s\n", CardLabel(id)+":", values[id]))
	}

	if n := len(s.Data); n > 0 {
		b.WriteString(fmt.Sprintf("\n%d trading days, %s to %s\n", n, s.Data[0].Date, s.Data[n-1].Date))
	}
	return b.String()
}
