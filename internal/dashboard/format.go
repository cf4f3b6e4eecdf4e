package dashboard

import (
	"fmt"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
)

// Missing is shown for any absent value.
const Missing = "--"

// FormatVolume abbreviates volumes: 1.5M, 2.5K, or a comma-grouped figure below a thousand.
func FormatVolume(v float64) string {
	switch {
	case v >= 1_000_000:
		return fmt.Sprintf("%.1fM", v/1_000_000)
	case v >= 1_000:
		return fmt.Sprintf("%.1fK", v/1_000)
	default:
		return humanize.CommafWithDigits(v, 3)
	}
}

// FormatOptionalVolume is FormatVolume with "--" for nil.
func FormatOptionalVolume(v *float64) string {
	if v == nil {
		return Missing
	}
	return FormatVolume(*v)
}

// FormatCurrency prefixes "$" to the shortest decimal form of v; nil gives "--".
func FormatCurrency(v *float64) string {
	if v == nil {
		return Missing
	}
	return "$" + strconv.FormatFloat(*v, 'f', -1, 64)
}

// FormatClock renders the last-updated stamp.
func FormatClock(t time.Time) string {
	if t.IsZero() {
		return Missing
	}
	return t.Format("15:04:05")
}
