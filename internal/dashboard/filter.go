package dashboard

import (
	"strings"

	"StockDash/internal/model"
)

// FilterCompanies keeps companies whose name or symbol contains term,
// ignoring case. An empty term keeps everything.
func FilterCompanies(list []model.Company, term string) []model.Company {
	term = strings.ToLower(term)
	if term == "" {
		return list
	}
	out := make([]model.Company, 0, len(list))
	for _, c := range list {
		if strings.Contains(strings.ToLower(c.Name), term) ||
			strings.Contains(strings.ToLower(c.Symbol), term) {
			out = append(out, c)
		}
	}
	return out
}
