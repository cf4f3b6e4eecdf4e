package dashboard

// ElementID names an addressable piece of the dashboard.
type ElementID string

const (
	CompaniesLoading  ElementID = "companiesLoading"
	CompaniesList     ElementID = "companiesList"
	CompaniesError    ElementID = "companiesError"
	CompanySearch     ElementID = "companySearch"
	ChartTitle        ElementID = "chartTitle"
	ChartSubtitle     ElementID = "chartSubtitle"
	ChartPlaceholder  ElementID = "chartPlaceholder"
	ChartLoading      ElementID = "chartLoading"
	ChartError        ElementID = "chartError"
	ChartErrorMessage ElementID = "chartErrorMessage"
	StockChart        ElementID = "stockChart"
	LatestClose       ElementID = "latestClose"
	FiftyTwoWeekHigh  ElementID = "fiftyTwoWeekHigh"
	FiftyTwoWeekLow   ElementID = "fiftyTwoWeekLow"
	AverageVolume     ElementID = "averageVolume"
	PredictedClose    ElementID = "predictedClose"
	LastUpdated       ElementID = "lastUpdated"
)

// StatCards lists the card elements in display order.
var StatCards = []ElementID{LatestClose, FiftyTwoWeekHigh, FiftyTwoWeekLow, AverageVolume, PredictedClose}

// CardLabel is the caption shown above a stat card.
func CardLabel(id ElementID) string {
	switch id {
	case LatestClose:
		return "Latest Close"
	case FiftyTwoWeekHigh:
		return "52W High"
	case FiftyTwoWeekLow:
		return "52W Low"
	case AverageVolume:
		return "Avg Volume"
	case PredictedClose:
		return "Predicted Close"
	default:
		return string(id)
	}
}

// Panels tracks which elements are visible.
type Panels map[ElementID]bool

func (p Panels) Show(ids ...ElementID) {
	for _, id := range ids {
		p[id] = true
	}
}

func (p Panels) Hide(ids ...ElementID) {
	for _, id := range ids {
		p[id] = false
	}
}

func (p Panels) Visible(id ElementID) bool { return p[id] }
