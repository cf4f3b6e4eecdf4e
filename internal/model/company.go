package model

// Company is one entry of the company directory.
type Company struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// CompanyList is the response body of the companies endpoint.
type CompanyList struct {
	Companies []Company `json:"companies"`
	Error     string    `json:"error,omitempty"`
}
