// Package dto mirrors the restcountries v3.1 response shapes this client reads.
package dto

// CountryResponse is one element of the upstream country list. Only the
// fields the application displays are decoded; the rest of the (very large)
// upstream document is ignored.
type CountryResponse struct {
	Name struct {
		Common   string `json:"common"`
		Official string `json:"official"`
	} `json:"name"`
	CCA3  string `json:"cca3"`
	Flags struct {
		PNG string `json:"png"`
		SVG string `json:"svg"`
		Alt string `json:"alt"`
	} `json:"flags"`
	Region     string                      `json:"region"`
	Subregion  string                      `json:"subregion"`
	Capital    []string                    `json:"capital"`
	Population int64                       `json:"population"`
	Languages  map[string]string           `json:"languages"`
	Currencies map[string]CurrencyResponse `json:"currencies"`
}

// CurrencyResponse is the upstream currency descriptor.
type CurrencyResponse struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}
