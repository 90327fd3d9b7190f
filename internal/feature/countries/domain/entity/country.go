// Package entity defines the domain entities for the countries feature.
package entity

// Country is the reduced view of an upstream country record. It is never
// persisted; instances live only in the Redis cache and in client memory.
type Country struct {
	// Code is the ISO alpha-3 country code (upstream cca3).
	Code string `json:"code"`

	// Name is the common display name.
	Name string `json:"name"`

	// OfficialName is the full official name.
	OfficialName string `json:"officialName"`

	// FlagPNG and FlagSVG are upstream flag image URLs.
	FlagPNG string `json:"flagPng"`
	FlagSVG string `json:"flagSvg"`

	// FlagAlt is the upstream alt text for the flag, when present.
	FlagAlt string `json:"flagAlt,omitempty"`

	Region    string   `json:"region"`
	Subregion string   `json:"subregion,omitempty"`
	Capital   []string `json:"capital,omitempty"`

	Population int64 `json:"population"`

	// Languages maps upstream language keys to display names.
	Languages map[string]string `json:"languages,omitempty"`

	// Currencies maps currency codes to display names.
	Currencies map[string]string `json:"currencies,omitempty"`
}
