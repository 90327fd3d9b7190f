// Package dto defines data transfer objects for the favorites feature's HTTP transport layer.
package dto

// FavoriteReq is the request body shared by the add and remove endpoints.
type FavoriteReq struct {
	CountryCode string `json:"countryCode" binding:"required"`
}
