// Package router wires the HTTP surface of the service.
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "country_backend/internal/feature/auth/transport/handler"
	countrieshandler "country_backend/internal/feature/countries/transport/handler"
	favoriteshandler "country_backend/internal/feature/favorites/transport/handler"
	"country_backend/internal/platform/http/handler"
	jwtmw "country_backend/internal/platform/jwt"
)

// NewRouter builds the Gin engine with all routes registered.
// Country catalog reads and auth endpoints are public; every favorites route
// sits behind the JWT middleware.
func NewRouter(auth *authhandler.AuthHandler, favorites *favoriteshandler.FavoritesHandler,
	countries *countrieshandler.CountriesHandler, users jwtmw.UserResolver) *gin.Engine {
	r := gin.Default()

	// Browser frontend runs on another origin
	r.Use(cors.Default())

	// Liveness probe
	r.GET("/healthz", handler.Health)

	// Account creation and login (JWT issuance)
	r.POST("/api/auth/signup", auth.Signup)
	r.POST("/api/auth/login", auth.Login)

	// Read-only pass-through to the country catalog, no auth
	c := r.Group("/api/countries")
	{
		c.GET("/all", countries.All)
		c.GET("/name/:name", countries.ByName)
		c.GET("/region/:region", countries.ByRegion)
		c.GET("/alpha", countries.ByCodes)
		c.GET("/alpha/:code", countries.ByCode)
	}

	// Favorite mutations and reads require a valid bearer token
	f := r.Group("/api/favorites")
	f.Use(jwtmw.AuthRequired(users))
	{
		f.POST("/add", favorites.Add)
		f.GET("/all", favorites.All)
		f.DELETE("/remove", favorites.Remove)
	}

	return r
}
