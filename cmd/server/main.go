package main

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"country_backend/internal/app/router"
	authadapters "country_backend/internal/feature/auth/adapters"
	authhandler "country_backend/internal/feature/auth/transport/handler"
	authusecase "country_backend/internal/feature/auth/usecase"
	"country_backend/internal/feature/countries/adapters/restcountries"
	countrieshandler "country_backend/internal/feature/countries/transport/handler"
	countriesusecase "country_backend/internal/feature/countries/usecase"
	favoritesadapters "country_backend/internal/feature/favorites/adapters"
	favoriteshandler "country_backend/internal/feature/favorites/transport/handler"
	favoritesusecase "country_backend/internal/feature/favorites/usecase"
	"country_backend/internal/platform/cache"
	infradb "country_backend/internal/platform/db"
	platformhttp "country_backend/internal/platform/http"
	jwtmw "country_backend/internal/platform/jwt"
	infraredis "country_backend/internal/platform/redis"
)

// tokenLifetime is how long issued bearer tokens stay valid.
const tokenLifetime = time.Hour

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	// db
	db := infradb.OpenDB()

	// Redis (optional: the country cache degrades to pass-through without it)
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	userRepo := authadapters.NewUserGorm(db)
	favoriteRepo := favoritesadapters.NewFavoriteGorm(db)

	restCfg := restcountries.LoadConfig()
	catalog := restcountries.NewClient(restCfg, platformhttp.NewHTTPClient(restCfg.Timeout))
	cachedCatalog := cache.NewCachingCountryRepository(rdb, time.Hour, catalog, "countries")

	// Usecase
	jwtGen := jwtmw.NewGenerator(os.Getenv(jwtmw.EnvKeyJWTSecret), tokenLifetime)
	authUC := authusecase.NewAuthUsecase(userRepo, jwtGen)
	favoritesUC := favoritesusecase.NewFavoritesUsecase(favoriteRepo)
	countriesUC := countriesusecase.NewCountriesUsecase(cachedCatalog)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	favoritesH := favoriteshandler.NewFavoritesHandler(favoritesUC)
	countriesH := countrieshandler.NewCountriesHandler(countriesUC)

	r := router.NewRouter(authH, favoritesH, countriesH, userRepo)

	if os.Getenv(jwtmw.EnvKeyJWTSecret) == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
