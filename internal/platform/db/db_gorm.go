// Package db opens the application's GORM connection.
package db

import (
	"fmt"
	"log"
	"os"
	"time"

	gpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	authentity "country_backend/internal/feature/auth/domain/entity"
	favoritesentity "country_backend/internal/feature/favorites/domain/entity"
)

// OpenDB connects to PostgreSQL using environment configuration and retries
// for up to a minute so the service survives a database that is still booting.
// TranslateError is enabled so adapters can match gorm.ErrDuplicatedKey
// regardless of the underlying driver.
func OpenDB() *gorm.DB {
	user := os.Getenv("DB_USER")
	pass := os.Getenv("DB_PASSWORD")
	name := os.Getenv("DB_NAME")
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, pass, name)

	var (
		conn *gorm.DB
		err  error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		conn, err = gorm.Open(gpostgres.Open(dsn), &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		if err := conn.AutoMigrate(
			&authentity.User{},
			&favoritesentity.Favorite{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return conn
}
