// Command browse is a terminal client for the country backend. It drives the
// same session cache the web frontend uses: list or search countries, log in,
// and toggle favorites.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"time"

	"country_backend/internal/client"
	platformhttp "country_backend/internal/platform/http"
)

func main() {
	var (
		base     = flag.String("base", "http://localhost:8080", "backend base URL")
		email    = flag.String("email", "", "login email")
		password = flag.String("password", "", "login password")
		search   = flag.String("search", "", "search countries by name")
		region   = flag.String("region", "", "filter countries by region")
		toggle   = flag.String("toggle", "", "toggle favorite for a country code (requires login)")
	)
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	apiClient := client.NewAPIClient(*base, platformhttp.NewHTTPClient(15*time.Second))
	session := client.NewSession(apiClient)

	if *email != "" {
		if err := session.Login(ctx, *email, *password); err != nil {
			log.Fatal("login failed: ", err)
		}
		fmt.Printf("logged in as %s\n", session.User().Username)
	}

	switch {
	case *search != "":
		if err := session.Search(ctx, *search); err != nil {
			log.Fatal("search failed: ", err)
		}
	case *region != "":
		if err := session.FilterRegion(ctx, *region); err != nil {
			log.Fatal("region filter failed: ", err)
		}
	default:
		if err := session.Browse(ctx); err != nil {
			log.Fatal("failed to load countries: ", err)
		}
	}

	if *toggle != "" {
		if err := session.Toggle(ctx, *toggle); err != nil {
			if errors.Is(err, client.ErrSessionExpired) {
				log.Fatal("session expired, log in again")
			}
			log.Fatal("toggle failed: ", err)
		}
		if session.IsFavorite(*toggle) {
			fmt.Printf("%s added to favorites\n", *toggle)
		} else {
			fmt.Printf("%s removed from favorites\n", *toggle)
		}
	}

	for _, c := range session.Visible() {
		marker := " "
		if session.IsFavorite(c.Code) {
			marker = "*"
		}
		fmt.Printf("%s %-4s %-32s %-12s pop %d\n", marker, c.Code, c.Name, c.Region, c.Population)
	}
	if len(session.Countries()) > len(session.Visible()) {
		fmt.Printf("... %d more\n", len(session.Countries())-len(session.Visible()))
	}
}
