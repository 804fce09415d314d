// Command admintoken mints a bearer token for the admin API.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"artist-booking-backend/config"
	"artist-booking-backend/internal/auth"
)

func main() {
	email := flag.String("email", "", "admin email to embed in the token")
	ttl := flag.Duration("ttl", 0, "token lifetime (defaults to auth.token_ttl_hours)")
	flag.Parse()

	if *email == "" {
		fmt.Fprintln(os.Stderr, "usage: admintoken -email admin@example.com [-ttl 72h]")
		os.Exit(2)
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/config.yaml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to load configuration from %s: %v", configPath, err)
	}

	lifetime := cfg.Auth.TokenTTL
	if *ttl > 0 {
		lifetime = *ttl
	}

	token, err := auth.NewAuthenticator(cfg.Auth.JWTSecret, lifetime).IssueToken(*email, auth.RoleAdmin)
	if err != nil {
		log.Fatalf("failed to issue token: %v", err)
	}
	fmt.Println(token)
	fmt.Fprintf(os.Stderr, "expires at %s\n", time.Now().Add(lifetime).Format(time.RFC3339))
}
