// Command issue-token mints an access token for local development and
// smoke tests. Production tokens come from the identity provider.
//
// Usage:
//
//	issue-token --user=<uuid> [--ttl=24h]
//
// Without --user a random user ID is used. Requires AUTH_JWT_SECRET.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/pathwise-backend/internal/auth"
	"github.com/heartmarshall/pathwise-backend/internal/config"
)

func main() {
	user := flag.String("user", "", "user ID to put in the token subject")
	ttl := flag.Duration("ttl", 0, "token lifetime, defaults to auth.access_token_ttl")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	userID := uuid.New()
	if *user != "" {
		userID, err = uuid.Parse(*user)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Usage: issue-token --user=<uuid> [--ttl=24h]")
			os.Exit(1)
		}
	}

	lifetime := cfg.Auth.AccessTokenTTL
	if *ttl > 0 {
		lifetime = *ttl
	}

	manager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	token, err := manager.GenerateAccessTokenTTL(userID, lifetime)
	if err != nil {
		log.Fatalf("issue token: %v", err)
	}

	fmt.Fprintf(os.Stderr, "user %s, expires in %s\n", userID, lifetime.Round(time.Second))
	fmt.Println(token)
}
