// Command devtoken prints a signed access token for a user, so local API
// calls can be made without the account service.
//
// Usage:
//
//	devtoken -user <uuid> [-role user]
//
// Reads auth settings from the same configuration as the server.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/campusshare/roommate-backend/internal/auth"
	"github.com/campusshare/roommate-backend/internal/config"
)

func main() {
	userFlag := flag.String("user", "", "user ID to issue the token for")
	roleFlag := flag.String("role", "user", "role claim")
	flag.Parse()

	userID, err := uuid.Parse(*userFlag)
	if err != nil {
		log.Fatalf("invalid -user: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	jwtMgr := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	token, err := jwtMgr.GenerateAccessToken(userID, *roleFlag)
	if err != nil {
		log.Fatalf("generate token: %v", err)
	}

	fmt.Println(token)
}
