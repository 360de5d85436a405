// Command devtoken mints a bearer token signed with the configured secret so the API can
// be exercised locally without the identity provider.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/amirhossein-jamali/arena-wallet/internal/domain/entity"
	"github.com/amirhossein-jamali/arena-wallet/internal/infrastructure/adapter/auth"
	"github.com/amirhossein-jamali/arena-wallet/internal/infrastructure/config"
)

func main() {
	userID := flag.String("user", "player-1", "Token subject (wallet user id)")
	name := flag.String("name", "Player One", "Display name claim")
	phone := flag.String("phone", "01700000001", "Phone claim used for transfers")
	role := flag.String("role", "user", "Role claim: user or admin")
	ttl := flag.Duration("ttl", 24*time.Hour, "Token lifetime")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.Auth.JWTSecret == "" {
		log.Fatal("auth.jwtSecret (or AW_JWT_SECRET) is not set")
	}

	token, err := auth.NewIssuer(cfg.Auth).Issue(entity.Principal{
		UserID: *userID,
		Name:   *name,
		Phone:  *phone,
		Role:   entity.ParseRole(*role),
	}, time.Now(), *ttl)
	if err != nil {
		log.Fatalf("Failed to sign token: %v", err)
	}

	fmt.Println(token)
}
