// Command token mints a bearer token for the API. It reads JWT_SECRET the same
// way the server does.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"squad-stats-backend/internal/auth"
	"squad-stats-backend/internal/config"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	subject := flag.String("subject", "", "token subject, e.g. the coach's email")
	role := flag.String("role", auth.RoleCoach, "token role: coach or viewer")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	if *role != auth.RoleCoach && *role != auth.RoleViewer {
		logrus.Fatalf("unknown role %q", *role)
	}

	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("Failed to load configuration:", err)
	}

	token, err := auth.NewTokenService(cfg.JWTSecret).GenerateJWT(*subject, *role, *ttl)
	if err != nil {
		logrus.Fatal("Failed to generate token:", err)
	}

	fmt.Fprintln(os.Stdout, token)
}
