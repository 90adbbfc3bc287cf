package main

import (
	"context"
	"log"
	"os"
	"time"

	"orderapp/internal/attendee"
	"orderapp/internal/auth"
	"orderapp/internal/bot"
	"orderapp/internal/db"
	"orderapp/internal/order"
	"orderapp/internal/router"
	"orderapp/internal/session"

	"github.com/joho/godotenv"
)

const sessionTTL = 30 * time.Minute

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"ADMIN_PASSWORD_HASH",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	// ───────────────────────── ROSTER ─────────────────────────
	// DATABASE_URL is optional; without it the built-in roster is used.
	var roster attendee.RosterRepository
	if os.Getenv("DATABASE_URL") != "" {
		pgDB := db.ConnectPostgres()
		defer pgDB.Close()

		pgRoster := attendee.NewPostgresRosterRepository(pgDB)
		if err := pgRoster.Seed(context.Background(), attendee.DefaultRoster); err != nil {
			log.Fatal("❌ Roster seed failed:", err)
		}
		roster = pgRoster
	} else {
		log.Println("ℹ️ DATABASE_URL not set, using built-in roster")
		roster = attendee.NewInMemoryRosterRepository(nil)
	}

	// ───────────────────────── CORE ─────────────────────────
	sessionRepo := session.NewInMemoryRepository()
	attendeeStore := attendee.NewStore()
	tallyService := order.NewService()

	botService := bot.NewService(sessionRepo, attendeeStore, roster, tallyService, sessionTTL)

	// ───────────────────────── HANDLERS ─────────────────────────
	botHandler := bot.NewHandler(botService, tallyService)
	adminHandler := bot.NewAdminHandler(botService)
	attendeeHandler := attendee.NewHandler(attendeeStore, roster)
	authHandler := auth.NewHandler(auth.NewService())

	// ───────────────────────── GIN ─────────────────────────
	r := router.NewRouter(botHandler, adminHandler, attendeeHandler, authHandler)

	// ───────────────────────── WORKERS ─────────────────────────
	session.StartJanitor(sessionRepo, sessionTTL, 5*time.Minute)

	// ───────────────────────── START ─────────────────────────
	log.Println("🚀 API running at http://localhost:8000")
	r.Run(":8000")
}
