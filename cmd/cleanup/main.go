package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"gymcoach/internal/database"
	"gymcoach/internal/repository"
)

// Deletes stale rows the API never reads again: client accounts whose
// verification token expired without being used, and notifications that
// were read more than 30 days ago. Meant to run from cron.
func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "gymcoach.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	now := time.Now()

	res := db.Exec(
		`DELETE FROM users WHERE status = ? AND verify_token IS NOT NULL AND verify_expires < ?`,
		"inactive", now,
	)
	if res.Error != nil {
		log.Fatalf("cleanup expired registrations failed: %v", res.Error)
	}

	notifications := repository.NewNotificationRepository(db)
	pruned, err := notifications.DeleteReadOlderThan(context.Background(), now.AddDate(0, 0, -30))
	if err != nil {
		log.Fatalf("cleanup notifications failed: %v", err)
	}

	log.Printf("cleanup completed: expired_registrations=%d read_notifications=%d", res.RowsAffected, pruned)
}
