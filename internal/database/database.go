package database

import (
	"log"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"gymcoach/internal/domain"
)

func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("Connecting to PostgreSQL...")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	log.Println("Using SQLite for local development:", dsn)

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
}

// Migrate creates the schema plus the partial unique indexes that back the
// single-open-coach and single-active-routine invariants. Both SQLite and
// PostgreSQL accept the same partial index syntax.
func Migrate(db *gorm.DB) error {
	models := []any{
		&domain.User{},
		&domain.Coach{},
		&domain.CoachAssignment{},
		&domain.Exercise{},
		&domain.Routine{},
		&domain.RoutineExercise{},
		&domain.RoutineAssignment{},
		&domain.TrainingDay{},
		&domain.Notification{},
		&domain.Measurement{},
	}
	for _, m := range models {
		if err := db.AutoMigrate(m); err != nil {
			return err
		}
	}

	stmts := []string{
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_one_open_coach_per_client
			ON coach_assignments (user_id)
			WHERE state IN ('pending', 'active')`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_one_active_routine_per_client
			ON routine_assignments (user_id)
			WHERE state = 'active'`,
	}
	for _, stmt := range stmts {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
