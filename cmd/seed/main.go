package main

import (
	"log"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"gymcoach/internal/database"
	"gymcoach/internal/domain"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "gymcoach.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("migration failed:", err)
	}

	// Cleanup old data (child tables first to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM notifications")
	db.Exec("DELETE FROM measurements")
	db.Exec("DELETE FROM training_days")
	db.Exec("DELETE FROM routine_assignments")
	db.Exec("DELETE FROM routine_exercises")
	db.Exec("DELETE FROM routines")
	db.Exec("DELETE FROM coach_assignments")
	db.Exec("DELETE FROM exercises")
	db.Exec("DELETE FROM coaches")
	db.Exec("DELETE FROM users")

	log.Println("Creating users...")

	admin := domain.User{
		Name:         "Admin",
		Email:        "admin@gymcoach.local",
		PasswordHash: hash("admin123"),
		Role:         domain.RoleAdmin,
		Status:       domain.UserActive,
	}
	db.Create(&admin)
	log.Println("Admin created: admin@gymcoach.local / admin123")

	coachUsers := []domain.User{
		{Name: "Marat Ospanov", Email: "marat@gymcoach.local", PasswordHash: hash("coach123"), Role: domain.RoleCoach, Status: domain.UserActive},
		{Name: "Aigerim Seitova", Email: "aigerim@gymcoach.local", PasswordHash: hash("coach123"), Role: domain.RoleCoach, Status: domain.UserActive},
	}
	coachProfiles := []domain.Coach{
		{Specialty: "strength", Certifications: "NSCA-CPT", Bio: "Powerlifting background, 8 years coaching.", Schedule: "mon-fri 09:00-18:00"},
		{Specialty: "crossfit", Certifications: "CF-L2", Bio: "Group and personal programming.", Schedule: "tue-sat 10:00-19:00"},
	}
	for i := range coachUsers {
		db.Create(&coachUsers[i])
		coachProfiles[i].UserID = coachUsers[i].ID
		db.Create(&coachProfiles[i])
		log.Printf("Coach created: %s / coach123", coachUsers[i].Email)
	}

	clientNames := []string{"Asel Nurlanova", "Bekzat Toleu", "Dina Akhmetova"}
	clientEmails := []string{"asel@mail.kz", "bekzat@gmail.com", "dina@yandex.kz"}
	clients := make([]domain.User, 0, len(clientEmails))
	for i, email := range clientEmails {
		u := domain.User{
			Name:         clientNames[i],
			Email:        email,
			PasswordHash: hash("client123"),
			Role:         domain.RoleClient,
			Status:       domain.UserActive,
		}
		db.Create(&u)
		clients = append(clients, u)
		log.Printf("Client created: %s / client123", email)
	}

	log.Println("Creating exercise catalog...")
	exercises := []domain.Exercise{
		{Name: "Back Squat", Description: "Barbell squat to parallel or below.", MuscleGroup: "legs", Equipment: "barbell"},
		{Name: "Bench Press", Description: "Flat barbell press.", MuscleGroup: "chest", Equipment: "barbell"},
		{Name: "Deadlift", Description: "Conventional stance.", MuscleGroup: "back", Equipment: "barbell"},
		{Name: "Pull-up", Description: "Strict, full range.", MuscleGroup: "back", Equipment: "bodyweight"},
		{Name: "Overhead Press", Description: "Standing barbell press.", MuscleGroup: "shoulders", Equipment: "barbell"},
		{Name: "Plank", Description: "Hold with neutral spine.", MuscleGroup: "core", Equipment: "bodyweight"},
		{Name: "Romanian Deadlift", Description: "Hip hinge, soft knees.", MuscleGroup: "hamstrings", Equipment: "barbell"},
		{Name: "Dumbbell Row", Description: "Single arm, bench supported.", MuscleGroup: "back", Equipment: "dumbbell"},
	}
	for i := range exercises {
		db.Create(&exercises[i])
	}

	// One active coach-client pair so the API has data to show right away.
	now := time.Now()
	decided := now
	db.Create(&domain.CoachAssignment{
		CoachID:     coachProfiles[0].ID,
		UserID:      clients[0].ID,
		State:       domain.AssignmentActive,
		RequestedAt: now,
		DecidedAt:   &decided,
	})
	db.Create(&domain.CoachAssignment{
		CoachID:     coachProfiles[1].ID,
		UserID:      clients[1].ID,
		State:       domain.AssignmentPending,
		RequestedAt: now,
	})

	log.Println("Seed completed.")
}

func hash(password string) string {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal(err)
	}
	return string(h)
}
