package routine

import (
	"gymcoach/internal/domain"
	"gymcoach/internal/repository"
)

type ExerciseLine struct {
	ExerciseID  int64  `json:"exercise_id" binding:"required"`
	Position    int    `json:"position"`
	Sets        int    `json:"sets" binding:"required"`
	Reps        string `json:"reps" binding:"required"`
	RestSeconds int    `json:"rest_seconds"`
	Notes       string `json:"notes"`
}

type CreateRoutineRequest struct {
	Name            string         `json:"name" binding:"required"`
	Description     string         `json:"description"`
	Goal            string         `json:"goal"`
	Difficulty      string         `json:"difficulty"`
	DurationMinutes int            `json:"duration_minutes"`
	Exercises       []ExerciseLine `json:"exercises" binding:"required"`
	// TargetClientID assigns the new routine to that client atomically.
	TargetClientID *int64 `json:"target_client_id"`
}

type UpdateRoutineRequest struct {
	Name            string `json:"name" binding:"required"`
	Description     string `json:"description"`
	Goal            string `json:"goal"`
	Difficulty      string `json:"difficulty"`
	DurationMinutes int    `json:"duration_minutes"`
}

type TrainingDayRequest struct {
	Weekday   string `json:"weekday" binding:"required"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Notes     string `json:"notes"`
}

type AssignRoutineRequest struct {
	ClientID     int64                `json:"client_id" binding:"required"`
	TrainingDays []TrainingDayRequest `json:"training_days"`
}

type ReplaceExercisesRequest struct {
	Exercises []ExerciseLine `json:"exercises" binding:"required"`
}

type RoutineDetails struct {
	Routine   domain.Routine                   `json:"routine"`
	Exercises []repository.RoutineExerciseItem `json:"exercises"`
}

type AssignmentDetails struct {
	Assignment   *domain.RoutineAssignment `json:"assignment"`
	TrainingDays []domain.TrainingDay      `json:"training_days,omitempty"`
}
