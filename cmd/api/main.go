package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"gymcoach/internal/config"
	"gymcoach/internal/database"
	"gymcoach/internal/identity"
	"gymcoach/internal/middleware"
	"gymcoach/internal/modules/admin"
	"gymcoach/internal/modules/auth"
	"gymcoach/internal/modules/coaching"
	"gymcoach/internal/modules/exercise"
	"gymcoach/internal/modules/measurement"
	"gymcoach/internal/modules/notification"
	"gymcoach/internal/modules/routine"
	jwtsvc "gymcoach/internal/pkg/jwt"
	"gymcoach/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadRuntimeConfig()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	coachRepo := repository.NewCoachRepository(db)
	coachAssignmentRepo := repository.NewCoachAssignmentRepository(db)
	exerciseRepo := repository.NewExerciseRepository(db)
	routineRepo := repository.NewRoutineRepository(db)
	routineAssignmentRepo := repository.NewRoutineAssignmentRepository(db)
	measurementRepo := repository.NewMeasurementRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTAccessTTL)
	resolver := identity.NewResolver(userRepo, coachRepo)

	hub := notification.NewHub()
	notificationService := notification.NewService(notificationRepo, hub)
	notificationHandler := notification.NewHandler(notificationService, hub)

	authService := auth.NewService(userRepo, j, cfg.VerifyTokenTTL)
	authHandler := auth.NewHandler(authService)

	coachingService := coaching.NewService(
		coachAssignmentRepo,
		coachRepo,
		userRepo,
		resolver,
		notificationService,
	)
	coachingHandler := coaching.NewHandler(coachingService)

	routineService := routine.NewService(
		routineRepo,
		routineAssignmentRepo,
		coachAssignmentRepo,
		exerciseRepo,
		resolver,
		notificationService,
	)
	routineHandler := routine.NewHandler(routineService)

	measurementService := measurement.NewService(
		measurementRepo,
		coachAssignmentRepo,
		userRepo,
		resolver,
		notificationService,
	)
	measurementHandler := measurement.NewHandler(measurementService)

	exerciseService := exercise.NewService(exerciseRepo)
	exerciseHandler := exercise.NewHandler(exerciseService)

	adminService := admin.NewService(userRepo, coachRepo)
	adminHandler := admin.NewHandler(adminService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)
		coachingHandler.RegisterPublicRoutes(v1)
		exerciseHandler.RegisterPublicRoutes(v1)

		authed := v1.Group("/")
		authed.Use(middleware.JWTAuth(j))
		{
			authHandler.RegisterProtectedRoutes(authed)
			notificationHandler.RegisterRoutes(authed)

			client := authed.Group("/")
			client.Use(middleware.RequireRole("client"))
			{
				coachingHandler.RegisterClientRoutes(client)
				routineHandler.RegisterClientRoutes(client)
				measurementHandler.RegisterClientRoutes(client)
			}

			coach := authed.Group("/coach")
			coach.Use(middleware.RequireRole("coach"))
			{
				coachingHandler.RegisterCoachRoutes(coach)
				routineHandler.RegisterCoachRoutes(coach)
			}

			adm := authed.Group("/admin")
			adm.Use(middleware.AdminOnly())
			{
				adminHandler.RegisterRoutes(adm)
				exerciseHandler.RegisterAdminRoutes(adm)
			}
		}
	}

	log.Printf("listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
