package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"gymcoach/internal/database"
	"gymcoach/internal/domain"
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

type E2ETestSuite struct {
	router     *gin.Engine
	db         *gorm.DB
	jwtService *jwtsvc.Service
}

type TestResponse struct {
	Success bool                   `json:"success"`
	Data    map[string]interface{} `json:"data,omitempty"`
	Error   *ErrorDetail           `json:"error,omitempty"`
}

type ErrorDetail struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func setupTestSuite(t *testing.T) *E2ETestSuite {
	db, err := database.Connect(":memory:")
	require.NoError(t, err, "Failed to connect to test database")
	require.NoError(t, database.Migrate(db), "Failed to migrate test database")

	userRepo := repository.NewUserRepository(db)
	coachRepo := repository.NewCoachRepository(db)
	coachAssignmentRepo := repository.NewCoachAssignmentRepository(db)
	exerciseRepo := repository.NewExerciseRepository(db)
	routineRepo := repository.NewRoutineRepository(db)
	routineAssignmentRepo := repository.NewRoutineAssignmentRepository(db)
	measurementRepo := repository.NewMeasurementRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	jwtService := jwtsvc.New("test_secret_key_32_characters_min", 24*time.Hour)
	resolver := identity.NewResolver(userRepo, coachRepo)

	hub := notification.NewHub()
	notificationService := notification.NewService(notificationRepo, hub)
	notificationHandler := notification.NewHandler(notificationService, hub)

	authService := auth.NewService(userRepo, jwtService, 24*time.Hour)
	authHandler := auth.NewHandler(authService)

	coachingService := coaching.NewService(coachAssignmentRepo, coachRepo, userRepo, resolver, notificationService)
	coachingHandler := coaching.NewHandler(coachingService)

	routineService := routine.NewService(routineRepo, routineAssignmentRepo, coachAssignmentRepo, exerciseRepo, resolver, notificationService)
	routineHandler := routine.NewHandler(routineService)

	measurementService := measurement.NewService(measurementRepo, coachAssignmentRepo, userRepo, resolver, notificationService)
	measurementHandler := measurement.NewHandler(measurementService)

	exerciseService := exercise.NewService(exerciseRepo)
	exerciseHandler := exercise.NewHandler(exerciseService)

	adminService := admin.NewService(userRepo, coachRepo)
	adminHandler := admin.NewHandler(adminService)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(gin.Recovery())

	v1 := r.Group("/api/v1")
	{
		authHandler.RegisterRoutes(v1)
		coachingHandler.RegisterPublicRoutes(v1)
		exerciseHandler.RegisterPublicRoutes(v1)

		authed := v1.Group("/")
		authed.Use(middleware.JWTAuth(jwtService))
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

	return &E2ETestSuite{router: r, db: db, jwtService: jwtService}
}

func (s *E2ETestSuite) makeRequest(method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var bodyBytes []byte
	if body != nil {
		bodyBytes, _ = json.Marshal(body)
	}

	req := httptest.NewRequest(method, path, bytes.NewBuffer(bodyBytes))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func parseResponse(t *testing.T, w *httptest.ResponseRecorder) *TestResponse {
	var resp TestResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err, "Failed to parse response. Status: %d, Body: %s", w.Code, w.Body.String())
	return &resp
}

// createUser inserts an account directly; API flows are covered separately.
func (s *E2ETestSuite) createUser(t *testing.T, name, email string, role domain.UserRole) (*domain.User, string) {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	u := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Status:       domain.UserActive,
	}
	require.NoError(t, s.db.Create(u).Error)

	token, err := s.jwtService.GenerateToken(u.ID, string(role))
	require.NoError(t, err)
	return u, token
}

func (s *E2ETestSuite) createCoach(t *testing.T, name, email, specialty string) (*domain.User, *domain.Coach, string) {
	u, token := s.createUser(t, name, email, domain.RoleCoach)
	c := &domain.Coach{UserID: u.ID, Specialty: specialty}
	require.NoError(t, s.db.Create(c).Error)
	return u, c, token
}

func (s *E2ETestSuite) createExercise(t *testing.T, name, muscleGroup string) *domain.Exercise {
	e := &domain.Exercise{Name: name, MuscleGroup: muscleGroup}
	require.NoError(t, s.db.Create(e).Error)
	return e
}

func dataID(t *testing.T, resp *TestResponse, key string) int64 {
	obj, ok := resp.Data[key].(map[string]interface{})
	require.True(t, ok, "response data missing %q: %+v", key, resp.Data)
	id, ok := obj["id"].(float64)
	require.True(t, ok, "%q has no numeric id: %+v", key, obj)
	return int64(id)
}

func TestRegistrationVerificationLogin(t *testing.T) {
	suite := setupTestSuite(t)

	w := suite.makeRequest("POST", "/api/v1/auth/register", map[string]interface{}{
		"name":     "John Doe",
		"email":    "john@test.com",
		"password": "password123",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)
	resp := parseResponse(t, w)
	assert.True(t, resp.Success)

	t.Run("login before verification is rejected", func(t *testing.T) {
		w := suite.makeRequest("POST", "/api/v1/auth/login", map[string]interface{}{
			"email":    "john@test.com",
			"password": "password123",
		}, "")
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		w := suite.makeRequest("POST", "/api/v1/auth/register", map[string]interface{}{
			"name":     "John Again",
			"email":    "john@test.com",
			"password": "password123",
		}, "")
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	// The verification token is delivered out of band; read it from the DB.
	var user domain.User
	require.NoError(t, suite.db.Where("email = ?", "john@test.com").First(&user).Error)
	require.NotNil(t, user.VerifyToken)
	assert.Equal(t, domain.UserInactive, user.Status)

	w = suite.makeRequest("POST", "/api/v1/auth/verify", map[string]interface{}{
		"token": *user.VerifyToken,
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = suite.makeRequest("POST", "/api/v1/auth/login", map[string]interface{}{
		"email":    "john@test.com",
		"password": "password123",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)
	resp = parseResponse(t, w)
	token, _ := resp.Data["token"].(string)
	require.NotEmpty(t, token)

	w = suite.makeRequest("GET", "/api/v1/auth/me", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	resp = parseResponse(t, w)
	me := resp.Data["user"].(map[string]interface{})
	assert.Equal(t, "john@test.com", me["email"])
	assert.Equal(t, "active", me["status"])
}

func TestCoachRequestLifecycle(t *testing.T) {
	suite := setupTestSuite(t)

	coachUser, coachProfile, coachToken := suite.createCoach(t, "Marat Ospanov", "marat@test.com", "strength")
	_, clientToken := suite.createUser(t, "Asel Nurlanova", "asel@test.com", domain.RoleClient)

	t.Run("public coach listing", func(t *testing.T) {
		w := suite.makeRequest("GET", "/api/v1/coaches", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		resp := parseResponse(t, w)
		coaches := resp.Data["coaches"].([]interface{})
		require.Len(t, coaches, 1)
	})

	w := suite.makeRequest("POST", "/api/v1/coach-requests", map[string]interface{}{
		"coach_id": coachProfile.ID,
	}, clientToken)
	require.Equal(t, http.StatusCreated, w.Code)
	resp := parseResponse(t, w)
	assignmentID := dataID(t, resp, "assignment")

	t.Run("second request while pending is a conflict", func(t *testing.T) {
		w := suite.makeRequest("POST", "/api/v1/coach-requests", map[string]interface{}{
			"coach_id": coachProfile.ID,
		}, clientToken)
		require.Equal(t, http.StatusConflict, w.Code)
		resp := parseResponse(t, w)
		assert.Contains(t, resp.Error.Message, "pending")
	})

	t.Run("status shows pending request", func(t *testing.T) {
		w := suite.makeRequest("GET", "/api/v1/coach-status", nil, clientToken)
		require.Equal(t, http.StatusOK, w.Code)
		resp := parseResponse(t, w)
		assert.Equal(t, false, resp.Data["has_coach"])
		assert.Equal(t, true, resp.Data["pending_request"])
	})

	t.Run("coach sees the pending request", func(t *testing.T) {
		w := suite.makeRequest("GET", "/api/v1/coach/requests", nil, coachToken)
		require.Equal(t, http.StatusOK, w.Code)
		resp := parseResponse(t, w)
		requests := resp.Data["requests"].([]interface{})
		require.Len(t, requests, 1)
	})

	w = suite.makeRequest("PUT", fmt.Sprintf("/api/v1/coach/requests/%d/accept", assignmentID), nil, coachToken)
	require.Equal(t, http.StatusOK, w.Code)

	t.Run("accept is idempotent", func(t *testing.T) {
		w := suite.makeRequest("PUT", fmt.Sprintf("/api/v1/coach/requests/%d/accept", assignmentID), nil, coachToken)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("reject after accept is a conflict", func(t *testing.T) {
		w := suite.makeRequest("PUT", fmt.Sprintf("/api/v1/coach/requests/%d/reject", assignmentID), nil, coachToken)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("status shows active coach", func(t *testing.T) {
		w := suite.makeRequest("GET", "/api/v1/coach-status", nil, clientToken)
		require.Equal(t, http.StatusOK, w.Code)
		resp := parseResponse(t, w)
		assert.Equal(t, true, resp.Data["has_coach"])
	})

	t.Run("request while actively coached is a conflict", func(t *testing.T) {
		w := suite.makeRequest("POST", "/api/v1/coach-requests", map[string]interface{}{
			"coach_id": coachProfile.ID,
		}, clientToken)
		require.Equal(t, http.StatusConflict, w.Code)
		resp := parseResponse(t, w)
		assert.Contains(t, resp.Error.Message, "active coach")
	})

	t.Run("client appears in coach roster", func(t *testing.T) {
		w := suite.makeRequest("GET", "/api/v1/coach/clients", nil, coachToken)
		require.Equal(t, http.StatusOK, w.Code)
		resp := parseResponse(t, w)
		clients := resp.Data["clients"].([]interface{})
		require.Len(t, clients, 1)
	})

	t.Run("client got a decision notification from the coach", func(t *testing.T) {
		w := suite.makeRequest("GET", "/api/v1/notifications", nil, clientToken)
		require.Equal(t, http.StatusOK, w.Code)
		resp := parseResponse(t, w)
		unread, _ := resp.Data["unread_count"].(float64)
		assert.GreaterOrEqual(t, unread, float64(1))

		list := resp.Data["notifications"].([]interface{})
		require.NotEmpty(t, list)
		n := list[0].(map[string]interface{})
		assert.Equal(t, float64(coachUser.ID), n["origin_user_id"])
	})

	t.Run("foreign coach cannot decide the request", func(t *testing.T) {
		_, _, otherToken := suite.createCoach(t, "Aigerim Seitova", "aigerim@test.com", "crossfit")
		w := suite.makeRequest("PUT", fmt.Sprintf("/api/v1/coach/requests/%d/accept", assignmentID), nil, otherToken)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestRoutineLifecycle(t *testing.T) {
	suite := setupTestSuite(t)

	_, coachProfile, coachToken := suite.createCoach(t, "Marat Ospanov", "marat@test.com", "strength")
	clientUser, clientToken := suite.createUser(t, "Asel Nurlanova", "asel@test.com", domain.RoleClient)

	squat := suite.createExercise(t, "Back Squat", "legs")
	bench := suite.createExercise(t, "Bench Press", "chest")

	decided := time.Now()
	require.NoError(t, suite.db.Create(&domain.CoachAssignment{
		CoachID:     coachProfile.ID,
		UserID:      clientUser.ID,
		State:       domain.AssignmentActive,
		RequestedAt: decided,
		DecidedAt:   &decided,
	}).Error)

	w := suite.makeRequest("POST", "/api/v1/coach/routines", map[string]interface{}{
		"name":       "Strength Block A",
		"goal":       "strength",
		"difficulty": "intermediate",
		"exercises": []map[string]interface{}{
			{"exercise_id": squat.ID, "position": 1, "sets": 5, "reps": "5", "rest_seconds": 180},
			{"exercise_id": bench.ID, "position": 2, "sets": 5, "reps": "5", "rest_seconds": 120},
		},
	}, coachToken)
	require.Equal(t, http.StatusCreated, w.Code)
	resp := parseResponse(t, w)
	routineID := dataID(t, resp, "routine")

	t.Run("unknown exercise id fails validation", func(t *testing.T) {
		w := suite.makeRequest("POST", "/api/v1/coach/routines", map[string]interface{}{
			"name": "Broken",
			"exercises": []map[string]interface{}{
				{"exercise_id": 99999, "sets": 3, "reps": "10"},
			},
		}, coachToken)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("invalid weekday is rejected", func(t *testing.T) {
		w := suite.makeRequest("POST", fmt.Sprintf("/api/v1/coach/routines/%d/assign", routineID), map[string]interface{}{
			"client_id":     clientUser.ID,
			"training_days": []map[string]interface{}{{"weekday": "Funday"}},
		}, coachToken)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("coach edits routine metadata", func(t *testing.T) {
		w := suite.makeRequest("PUT", fmt.Sprintf("/api/v1/coach/routines/%d", routineID), map[string]interface{}{
			"name":             "Strength Block A2",
			"goal":             "strength",
			"difficulty":       "advanced",
			"duration_minutes": 75,
		}, coachToken)
		require.Equal(t, http.StatusOK, w.Code)
		resp := parseResponse(t, w)
		routine := resp.Data["routine"].(map[string]interface{})
		assert.Equal(t, "Strength Block A2", routine["name"])
		assert.Equal(t, "advanced", routine["difficulty"])
	})

	w = suite.makeRequest("POST", fmt.Sprintf("/api/v1/coach/routines/%d/assign", routineID), map[string]interface{}{
		"client_id": clientUser.ID,
		"training_days": []map[string]interface{}{
			{"weekday": "monday", "start_time": "18:00", "end_time": "19:30"},
			{"weekday": "thursday", "start_time": "18:00", "end_time": "19:30"},
		},
	}, coachToken)
	require.Equal(t, http.StatusOK, w.Code)
	resp = parseResponse(t, w)
	firstAssignmentID := dataID(t, resp, "assignment")

	t.Run("active routine visible for a scheduled day", func(t *testing.T) {
		w := suite.makeRequest("GET", "/api/v1/routines/active?day=monday", nil, clientToken)
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("active routine absent for an unscheduled day", func(t *testing.T) {
		w := suite.makeRequest("GET", "/api/v1/routines/active?day=friday", nil, clientToken)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("training days listed for own assignment", func(t *testing.T) {
		w := suite.makeRequest("GET", fmt.Sprintf("/api/v1/routine-assignments/%d/days", firstAssignmentID), nil, clientToken)
		require.Equal(t, http.StatusOK, w.Code)
		resp := parseResponse(t, w)
		days := resp.Data["training_days"].([]interface{})
		assert.Len(t, days, 2)
	})

	// Creating a routine with a target client assigns it in the same call
	// and supersedes the previous assignment.
	w = suite.makeRequest("POST", "/api/v1/coach/routines", map[string]interface{}{
		"name":             "Strength Block B",
		"target_client_id": clientUser.ID,
		"exercises": []map[string]interface{}{
			{"exercise_id": squat.ID, "position": 1, "sets": 3, "reps": "8", "rest_seconds": 120},
		},
	}, coachToken)
	require.Equal(t, http.StatusCreated, w.Code)
	resp = parseResponse(t, w)
	secondRoutineID := dataID(t, resp, "routine")

	t.Run("previous assignment superseded to completed", func(t *testing.T) {
		var a domain.RoutineAssignment
		require.NoError(t, suite.db.First(&a, firstAssignmentID).Error)
		assert.Equal(t, domain.RoutineCompleted, a.State)
		assert.False(t, a.StartedAt.IsZero())
		assert.NotNil(t, a.EndedAt)
	})

	t.Run("client completes the active routine", func(t *testing.T) {
		w := suite.makeRequest("PUT", fmt.Sprintf("/api/v1/routines/%d/complete", secondRoutineID), nil, clientToken)
		require.Equal(t, http.StatusOK, w.Code)

		w = suite.makeRequest("PUT", fmt.Sprintf("/api/v1/routines/%d/complete", secondRoutineID), nil, clientToken)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("deleting a routine cancels its active assignments", func(t *testing.T) {
		w := suite.makeRequest("POST", fmt.Sprintf("/api/v1/coach/routines/%d/assign", routineID), map[string]interface{}{
			"client_id": clientUser.ID,
		}, coachToken)
		require.Equal(t, http.StatusOK, w.Code)
		resp := parseResponse(t, w)
		assignmentID := dataID(t, resp, "assignment")

		w = suite.makeRequest("DELETE", fmt.Sprintf("/api/v1/coach/routines/%d", routineID), nil, coachToken)
		require.Equal(t, http.StatusOK, w.Code)

		var a domain.RoutineAssignment
		require.NoError(t, suite.db.First(&a, assignmentID).Error)
		assert.Equal(t, domain.RoutineCancelled, a.State)
	})

	t.Run("foreign coach sees another coach's routine as missing", func(t *testing.T) {
		_, _, otherToken := suite.createCoach(t, "Aigerim Seitova", "aigerim@test.com", "crossfit")
		w := suite.makeRequest("GET", fmt.Sprintf("/api/v1/coach/routines/%d", secondRoutineID), nil, otherToken)
		assert.Equal(t, http.StatusNotFound, w.Code)

		w = suite.makeRequest("PUT", fmt.Sprintf("/api/v1/coach/routines/%d", secondRoutineID), map[string]interface{}{
			"name": "Taken Over",
		}, otherToken)
		assert.Equal(t, http.StatusNotFound, w.Code)

		w = suite.makeRequest("DELETE", fmt.Sprintf("/api/v1/coach/routines/%d", secondRoutineID), nil, otherToken)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("unassigned client cannot receive a routine", func(t *testing.T) {
		stranger, _ := suite.createUser(t, "Bekzat Toleu", "bekzat@test.com", domain.RoleClient)
		w := suite.makeRequest("POST", fmt.Sprintf("/api/v1/coach/routines/%d/assign", secondRoutineID), map[string]interface{}{
			"client_id": stranger.ID,
		}, coachToken)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestMeasurementsAndAdmin(t *testing.T) {
	suite := setupTestSuite(t)

	_, adminToken := suite.createUser(t, "Admin", "admin@test.com", domain.RoleAdmin)
	clientUser, clientToken := suite.createUser(t, "Asel Nurlanova", "asel@test.com", domain.RoleClient)

	t.Run("admin creates a coach account", func(t *testing.T) {
		w := suite.makeRequest("POST", "/api/v1/admin/coaches", map[string]interface{}{
			"name":      "Marat Ospanov",
			"email":     "marat@test.com",
			"password":  "password123",
			"specialty": "strength",
		}, adminToken)
		require.Equal(t, http.StatusCreated, w.Code)

		var u domain.User
		require.NoError(t, suite.db.Where("email = ?", "marat@test.com").First(&u).Error)
		assert.Equal(t, domain.UserActive, u.Status)
	})

	t.Run("client role cannot reach admin routes", func(t *testing.T) {
		w := suite.makeRequest("POST", "/api/v1/admin/exercises", map[string]interface{}{
			"name": "Back Squat",
		}, clientToken)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("admin manages the exercise catalog", func(t *testing.T) {
		w := suite.makeRequest("POST", "/api/v1/admin/exercises", map[string]interface{}{
			"name":         "Back Squat",
			"muscle_group": "legs",
		}, adminToken)
		require.Equal(t, http.StatusCreated, w.Code)

		w = suite.makeRequest("GET", "/api/v1/exercises?muscle_group=legs", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		resp := parseResponse(t, w)
		exercises := resp.Data["exercises"].([]interface{})
		require.Len(t, exercises, 1)
	})

	weight := 72.5
	w := suite.makeRequest("POST", "/api/v1/measurements", map[string]interface{}{
		"weight_kg":      weight,
		"muscle_mass_kg": 31.2,
		"waist_cm":       80.0,
		"hip_cm":         95.0,
	}, clientToken)
	require.Equal(t, http.StatusCreated, w.Code)

	t.Run("empty measurement fails validation", func(t *testing.T) {
		w := suite.makeRequest("POST", "/api/v1/measurements", map[string]interface{}{
			"notes": "nothing recorded",
		}, clientToken)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("latest measurement returned", func(t *testing.T) {
		w := suite.makeRequest("GET", "/api/v1/measurements/latest", nil, clientToken)
		require.Equal(t, http.StatusOK, w.Code)
		resp := parseResponse(t, w)
		m := resp.Data["measurement"].(map[string]interface{})
		assert.Equal(t, weight, m["weight_kg"])
		assert.Equal(t, 31.2, m["muscle_mass_kg"])
		assert.Equal(t, 95.0, m["hip_cm"])
	})

	t.Run("suspended user cannot log in", func(t *testing.T) {
		w := suite.makeRequest("PUT", fmt.Sprintf("/api/v1/admin/users/%d/suspend", clientUser.ID), nil, adminToken)
		require.Equal(t, http.StatusOK, w.Code)

		w = suite.makeRequest("POST", "/api/v1/auth/login", map[string]interface{}{
			"email":    "asel@test.com",
			"password": "password123",
		}, "")
		assert.Equal(t, http.StatusForbidden, w.Code)

		w = suite.makeRequest("PUT", fmt.Sprintf("/api/v1/admin/users/%d/restore", clientUser.ID), nil, adminToken)
		require.Equal(t, http.StatusOK, w.Code)

		w = suite.makeRequest("POST", "/api/v1/auth/login", map[string]interface{}{
			"email":    "asel@test.com",
			"password": "password123",
		}, "")
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
