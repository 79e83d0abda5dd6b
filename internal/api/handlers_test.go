package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"fittrack/internal/api"
	"fittrack/internal/domain"
	"fittrack/internal/repository/sqlite"
	"fittrack/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "fittrack_test.db")

	db, err := sqlite.Open(dbPath)
	require.NoError(t, err, "open db")
	require.NoError(t, sqlite.RunMigrations(ctx, db), "run migrations")
	require.NoError(t, sqlite.EnsureProfile(ctx, db), "seed profile")
	t.Cleanup(func() { _ = sqlite.Close(db) })

	profileService := service.NewProfileService(sqlite.NewProfileRepository(db))
	workoutService := service.NewWorkoutService(sqlite.NewWorkoutRepository(db))
	statsService := service.NewStatsService(sqlite.NewWorkoutRepository(db))

	router := gin.New()
	api.SetupRoutes(
		router,
		api.NewProfileHandler(profileService),
		api.NewWorkoutHandler(workoutService),
		api.NewStatsHandler(statsService),
		nil, // advice disabled in tests
		"",
	)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestEmptyStore(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/workouts", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())

	rec = doJSON(t, router, http.MethodGet, "/api/stats", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var stats []domain.DailyStat
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	require.Len(t, stats, 7)
	for _, stat := range stats {
		assert.Zero(t, stat.Calories)
	}
	assert.Equal(t, time.Now().Format(domain.DateLayout), stats[6].Date, "today is the last entry")
}

func TestCreateAndListWorkout(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/workouts", gin.H{
		"name":     "Leg Day",
		"date":     "2024-06-01",
		"duration": 45,
		"calories": 300,
		"exercises": []gin.H{
			{"name": "Squat", "sets": 4, "reps": 8, "weight": 80},
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.Greater(t, created.ID, int64(0))

	rec = doJSON(t, router, http.MethodGet, "/api/workouts", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var workouts []api.WorkoutResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &workouts))
	require.Len(t, workouts, 1)
	assert.Equal(t, created.ID, workouts[0].ID)
	assert.Equal(t, "Leg Day", workouts[0].Name)
	assert.Equal(t, "2024-06-01", workouts[0].Date)
	assert.Equal(t, 45, workouts[0].Duration)
	assert.Equal(t, 300, workouts[0].Calories)
}

func TestGetWorkoutDetail(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/workouts", gin.H{
		"name": "Push Day",
		"date": "2024-06-02",
		"exercises": []gin.H{
			{"name": "Bench Press", "sets": 5, "reps": 5, "weight": 100},
			{"name": "Overhead Press", "sets": 3, "reps": 10, "weight": 50},
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/workouts/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var detail api.WorkoutDetailResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	assert.Equal(t, "Push Day", detail.Name)
	require.Len(t, detail.Exercises, 2)
	assert.Equal(t, "Bench Press", detail.Exercises[0].Name)
	assert.Equal(t, "Overhead Press", detail.Exercises[1].Name)

	rec = doJSON(t, router, http.MethodGet, "/api/workouts/999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateWorkoutValidation(t *testing.T) {
	router := newTestRouter(t)

	// Malformed JSON body.
	req := httptest.NewRequest(http.MethodPost, "/api/workouts", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Missing name.
	rec = doJSON(t, router, http.MethodPost, "/api/workouts", gin.H{"date": "2024-06-01"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Unparseable date.
	rec = doJSON(t, router, http.MethodPost, "/api/workouts", gin.H{"name": "Leg Day", "date": "June 1st"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// No partial side effects.
	rec = doJSON(t, router, http.MethodGet, "/api/workouts", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestProfileRoundTrip(t *testing.T) {
	router := newTestRouter(t)

	// Seeded defaults first.
	rec := doJSON(t, router, http.MethodGet, "/api/profile", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var profile api.ProfileResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profile))
	assert.Equal(t, "Atleta", profile.Name)

	rec = doJSON(t, router, http.MethodPost, "/api/profile", gin.H{
		"name":   "Ana",
		"weight": 60,
		"height": 165,
		"goal":   "Perder peso",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success": true}`, rec.Body.String())

	rec = doJSON(t, router, http.MethodGet, "/api/profile", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profile))
	assert.Equal(t, api.ProfileResponse{
		Name:   "Ana",
		Weight: 60,
		Height: 165,
		Goal:   "Perder peso",
	}, profile)

	// Missing name is a validation error, nothing changes.
	rec = doJSON(t, router, http.MethodPost, "/api/profile", gin.H{"weight": 70})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/profile", nil)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profile))
	assert.Equal(t, "Ana", profile.Name)
}

func TestStatsReflectWorkouts(t *testing.T) {
	router := newTestRouter(t)

	today := time.Now().Format(domain.DateLayout)
	rec := doJSON(t, router, http.MethodPost, "/api/workouts", gin.H{
		"name":     "Morning Run",
		"date":     today,
		"duration": 30,
		"calories": 250,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/stats", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var stats []domain.DailyStat
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	require.Len(t, stats, 7)
	assert.Equal(t, today, stats[6].Date)
	assert.Equal(t, 250, stats[6].Calories)
}

func TestPing(t *testing.T) {
	router := newTestRouter(t)
	rec := doJSON(t, router, http.MethodGet, "/ping", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message": "pong"}`, rec.Body.String())
}
