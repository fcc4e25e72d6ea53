package main

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raghugg/job-hunter/internal/clock"
	"github.com/raghugg/job-hunter/internal/config"
	"github.com/raghugg/job-hunter/internal/serverapp"
)

func newTestServerAt(t *testing.T, dataDir string, now time.Time) *httptest.Server {
	t.Helper()

	cfg := config.Default()
	handler, err := serverapp.NewHandler(serverapp.Options{
		Config:  cfg,
		DataDir: dataDir,
		Clock:   clock.NewFakeClock(now),
	})
	require.NoError(t, err)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	return newTestServerAt(t, t.TempDir(), time.Date(2024, 1, 1, 9, 0, 0, 0, time.Local))
}

func getJSON(t *testing.T, url string, out any) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(b, out))
}

func TestHealthAndReady(t *testing.T) {
	srv := newTestServer(t)

	var health map[string]any
	getJSON(t, srv.URL+"/healthz", &health)
	assert.Equal(t, true, health["ok"])
	assert.Equal(t, "jobhunter", health["service"])

	var ready map[string]any
	getJSON(t, srv.URL+"/readyz", &ready)
	assert.Equal(t, true, ready["ok"])
}

func TestStateAndToggleRoundTrip(t *testing.T) {
	srv := newTestServer(t)

	var state struct {
		Tasks []struct {
			ID             int    `json:"id"`
			Label          string `json:"label"`
			CompletedCount int    `json:"completedCount"`
			Target         int    `json:"target"`
		} `json:"tasks"`
		Streak        int `json:"streak"`
		LastSevenDays []struct {
			Percent int `json:"percent"`
		} `json:"lastSevenDays"`
	}
	getJSON(t, srv.URL+"/api/state", &state)
	require.Len(t, state.Tasks, 4, "seeded with default tasks")
	assert.Len(t, state.LastSevenDays, 7)

	resp, err := http.Post(srv.URL+"/api/tasks/1/toggle", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	getJSON(t, srv.URL+"/api/state", &state)
	assert.Equal(t, state.Tasks[0].Target, state.Tasks[0].CompletedCount)
}

func TestJobLifecycleOverHTTP(t *testing.T) {
	srv := newTestServer(t)

	body := strings.NewReader(`{"title":"Backend Engineer","company":"Initech","postUrl":"initech.com/jobs/1"}`)
	resp, err := http.Post(srv.URL+"/api/jobs", "application/json", body)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created struct {
		ID      string `json:"id"`
		PostURL string `json:"postUrl"`
		Status  string `json:"status"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.Equal(t, "https://initech.com/jobs/1", created.PostURL)
	assert.Equal(t, "saved", created.Status)

	sresp, err := http.Post(srv.URL+"/api/jobs/"+created.ID+"/status", "application/json",
		strings.NewReader(`{"status":"interview"}`))
	require.NoError(t, err)
	defer sresp.Body.Close()
	require.Equal(t, http.StatusOK, sresp.StatusCode)

	var listing struct {
		Jobs []struct {
			Status string `json:"status"`
		} `json:"jobs"`
	}
	getJSON(t, srv.URL+"/api/jobs", &listing)
	require.Len(t, listing.Jobs, 1)
	assert.Equal(t, "interview", listing.Jobs[0].Status)
}

func TestLeetcodeAndRouteDocs(t *testing.T) {
	srv := newTestServer(t)

	var draw struct {
		Problems []struct {
			Title string `json:"title"`
		} `json:"problems"`
	}
	getJSON(t, srv.URL+"/api/leetcode/random?count=3&difficulty=Easy", &draw)
	assert.Len(t, draw.Problems, 3)

	var docs struct {
		Routes []struct {
			Pattern string `json:"pattern"`
		} `json:"routes"`
	}
	getJSON(t, srv.URL+"/api/routes", &docs)
	patterns := map[string]bool{}
	for _, r := range docs.Routes {
		patterns[r.Pattern] = true
	}
	assert.True(t, patterns["/api/state"])
	assert.True(t, patterns["/api/resume/analyze"])
}

func TestStatsReflectActivity(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/api/tasks/1/toggle", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()

	resp, err = http.Post(srv.URL+"/api/jobs", "application/json",
		strings.NewReader(`{"title":"SRE","company":"Hooli"}`))
	require.NoError(t, err)
	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	resp.Body.Close()

	resp, err = http.Post(srv.URL+"/api/jobs/"+created.ID+"/status", "application/json",
		strings.NewReader(`{"status":"applied"}`))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var draw map[string]any
	getJSON(t, srv.URL+"/api/leetcode/random?count=1&difficulty=Hard", &draw)

	var stats struct {
		TaskToggles       int            `json:"task_toggles"`
		JobsCreated       int            `json:"jobs_created"`
		JobsByStage       map[string]int `json:"jobs_by_stage"`
		ProblemDraws      int            `json:"problem_draws"`
		DrawsByDifficulty map[string]int `json:"draws_by_difficulty"`
	}
	getJSON(t, srv.URL+"/api/stats", &stats)
	assert.Equal(t, 1, stats.TaskToggles)
	assert.Equal(t, 1, stats.JobsCreated)
	assert.Equal(t, 1, stats.JobsByStage["applied"])
	assert.Equal(t, 1, stats.ProblemDraws)
	assert.Equal(t, 1, stats.DrawsByDifficulty["Hard"])
}

// A restart on a later day applies the reset rules, and that shows up in
// the stats as day/week reset events.
func TestStatsRecordResetEvents(t *testing.T) {
	dataDir := t.TempDir()

	srv := newTestServerAt(t, dataDir, time.Date(2024, 1, 1, 9, 0, 0, 0, time.Local))
	resp, err := http.Get(srv.URL + "/api/state")
	require.NoError(t, err)
	resp.Body.Close()

	var stats struct {
		DayResets     int     `json:"day_resets"`
		WeekResets    int     `json:"week_resets"`
		TaskToggles   int     `json:"task_toggles"`
		TogglesPerDay float64 `json:"toggles_per_day"`
	}
	getJSON(t, srv.URL+"/api/stats", &stats)
	assert.Zero(t, stats.DayResets, "a freshly seeded store records no resets")
	srv.Close()

	// Sunday 2024-01-07 crosses both a day and a week boundary.
	srv2 := newTestServerAt(t, dataDir, time.Date(2024, 1, 7, 9, 0, 0, 0, time.Local))
	resp, err = http.Post(srv2.URL+"/api/tasks/1/toggle", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()

	getJSON(t, srv2.URL+"/api/stats", &stats)
	assert.Equal(t, 1, stats.DayResets)
	assert.Equal(t, 1, stats.WeekResets)
	assert.Equal(t, 1.0, stats.TogglesPerDay)
}

func TestRequestIDHeader(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/state")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))
}
