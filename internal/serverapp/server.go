// Package serverapp wires storage, domain handlers and middleware into
// the single HTTP handler served by cmd/server.
package serverapp

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log"
	"math/rand"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/raghugg/job-hunter/internal/apply"
	"github.com/raghugg/job-hunter/internal/clock"
	"github.com/raghugg/job-hunter/internal/config"
	"github.com/raghugg/job-hunter/internal/httpmw"
	"github.com/raghugg/job-hunter/internal/leetcode"
	"github.com/raghugg/job-hunter/internal/llm"
	"github.com/raghugg/job-hunter/internal/resume"
	"github.com/raghugg/job-hunter/internal/schedule"
	"github.com/raghugg/job-hunter/internal/server"
	"github.com/raghugg/job-hunter/internal/store"
	"github.com/raghugg/job-hunter/internal/telemetry"
	staticfiles "github.com/raghugg/job-hunter/static"
)

type Options struct {
	Config        *config.Config
	DataDir       string
	StaticDir     string
	UseDiskStatic bool
	Logger        *log.Logger
	Clock         clock.Clock
}

func NewHandler(opts Options) (http.Handler, error) {
	if opts.Config == nil {
		return nil, errors.New("config is required")
	}
	if strings.TrimSpace(opts.DataDir) == "" {
		opts.DataDir = opts.Config.Data.Dir
	}
	if strings.TrimSpace(opts.StaticDir) == "" {
		opts.StaticDir = "static"
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Clock == nil {
		opts.Clock = clock.RealClock{}
	}

	mux := http.NewServeMux()
	rr := &server.RouteRegistry{}
	events := telemetry.NewMemoryRepository()

	blobStore, err := store.NewFileStore(opts.DataDir)
	if err != nil {
		return nil, err
	}
	engine := schedule.NewEngine(blobStore, opts.Clock)
	scheduleHandler := schedule.NewHandler(engine)
	if day, week := engine.ResetsApplied(); day || week {
		if day {
			_ = events.RecordEvent(telemetry.EventDayReset, nil)
		}
		if week {
			_ = events.RecordEvent(telemetry.EventWeekReset, nil)
		}
	}

	jobRepo, err := apply.NewFileRepo(opts.DataDir)
	if err != nil {
		return nil, err
	}
	applyHandler := apply.NewHandler(jobRepo)

	catalog := leetcode.NewCatalog(rand.New(rand.NewSource(time.Now().UnixNano())))
	leetcodeHandler := leetcode.NewHandler(catalog)

	proxy := llm.NewProxy(nil, opts.Config.LLM.AllowOrigin, opts.Logger)
	resumeHandler := resume.NewHandler(nil)
	statsHandler := telemetry.NewHandler(events)

	// record wraps a handler so successful calls leave a telemetry event.
	// meta runs before the handler because extracting body fields consumes
	// and restores the request body.
	record := func(h http.HandlerFunc, eventType telemetry.EventType, meta func(*http.Request) telemetry.EventMetadata) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			var m telemetry.EventMetadata
			if meta != nil {
				m = meta(r)
			}
			sw := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			h(sw, r)
			if sw.status < 400 {
				_ = events.RecordEvent(eventType, m)
			}
		}
	}

	server.Handle(mux, rr, "GET /api/state", "full tracker state with streak and 7-day projection", "", scheduleHandler.State)
	server.Handle(mux, rr, "POST /api/tasks", "create a custom task", `{"label":"Mock interview","target":1,"frequency":"daily"}`,
		record(scheduleHandler.CreateTask, telemetry.EventTaskCreated, nil))
	server.Handle(mux, rr, "PATCH /api/tasks/{id}", "update task label, target or frequency", `{"target":5}`, scheduleHandler.UpdateTask)
	server.Handle(mux, rr, "DELETE /api/tasks/{id}", "delete a task", "", scheduleHandler.DeleteTask)
	server.Handle(mux, rr, "POST /api/tasks/{id}/toggle", "toggle a task between done and not done", "",
		record(scheduleHandler.Toggle, telemetry.EventTaskToggled, nil))
	server.Handle(mux, rr, "POST /api/tasks/{id}/increment", "bump task progress by one", "", scheduleHandler.Increment)
	server.Handle(mux, rr, "POST /api/tasks/{id}/decrement", "drop task progress by one", "", scheduleHandler.Decrement)
	server.Handle(mux, rr, "POST /api/tasks/restore-defaults", "re-add any missing default tasks", "", scheduleHandler.RestoreDefaults)
	server.Handle(mux, rr, "POST /api/reset", "wipe all tracker state", "", scheduleHandler.Reset)

	server.Handle(mux, rr, "GET /api/jobs", "list tracked applications", "", applyHandler.List)
	server.Handle(mux, rr, "POST /api/jobs", "track a new application", `{"title":"SWE","company":"Acme","postUrl":"acme.com/careers"}`,
		record(applyHandler.Create, telemetry.EventJobCreated, nil))
	server.Handle(mux, rr, "GET /api/jobs/{id}", "fetch one application", "", applyHandler.Get)
	server.Handle(mux, rr, "PATCH /api/jobs/{id}", "update application fields", `{"notes":"referred by J"}`, applyHandler.Update)
	server.Handle(mux, rr, "DELETE /api/jobs/{id}", "stop tracking an application", "", applyHandler.Delete)
	server.Handle(mux, rr, "POST /api/jobs/{id}/status", "move an application to another stage", `{"status":"interview"}`,
		record(applyHandler.SetStatus, telemetry.EventJobStatusChanged, jobStatusMeta))
	server.Handle(mux, rr, "POST /api/jobs/{id}/contacts", "add a networking contact", `{"name":"Sam","role":"recruiter"}`, applyHandler.AddContact)
	server.Handle(mux, rr, "PATCH /api/jobs/{id}/contacts/{cid}", "update a contact's outreach status", `{"status":"messaged"}`, applyHandler.UpdateContact)
	server.Handle(mux, rr, "DELETE /api/jobs/{id}/contacts/{cid}", "remove a contact", "", applyHandler.RemoveContact)

	server.Handle(mux, rr, "GET /api/leetcode/problems", "browse the practice catalog", "", leetcodeHandler.List)
	server.Handle(mux, rr, "GET /api/leetcode/random", "draw a random practice set", "",
		record(leetcodeHandler.Random, telemetry.EventProblemsDrawn, drawDifficultyMeta))

	server.Handle(mux, rr, "POST /api/llm/generate", "proxy a completion request to a model provider", `{"apiKey":"...","model":"gemini-2.5-flash-lite","prompt":"..."}`,
		record(proxy.Generate, telemetry.EventLLMGenerate, llmModelMeta))
	server.Handle(mux, rr, "OPTIONS /api/llm/generate", "CORS preflight for the proxy", "", proxy.Preflight)
	server.Handle(mux, rr, "POST /api/resume/analyze", "run resume lint and model-backed checks", `{"resumeText":"...","jobText":"...","apiKey":"...","model":"..."}`,
		record(resumeHandler.Analyze, telemetry.EventResumeAnalyzed, llmModelMeta))

	server.Handle(mux, rr, "GET /api/stats", "activity stats over the recent period", "", statsHandler.Stats)
	server.Handle(mux, rr, "GET /api/routes", "this route listing", "", rr.Docs)

	mux.HandleFunc("GET /api/config", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(opts.Config); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"ok":      true,
			"service": "jobhunter",
			"time":    time.Now().UTC().Format(time.RFC3339),
		})
	})

	mux.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		if _, err := jobRepo.List(); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]any{
				"ok":    false,
				"error": "job storage unavailable",
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"ok":      true,
			"service": "jobhunter",
			"time":    time.Now().UTC().Format(time.RFC3339),
		})
	})

	var staticFS http.FileSystem = http.FS(staticfiles.EmbeddedFS())
	if opts.UseDiskStatic {
		staticFS = http.Dir(opts.StaticDir)
	}
	staticHandler := http.FileServer(staticFS)
	mux.Handle("/static/", http.StripPrefix("/static/", staticHandler))
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		f, err := staticFS.Open("index.html")
		if err != nil {
			http.Error(w, "index unavailable", http.StatusInternalServerError)
			return
		}
		defer f.Close()
		stat, err := f.Stat()
		if err != nil {
			http.Error(w, "index unavailable", http.StatusInternalServerError)
			return
		}
		http.ServeContent(w, r, "index.html", stat.ModTime(), f)
	})

	return httpmw.Chain(
		mux,
		httpmw.WithAccessLog(opts.Logger),
		httpmw.WithRequestID,
		httpmw.WithCORS(opts.Config.LLM.AllowOrigin),
		httpmw.WithRecover(opts.Logger),
	), nil
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (w *statusRecorder) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// jsonBodyField peeks one string field out of a JSON request body and
// puts the body back so the wrapped handler can still decode it.
func jsonBodyField(r *http.Request, field string) string {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return ""
	}
	r.Body = io.NopCloser(bytes.NewReader(body))
	var m map[string]any
	if json.Unmarshal(body, &m) != nil {
		return ""
	}
	s, _ := m[field].(string)
	return s
}

func jobStatusMeta(r *http.Request) telemetry.EventMetadata {
	if s := jsonBodyField(r, "status"); s != "" {
		return telemetry.EventMetadata{"status": s}
	}
	return nil
}

func drawDifficultyMeta(r *http.Request) telemetry.EventMetadata {
	if d := r.URL.Query().Get("difficulty"); d != "" {
		return telemetry.EventMetadata{"difficulty": d}
	}
	return nil
}

func llmModelMeta(r *http.Request) telemetry.EventMetadata {
	if m := jsonBodyField(r, "model"); m != "" {
		return telemetry.EventMetadata{"model": m}
	}
	return nil
}

func UseDiskStaticByEnv() bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("JOBHUNTER_DEV_STATIC"))) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
