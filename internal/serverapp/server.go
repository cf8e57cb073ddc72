package serverapp

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/raygaledev/gold-starz/internal/app"
	"github.com/raygaledev/gold-starz/internal/config"
	"github.com/raygaledev/gold-starz/internal/httpmw"
	"github.com/raygaledev/gold-starz/internal/reward"
	"github.com/raygaledev/gold-starz/internal/screen"
	"github.com/raygaledev/gold-starz/internal/task"
	"github.com/raygaledev/gold-starz/internal/telemetry"
	staticfiles "github.com/raygaledev/gold-starz/static"
)

const serviceName = "gold-starz"

type Options struct {
	Config *config.Config
	App    *app.App
	// Events receives one event per successful mutation. Defaults to a
	// fresh in-memory repository.
	Events telemetry.Repository
	Logger *log.Logger
}

func NewHandler(opts Options) (http.Handler, error) {
	if opts.Config == nil {
		return nil, errors.New("config is required")
	}
	if opts.App == nil {
		return nil, errors.New("app is required")
	}
	if opts.Events == nil {
		opts.Events = telemetry.NewMemoryRepository()
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	started := time.Now()

	mux := http.NewServeMux()

	devDir := ""
	if opts.Config.Server.DevStatic {
		devDir = opts.Config.Server.StaticDir
	}
	mux.Handle("/static/", http.StripPrefix("/static/", staticfiles.Handler(devDir)))

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"ok":      true,
			"service": serviceName,
			"time":    time.Now().UTC().Format(time.RFC3339),
		})
	})
	mux.HandleFunc("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		if opts.App.Closed() {
			writeJSON(w, http.StatusServiceUnavailable, map[string]any{
				"ok":    false,
				"error": "stores closed",
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"ok":      true,
			"service": serviceName,
			"tasks":   len(opts.App.Tasks.List()),
			"rewards": len(opts.App.Rewards.List()),
		})
	})

	taskHandler := task.NewHandler(opts.App.Tasks)
	taskHandler.SetRecorder(opts.Events)
	mux.HandleFunc("/api/tasks", taskHandler.TasksRoot)

	rewardHandler := reward.NewHandler(opts.App.Rewards)
	rewardHandler.SetBalance(opts.Config.StarBalance())
	rewardHandler.SetRecorder(opts.Events)
	mux.HandleFunc("/api/rewards", rewardHandler.RewardsRoot)
	mux.HandleFunc("/api/rewards/", rewardHandler.RewardsSub)

	mux.HandleFunc("/api/stats", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		events, err := opts.Events.GetEvents(started, nil)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]any{"error": err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, telemetry.CalculateStats(events, started))
	})
	mux.HandleFunc("/api/config", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(opts.Config); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	})

	s := &screens{
		tasks:    opts.App.Tasks,
		rewards:  opts.App.Rewards,
		balance:  opts.Config.StarBalance(),
		printer:  screen.Printer(opts.Config.Locale),
		recorder: opts.Events,
	}
	mux.HandleFunc("/", s.home)
	mux.HandleFunc("/tasks", s.taskList)
	mux.HandleFunc("/tasks/new", s.newTask)
	mux.HandleFunc("/rewards/new", s.editReward)
	mux.HandleFunc("/rewards/delete", s.deleteReward)

	return httpmw.Chain(
		mux,
		httpmw.WithRequestID,
		httpmw.WithAccessLog(opts.Logger),
		httpmw.WithRecover(opts.Logger),
	), nil
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
