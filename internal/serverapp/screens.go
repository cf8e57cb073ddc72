package serverapp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/a-h/templ"
	"golang.org/x/text/message"

	"github.com/raygaledev/gold-starz/internal/form"
	"github.com/raygaledev/gold-starz/internal/reward"
	"github.com/raygaledev/gold-starz/internal/screen"
	"github.com/raygaledev/gold-starz/internal/task"
	"github.com/raygaledev/gold-starz/internal/telemetry"
)

// screens serves the HTML pages. Forms post back to the page that drew them;
// a valid submit redirects, an invalid one re-renders with field errors.
type screens struct {
	tasks    task.Store
	rewards  reward.Store
	balance  int
	printer  *message.Printer
	recorder telemetry.Recorder
}

func page(w http.ResponseWriter, r *http.Request, status int, title string, body templ.Component) {
	templ.Handler(screen.Layout(title, body), templ.WithStatus(status)).ServeHTTP(w, r)
}

func allow(w http.ResponseWriter, r *http.Request, methods ...string) bool {
	for _, m := range methods {
		if r.Method == m {
			return true
		}
	}
	http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	return false
}

// fieldErrors flattens a validation failure for the form views. Any other
// error is not a user mistake and reports false.
func fieldErrors(err error) (map[string]string, bool) {
	var errs form.Errors
	if !errors.As(err, &errs) {
		return nil, false
	}
	return errs.ByField(), true
}

// queryID reads ?id=. A missing id is zero; a malformed one is an error.
func queryID(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("id")
	if raw == "" {
		return 0, nil
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, errors.New("bad id")
	}
	return id, nil
}

// GET /
func (s *screens) home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if !allow(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	page(w, r, http.StatusOK, "Home", screen.Home(s.printer, screen.HomeView{
		Balance: s.balance,
		Rewards: reward.Affordable(s.rewards.List(), s.balance),
	}))
}

// GET /tasks
func (s *screens) taskList(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	page(w, r, http.StatusOK, "Tasks", screen.TaskList(s.printer, s.tasks.List()))
}

// GET|POST /tasks/new
func (s *screens) newTask(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodGet, http.MethodPost) {
		return
	}
	const title = "Add New Task"

	if r.Method == http.MethodGet {
		page(w, r, http.StatusOK, title, screen.TaskForm(screen.TaskFormView{}))
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	in := task.Form{
		Title:       r.PostFormValue("title"),
		Description: r.PostFormValue("description"),
		Stars:       form.SanitizeStars(r.PostFormValue("stars")),
		Category:    r.PostFormValue("category"),
	}
	d, err := task.Validate(in)
	if err != nil {
		fields, ok := fieldErrors(err)
		if !ok {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		page(w, r, http.StatusUnprocessableEntity, title, screen.TaskForm(screen.TaskFormView{
			Values: in,
			Errors: fields,
		}))
		return
	}

	t := s.tasks.Add(d)
	_ = s.recorder.RecordEvent(telemetry.EventTaskCreated, telemetry.EventMetadata{
		"id":       t.ID,
		"stars":    t.Stars,
		"category": string(t.Category),
	})
	http.Redirect(w, r, "/tasks", http.StatusSeeOther)
}

// GET|POST /rewards/new[?id=N]
//
// With an id the screen edits that reward. An id that is gone still shows
// the edit screen, empty, and saving it changes nothing.
func (s *screens) editReward(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodGet, http.MethodPost) {
		return
	}
	id, err := queryID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	view := screen.RewardFormView{ID: id}
	if r.Method == http.MethodGet {
		if rw, ok := s.rewards.Get(id); ok && id != 0 {
			view.Values = reward.FormFor(rw)
		}
		page(w, r, http.StatusOK, view.Title(), screen.RewardForm(view))
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	view.Values = reward.Form{
		Description: r.PostFormValue("description"),
		Stars:       form.SanitizeStars(r.PostFormValue("stars")),
	}
	d, err := reward.Validate(view.Values)
	if err != nil {
		fields, ok := fieldErrors(err)
		if !ok {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		view.Errors = fields
		page(w, r, http.StatusUnprocessableEntity, view.Title(), screen.RewardForm(view))
		return
	}

	if id == 0 {
		rw := s.rewards.Add(d)
		_ = s.recorder.RecordEvent(telemetry.EventRewardCreated, telemetry.EventMetadata{
			"id":    rw.ID,
			"stars": rw.Stars,
		})
	} else if s.rewards.Update(id, d) {
		_ = s.recorder.RecordEvent(telemetry.EventRewardUpdated, telemetry.EventMetadata{
			"id":    id,
			"stars": d.Stars,
		})
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// POST /rewards/delete?id=N
func (s *screens) deleteReward(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodPost) {
		return
	}
	id, err := queryID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	if id != 0 && s.rewards.Remove(id) {
		_ = s.recorder.RecordEvent(telemetry.EventRewardDeleted, telemetry.EventMetadata{"id": id})
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
