package task

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/raygaledev/gold-starz/internal/form"
	"github.com/raygaledev/gold-starz/internal/telemetry"
)

type Handler struct {
	store    Store
	recorder telemetry.Recorder
}

func NewHandler(store Store) *Handler {
	return &Handler{store: store, recorder: telemetry.Discard}
}

func (h *Handler) SetRecorder(rec telemetry.Recorder) {
	if rec == nil {
		rec = telemetry.Discard
	}
	h.recorder = rec
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]any{"error": msg})
}

func writeValidation(w http.ResponseWriter, errs form.Errors) {
	writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
		"error":  "validation failed",
		"fields": errs.ByField(),
	})
}

func decodeJSON(r *http.Request, out any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(out)
}

// /api/tasks
func (h *Handler) TasksRoot(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, h.store.List())
		return

	case http.MethodPost:
		var in Form
		if err := decodeJSON(r, &in); err != nil {
			writeErr(w, http.StatusBadRequest, "bad json")
			return
		}
		d, err := Validate(in)
		if err != nil {
			var errs form.Errors
			if errors.As(err, &errs) {
				writeValidation(w, errs)
				return
			}
			writeErr(w, http.StatusInternalServerError, err.Error())
			return
		}

		t := h.store.Add(d)
		_ = h.recorder.RecordEvent(telemetry.EventTaskCreated, telemetry.EventMetadata{
			"id":       t.ID,
			"stars":    t.Stars,
			"category": string(t.Category),
		})
		writeJSON(w, http.StatusCreated, t)
		return

	default:
		writeErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
}
