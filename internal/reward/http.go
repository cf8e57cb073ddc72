package reward

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/raygaledev/gold-starz/internal/form"
	"github.com/raygaledev/gold-starz/internal/telemetry"
)

type Handler struct {
	store    Store
	balance  int
	recorder telemetry.Recorder
}

func NewHandler(store Store) *Handler {
	return &Handler{store: store, recorder: telemetry.Discard}
}

// SetBalance sets the star balance used to mark rewards redeemable.
func (h *Handler) SetBalance(balance int) {
	h.balance = balance
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

func decodeJSON(r *http.Request, out any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(out)
}

// decodeDraft reads and validates a Form body. It writes the error
// response itself and reports whether the caller may continue.
func decodeDraft(w http.ResponseWriter, r *http.Request) (Draft, bool) {
	var in Form
	if err := decodeJSON(r, &in); err != nil {
		writeErr(w, http.StatusBadRequest, "bad json")
		return Draft{}, false
	}
	d, err := Validate(in)
	if err != nil {
		var errs form.Errors
		if errors.As(err, &errs) {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
				"error":  "validation failed",
				"fields": errs.ByField(),
			})
			return Draft{}, false
		}
		writeErr(w, http.StatusInternalServerError, err.Error())
		return Draft{}, false
	}
	return d, true
}

func (h *Handler) listing() []Listing {
	return Affordable(h.store.List(), h.balance)
}

// /api/rewards
func (h *Handler) RewardsRoot(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, h.listing())
		return

	case http.MethodPost:
		d, ok := decodeDraft(w, r)
		if !ok {
			return
		}
		created := h.store.Add(d)
		_ = h.recorder.RecordEvent(telemetry.EventRewardCreated, telemetry.EventMetadata{
			"id":    created.ID,
			"stars": created.Stars,
		})
		writeJSON(w, http.StatusCreated, created)
		return

	default:
		writeErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
}

// /api/rewards/{id}
func (h *Handler) RewardsSub(w http.ResponseWriter, r *http.Request) {
	tail := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/rewards/"), "/")
	id, err := strconv.Atoi(tail)
	if tail == "" || strings.Contains(tail, "/") || err != nil {
		writeErr(w, http.StatusNotFound, "not found")
		return
	}

	switch r.Method {
	case http.MethodGet:
		rw, ok := h.store.Get(id)
		if !ok {
			writeErr(w, http.StatusNotFound, "not found")
			return
		}
		writeJSON(w, http.StatusOK, Listing{Reward: rw, Redeemable: h.balance >= rw.Stars})
		return

	case http.MethodPut:
		d, ok := decodeDraft(w, r)
		if !ok {
			return
		}
		// unknown ids are a no-op, same as the store
		if h.store.Update(id, d) {
			_ = h.recorder.RecordEvent(telemetry.EventRewardUpdated, telemetry.EventMetadata{
				"id":    id,
				"stars": d.Stars,
			})
		}
		writeJSON(w, http.StatusOK, h.listing())
		return

	case http.MethodDelete:
		if h.store.Remove(id) {
			_ = h.recorder.RecordEvent(telemetry.EventRewardDeleted, telemetry.EventMetadata{"id": id})
		}
		w.WriteHeader(http.StatusNoContent)
		return

	default:
		writeErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
}
