package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/communityportal/notifier/pkg/chat"
	"github.com/communityportal/notifier/pkg/domain"
	"github.com/communityportal/notifier/pkg/notify"
)

// periodicResponse reports the outcome of a dispatch run
type periodicResponse struct {
	Status string `json:"status"`
	notify.RunResult
}

// instantRequest asks to announce a single freshly created item
type instantRequest struct {
	ItemID   int64  `json:"itemId"`
	ItemType string `json:"itemType"`
}

type chatRequest struct {
	Messages []chat.Message `json:"messages"`
}

type settingsRequest struct {
	Frequency string `json:"frequency"`
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]any{
		"status":  "ok",
		"version": s.Version,
		"time":    time.Now().UTC(),
		"chat":    s.Chat != nil,
	}
	renderJSON(w, r, http.StatusOK, status)
}

// periodicHandler runs the digest dispatch, force=true ignores the configured frequency
func (s *Server) periodicHandler(w http.ResponseWriter, r *http.Request) {
	forced := false
	if v := r.URL.Query().Get("force"); v != "" {
		var err error
		if forced, err = strconv.ParseBool(v); err != nil {
			renderError(w, r, fmt.Errorf("invalid force value %q", v), http.StatusBadRequest)
			return
		}
	}

	res, err := s.Dispatcher.RunNow(r.Context(), forced)
	if err != nil {
		lgr.Printf("[ERROR] periodic dispatch %s failed: %v", res.RunID, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, periodicResponse{Status: res.Status(), RunResult: res})
}

// instantHandler notifies subscribers of the item's category right away
func (s *Server) instantHandler(w http.ResponseWriter, r *http.Request) {
	var req instantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body: %w", err), http.StatusBadRequest)
		return
	}
	if req.ItemID <= 0 || req.ItemType == "" {
		renderError(w, r, errors.New("itemId and itemType are required"), http.StatusBadRequest)
		return
	}
	itemType, err := domain.ParseContentType(req.ItemType)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	res, err := s.InstantNotifier.NotifyInstant(r.Context(), req.ItemID, itemType)
	if err != nil {
		code := errorCode(err)
		if code == http.StatusInternalServerError {
			lgr.Printf("[ERROR] instant notification for %s %d failed: %v", itemType, req.ItemID, err)
		}
		renderError(w, r, err, code)
		return
	}
	renderJSON(w, r, http.StatusOK, res)
}

// chatHandler forwards the conversation to the assistant
func (s *Server) chatHandler(w http.ResponseWriter, r *http.Request) {
	if s.Chat == nil {
		renderError(w, r, errors.New("chat is not configured"), http.StatusServiceUnavailable)
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body: %w", err), http.StatusBadRequest)
		return
	}
	if len(req.Messages) == 0 {
		renderError(w, r, chat.ErrEmptyConversation, http.StatusBadRequest)
		return
	}

	reply, err := s.Chat.Complete(r.Context(), req.Messages)
	if err != nil {
		if errors.Is(err, chat.ErrEmptyConversation) {
			renderError(w, r, err, http.StatusBadRequest)
			return
		}
		lgr.Printf("[WARN] chat completion failed: %v", err)
		renderError(w, r, errors.New("assistant is unavailable"), http.StatusBadGateway)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]string{"reply": reply})
}

// getSettingsHandler returns current notification settings
func (s *Server) getSettingsHandler(w http.ResponseWriter, r *http.Request) {
	settings, err := s.Settings.GetNotificationSettings(r.Context())
	if err != nil {
		lgr.Printf("[ERROR] failed to load notification settings: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, settings)
}

// updateSettingsHandler changes the digest frequency
func (s *Server) updateSettingsHandler(w http.ResponseWriter, r *http.Request) {
	var req settingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body: %w", err), http.StatusBadRequest)
		return
	}
	freq, ok := domain.LookupFrequency(req.Frequency)
	if !ok {
		renderError(w, r, fmt.Errorf("unknown frequency %q", req.Frequency), http.StatusBadRequest)
		return
	}

	settings, err := s.Settings.UpdateFrequency(r.Context(), freq)
	if err != nil {
		lgr.Printf("[ERROR] failed to update notification frequency: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	lgr.Printf("[INFO] notification frequency set to %s", settings.Frequency)
	renderJSON(w, r, http.StatusOK, settings)
}

// errorCode maps notification errors to HTTP status codes
func errorCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, notify.ErrMissingCategory), errors.Is(err, notify.ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, notify.ErrNoTransport):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}
