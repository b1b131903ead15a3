// Package server provides HTTP handlers for the learning operations.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jankenoboe/jankenoboe/internal/config"
	"github.com/jankenoboe/jankenoboe/internal/learning"
	"github.com/jankenoboe/jankenoboe/internal/service"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

// ListResponse is the payload of the listing operations.
type ListResponse[T any] struct {
	Count   int `json:"count"`
	Results []T `json:"results"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// BatchRequest enrolls songs. RelearnStartLevel defaults to the configured level when omitted.
type BatchRequest struct {
	SongIDs           []string `json:"song_ids" validate:"required,min=1,dive,required"`
	RelearnSongIDs    []string `json:"relearn_song_ids" validate:"dive,required"`
	RelearnStartLevel *int     `json:"relearn_start_level" validate:"omitempty,gte=0"`
}

type LevelUpRequest struct {
	IDs []string `json:"ids" validate:"required,min=1,dive,required"`
}

// Handler serves the learning operations as JSON over HTTP.
type Handler struct {
	svc      service.Service
	cfg      config.LearningConfig
	validate *validator.Validate
	mux      *http.ServeMux
}

func NewHandler(svc service.Service, cfg config.LearningConfig) *Handler {
	h := &Handler{
		svc:      svc,
		cfg:      cfg,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		mux:      http.NewServeMux(),
	}
	h.mux.HandleFunc("GET /healthz", h.healthz)
	h.mux.HandleFunc("GET /learning/due", h.due)
	h.mux.HandleFunc("POST /learning/batch", h.batch)
	h.mux.HandleFunc("POST /learning/level-up", h.levelUp)
	h.mux.HandleFunc("GET /learning/review", h.review)
	h.mux.HandleFunc("GET /learning/by-song", h.bySong)
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) due(w http.ResponseWriter, r *http.Request) {
	limit, lookahead, err := parseWindow(r, h.cfg.DueLimit)
	if err != nil {
		writeError(w, r, err)
		return
	}

	records, err := h.svc.Due(r.Context(), limit, lookahead)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ListResponse[learning.DueRecord]{Count: len(records), Results: records})
}

func (h *Handler) batch(w http.ResponseWriter, r *http.Request) {
	var req BatchRequest
	if err := h.decode(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	relearnStartLevel := h.cfg.RelearnStartLevel
	if req.RelearnStartLevel != nil {
		relearnStartLevel = *req.RelearnStartLevel
	}
	result, err := h.svc.Enroll(r.Context(), learning.EnrollRequest{
		SongIDs:           req.SongIDs,
		RelearnSongIDs:    req.RelearnSongIDs,
		RelearnStartLevel: relearnStartLevel,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) levelUp(w http.ResponseWriter, r *http.Request) {
	var req LevelUpRequest
	if err := h.decode(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.svc.Advance(r.Context(), req.IDs)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) review(w http.ResponseWriter, r *http.Request) {
	limit, lookahead, err := parseWindow(r, h.cfg.ReviewLimit)
	if err != nil {
		writeError(w, r, err)
		return
	}

	report, err := h.svc.BuildReport(r.Context(), limit, lookahead)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (h *Handler) bySong(w http.ResponseWriter, r *http.Request) {
	songIDs := learning.SplitIDs(r.URL.Query().Get("song_ids"))
	if len(songIDs) == 0 {
		writeError(w, r, learning.NewError(learning.ErrInvalidInput, "song_ids cannot be empty"))
		return
	}

	records, err := h.svc.BySongIDs(r.Context(), songIDs)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ListResponse[learning.SongRecord]{Count: len(records), Results: records})
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v interface{}) error {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(v); err != nil {
		return learning.NewError(learning.ErrInvalidInput, "invalid request body: %v", err)
	}
	if err := h.validate.Struct(v); err != nil {
		return learning.NewError(learning.ErrInvalidInput, "invalid request: %v", validationMessage(err))
	}
	return nil
}

func validationMessage(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error()
	}
	msgs := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		msgs = append(msgs, fmt.Sprintf("%s failed on %s", e.Namespace(), e.Tag()))
	}
	return strings.Join(msgs, ", ")
}

// parseWindow reads limit and offset_seconds, defaulting limit to defaultLimit and the offset to 0.
func parseWindow(r *http.Request, defaultLimit int) (int, time.Duration, error) {
	query := r.URL.Query()

	limit := defaultLimit
	if s := query.Get("limit"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return 0, 0, learning.NewError(learning.ErrInvalidInput, "invalid limit: %s", s)
		}
		limit = v
	}

	var offset int64
	if s := query.Get("offset_seconds"); s != "" {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, 0, learning.NewError(learning.ErrInvalidInput, "invalid offset_seconds: %s", s)
		}
		offset = v
	}
	return limit, time.Duration(offset) * time.Second, nil
}

// StatusCode maps an error kind to its HTTP status.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, learning.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, learning.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, learning.ErrInvalidState):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusCode(err)
	if status == http.StatusInternalServerError {
		slog.Default().Error("request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
	}
	writeJSON(w, status, ErrorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Default().Warn("failed to write response", slog.Any("error", err))
	}
}
